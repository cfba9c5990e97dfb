// Package profile persists named cannon profiles to a single JSON file.
// Saves are non-destructive: the whole collection is read, the entry
// merged, and the file rewritten.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/san-kum/spudsim/internal/config"
)

// Record is one stored cannon profile.
type Record struct {
	Name            string  `json:"name"`
	BarrelLength    float64 `json:"barrel_len"`
	BarrelDiameter  float64 `json:"barrel_dia"`
	ChamberLength   float64 `json:"chamber_len"`
	ChamberDiameter float64 `json:"chamber_dia"`
	ProjectileMass  float64 `json:"proj_mass"`
	FuelType        string  `json:"fuel_type"`
	FuelVolumeML    float64 `json:"fuel_ml"`
	LaunchHeight    float64 `json:"launch_height"`
	DragCoeff       float64 `json:"cd"`
	Altitude        float64 `json:"altitude"`
	Temperature     float64 `json:"temp"`
	Latitude        float64 `json:"latitude"`
	Azimuth         float64 `json:"azimuth"`
}

// FromConfig builds a Record from a shot configuration.
func FromConfig(cfg *config.Config) Record {
	return Record{
		Name:            cfg.Cannon.Name,
		BarrelLength:    cfg.Cannon.BarrelLength,
		BarrelDiameter:  cfg.Cannon.BarrelDiameter,
		ChamberLength:   cfg.Cannon.ChamberLength,
		ChamberDiameter: cfg.Cannon.ChamberDiameter,
		ProjectileMass:  cfg.Cannon.ProjectileMass,
		FuelType:        cfg.Cannon.FuelType,
		FuelVolumeML:    cfg.Cannon.FuelVolumeML,
		LaunchHeight:    cfg.Cannon.LaunchHeight,
		DragCoeff:       cfg.Cannon.DragCoeff,
		Altitude:        cfg.Site.Altitude,
		Temperature:     cfg.Site.Temperature,
		Latitude:        cfg.Site.Latitude,
		Azimuth:         cfg.Site.Azimuth,
	}
}

// ToConfig applies the record onto a default configuration.
func (r Record) ToConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Cannon.Name = r.Name
	cfg.Cannon.BarrelLength = r.BarrelLength
	cfg.Cannon.BarrelDiameter = r.BarrelDiameter
	cfg.Cannon.ChamberLength = r.ChamberLength
	cfg.Cannon.ChamberDiameter = r.ChamberDiameter
	cfg.Cannon.ProjectileMass = r.ProjectileMass
	cfg.Cannon.FuelType = r.FuelType
	cfg.Cannon.FuelVolumeML = r.FuelVolumeML
	cfg.Cannon.LaunchHeight = r.LaunchHeight
	cfg.Cannon.DragCoeff = r.DragCoeff
	cfg.Site.Altitude = r.Altitude
	cfg.Site.Temperature = r.Temperature
	cfg.Site.Latitude = r.Latitude
	cfg.Site.Azimuth = r.Azimuth
	return cfg
}

// Store reads and writes the profile collection at a fixed path.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) readAll() (map[string]Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Record{}, nil
		}
		return nil, err
	}

	profiles := make(map[string]Record)
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("malformed profile store %s: %w", s.path, err)
	}
	return profiles, nil
}

func (s *Store) writeAll(profiles map[string]Record) error {
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(profiles)
}

// Save merges the record into the stored collection under its name,
// overwriting an existing entry with the same name only.
func (s *Store) Save(rec Record) error {
	if rec.Name == "" {
		return fmt.Errorf("profile name must not be empty")
	}

	profiles, err := s.readAll()
	if err != nil {
		return err
	}
	profiles[rec.Name] = rec
	return s.writeAll(profiles)
}

// Load returns the named profile. A missing store file is treated as an
// empty collection.
func (s *Store) Load(name string) (Record, error) {
	profiles, err := s.readAll()
	if err != nil {
		return Record{}, err
	}
	rec, ok := profiles[name]
	if !ok {
		return Record{}, fmt.Errorf("profile not found: %s", name)
	}
	return rec, nil
}

// List returns all stored profiles sorted by name.
func (s *Store) List() ([]Record, error) {
	profiles, err := s.readAll()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(profiles))
	for _, rec := range profiles {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

// Delete removes the named profile. Deleting a missing profile is an error.
func (s *Store) Delete(name string) error {
	profiles, err := s.readAll()
	if err != nil {
		return err
	}
	if _, ok := profiles[name]; !ok {
		return fmt.Errorf("profile not found: %s", name)
	}
	delete(profiles, name)
	return s.writeAll(profiles)
}
