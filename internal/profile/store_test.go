package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func testRecord(name string) Record {
	return Record{
		Name:            name,
		BarrelLength:    1.0,
		BarrelDiameter:  0.05,
		ChamberLength:   0.3,
		ChamberDiameter: 0.08,
		ProjectileMass:  0.15,
		FuelType:        "propane",
		FuelVolumeML:    5.0,
		LaunchHeight:    1.0,
		DragCoeff:       0.47,
		Temperature:     20.0,
		Azimuth:         90.0,
	}
}

func TestSaveAndLoad(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "profiles.json"))

	if err := store.Save(testRecord("mk1")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	rec, err := store.Load("mk1")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if rec.FuelType != "propane" || rec.ProjectileMass != 0.15 {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestSaveMergesExistingProfiles(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "profiles.json"))

	if err := store.Save(testRecord("mk1")); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(testRecord("mk2")); err != nil {
		t.Fatal(err)
	}

	// Saving mk2 must not clobber mk1.
	if _, err := store.Load("mk1"); err != nil {
		t.Errorf("mk1 lost after saving mk2: %v", err)
	}

	updated := testRecord("mk1")
	updated.FuelVolumeML = 10
	if err := store.Save(updated); err != nil {
		t.Fatal(err)
	}

	rec, err := store.Load("mk1")
	if err != nil {
		t.Fatal(err)
	}
	if rec.FuelVolumeML != 10 {
		t.Errorf("expected updated fuel volume 10, got %f", rec.FuelVolumeML)
	}

	records, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Errorf("expected 2 profiles, got %d", len(records))
	}
}

func TestSaveEmptyName(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "profiles.json"))
	if err := store.Save(Record{}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestListMissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "profiles.json"))

	records, err := store.List()
	if err != nil {
		t.Fatalf("missing file should be an empty store: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestListSorted(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "profiles.json"))
	for _, name := range []string{"zulu", "alpha", "mike"} {
		if err := store.Save(testRecord(name)); err != nil {
			t.Fatal(err)
		}
	}

	records, err := store.List()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(records); i++ {
		if records[i].Name < records[i-1].Name {
			t.Error("records should be sorted by name")
		}
	}
}

func TestLoadNotFound(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "profiles.json"))
	if err := store.Save(testRecord("mk1")); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Load("mk9"); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestDelete(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "profiles.json"))
	if err := store.Save(testRecord("mk1")); err != nil {
		t.Fatal(err)
	}

	if err := store.Delete("mk1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Load("mk1"); err == nil {
		t.Error("expected mk1 gone")
	}
	if err := store.Delete("mk1"); err == nil {
		t.Error("expected error deleting missing profile")
	}
}

func TestMalformedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := New(path)
	if _, err := store.List(); err == nil {
		t.Error("expected error for malformed store")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	rec := testRecord("mk1")
	rec.Latitude = 52.0
	rec.Altitude = 120.0

	got := FromConfig(rec.ToConfig())
	if got != rec {
		t.Errorf("config round trip changed the record:\n got %+v\nwant %+v", got, rec)
	}
}
