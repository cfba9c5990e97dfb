package ballistics

import (
	"context"
	"sync"
)

// Shot pairs a launch angle with its simulated outcome.
type Shot struct {
	Angle  float64
	Flight *Flight
}

// TableAngles returns the firing-table angle set: 15° to 75° in 5° steps.
func TableAngles() []float64 {
	angles := make([]float64, 0, 13)
	for a := 15.0; a <= 75.0; a += 5.0 {
		angles = append(angles, a)
	}
	return angles
}

// CurveAngles returns n evenly spaced angles across [lo, hi], the finer set
// used for range-vs-angle curves (default 10°–80°, 50 points).
func CurveAngles(lo, hi float64, n int) []float64 {
	if n < 2 {
		return []float64{lo}
	}
	angles := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range angles {
		angles[i] = lo + float64(i)*step
	}
	return angles
}

// Sweep runs one shot per angle in order. Runs are independent; the first
// failure aborts the sweep.
func (s *Simulator) Sweep(ctx context.Context, muzzleSpeed float64, angles []float64, cfg Config) ([]Shot, error) {
	shots := make([]Shot, 0, len(angles))
	for _, angle := range angles {
		flight, err := s.Fly(ctx, angle, muzzleSpeed, cfg)
		if err != nil {
			return nil, err
		}
		shots = append(shots, Shot{Angle: angle, Flight: flight})
	}
	return shots, nil
}

// SweepParallel runs the same sweep with one goroutine per angle. Results
// keep angle order. Output is identical to Sweep; parallelism is an
// optimization, not a semantic change.
func (s *Simulator) SweepParallel(ctx context.Context, muzzleSpeed float64, angles []float64, cfg Config) ([]Shot, error) {
	shots := make([]Shot, len(angles))
	errs := make([]error, len(angles))

	var wg sync.WaitGroup
	for i, angle := range angles {
		wg.Add(1)
		go func(idx int, a float64) {
			defer wg.Done()
			flight, err := s.Fly(ctx, a, muzzleSpeed, cfg)
			shots[idx] = Shot{Angle: a, Flight: flight}
			errs[idx] = err
		}(i, angle)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return shots, nil
}
