package ballistics_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/spudsim/internal/ballistics"
)

// Properties of the flight model that hold independent of any pinned
// reference run.
var _ = Describe("Flight", func() {
	var (
		ctx context.Context
		cfg ballistics.Config
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = ballistics.DefaultConfig()
	})

	vacuumSim := func(height float64) *ballistics.Simulator {
		return ballistics.New(
			ballistics.Projectile{Mass: 0.15, DragCoeff: 0, Area: 0.002},
			ballistics.Environment{
				AirDensity:   1.2,
				LaunchHeight: height,
				AzimuthDeg:   90,
			},
		)
	}

	Describe("in vacuum at zero latitude", func() {
		// Launch height epsilon above zero so the loop is entered; the
		// z > 0 precondition forbids launching exactly from the ground.
		const eps = 1e-9

		It("reproduces the classic projectile range", func() {
			v0 := 30.0
			theta := 45 * math.Pi / 180
			analytic := v0 * v0 * math.Sin(2*theta) / ballistics.Gravity

			flight, err := vacuumSim(eps).Fly(ctx, 45, v0, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(flight.Range).To(BeNumerically("~", analytic, analytic*0.005))
		})

		It("reproduces the classic peak height", func() {
			v0 := 50.0
			theta := 60 * math.Pi / 180
			analytic := v0 * v0 * math.Sin(theta) * math.Sin(theta) / (2 * ballistics.Gravity)

			flight, err := vacuumSim(eps).Fly(ctx, 60, v0, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(flight.Apex).To(BeNumerically("~", analytic, analytic*0.01))
		})

		It("has no lateral drift", func() {
			flight, err := vacuumSim(eps).Fly(ctx, 45, 30, cfg)
			Expect(err).NotTo(HaveOccurred())
			// Azimuth 90 sends the shot north; east stays zero without
			// wind or Coriolis, so the planar range is all drift.
			Expect(flight.Range).To(BeNumerically("~", flight.Drift, 1e-9))
		})
	})

	Describe("determinism", func() {
		It("returns identical flights for identical inputs", func() {
			sim := ballistics.New(
				ballistics.Projectile{Mass: 0.15, DragCoeff: 0.47, Area: 0.002},
				ballistics.Environment{
					AirDensity:   1.204,
					LaunchHeight: 1,
					WindSpeed:    3,
					LatitudeDeg:  52,
					AzimuthDeg:   90,
				},
			)

			a, err := sim.Fly(ctx, 40, 60, cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := sim.Fly(ctx, 40, 60, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(a.Range).To(Equal(b.Range))
			Expect(a.Time).To(Equal(b.Time))
			Expect(a.ImpactSpeed).To(Equal(b.ImpactSpeed))
			Expect(a.Drift).To(Equal(b.Drift))
			Expect(a.Steps).To(Equal(b.Steps))
		})
	})

	Describe("wind", func() {
		It("enters the east component only", func() {
			env := ballistics.Environment{
				AirDensity:   1.204,
				LaunchHeight: 1,
				AzimuthDeg:   90,
			}
			proj := ballistics.Projectile{Mass: 0.15, DragCoeff: 0.47, Area: 0.002}

			calm, err := ballistics.New(proj, env).Fly(ctx, 45, 30, cfg)
			Expect(err).NotTo(HaveOccurred())

			env.WindSpeed = 10
			windy, err := ballistics.New(proj, env).Fly(ctx, 45, 30, cfg)
			Expect(err).NotTo(HaveOccurred())

			// At azimuth 90 the shot itself travels north; a tailwind adds
			// eastward motion, so range grows but northward drift shrinks
			// from the extra drag.
			Expect(windy.Range).To(BeNumerically(">", calm.Range))
			Expect(windy.Drift).To(BeNumerically("<", calm.Drift))
		})
	})

	Describe("drag", func() {
		It("shortens the flight relative to vacuum", func() {
			env := ballistics.Environment{
				AirDensity:   1.204,
				LaunchHeight: 1,
				AzimuthDeg:   90,
			}

			vacuum, err := ballistics.New(
				ballistics.Projectile{Mass: 0.15, DragCoeff: 0, Area: 0.002}, env,
			).Fly(ctx, 45, 30, cfg)
			Expect(err).NotTo(HaveOccurred())

			dragged, err := ballistics.New(
				ballistics.Projectile{Mass: 0.15, DragCoeff: 0.47, Area: 0.002}, env,
			).Fly(ctx, 45, 30, cfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(dragged.Range).To(BeNumerically("<", vacuum.Range))
			Expect(dragged.ImpactSpeed).To(BeNumerically("<", vacuum.ImpactSpeed))
		})
	})
})
