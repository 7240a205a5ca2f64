package solar_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/solarsim/internal/physics"
	"github.com/san-kum/solarsim/internal/solar"
)

func mustBody(name string, mass, radius, temperature float64) *solar.Body {
	b, err := solar.NewBody(name, mass, radius, temperature)
	Expect(err).NotTo(HaveOccurred())
	return b
}

func mustPlanet(name string, speed, mass, radius, x, y float64, color string) *solar.OrbitingBody {
	o, err := solar.NewOrbitingBody(name, speed, mass, radius, x, y, color)
	Expect(err).NotTo(HaveOccurred())
	return o
}

var _ = Describe("System", func() {
	var sys *solar.System

	BeforeEach(func() {
		sys = solar.NewSystem()
	})

	Describe("Advance", func() {
		Context("without a primary body", func() {
			It("fails and leaves every planet untouched", func() {
				planet := mustPlanet("EARTH", 47.5, 1, 25, 5.0, 200.0, "green")
				sys.AddOrbitingBody(planet)

				Expect(sys.Advance()).To(MatchError(solar.ErrNoPrimaryBody))
				Expect(planet.Position()).To(Equal(physics.Vec2{X: 5.0, Y: 200.0}))
				Expect(planet.Velocity()).To(Equal(physics.Vec2{Y: 47.5}))
			})
		})

		Context("with a planet exactly on the primary body", func() {
			It("fails naming the offending body instead of dividing by zero", func() {
				sys.SetPrimaryBody(mustBody("SOL", 5000, 10000000, 5800))
				icarus := mustPlanet("ICARUS", 0, 1, 1, 0, 0, "white")
				sys.AddOrbitingBody(icarus)

				err := sys.Advance()
				Expect(err).To(MatchError(solar.ErrZeroSeparation))
				Expect(err.Error()).To(ContainSubstring("ICARUS"))

				pos, vel := icarus.Position(), icarus.Velocity()
				for _, v := range []float64{pos.X, pos.Y, vel.X, vel.Y} {
					Expect(math.IsNaN(v)).To(BeFalse())
					Expect(math.IsInf(v, 0)).To(BeFalse())
				}
			})
		})

		It("accelerates identically regardless of orbiting mass", func() {
			heavySys := solar.NewSystem()
			heavySys.SetPrimaryBody(mustBody("SOL", 1e15, 10000000, 5800))
			heavy := mustPlanet("HEAVY", 30, 5000, 25, 12, 90, "")
			heavySys.AddOrbitingBody(heavy)

			sys.SetPrimaryBody(mustBody("SOL", 1e15, 10000000, 5800))
			light := mustPlanet("LIGHT", 30, 0.001, 25, 12, 90, "")
			sys.AddOrbitingBody(light)

			for i := 0; i < 50; i++ {
				Expect(sys.Advance()).To(Succeed())
				Expect(heavySys.Advance()).To(Succeed())
			}

			Expect(light.Position()).To(Equal(heavy.Position()))
			Expect(light.Velocity()).To(Equal(heavy.Velocity()))
		})

		It("steps a duplicated body once per collection entry", func() {
			sys.SetPrimaryBody(mustBody("SOL", 1e15, 10000000, 5800))
			twice := mustPlanet("TWIN", 20, 1, 1, 3, 80, "")
			sys.AddOrbitingBody(twice)
			sys.AddOrbitingBody(twice)
			Expect(sys.Len()).To(Equal(2))

			once := solar.NewSystem()
			once.SetPrimaryBody(mustBody("SOL", 1e15, 10000000, 5800))
			single := mustPlanet("TWIN", 20, 1, 1, 3, 80, "")
			once.AddOrbitingBody(single)

			// Two entries in one tick apply the same update sequence as
			// one entry across two ticks.
			Expect(sys.Advance()).To(Succeed())
			Expect(once.Advance()).To(Succeed())
			Expect(once.Advance()).To(Succeed())

			Expect(twice.Position()).To(Equal(single.Position()))
			Expect(twice.Velocity()).To(Equal(single.Velocity()))
		})

		It("pulls toward a relocated primary body", func() {
			sun := mustBody("SOL", 1e15, 10000000, 5800)
			sun.SetPosition(100, 0)
			sys.SetPrimaryBody(sun)

			probe := mustPlanet("PROBE", 0, 1, 1, 0, 0, "")
			sys.AddOrbitingBody(probe)

			Expect(sys.Advance()).To(Succeed())
			Expect(probe.Velocity().X).To(BeNumerically(">", 0))
			Expect(probe.Velocity().Y).To(BeZero())
		})
	})

	Describe("SetPrimaryBody", func() {
		It("replaces any previously set primary", func() {
			first := mustBody("A", 1, 1, 1)
			second := mustBody("B", 2, 2, 2)

			sys.SetPrimaryBody(first)
			sys.SetPrimaryBody(second)
			Expect(sys.PrimaryBody()).To(BeIdenticalTo(second))
		})
	})

	Describe("Energy", func() {
		It("sums kinetic and potential terms against the primary", func() {
			sys.SetPrimaryBody(mustBody("SOL", 5000, 10000000, 5800))
			sys.AddOrbitingBody(mustPlanet("P", 3, 2, 1, 0, 10, ""))

			want := 0.5*2*9 - physics.G*5000*2/10
			Expect(sys.Energy()).To(BeNumerically("~", want, 1e-12))
		})

		It("is zero without a primary body", func() {
			sys.AddOrbitingBody(mustPlanet("P", 3, 2, 1, 0, 10, ""))
			Expect(sys.Energy()).To(BeZero())
		})
	})
})
