// Package solar models a fixed-primary gravitational system.
//
// The package defines the entities and the per-tick update algorithm:
//
//   - [Body]: the primary mass (sun); exerts gravity, never moves on its own
//   - [OrbitingBody]: a planet with mutable position and velocity
//   - [System]: one primary plus an ordered collection of orbiting bodies
//
// [System.Advance] applies one step of position-first semi-implicit
// Euler: each orbiting body moves under its prior velocity, then its
// velocity picks up the gravitational acceleration evaluated at the new
// position. Orbiting bodies attract nothing; only the primary pulls.
//
// # Example
//
//	sun, _ := solar.NewBody("SOL", 5000, 10000000, 5800)
//	earth, _ := solar.NewOrbitingBody("EARTH", 47.5, 1, 25, 5.0, 200.0, "green")
//	sys := solar.NewSystem()
//	sys.SetPrimaryBody(sun)
//	sys.AddOrbitingBody(earth)
//	err := sys.Advance()
//
// # Thread Safety
//
// System instances are NOT thread-safe. A System is owned by a single
// driver for the duration of a run.
package solar
