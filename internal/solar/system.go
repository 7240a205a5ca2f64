package solar

import "github.com/san-kum/solarsim/internal/physics"

// System aggregates one primary body and an ordered collection of
// orbiting bodies. Insertion order is iteration order for updates and
// reporting; it does not affect the physics, which treats every orbiting
// body independently.
type System struct {
	primary *Body
	bodies  []*OrbitingBody
}

func NewSystem() *System {
	return &System{bodies: make([]*OrbitingBody, 0)}
}

// SetPrimaryBody stores the primary body reference, replacing any
// previously set one. At most one primary body is modeled at a time.
func (s *System) SetPrimaryBody(b *Body) { s.primary = b }

// AddOrbitingBody appends to the ordered collection. Duplicates are
// permitted; a duplicated body is stepped and reported once per entry.
func (s *System) AddOrbitingBody(o *OrbitingBody) {
	s.bodies = append(s.bodies, o)
}

func (s *System) PrimaryBody() *Body { return s.primary }

// OrbitingBodies returns the collection in insertion order. Callers must
// not reorder it.
func (s *System) OrbitingBodies() []*OrbitingBody { return s.bodies }

func (s *System) Len() int { return len(s.bodies) }

// Advance applies one tick of position-first semi-implicit Euler to
// every orbiting body in collection order:
//
//  1. position += Dt * velocity, using the velocity from the previous tick
//  2. acceleration = G * M * d / r^3, where d points from the body's new
//     position toward the primary and r = |d|
//  3. velocity += Dt * acceleration
//
// Position moves before velocity updates; swapping that order produces
// different trajectories, so the sequence above is part of the contract.
//
// Advance fails without touching any body when no primary is set, and
// aborts mid-tick when an orbiting body sits exactly on the primary
// (the acceleration would divide by zero). Bodies earlier in the order
// keep their position update in that case; the error surfaces to the
// caller, which treats it as fatal for the run.
func (s *System) Advance() error {
	if s.primary == nil {
		return ErrNoPrimaryBody
	}

	for _, o := range s.bodies {
		o.position = o.position.Add(o.velocity.Scale(physics.Dt))

		d := s.primary.position.Sub(o.position)
		r := d.Len()
		if r == 0 {
			return &BodyError{Body: o.name, Wrapped: ErrZeroSeparation}
		}

		acc := d.Scale(physics.G * s.primary.mass / (r * r * r))
		o.velocity = o.velocity.Add(acc.Scale(physics.Dt))
	}

	return nil
}

// Energy returns the total mechanical energy of the orbiting bodies:
// kinetic plus gravitational potential against the primary. Orbiting
// bodies contribute no mutual potential. Diagnostic only; Advance never
// consults it.
func (s *System) Energy() float64 {
	if s.primary == nil {
		return 0
	}

	e := 0.0
	for _, o := range s.bodies {
		v := o.velocity
		e += 0.5 * o.mass * (v.X*v.X + v.Y*v.Y)

		r := physics.Distance(s.primary.position, o.position)
		if r > 0 {
			e -= physics.G * s.primary.mass * o.mass / r
		}
	}
	return e
}
