package solar

import "github.com/san-kum/solarsim/internal/physics"

// Body is the primary mass of a System. Mass, radius and temperature are
// fixed at construction; the position can be relocated between ticks but
// the body never moves under gravity itself.
type Body struct {
	name        string
	mass        float64
	radius      float64
	temperature float64
	position    physics.Vec2
}

// NewBody returns a primary body positioned at the origin. The mass must
// be positive; radius and temperature are descriptive only.
func NewBody(name string, mass, radius, temperature float64) (*Body, error) {
	if mass <= 0 {
		return nil, &BodyError{Body: name, Wrapped: ErrNonPositiveMass}
	}
	return &Body{
		name:        name,
		mass:        mass,
		radius:      radius,
		temperature: temperature,
	}, nil
}

func (b *Body) Name() string           { return b.name }
func (b *Body) Mass() float64          { return b.mass }
func (b *Body) Radius() float64        { return b.radius }
func (b *Body) Temperature() float64   { return b.temperature }
func (b *Body) Position() physics.Vec2 { return b.position }

// SetPosition overwrites the position unconditionally. The new position
// takes effect on every subsequent Advance.
func (b *Body) SetPosition(x, y float64) {
	b.position = physics.Vec2{X: x, Y: y}
}
