package solar

import "github.com/san-kum/solarsim/internal/physics"

// OrbitingBody is a planet: a body whose motion is integrated each tick
// under gravity from the primary body only. Color is an opaque label
// carried for external consumers; physics never reads it.
type OrbitingBody struct {
	name     string
	mass     float64
	radius   float64
	color    string
	position physics.Vec2
	velocity physics.Vec2
}

// NewOrbitingBody returns a planet at (x, y) with velocity (0,
// initialSpeed), purely along the Y axis by convention. The mass must be
// positive.
func NewOrbitingBody(name string, initialSpeed, mass, radius, x, y float64, color string) (*OrbitingBody, error) {
	if mass <= 0 {
		return nil, &BodyError{Body: name, Wrapped: ErrNonPositiveMass}
	}
	return &OrbitingBody{
		name:     name,
		mass:     mass,
		radius:   radius,
		color:    color,
		position: physics.Vec2{X: x, Y: y},
		velocity: physics.Vec2{Y: initialSpeed},
	}, nil
}

func (o *OrbitingBody) Name() string           { return o.name }
func (o *OrbitingBody) Mass() float64          { return o.mass }
func (o *OrbitingBody) Radius() float64        { return o.radius }
func (o *OrbitingBody) Color() string          { return o.color }
func (o *OrbitingBody) Position() physics.Vec2 { return o.position }
func (o *OrbitingBody) Velocity() physics.Vec2 { return o.velocity }

// SetVelocityX and SetVelocityY overwrite one velocity component; no
// validation is applied.
func (o *OrbitingBody) SetVelocityX(v float64) { o.velocity.X = v }
func (o *OrbitingBody) SetVelocityY(v float64) { o.velocity.Y = v }

// MoveTo overwrites the position unconditionally.
func (o *OrbitingBody) MoveTo(x, y float64) {
	o.position = physics.Vec2{X: x, Y: y}
}

// DistanceFromBody returns the Euclidean distance between this body's
// current position and b's current position.
func (o *OrbitingBody) DistanceFromBody(b *Body) float64 {
	return physics.Distance(o.position, b.position)
}
