package solar

import "errors"

// Domain errors for system construction and stepping.
var (
	// ErrNoPrimaryBody indicates Advance was called before a primary body was set.
	ErrNoPrimaryBody = errors.New("solar: no primary body configured")

	// ErrZeroSeparation indicates an orbiting body coincides exactly with the
	// primary body, leaving the acceleration undefined.
	ErrZeroSeparation = errors.New("solar: zero separation from primary body")

	// ErrNonPositiveMass indicates a body was constructed with mass <= 0.
	ErrNonPositiveMass = errors.New("solar: mass must be positive")
)

// BodyError wraps a domain error with the name of the body it concerns.
type BodyError struct {
	Body    string
	Wrapped error
}

func (e *BodyError) Error() string {
	return e.Body + ": " + e.Wrapped.Error()
}

func (e *BodyError) Unwrap() error {
	return e.Wrapped
}
