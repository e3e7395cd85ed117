package scene

import "errors"

// Contract-violation and lookup errors. Contract violations are returned
// synchronously at the call site; operational conditions (popping a short
// stack, removing a missing key) are logged instead.
var (
	// ErrNilScene is returned when Push/Replace receives a nil scene or a
	// cache factory returns one.
	ErrNilScene = errors.New("scene: nil scene")

	// ErrTypeMismatch is returned when a cached entry or parameter value is
	// requested as the wrong type.
	ErrTypeMismatch = errors.New("scene: type mismatch")

	// ErrNotFound is returned when a key is absent.
	ErrNotFound = errors.New("scene: not found")

	// ErrDuplicateKey is returned by Params.Build when the same key was
	// added twice.
	ErrDuplicateKey = errors.New("scene: duplicate key")

	// ErrInvalidCapacity is returned by NewCache for capacities below 1.
	ErrInvalidCapacity = errors.New("scene: cache capacity must be >= 1")
)
