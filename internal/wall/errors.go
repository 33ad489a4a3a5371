package wall

import (
	"errors"
	"fmt"
)

// Configuration errors. All are reported before any layout is generated.
var (
	ErrInvalidStripCount = errors.New("wall: strip count must be positive")

	ErrInvalidDimensions = errors.New("wall: width and height must be positive")

	// ErrInvalidFoldAngle indicates a max fold angle outside (0, π].
	ErrInvalidFoldAngle = errors.New("wall: max fold angle out of range (0, pi]")
)

// ConfigError wraps a configuration error with the offending field.
type ConfigError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s=%g: %s", e.Field, e.Value, e.Wrapped.Error())
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}
