package brush

import "fmt"

// MaxFaces is the largest number of faces a brush may hold. It also caps
// every walk around a vertex or edge ring.
const MaxFaces = 1024

// DefaultMaxWorldCoord is the largest legal map coordinate
const DefaultMaxWorldCoord = 64 * 1024

// Config is shared, read-only configuration for brushes and maps
type Config struct {
	// MaxWorldCoord bounds legal coordinates. The polygon each face starts
	// from extends just beyond it.
	MaxWorldCoord float64
	// LogDegenerate reports degenerate brushes at warn level. Degenerate
	// brushes are an expected state while a face is being dragged, so this
	// is off by default.
	LogDegenerate bool
}

// DefaultConfig returns the configuration used by NewBrush callers that do
// not care.
func DefaultConfig() Config {
	return Config{MaxWorldCoord: DefaultMaxWorldCoord}
}

// Validate reports configuration errors
func (c Config) Validate() error {
	if c.MaxWorldCoord <= 0 {
		return fmt.Errorf("max world coord %v: %w", c.MaxWorldCoord, ErrInvalidConfig)
	}
	return nil
}

// orDefault replaces unusable values with defaults
func (c Config) orDefault() Config {
	if c.MaxWorldCoord <= 0 {
		c.MaxWorldCoord = DefaultMaxWorldCoord
	}
	return c
}
