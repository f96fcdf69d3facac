package frame

import "go.uber.org/zap"

type Config struct {
	// Column storage is halved once occupancy drops below
	// ShrinkRatio * capacity. Zero disables shrinking.
	ShrinkRatio float64

	// Column storage never shrinks below this capacity.
	MinColumnCapacity int

	Logger *zap.Logger
}

func DefaultConfig() Config {
	return Config{
		ShrinkRatio:       0.25,
		MinColumnCapacity: 8,
		Logger:            zap.NewNop(),
	}
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.MinColumnCapacity < 0 {
		c.MinColumnCapacity = 0
	}
	if c.ShrinkRatio < 0 || c.ShrinkRatio >= 1 {
		c.ShrinkRatio = 0
	}
	return c
}
