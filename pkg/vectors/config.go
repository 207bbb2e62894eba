package vectors

import "time"

// Config controls how a Harness runs vectors.
type Config struct {
	// Workers controls parallelization (0 = auto-detect)
	Workers int

	// FailFast stops at the first failing vector
	FailFast bool

	// CrossCheck also validates results with filippo.io/edwards25519
	CrossCheck bool

	// ProgressInterval is how often progress is logged (0 = never)
	ProgressInterval time.Duration
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Workers:          0, // Auto-detect
		FailFast:         false,
		CrossCheck:       false,
		ProgressInterval: 5 * time.Second,
	}
}

// WithWorkers returns a copy of c using n workers.
func (c Config) WithWorkers(n int) Config {
	c.Workers = n
	return c
}

// WithFailFast returns a copy of c with FailFast set.
func (c Config) WithFailFast(v bool) Config {
	c.FailFast = v
	return c
}

// WithCrossCheck returns a copy of c with CrossCheck set.
func (c Config) WithCrossCheck(v bool) Config {
	c.CrossCheck = v
	return c
}
