package regalloc

// Config controls the register pool and stack capacity Allocate works
// within.
type Config struct {
	// NumRegisters is the total SIMD scalar register count, including
	// the one reserved as scratch. Default 16.
	NumRegisters int

	// NumStackSlots caps how many spilled values may be simultaneously
	// live. 0 means unbounded (the stack grows on demand).
	NumStackSlots int
}

// Option customizes Allocate's Config.
type Option func(*Config)

func defaultConfig() Config {
	return Config{NumRegisters: 16, NumStackSlots: 0}
}

// WithRegisters sets the total register count (including the reserved
// scratch register). Must be at least 2.
func WithRegisters(n int) Option {
	return func(c *Config) { c.NumRegisters = n }
}

// WithStackCapacity caps the number of simultaneously spilled values.
// Exceeding it surfaces ErrStackOverflow rather than growing forever.
func WithStackCapacity(n int) Option {
	return func(c *Config) { c.NumStackSlots = n }
}
