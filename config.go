package relay

import "log/slog"

// Config holds engine configuration options.
type Config struct {
	// RecoverFromPanic wraps every chain invocation in panic recovery,
	// converting a panic into a *PanicError result instead of unwinding.
	RecoverFromPanic bool

	// EnableMetrics enables dispatch counting and timing collection.
	EnableMetrics bool

	// Logger receives structured dispatch logs. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns a configuration with sensible defaults: panic
// recovery on, metrics off, logging discarded.
func DefaultConfig() Config {
	return Config{
		RecoverFromPanic: true,
	}
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithLogger returns a copy of the config with the logger set.
func (c Config) WithLogger(l *slog.Logger) Config {
	c.Logger = l
	return c
}
