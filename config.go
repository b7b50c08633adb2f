package kdtree

// Config controls tree construction.
// Start with [DefaultConfig] and override the fields you need.
type Config[T any] struct {
	// Dimension is the number of coordinates in every point. It is fixed for
	// the lifetime of the tree. Must be >= 1.
	Dimension int

	// Destructor, if set, is called once per stored payload (duplicates
	// included) when the tree is cleared or destroyed. Default: nil.
	Destructor func(T)

	// Logger receives structured operation logs. Default: NoopLogger().
	Logger *Logger

	// Metrics receives per-operation timings and counts.
	// Default: NoopMetricsCollector{}.
	Metrics MetricsCollector
}

// DefaultConfig returns a Config for a tree of the given dimension with
// logging and metrics disabled.
func DefaultConfig[T any](dim int) Config[T] {
	return Config[T]{
		Dimension: dim,
		Logger:    NoopLogger(),
		Metrics:   NoopMetricsCollector{},
	}
}

// validateConfig checks cfg and fills in nil collaborators.
func validateConfig[T any](cfg *Config[T]) error {
	if cfg.Dimension < 1 {
		return &ErrInvalidDimension{Dimension: cfg.Dimension}
	}
	if cfg.Logger == nil {
		cfg.Logger = NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = NoopMetricsCollector{}
	}
	return nil
}
