package intern

import "log/slog"

type options struct {
	hasher           HasherBuilder
	capacity         int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Interner at construction. Options are fixed for the
// interner's lifetime.
type Option func(*options)

// WithHasher configures the hashing strategy.
//
// If nil is passed, the default strategy (SeededHasher) is used. In builds
// tagged intern_embedded there is no default and this option is required.
//
// Example with the faster, deterministic xxhash strategy:
//
//	in, _ := intern.New[string, uint32](intern.Strings[string](), intern.WithHasher(intern.XXHasher()))
func WithHasher(b HasherBuilder) Option {
	return func(o *options) {
		o.hasher = b
	}
}

// WithCapacity preallocates room for n values.
//
// Useful when the number of unique values is known in advance to avoid
// repeated growth of the backing storage.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &intern.BasicMetricsCollector{}
//	in, _ := intern.New[string, uint32](intern.Strings[string](), intern.WithMetricsCollector(metrics))
//	// ... use in ...
//	stats := metrics.GetStats()
//	fmt.Printf("Hits: %d, Hit ratio: %.2f\n", stats.InternHits, stats.HitRatio)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := intern.NewJSONLogger(slog.LevelDebug)
//	in, _ := intern.New[string, uint32](intern.Strings[string](), intern.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
