package passage

import "log/slog"

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Locator construction.
//
// The matching tiers themselves take no options: their thresholds are
// fixed constants of the algorithm, and loosening them would change
// which passages existing chapters resolve to.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// locate calls. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &passage.BasicMetricsCollector{}
//	loc := passage.New(passage.WithMetricsCollector(metrics))
//	// ... use loc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Locates: %d, Avg latency: %dns\n", stats.LocateCount, stats.LocateAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for locate calls.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := passage.NewJSONLogger(slog.LevelInfo)
//	loc := passage.New(passage.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
