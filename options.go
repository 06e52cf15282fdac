package indexheap

import (
	"log/slog"

	"golang.org/x/time/rate"
)

type options struct {
	initCount        int
	countMax         int
	minNum           uint64
	alphaN           uint64
	logAlphaD        uint
	metricsCollector MetricsCollector
	logger           *Logger
	growLimiter      *rate.Limiter
	index            Index
}

// Option configures a Heap constructor.
//
// Breaking changes are expected while indexheap is pre-release.
type Option func(*options)

// WithInitCount sets the heap array's initial capacity. Must be positive;
// if not set, it defaults to 8.
func WithInitCount(initCount int) Option {
	return func(o *options) {
		o.initCount = initCount
	}
}

// WithCountMax sets the hard cap on the number of slots the heap array may
// grow to. Pushing beyond it returns a *CapacityError and poisons the heap.
// If not set, count_max defaults to the largest representable int.
func WithCountMax(countMax int) Option {
	return func(o *options) {
		o.countMax = countMax
	}
}

// WithMinNum configures the side-index's pre-sizing: an expected
// steady-state key count, so that the table starts large enough to avoid
// rehashing until min_num keys are present.
func WithMinNum(minNum uint64) Option {
	return func(o *options) {
		o.minNum = minNum
	}
}

// WithLoadFactor sets the side-index's load-factor upper bound
// alpha = alphaN / 2^logAlphaD, evaluated without floating point.
// The default is alphaN=3, logAlphaD=1 (alpha = 1.5).
func WithLoadFactor(alphaN uint64, logAlphaD uint) Option {
	return func(o *options) {
		o.alphaN = alphaN
		o.logAlphaD = logAlphaD
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for push/pop/update/grow/rehash
// events. Pass nil to disable logging.
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

// WithGrowthRateLimit throttles how often grow/rehash events are logged
// under pathological grow-heavy workloads. It never throttles growth
// itself, only the corresponding log emission.
func WithGrowthRateLimit(eventsPerSecond float64) Option {
	return func(o *options) {
		o.growLimiter = rate.NewLimiter(rate.Limit(eventsPerSecond), 1)
	}
}

// WithIndex swaps the heap's side-index implementation for any type
// satisfying Index, instead of the default chained hash table. This is
// the capability-bundle escape hatch described in spec §6 and §9:
// "the heap does not name a concrete hash table."
func WithIndex(idx Index) Option {
	return func(o *options) {
		o.index = idx
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		initCount:        8,
		countMax:         int(^uint(0) >> 1),
		alphaN:           3,
		logAlphaD:        1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	// WithMetricsCollector(nil) and WithLogger(nil) are documented as
	// "disable collection/logging", not "leave the field nil" — every
	// call site invokes these unconditionally, so re-normalize here.
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
