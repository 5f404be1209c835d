package breadth

import (
	"log/slog"
	"runtime"
)

// defaultParallelThreshold is the block count below which Calculate stays on
// the calling goroutine.
const defaultParallelThreshold = 64

type options struct {
	logger            *slog.Logger
	workers           int
	parallelThreshold int
	acceleration      bool
}

func defaultOptions() options {
	return options{
		logger:            slog.New(slog.DiscardHandler),
		workers:           runtime.GOMAXPROCS(0),
		parallelThreshold: defaultParallelThreshold,
	}
}

// Option configures a Store at construction.
type Option func(*options)

// WithWorkers bounds the number of goroutines Calculate fans out to.
// Values below 1 select runtime.GOMAXPROCS(0); 1 disables fan-out.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum block count at which Calculate
// splits work across goroutines. Smaller stores integrate sequentially.
func WithParallelThreshold(blocks int) Option {
	return func(o *options) {
		o.parallelThreshold = max(blocks, 1)
	}
}

// WithAcceleration makes Calculate apply acceleration to velocity before
// advancing the spatial attribute (semi-implicit Euler). It is off by
// default: acceleration is stored but does not move anything.
func WithAcceleration(enabled bool) Option {
	return func(o *options) {
		o.acceleration = enabled
	}
}

// WithLogger sets the structured logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
