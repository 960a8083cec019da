package otel

import (
	"os"
	"sync/atomic"
)

// traceEnabled gates per-keystroke events, which are noisy.
var traceEnabled atomic.Bool

func init() {
	traceEnabled.Store(os.Getenv("TAGSIFT_TRACE") != "")
}

// TraceEnabled reports whether TAGSIFT_TRACE is set.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// setTraceEnabled overrides the flag for tests.
func setTraceEnabled(v bool) {
	traceEnabled.Store(v)
}
