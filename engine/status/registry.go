package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric names written by the runtime and effects
const (
	MetricFrames        = "runtime.frames"
	MetricFrameCalls    = "runtime.frame_calls"
	MetricTimersFired   = "runtime.timers_fired"
	MetricPosted        = "runtime.posted"
	MetricActiveEffects = "effects.active"
	MetricFPS           = "runtime.fps"
)

// Registry is the central metrics facade
// Components cache pointers during construction; frame callbacks write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Summary renders integer and float metrics as a single HUD line
func (r *Registry) Summary() string {
	var sb strings.Builder
	for _, k := range r.Ints.Keys() {
		if sb.Len() > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%s=%d", k, r.Ints.Get(k).Load())
	}
	for _, k := range r.Floats.Keys() {
		if sb.Len() > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%s=%.1f", k, r.Floats.Get(k).Load())
	}
	return sb.String()
}
