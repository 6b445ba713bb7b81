// Package profiler records how long the stages of batch work take.
package profiler

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TimeTracker tracks operation timing statistics.
type TimeTracker struct {
	Name      string
	Count     int64
	TotalTime time.Duration
	MinTime   time.Duration
	MaxTime   time.Duration
}

// Average is the mean duration, or zero before the first sample.
func (t TimeTracker) Average() time.Duration {
	if t.Count == 0 {
		return 0
	}
	return t.TotalTime / time.Duration(t.Count)
}

// Timings collects TimeTrackers keyed by operation name. It is safe for
// concurrent use by workers.
type Timings struct {
	mu        sync.Mutex
	startTime time.Time
	ops       map[string]*TimeTracker
}

// NewTimings returns an empty collection whose uptime starts now.
func NewTimings() *Timings {
	return &Timings{startTime: time.Now(), ops: make(map[string]*TimeTracker)}
}

// StartOperation begins timing an operation.
//
// Arguments:
// - name: The name of the operation to track
//
// Returns:
// - A function to call when the operation completes
func (p *Timings) StartOperation(name string) func() {
	start := time.Now()
	return func() {
		p.Record(name, time.Since(start))
	}
}

// Record adds one sample for name.
func (p *Timings) Record(name string, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tracker, exists := p.ops[name]
	if !exists {
		tracker = &TimeTracker{Name: name, MinTime: d, MaxTime: d}
		p.ops[name] = tracker
	}
	tracker.Count++
	tracker.TotalTime += d
	if d < tracker.MinTime {
		tracker.MinTime = d
	}
	if d > tracker.MaxTime {
		tracker.MaxTime = d
	}
}

// Snapshot returns a copy of every tracker ordered by name.
func (p *Timings) Snapshot() []TimeTracker {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]TimeTracker, 0, len(p.ops))
	for _, t := range p.ops {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Report logs one debug line per operation.
func (p *Timings) Report(logger *zap.SugaredLogger) {
	logger.Debugw("timings", "uptime", time.Since(p.startTime).Truncate(time.Millisecond))
	for _, t := range p.Snapshot() {
		logger.Debugw("operation",
			"name", t.Name,
			"count", t.Count,
			"avg", t.Average().Truncate(time.Microsecond),
			"min", t.MinTime.Truncate(time.Microsecond),
			"max", t.MaxTime.Truncate(time.Microsecond),
		)
	}
}
