// Package profiler records how long the stages of a run take.
package profiler

import (
	"time"

	"go.uber.org/zap"
)

// Stage is the timing of one completed operation.
type Stage struct {
	// Name identifies the operation, e.g. "load" or "save".
	Name string `json:"name" yaml:"name"`
	// Duration is the wall time the operation took.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Profiler collects stage timings in completion order. It is not safe for
// concurrent use.
type Profiler struct {
	now    func() time.Time
	stages []Stage
}

// New creates an empty Profiler.
func New() *Profiler {
	return &Profiler{now: time.Now}
}

// StartOperation begins timing an operation.
//
// Arguments:
//   - name: The name of the operation to track.
//
// Returns:
//   - func(): Records the operation when called. Only the first call counts.
//
// @example
//
//	p := profiler.New()
//	done := p.StartOperation("load")
//	img, err := load(path)
//	done()
func (p *Profiler) StartOperation(name string) func() {
	start := p.now()
	recorded := false
	return func() {
		if recorded {
			return
		}
		recorded = true
		p.stages = append(p.stages, Stage{Name: name, Duration: p.now().Sub(start)})
	}
}

// Stages returns a copy of the recorded stages.
func (p *Profiler) Stages() []Stage {
	return append([]Stage(nil), p.stages...)
}

// Total returns the sum of all recorded stage durations.
func (p *Profiler) Total() time.Duration {
	var total time.Duration
	for _, s := range p.stages {
		total += s.Duration
	}
	return total
}

// Fields renders the stages as zap fields, one duration per stage plus the
// total.
func (p *Profiler) Fields() []zap.Field {
	fields := make([]zap.Field, 0, len(p.stages)+1)
	for _, s := range p.stages {
		fields = append(fields, zap.Duration(s.Name, s.Duration))
	}
	return append(fields, zap.Duration("total", p.Total()))
}
