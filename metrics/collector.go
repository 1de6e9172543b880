// Package metrics records how each agent decision went: how long it took, how
// much of its deadline it used, and how many candidates it weighed.
package metrics

import (
	"context"
	"time"
)

// Kind names the decision entry point that was called.
type Kind string

const (
	Heuristic   Kind = "heuristic"
	Local       Kind = "local"
	Belief      Kind = "belief"
	Adversarial Kind = "adversarial"
)

type Decision struct {
	Kind       Kind
	StartTime  time.Time
	Duration   time.Duration
	Deadline   time.Time     // Zero if the call had no deadline
	Slack      time.Duration // Time left before the deadline on return, negative on overrun
	Candidates int
	Overrun    bool
	Err        error
}

// Collector gathers metrics for one decision at a time. Calls are sequential:
// an agent is never asked for two decisions at once.
type Collector interface {
	Start(kind Kind, deadline time.Time)
	AddCandidates(n int)
	Complete(err error) Decision
}

type collector struct {
	kind       Kind
	startTime  time.Time
	deadline   time.Time
	candidates int
	now        func() time.Time
}

func NewCollector() Collector {
	return &collector{now: time.Now}
}

func (m *collector) Start(kind Kind, deadline time.Time) {
	m.kind = kind
	m.startTime = m.now()
	m.deadline = deadline
	m.candidates = 0
}

func (m *collector) AddCandidates(n int) {
	m.candidates += n
}

func (m *collector) Complete(err error) Decision {
	end := m.now()
	d := Decision{
		Kind:       m.kind,
		StartTime:  m.startTime,
		Duration:   end.Sub(m.startTime),
		Deadline:   m.deadline,
		Candidates: m.candidates,
		Err:        err,
	}
	if !m.deadline.IsZero() {
		d.Slack = m.deadline.Sub(end)
		d.Overrun = d.Slack < 0
	}
	return d
}

type dummyCollector struct{}

func (dummyCollector) Start(kind Kind, deadline time.Time) {}
func (dummyCollector) AddCandidates(n int)                  {}
func (dummyCollector) Complete(err error) Decision          { return Decision{} }

type collectorKey struct{}

// WithCollector attaches a collector to the context handed to a strategy.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey{}, c)
}

// FromContext returns the collector attached to ctx, or a collector that
// discards everything.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey{}).(Collector); ok {
		return c
	}
	return dummyCollector{}
}
