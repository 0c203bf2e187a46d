// Package supervisor tracks which implementation variant backs each pipeline
// stage. A missing optional component downgrades the run to a legacy code
// path; both paths honor the same stage contracts, so degradation is reported
// but never raised.
package supervisor

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Mode is the supervisor's health state
type Mode string

const (
	ModeOptimal  Mode = "optimal"
	ModeDegraded Mode = "degraded"
	ModeFailed   Mode = "failed" // strict mode only
)

// Reason classifies why a component fell back
type Reason string

const (
	ReasonComponentMissing Reason = "component_missing"
	ReasonVersionMismatch  Reason = "version_mismatch"
	ReasonExplicitOverride Reason = "explicit_override"
)

// Event is one recorded mode transition
type Event struct {
	At        time.Time `json:"at"`
	From      Mode      `json:"from"`
	To        Mode      `json:"to"`
	Component string    `json:"component"`
	Reason    Reason    `json:"reason"`
}

// Metrics is the external reporting snapshot
type Metrics struct {
	Mode                Mode           `json:"mode"`
	FallbackCount       int            `json:"fallback_count"`
	FallbackByComponent map[string]int `json:"fallback_by_component"`
	DegradedSeconds     float64        `json:"degraded_seconds"`
	Reasons             []string       `json:"reasons,omitempty"`
}

// Supervisor records fallbacks and exposes degradation metrics. The event log
// is append-only and safe for concurrent writers.
type Supervisor struct {
	mu            sync.Mutex
	mode          Mode
	strict        bool
	events        []Event
	fallbacks     map[string]int
	reasons       []string
	degradedSince time.Time
	degradedTotal time.Duration
	now           func() time.Time
}

// New creates an Optimal supervisor. With strict set, the first fallback
// fails the run instead of degrading it.
func New(strict bool) *Supervisor {
	return &Supervisor{
		mode:      ModeOptimal,
		strict:    strict,
		fallbacks: map[string]int{},
		now:       time.Now,
	}
}

// RecordFallback notes that a component routed to its legacy implementation.
// Returns an error only in strict mode, where degradation is fatal.
func (s *Supervisor) RecordFallback(component string, reason Reason) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target := ModeDegraded
	if s.strict {
		target = ModeFailed
	}
	s.transition(target, component, reason)
	s.fallbacks[component]++
	s.reasons = append(s.reasons, fmt.Sprintf("%s: %s", component, reason))
	log.Printf("[supervisor] ⚠️  %s fell back to legacy implementation (%s)", component, reason)

	if s.strict {
		return fmt.Errorf("strict mode: %s unavailable (%s)", component, reason)
	}
	return nil
}

func (s *Supervisor) transition(to Mode, component string, reason Reason) {
	if s.mode == to {
		// repeat fallbacks still count, but only real transitions log events
		return
	}
	now := s.now()
	s.events = append(s.events, Event{
		At:        now,
		From:      s.mode,
		To:        to,
		Component: component,
		Reason:    reason,
	})
	if to == ModeDegraded || to == ModeFailed {
		s.degradedSince = now
	} else if !s.degradedSince.IsZero() {
		s.degradedTotal += now.Sub(s.degradedSince)
		s.degradedSince = time.Time{}
	}
	s.mode = to
}

// Mode returns the current health state
func (s *Supervisor) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Metrics snapshots fallback counters and total degraded time
func (s *Supervisor) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	degraded := s.degradedTotal
	if !s.degradedSince.IsZero() {
		degraded += s.now().Sub(s.degradedSince)
	}
	byComponent := make(map[string]int, len(s.fallbacks))
	total := 0
	for c, n := range s.fallbacks {
		byComponent[c] = n
		total += n
	}
	return Metrics{
		Mode:                s.mode,
		FallbackCount:       total,
		FallbackByComponent: byComponent,
		DegradedSeconds:     degraded.Seconds(),
		Reasons:             append([]string(nil), s.reasons...),
	}
}

// Events returns a copy of the transition log
func (s *Supervisor) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}
