package game

import (
	"context"
	"sync"
	"time"
)

// Timings holds the delay constants driving the guidance sequence. Values
// come from session configuration; the core keeps no global settings.
type Timings struct {
	Charge      time.Duration // uninterrupted hold before the release
	PulseBase   time.Duration // delay before the first pulse
	PulseGrowth float64       // geometric factor applied to each following gap
	Settle      time.Duration // gap between the two arrival flashes
}

// DefaultTimings returns the design-default guidance cadence.
func DefaultTimings() Timings {
	return Timings{
		Charge:      1500 * time.Millisecond,
		PulseBase:   150 * time.Millisecond,
		PulseGrowth: 1.15,
		Settle:      120 * time.Millisecond,
	}
}

// phase is the guidance state machine position.
type phase uint8

const (
	phaseIdle phase = iota
	phaseCharging
	phasePulsing
	phaseSettling
)

// Sequencer drives the escalating guidance feedback: one charge, then as
// many pulses as the agent is passages away from the goal with geometrically
// growing gaps, then two closing arrival flashes. The pulse count, not the
// pulse rate, is the distance signal.
//
// A running sequence is a single goroutine whose waits select against a
// cancellation context, so deactivation is observed before the next
// scheduled event fires. All events are emitted from that goroutine, which
// is what guarantees their ordering and the single Cancelled emission.
type Sequencer struct {
	timings Timings
	emit    EventSink

	// distance yields the current agent-to-goal graph distance at charge
	// release time. It reports zero when no goal is placed; guidance then
	// degenerates to the arrival flourish alone.
	distance func() int

	mu     sync.Mutex
	state  phase
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSequencer builds an idle sequencer. distance and sink must be non-nil.
func NewSequencer(t Timings, distance func() int, sink EventSink) *Sequencer {
	return &Sequencer{
		timings:  t,
		emit:     sink,
		distance: distance,
	}
}

// Activate starts a fresh guidance sequence from Idle. Activation while a
// sequence is already running is ignored; the running sequence continues.
func (s *Sequencer) Activate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != phaseIdle {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.state = phaseCharging
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
}

// Deactivate halts a running sequence immediately. It returns only after
// the sequence goroutine has stopped, so no scheduled event fires afterwards
// and an immediate re-activation starts a fresh charge. Deactivating an
// idle sequencer is a no-op.
func (s *Sequencer) Deactivate() {
	s.mu.Lock()
	if s.state == phaseIdle {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
}

// run plays one full sequence. It is the only emitter of events.
func (s *Sequencer) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer s.toIdle()

	s.emit(Event{Kind: EventChargeBegin})
	if !s.wait(ctx, s.timings.Charge) {
		s.emit(Event{Kind: EventCancelled})
		return
	}

	n := s.distance()
	s.setState(phasePulsing)
	s.emit(Event{Kind: EventChargeRelease})

	gap := s.timings.PulseBase
	for i := 0; i < n; i++ {
		if !s.wait(ctx, gap) {
			s.emit(Event{Kind: EventCancelled})
			return
		}
		s.emit(Event{Kind: EventPulse, PulseIndex: i})
		gap = time.Duration(float64(gap) * s.timings.PulseGrowth)
	}

	s.setState(phaseSettling)
	s.emit(Event{Kind: EventArrivalFlash})
	if !s.wait(ctx, s.timings.Settle) {
		s.emit(Event{Kind: EventCancelled})
		return
	}
	s.emit(Event{Kind: EventArrivalFlash})
}

// wait blocks for d or until cancellation, reporting false when cancelled.
// A timer firing in the same instant as the cancellation still counts as
// cancelled, so no event slips through after Deactivate.
func (s *Sequencer) wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return ctx.Err() == nil
	}
}

func (s *Sequencer) setState(p phase) {
	s.mu.Lock()
	s.state = p
	s.mu.Unlock()
}

// toIdle resets the machine after a run, whether it finished or was
// cancelled, and releases the run's context.
func (s *Sequencer) toIdle() {
	s.mu.Lock()
	s.state = phaseIdle
	s.cancel()
	s.mu.Unlock()
}
