package game

import "github.com/beka-birhanu/pulse-maze/maze"

// EventKind discriminates the abstract feedback events the core hands to its
// presentation collaborator. The core never renders, plays, or vibrates
// anything itself; a collaborator turns these into visuals or haptics.
type EventKind uint8

const (
	// EventChargeBegin fires when a guidance activation starts holding.
	EventChargeBegin EventKind = iota

	// EventChargeRelease fires when the charge duration elapsed
	// uninterrupted and pulsing is about to start.
	EventChargeRelease

	// EventPulse is one guidance pulse. The pulse count, not the cadence,
	// encodes the agent-to-goal distance.
	EventPulse

	// EventArrivalFlash is one of the two fixed events closing every
	// completed guidance sequence.
	EventArrivalFlash

	// EventCancelled reports that a guidance sequence was deactivated
	// before finishing, so the collaborator can tear down rendering.
	EventCancelled

	// EventGoalCollected fires when a successful move lands the agent on
	// the goal cell.
	EventGoalCollected
)

var eventKindNames = [...]string{
	"ChargeBegin",
	"ChargeRelease",
	"Pulse",
	"ArrivalFlash",
	"Cancelled",
	"GoalCollected",
}

// String returns the event kind's name.
func (k EventKind) String() string {
	if int(k) >= len(eventKindNames) {
		return "Unknown"
	}
	return eventKindNames[k]
}

// Event is a single emission of the core's event stream.
type Event struct {
	Kind EventKind

	// PulseIndex is the zero-based position of an EventPulse within its
	// sequence. Zero for every other kind.
	PulseIndex int

	// Pos carries the agent position for EventGoalCollected. Zero value
	// for every other kind.
	Pos maze.CellPosition
}

// EventSink receives events as they fire. Implementations must not block;
// the sequencer emits from its scheduling goroutine.
type EventSink func(Event)
