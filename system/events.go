package system

import "github.com/milk9111/momentum/component"

// EventKind identifies an inbound collaborator or input event.
type EventKind int

const (
	EventGroundEnter EventKind = iota
	EventGroundExit
	EventWallStay
	EventWallExit
	EventDeathPlane

	EventHazardImpact
	EventCrystalConsumed
	EventCrystalTouched
	EventGroundPunched
	EventMonkeyBar
	EventMushroom
	EventJump
	EventDash
	EventPunch
)

var eventNames = [...]string{
	EventGroundEnter:     "ground_enter",
	EventGroundExit:      "ground_exit",
	EventWallStay:        "wall_stay",
	EventWallExit:        "wall_exit",
	EventDeathPlane:      "death_plane",
	EventHazardImpact:    "hazard_impact",
	EventCrystalConsumed: "crystal_consumed",
	EventCrystalTouched:  "crystal_touched",
	EventGroundPunched:   "ground_punched",
	EventMonkeyBar:       "monkey_bar",
	EventMushroom:        "mushroom",
	EventJump:            "jump",
	EventDash:            "dash",
	EventPunch:           "punch",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[k]
}

// Contact reports whether the event belongs to the contact phase.
func (k EventKind) Contact() bool {
	return k <= EventDeathPlane
}

// Event is a queued inbound event. Resource and Airborne are only meaningful
// for crystal events.
type Event struct {
	Kind     EventKind
	Resource component.ResourceKind
	Airborne bool
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
