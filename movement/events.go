package movement

import "fmt"

// EventKind names a one-shot signal raised during a tick.
type EventKind int

const (
	DashStart EventKind = iota + 1
	DashOver
	SpringLaunch
	CameraShake
)

func (k EventKind) String() string {
	switch k {
	case DashStart:
		return "DashStart"
	case DashOver:
		return "DashOver"
	case SpringLaunch:
		return "SpringLaunch"
	case CameraShake:
		return "CameraShake"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a signal plus the collider that caused it, if any.
type Event struct {
	Kind   EventKind
	Source any
}

type queued struct {
	Event
	read bool
}

// Queue holds the events of a single tick. Every event is expected to be
// read by at least one reader before Drain; Drain reports the ones that
// were not.
type Queue struct {
	items []queued
}

// Emit raises an event for the current tick.
func (q *Queue) Emit(kind EventKind, source any) {
	q.items = append(q.items, queued{Event: Event{Kind: kind, Source: source}})
}

// Read reports whether an event of the given kind is pending and marks all
// of them read. Several readers may read the same kind in one tick.
func (q *Queue) Read(kind EventKind) bool {
	found := false
	for i := range q.items {
		if q.items[i].Kind == kind {
			q.items[i].read = true
			found = true
		}
	}
	return found
}

// Events returns a copy of everything raised this tick, read or not.
func (q *Queue) Events() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := make([]Event, len(q.items))
	for i, it := range q.items {
		out[i] = it.Event
	}
	return out
}

// Drain empties the queue and returns the events nobody read.
func (q *Queue) Drain() []Event {
	var unread []Event
	for _, it := range q.items {
		if !it.read {
			unread = append(unread, it.Event)
		}
	}
	q.items = q.items[:0]
	return unread
}
