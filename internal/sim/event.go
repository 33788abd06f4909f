package sim

import "prsim/internal/prqueue"

// EventKind classifies simulator trace events.
type EventKind int

const (
	EventAdmit EventKind = iota
	EventDispatch
	EventFastForward
)

// Event records one state change during a simulation run. FastForward events
// carry no task; Clock is the value the clock jumped to.
type Event struct {
	Clock    int64
	Kind     EventKind
	TaskID   prqueue.TaskID
	Priority int
}

func (k EventKind) String() string {
	switch k {
	case EventAdmit:
		return "Admit"
	case EventDispatch:
		return "Dispatch"
	case EventFastForward:
		return "FastForward"
	default:
		return "Unknown"
	}
}
