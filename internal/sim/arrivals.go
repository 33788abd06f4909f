package sim

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"prsim/internal/prqueue"
)

// arrivalKey orders pending tasks by arrival time, breaking ties by the
// order the tasks were handed to the simulator so admission is reproducible.
type arrivalKey struct {
	arrival int64
	seq     int
}

func arrivalCmp(a, b any) int {
	ka, kb := a.(arrivalKey), b.(arrivalKey)
	switch {
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// arrivalSchedule holds the tasks not yet admitted, ordered by arrival time.
type arrivalSchedule struct {
	rbt *redblacktree.Tree
}

func newArrivalSchedule(tasks []*prqueue.Task) *arrivalSchedule {
	s := &arrivalSchedule{rbt: redblacktree.NewWith(arrivalCmp)}
	for i, t := range tasks {
		s.rbt.Put(arrivalKey{arrival: t.Arrival, seq: i}, t)
	}
	return s
}

func (s *arrivalSchedule) empty() bool { return s.rbt.Empty() }

// nextArrival returns the earliest pending arrival time, if any task is
// still pending.
func (s *arrivalSchedule) nextArrival() (int64, bool) {
	node := s.rbt.Left()
	if node == nil {
		return 0, false
	}
	return node.Key.(arrivalKey).arrival, true
}

// popArrived removes and returns the next pending task when its arrival time
// is at or before clock.
func (s *arrivalSchedule) popArrived(clock int64) (*prqueue.Task, bool) {
	node := s.rbt.Left()
	if node == nil {
		return nil, false
	}
	key := node.Key.(arrivalKey)
	if key.arrival > clock {
		return nil, false
	}
	s.rbt.Remove(key)
	return node.Value.(*prqueue.Task), true
}
