// internal/sim/simulator.go

package sim

import (
	"encoding/csv"
	"os"
	"strconv"

	"prsim/internal/prqueue"
)

// Entry is one timeline record: the task dispatched at a simulated time unit.
type Entry struct {
	Time int64
	Task *prqueue.Task
}

// Timeline is the ordered output of a simulation run. It is append-only
// while the run builds it and never mutated afterwards.
type Timeline []Entry

// Simulator drives simulated time forward over a task set: arrived tasks are
// admitted into a priority queue, the best resident task is dispatched each
// time unit, and idle gaps are skipped rather than ticked through.
//
// All run state (clock, pending set, queue) is local to Run, so one
// Simulator can execute independent runs back to back.
type Simulator struct {
	mode prqueue.OrderMode
	hook func(Event)

	// trace-related
	csvFile   *os.File
	csvWriter *csv.Writer
}

// New creates a Simulator dispatching in the given ordering mode.
func New(mode prqueue.OrderMode) *Simulator {
	return &Simulator{mode: mode}
}

// SetEventHook registers a callback invoked for every trace event. Must be
// called before Run. The hook observes the run; it must not mutate tasks.
func (s *Simulator) SetEventHook(hook func(Event)) {
	s.hook = hook
}

// EnableCSVTrace opens the given file path for CSV logging of trace events.
// Must be called before Run().
func (s *Simulator) EnableCSVTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"clock", "event", "task_id", "priority"})
	w.Flush()
	s.csvFile = f
	s.csvWriter = w
	return nil
}

// Close flushes and closes the CSV trace, if one was enabled.
func (s *Simulator) Close() error {
	if s.csvFile == nil {
		return nil
	}
	s.csvWriter.Flush()
	err := s.csvFile.Close()
	s.csvFile = nil
	s.csvWriter = nil
	return err
}

// Run executes the simulation over the given task set and returns the
// timeline. The input slice is not reordered; tasks sharing an arrival time
// are admitted in input order. The only failure mode on well-formed input is
// a duplicate task id, surfaced from the queue.
func (s *Simulator) Run(tasks []*prqueue.Task) (Timeline, error) {
	pending := newArrivalSchedule(tasks)
	queue := prqueue.New(s.mode)
	timeline := make(Timeline, 0, len(tasks))
	var clock int64

	for !pending.empty() || !queue.IsEmpty() {
		// Admit everything due at or before the current clock, so that a
		// batch sharing one arrival competes on priority from the start.
		for {
			t, ok := pending.popArrived(clock)
			if !ok {
				break
			}
			if err := queue.Insert(t); err != nil {
				return nil, err
			}
			s.trace(Event{Clock: clock, Kind: EventAdmit, TaskID: t.ID, Priority: t.Priority})
		}

		// Idle gap: jump the clock to the next arrival, no timeline entries
		// for the skipped units.
		if queue.IsEmpty() {
			next, ok := pending.nextArrival()
			if !ok {
				break
			}
			clock = next
			s.trace(Event{Clock: clock, Kind: EventFastForward})
			continue
		}

		t, err := queue.ExtractTop()
		if err != nil {
			return nil, err
		}
		timeline = append(timeline, Entry{Time: clock, Task: t})
		s.trace(Event{Clock: clock, Kind: EventDispatch, TaskID: t.ID, Priority: t.Priority})
		clock++
	}

	if s.csvWriter != nil {
		s.csvWriter.Flush()
	}
	return timeline, nil
}

func (s *Simulator) trace(ev Event) {
	if s.hook != nil {
		s.hook(ev)
	}

	// CSV output
	if s.csvWriter != nil {
		rec := []string{
			strconv.FormatInt(ev.Clock, 10),
			ev.Kind.String(),
			string(ev.TaskID),
			strconv.Itoa(ev.Priority),
		}
		s.csvWriter.Write(rec)
		s.csvWriter.Flush()
	}
}

// Simulate runs a one-shot simulation without tracing. It is the plain
// entry point for callers that only want the timeline.
func Simulate(tasks []*prqueue.Task, mode prqueue.OrderMode) (Timeline, error) {
	return New(mode).Run(tasks)
}
