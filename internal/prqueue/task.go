package prqueue

// TaskID uniquely identifies a task. IDs are caller-supplied, stable, and
// must not be reused while the task is resident in a queue.
type TaskID string

// Task represents one unit of schedulable work.
//
// Ordering inside a queue is by Priority only. ID is the lookup key;
// Arrival gates admission in the simulation; Deadline and Payload are
// carried through untouched.
type Task struct {
	ID       TaskID
	Priority int
	Arrival  int64 // zero means eligible immediately
	Deadline int64 // zero means none; metadata only, never enforced
	Payload  any
}

// NewTask creates a task with the given id and priority. Arrival, Deadline
// and Payload default to their zero values and may be set on the returned
// task before it is inserted anywhere.
func NewTask(id TaskID, priority int) *Task {
	return &Task{
		ID:       id,
		Priority: priority,
	}
}
