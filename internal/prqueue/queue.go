package prqueue

import "fmt"

// OrderMode selects which end of the priority scale wins.
type OrderMode int

const (
	// ModeMax dispatches the highest priority value first.
	ModeMax OrderMode = iota
	// ModeMin dispatches the lowest priority value first.
	ModeMin
)

func (m OrderMode) String() string {
	switch m {
	case ModeMax:
		return "max"
	case ModeMin:
		return "min"
	default:
		return "unknown"
	}
}

// ParseOrderMode maps "max"/"min" to an OrderMode. Anything else falls back
// to ModeMax, the second return reporting whether the input was recognised.
func ParseOrderMode(s string) (OrderMode, bool) {
	switch s {
	case "max":
		return ModeMax, true
	case "min":
		return ModeMin, true
	default:
		return ModeMax, false
	}
}

// PriorityQueue is a binary heap of tasks ordered by priority, with O(1)
// lookup of a resident task's heap slot by id. Insert, ExtractTop and
// UpdatePriority are O(log n).
//
// The queue is not safe for concurrent use; callers that share one across
// goroutines must serialise access with their own mutex.
type PriorityQueue struct {
	mode     OrderMode
	heap     []*Task
	position map[TaskID]int
}

// New creates an empty queue with the given ordering mode. The mode is fixed
// for the lifetime of the queue.
func New(mode OrderMode) *PriorityQueue {
	return &PriorityQueue{
		mode:     mode,
		heap:     make([]*Task, 0),
		position: make(map[TaskID]int),
	}
}

// Mode reports the ordering mode the queue was built with.
func (pq *PriorityQueue) Mode() OrderMode { return pq.mode }

// key returns the effective comparison key: priority as-is under max mode,
// negated under min mode so the same sift logic serves both.
func (pq *PriorityQueue) key(t *Task) int {
	if pq.mode == ModeMax {
		return t.Priority
	}
	return -t.Priority
}

// swap exchanges two heap slots and keeps the position map in step. The two
// structures must move together on every swap or UpdatePriority silently
// targets the wrong slot.
func (pq *PriorityQueue) swap(i, j int) {
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
	pq.position[pq.heap[i].ID] = i
	pq.position[pq.heap[j].ID] = j
}

// siftUp moves the element at idx toward the root until its parent's
// effective key is at least its own.
func (pq *PriorityQueue) siftUp(idx int) {
	for idx > 0 {
		parent := (idx - 1) / 2
		if pq.key(pq.heap[parent]) >= pq.key(pq.heap[idx]) {
			break
		}
		pq.swap(parent, idx)
		idx = parent
	}
}

// siftDown moves the element at idx toward the leaves, at each level swapping
// with the larger-keyed child, until neither child exceeds it.
func (pq *PriorityQueue) siftDown(idx int) {
	n := len(pq.heap)
	for {
		left := 2*idx + 1
		right := 2*idx + 2
		largest := idx
		if left < n && pq.key(pq.heap[left]) > pq.key(pq.heap[largest]) {
			largest = left
		}
		if right < n && pq.key(pq.heap[right]) > pq.key(pq.heap[largest]) {
			largest = right
		}
		if largest == idx {
			return
		}
		pq.swap(idx, largest)
		idx = largest
	}
}

// Insert adds a task to the queue. It returns ErrDuplicateID if a task with
// the same id is already resident.
func (pq *PriorityQueue) Insert(t *Task) error {
	if _, dup := pq.position[t.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}

	pq.heap = append(pq.heap, t)
	idx := len(pq.heap) - 1
	pq.position[t.ID] = idx
	pq.siftUp(idx)
	return nil
}

// IsEmpty reports whether no tasks are resident.
func (pq *PriorityQueue) IsEmpty() bool { return len(pq.heap) == 0 }

// Len returns the number of resident tasks.
func (pq *PriorityQueue) Len() int { return len(pq.heap) }

// Peek returns the top task without removing it, or ErrEmptyQueue.
func (pq *PriorityQueue) Peek() (*Task, error) {
	if len(pq.heap) == 0 {
		return nil, ErrEmptyQueue
	}
	return pq.heap[0], nil
}

// ExtractTop removes and returns the task with the highest effective key.
// It returns ErrEmptyQueue if the queue is empty.
func (pq *PriorityQueue) ExtractTop() (*Task, error) {
	if len(pq.heap) == 0 {
		return nil, ErrEmptyQueue
	}

	top := pq.heap[0]
	delete(pq.position, top.ID)

	last := len(pq.heap) - 1
	moved := pq.heap[last]
	pq.heap[last] = nil // allow GC
	pq.heap = pq.heap[:last]

	if last > 0 {
		pq.heap[0] = moved
		pq.position[moved.ID] = 0
		pq.siftDown(0)
	}
	return top, nil
}

// UpdatePriority changes a resident task's priority in place and restores
// heap order with a single corrective sift: up if the effective key grew,
// down if it shrank. It returns ErrTaskNotFound if the id is not resident.
func (pq *PriorityQueue) UpdatePriority(id TaskID, newPriority int) error {
	idx, ok := pq.position[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}

	t := pq.heap[idx]
	oldKey := pq.key(t)
	t.Priority = newPriority

	if pq.key(t) >= oldKey {
		pq.siftUp(idx)
	} else {
		pq.siftDown(idx)
	}
	return nil
}

// IncreasePriority forwards to UpdatePriority. The corrective sift direction
// depends only on how the effective key moved, not on which alias was called.
func (pq *PriorityQueue) IncreasePriority(id TaskID, newPriority int) error {
	return pq.UpdatePriority(id, newPriority)
}

// DecreasePriority forwards to UpdatePriority.
func (pq *PriorityQueue) DecreasePriority(id TaskID, newPriority int) error {
	return pq.UpdatePriority(id, newPriority)
}
