package prqueue

import "errors"

var (
	// ErrEmptyQueue is returned when extraction is attempted on an empty queue.
	ErrEmptyQueue = errors.New("priority queue is empty")

	// ErrTaskNotFound is returned when a priority update targets an id that is
	// not currently resident.
	ErrTaskNotFound = errors.New("task not found")

	// ErrDuplicateID is returned when inserting a task whose id is already
	// resident. Allowing it would corrupt the position map.
	ErrDuplicateID = errors.New("task id already resident")
)
