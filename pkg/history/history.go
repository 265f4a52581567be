// Package history keeps whole-list snapshots so mutations can be undone.
package history

import (
	"errors"

	"github.com/td0m/taskline/pkg/task"
)

var ErrEmpty = errors.New("no snapshot in history")

// History is a last-in-first-out stack of task list snapshots.
// It has no depth limit; snapshots pushed are owned by the history and must
// not be mutated by the caller afterwards.
type History struct {
	snapshots []*task.List
}

func New() *History {
	return &History{}
}

func (h *History) Push(snapshot *task.List) {
	h.snapshots = append(h.snapshots, snapshot)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (*task.List, error) {
	n := len(h.snapshots)
	if n == 0 {
		return nil, ErrEmpty
	}
	s := h.snapshots[n-1]
	h.snapshots[n-1] = nil
	h.snapshots = h.snapshots[:n-1]
	return s, nil
}

func (h *History) IsEmpty() bool {
	return len(h.snapshots) == 0
}

func (h *History) Len() int {
	return len(h.snapshots)
}
