package task

import (
	"errors"
	"strings"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered collection of tasks, addressed by 0-based index.
// Callers are expected to check IsValidIndex before indexed access;
// Get and Remove report ErrIndexOutOfRange instead of clamping.
type List struct {
	tasks []Task
}

func NewList(tasks ...Task) *List {
	l := &List{}
	for _, t := range tasks {
		l.Add(t)
	}
	return l
}

func (l *List) Size() int {
	return len(l.tasks)
}

func (l *List) IsValidIndex(i int) bool {
	return i >= 0 && i < len(l.tasks)
}

func (l *List) Get(i int) (Task, error) {
	if !l.IsValidIndex(i) {
		return nil, ErrIndexOutOfRange
	}
	return l.tasks[i], nil
}

func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// Remove deletes and returns the task at i, keeping the order of the rest.
func (l *List) Remove(i int) (Task, error) {
	if !l.IsValidIndex(i) {
		return nil, ErrIndexOutOfRange
	}
	t := l.tasks[i]
	l.tasks = append(l.tasks[:i:i], l.tasks[i+1:]...)
	return t, nil
}

func (l *List) Clear() {
	l.tasks = nil
}

// Tasks returns the tasks in order. The slice is a copy, the tasks are not.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// CopyFrom replaces the contents of l with deep copies of the tasks in src.
func (l *List) CopyFrom(src *List) {
	tasks := make([]Task, len(src.tasks))
	for i, t := range src.tasks {
		tasks[i] = t.Copy()
	}
	l.tasks = tasks
}

// Clone returns a deep copy of l.
func (l *List) Clone() *List {
	c := &List{}
	c.CopyFrom(l)
	return c
}

// Indexed is a task together with its 0-based position in a list.
type Indexed struct {
	Index int
	Task  Task
}

// Find returns, in list order, every task whose description contains any of
// the terms. Matching is case sensitive.
func (l *List) Find(terms ...string) []Indexed {
	out := []Indexed{}
	for i, t := range l.tasks {
		if containsAny(t.Description(), terms) {
			out = append(out, Indexed{Index: i, Task: t})
		}
	}
	return out
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// Equal reports whether both lists hold equal tasks in the same order.
func (l *List) Equal(o *List) bool {
	if l.Size() != o.Size() {
		return false
	}
	for i := range l.tasks {
		if !Equal(l.tasks[i], o.tasks[i]) {
			return false
		}
	}
	return true
}
