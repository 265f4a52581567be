package history

import (
	"testing"

	"github.com/matryer/is"
	"github.com/td0m/taskline/pkg/task"
)

func list(t *testing.T, descriptions ...string) *task.List {
	t.Helper()
	l := task.NewList()
	for _, d := range descriptions {
		todo, err := task.NewTodo(d)
		if err != nil {
			t.Fatal(err)
		}
		l.Add(todo)
	}
	return l
}

func TestHistory_Empty(t *testing.T) {
	is := is.New(t)
	h := New()
	is.True(h.IsEmpty())
	is.Equal(h.Len(), 0)

	_, err := h.Pop()
	is.Equal(err, ErrEmpty)
}

func TestHistory_LastInFirstOut(t *testing.T) {
	is := is.New(t)
	h := New()
	first, second, third := list(t), list(t, "a"), list(t, "a", "b")
	h.Push(first)
	h.Push(second)
	h.Push(third)
	is.Equal(h.Len(), 3)

	for _, want := range []*task.List{third, second, first} {
		got, err := h.Pop()
		is.NoErr(err)
		is.True(got == want)
	}
	is.True(h.IsEmpty())
	_, err := h.Pop()
	is.Equal(err, ErrEmpty)
}

func TestHistory_SnapshotIsolation(t *testing.T) {
	is := is.New(t)
	h := New()
	live := list(t, "read book")
	h.Push(live.Clone())

	first, err := live.Get(0)
	is.NoErr(err)
	first.MarkAsDone()
	live.Clear()

	snapshot, err := h.Pop()
	is.NoErr(err)
	is.Equal(snapshot.Size(), 1)
	kept, err := snapshot.Get(0)
	is.NoErr(err)
	is.True(!kept.Marked())
}
