// Package persist stores task lists durably.
//
// The on-disk format is one Task.Data line per task:
//
//	T | false | read book
//	D | true | submit | 2024-12-31T23:59
package persist

import (
	"github.com/td0m/taskline/pkg/task"
)

type Writer interface {
	Write(*task.List) error
}

type Reader interface {
	Read() (*task.List, error)
}

type Persistor interface {
	Writer
	Reader
}

var (
	_ Persistor = &File{}
	_ Persistor = &Memory{}
)
