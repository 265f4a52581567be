package persist

import (
	"bytes"

	"github.com/td0m/taskline/pkg/task"
)

// Memory keeps the encoded list in memory. It is used for throwaway sessions
// and in tests, where Err makes every Write fail.
type Memory struct {
	data   []byte
	Err    error
	Writes int
}

func InMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Write(l *task.List) error {
	if m.Err != nil {
		return m.Err
	}
	m.data = Encode(l)
	m.Writes++
	return nil
}

func (m *Memory) Read() (*task.List, error) {
	return Decode(bytes.NewReader(m.data))
}

// Contents returns what the last successful Write stored.
func (m *Memory) Contents() string {
	return string(m.data)
}
