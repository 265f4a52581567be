package persist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/td0m/taskline/pkg/task"
)

// Encode renders a list in the line format, one task per line.
func Encode(l *task.List) []byte {
	var b bytes.Buffer
	for _, t := range l.Tasks() {
		b.WriteString(t.Data())
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Decode reads a list in the line format. Blank lines are skipped; the first
// malformed line fails the whole read. Lines have no length limit.
func Decode(r io.Reader) (*task.List, error) {
	l := task.NewList()
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) != "" {
			t, derr := task.Decode(line)
			if derr != nil {
				return nil, fmt.Errorf("line %d: %w", n, derr)
			}
			l.Add(t)
		}
		if err != nil {
			return l, nil
		}
	}
}
