package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Green = lipgloss.Color("#00a352")
	Red   = lipgloss.Color("#c42912")

	Todo     = lipgloss.Color("#4db7ff")
	Deadline = lipgloss.Color("#c27510")
	Event    = lipgloss.Color("#c4b810")
)

var (
	Header    = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	ErrorText = lipgloss.NewStyle().Bold(true).Foreground(Red)
	Prompt    = lipgloss.NewStyle().Foreground(Secondary)

	TaskIndex     = lipgloss.NewStyle().Foreground(Faded)
	TaskTitle     = lipgloss.NewStyle().Bold(true)
	TaskTitleDone = lipgloss.NewStyle().Foreground(Secondary).Strikethrough(true)
	TaskDone      = lipgloss.NewStyle().Bold(true).Foreground(Green)

	kindTag = map[string]lipgloss.Style{
		"T": lipgloss.NewStyle().Foreground(Todo),
		"D": lipgloss.NewStyle().Foreground(Deadline),
		"E": lipgloss.NewStyle().Foreground(Event),
	}
)

// taskLine matches "[K][X] description" with an optional "n. " prefix.
var taskLine = regexp.MustCompile(`^(\d+\. )?\[([TDE])\]\[( |X)\] (.*)$`)

// Format styles a reply. Task lines get colored markers, every other line is
// treated as a header.
func Format(msg string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		lines[i] = formatLine(line)
	}
	return strings.Join(lines, "\n")
}

func formatLine(line string) string {
	m := taskLine.FindStringSubmatch(line)
	if m == nil {
		return Header.Render(line)
	}
	index, kind, mark, rest := m[1], m[2], m[3], m[4]

	title := TaskTitle
	if mark == "X" {
		title = TaskTitleDone
		mark = TaskDone.Render(mark)
	}
	tag := kindTag[kind].Render(kind)
	return TaskIndex.Render(index) + "[" + tag + "][" + mark + "] " + title.Render(rest)
}
