package dateinput

import (
	"strings"
)

var dividers = map[string]string{
	"deadline": " /by ",
	"event":    " /at ",
}

// shape is the input pattern with every digit written as 0.
const shape = "00-00-0000 00:00"

// argument returns the text after the divider of a deadline or event line.
func argument(line string) (string, bool) {
	keyword, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	for k, divider := range dividers {
		if !strings.EqualFold(keyword, k) {
			continue
		}
		_, arg, found := strings.Cut(" "+rest, divider)
		return strings.TrimSpace(arg), found
	}
	return "", false
}

// isPrefix reports whether s is a strict prefix of something in shape.
func isPrefix(s string) bool {
	if len(s) >= len(shape) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c, want := s[i], shape[i]
		if want == '0' {
			if c < '0' || c > '9' {
				return false
			}
		} else if c != want {
			return false
		}
	}
	return true
}
