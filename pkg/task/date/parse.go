package date

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var ErrParsing = errors.New("error parsing date")

const dataSeconds = "2006-01-02T15:04:05"

var (
	inputFormats = []string{Input}
	dataFormats  = []string{Data, dataSeconds}
)

// time.Parse accepts a single digit hour for "15", the input pattern does not
var inputShape = regexp.MustCompile(`^\d{2}-\d{2}-\d{4} \d{2}:\d{2}$`)

// Parse parses user input in the dd-MM-yyyy HH:mm pattern.
// Surrounding whitespace is ignored, anything else must match exactly.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !inputShape.MatchString(s) {
		return time.Time{}, ErrParsing
	}
	return parseAnyTimeFormat(s, inputFormats)
}

// ParseData parses a date written by FormatData.
func ParseData(s string) (time.Time, error) {
	return parseAnyTimeFormat(strings.TrimSpace(s), dataFormats)
}

func parseAnyTimeFormat(s string, formats []string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrParsing
	}
	for _, fmt := range formats {
		t, err := time.ParseInLocation(fmt, s, Location)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrParsing
}
