// Package date holds the fixed date-time layouts used by deadlines and events.
//
// Input is always day-month-year with a 24 hour clock, zero padded
// (dd-MM-yyyy HH:mm). Stored data uses an ISO-like local layout without a
// zone, and display uses a friendlier "15:04, Jan 02 2006" form.
package date

import "time"

const (
	// Input is the layout users type after /by and /at.
	Input = "02-01-2006 15:04"
	// Pattern is Input spelled the way it is shown to users in error messages.
	Pattern = "dd-MM-yyyy HH:mm"
	// Data is the layout written to the task file.
	Data = "2006-01-02T15:04"
	// Display is the layout used when a task is rendered for the user.
	Display = "15:04, Jan 02 2006"
)

// Location is the zone dates are interpreted in. Stored data carries no zone,
// so reading and writing must agree on it.
var Location = time.Local

// Normalize converts t to Location and drops what FormatData cannot store.
func Normalize(t time.Time) time.Time {
	return t.In(Location).Truncate(time.Second)
}

// FormatData renders t the way it is stored in the task file.
// Seconds are only included when they are non-zero.
func FormatData(t time.Time) string {
	t = Normalize(t)
	if t.Second() != 0 {
		return t.Format(dataSeconds)
	}
	return t.Format(Data)
}

// FormatDisplay renders t for humans.
func FormatDisplay(t time.Time) string {
	return t.Format(Display)
}
