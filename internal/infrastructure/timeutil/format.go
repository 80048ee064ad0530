package timeutil

import (
	"fmt"
	"time"
)

// Layouts accepted for upstream segment timestamps.
const (
	layoutOffset = time.RFC3339
	layoutLocal  = "2006-01-02T15:04:05"
	layoutShort  = "2006-01-02T15:04"
)

// ParseDateTime parses an ISO 8601 timestamp. Timestamps without an offset
// are kept as wall-clock time in UTC so their hour is not shifted.
func ParseDateTime(value string) (time.Time, error) {
	for _, layout := range []string{layoutOffset, layoutLocal, layoutShort} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

// FormatClock renders a wall-clock time as "03:04 PM".
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}
