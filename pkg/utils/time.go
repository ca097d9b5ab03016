package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDateBound parses a list filter bound given as RFC3339 or YYYY-MM-DD.
// A bare date used as an upper bound covers the whole day.
func ParseDateBound(value string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", value)
	}

	if upper {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
