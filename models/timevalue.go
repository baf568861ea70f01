package models

import (
	"fmt"
	"regexp"
	"strconv"
)

// TimeValue is a lap time split into its display components. Seconds stay
// below 60; ordering is defined by the total millisecond count.
type TimeValue struct {
	Minutes      int
	Seconds      int
	Milliseconds int
}

var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\.(\d{3})$`)

// ParseTime parses "M:SS.mmm" or "MM:SS.mmm". Seconds of 60 or more are
// rejected rather than normalized.
func ParseTime(s string) (TimeValue, error) {
	match := timePattern.FindStringSubmatch(s)
	if match == nil {
		return TimeValue{}, fmt.Errorf("invalid time format %q, expected M:SS.mmm (e.g. 1:23.456)", s)
	}

	var tv TimeValue
	tv.Minutes, _ = strconv.Atoi(match[1])
	tv.Seconds, _ = strconv.Atoi(match[2])
	tv.Milliseconds, _ = strconv.Atoi(match[3])

	if tv.Seconds >= 60 {
		return TimeValue{}, fmt.Errorf("invalid time %q: seconds must be below 60", s)
	}

	return tv, nil
}

// Format renders the canonical text form, e.g. "1:23.456".
func (t TimeValue) Format() string {
	return fmt.Sprintf("%d:%02d.%03d", t.Minutes, t.Seconds, t.Milliseconds)
}

// TotalMillis converts the time to milliseconds for comparison.
func (t TimeValue) TotalMillis() int {
	return t.Minutes*60000 + t.Seconds*1000 + t.Milliseconds
}

// Compare returns -1, 0 or 1 as t is faster than, equal to or slower than o.
func (t TimeValue) Compare(o TimeValue) int {
	a, b := t.TotalMillis(), o.TotalMillis()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
