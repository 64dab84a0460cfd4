package parse

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"2 Jan 2006",
}

// Date parses a date of birth in any of the formats the roster sources emit.
// The second return value is false when the value is missing or unrecognised.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !Present(s) {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the completed years between birth and now.
func Age(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
