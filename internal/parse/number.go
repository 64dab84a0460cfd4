// Package parse converts the free-text statistics found in fighter records into numbers.
//
// Every function here fails soft: input that cannot be read as a number yields 0 rather
// than an error, so a malformed record never stops a prediction.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	feetInches    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*'\s*(\d+(?:\.\d+)?)?`)
)

// Number reads the leading numeric portion of s ("71.5 in" -> 71.5, "155 lbs." -> 155).
// Empty, placeholder ("--") and otherwise unreadable values return 0.
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	match := leadingNumber.FindString(s)
	if match == "" {
		return 0
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Percent reads a percentage such as "47%" or "47" as 47.
func Percent(s string) float64 {
	return Number(strings.ReplaceAll(s, "%", ""))
}

// Height reads a height in inches. Feet-and-inches notation ("5' 11\"") is converted,
// anything else is read with Number.
func Height(s string) float64 {
	s = strings.TrimSpace(s)
	if m := feetInches.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.ParseFloat(m[1], 64)
		inches := 0.0
		if m[2] != "" {
			inches, _ = strconv.ParseFloat(m[2], 64)
		}
		return feet*12 + inches
	}
	return Number(s)
}

// Present reports whether s carries any value at all. Placeholders count as absent.
func Present(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "--"
}

// Readable reports whether s begins with a value Number or Height can read.
func Readable(s string) bool {
	s = strings.TrimSpace(s)
	return leadingNumber.MatchString(s) || feetInches.MatchString(s)
}
