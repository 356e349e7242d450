// Package week handles the reporting-week labels used as join keys across
// the committee's weekly series. Labels are opaque strings on the wire; the
// only structure this package relies on is the auto-generated "Week N" form.
package week

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Format is the label form given to auto-appended weeks.
const Format = "Week %d"

var ordinalRe = regexp.MustCompile(`^\s*[Ww][Ee][Ee][Kk]\s*#?\s*(\d+)\s*$`)

// Label returns the canonical label for the n-th reporting week.
func Label(n int) string { return fmt.Sprintf(Format, n) }

// Ordinal extracts the week number from a "Week N" style label.
// It reports false for labels that do not follow that form.
func Ordinal(label string) (int, bool) {
	m := ordinalRe.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Next returns the label to use when appending a week after the given
// labels. It continues the highest "Week N" ordinal found; when no label
// follows that form, it falls back to position counting.
func Next(labels []string) string {
	max := 0
	for _, l := range labels {
		if n, ok := Ordinal(l); ok && n > max {
			max = n
		}
	}
	if max > 0 {
		return Label(max + 1)
	}
	return Label(len(labels) + 1)
}

// Equal compares two labels ignoring case and surrounding space, the same
// leniency applied to imported header cells.
func Equal(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
