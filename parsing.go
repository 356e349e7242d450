package committee

import (
	"math"
	"strconv"
	"strings"
)

// Cell values come from untrusted sources: hand-edited tables, pasted
// spreadsheet content, API bodies of uncertain shape. Parsing must degrade to
// zero on failure, never panic and never let a NaN into the pipeline.

// CoercePercent parses a percentage return from a raw cell value.
// A trailing "%" is accepted ("12%" is 12). Anything unparseable is 0.
func CoercePercent(raw string) Percent {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return Percent(v)
}

// CoerceValue coerces a decoded JSON value into a percentage return. The
// backend sends numbers, but re-encoded bodies sometimes carry strings.
func CoerceValue(v any) Percent {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return 0
		}
		return Percent(t)
	case string:
		return CoercePercent(t)
	default:
		return 0
	}
}
