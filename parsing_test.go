package committee

import "testing"

func TestCoercePercent(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want Percent
	}{
		{name: "plain number", raw: "2.5", want: 2.5},
		{name: "negative", raw: "-1.25", want: -1.25},
		{name: "percent suffix", raw: "12%", want: 12},
		{name: "percent suffix with space", raw: " 12 % ", want: 12},
		{name: "empty string", raw: "", want: 0},
		{name: "blank string", raw: "   ", want: 0},
		{name: "garbage", raw: "abc", want: 0},
		{name: "lone percent sign", raw: "%", want: 0},
		{name: "NaN literal rejected", raw: "NaN", want: 0},
		{name: "Inf literal rejected", raw: "+Inf", want: 0},
		{name: "zero", raw: "0", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CoercePercent(tc.raw)
			if !got.Equal(tc.want) {
				t.Errorf("CoercePercent(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestCoerceValue(t *testing.T) {
	testCases := []struct {
		name string
		v    any
		want Percent
	}{
		{name: "json number", v: float64(3.2), want: 3.2},
		{name: "string number", v: "4.5", want: 4.5},
		{name: "string percent", v: "12%", want: 12},
		{name: "nil", v: nil, want: 0},
		{name: "bool", v: true, want: 0},
		{name: "object", v: map[string]any{"x": 1}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := CoerceValue(tc.v)
			if !got.Equal(tc.want) {
				t.Errorf("CoerceValue(%v) = %v, want %v", tc.v, got, tc.want)
			}
		})
	}
}
