package committee

import "testing"

func TestMerge_UnequalCoverage(t *testing.T) {
	long := NamedSeries{Name: "CORE", Points: []IndexPoint{
		{Week: "Week 1", Value: Index(101)},
		{Week: "Week 2", Value: Index(102)},
		{Week: "Week 3", Value: Index(103)},
	}}
	short := NamedSeries{Name: "TOTAL", Points: []IndexPoint{
		{Week: "Week 1", Value: Index(100.5)},
		{Week: "Week 3", Value: Index(101.5)},
	}}

	rows := Merge(long, short)

	if len(rows) != 3 {
		t.Fatalf("Merge() returned %d rows, want 3", len(rows))
	}
	// first-seen week ordering
	for i, want := range []string{"Week 1", "Week 2", "Week 3"} {
		if rows[i].Week != want {
			t.Errorf("row %d week = %q, want %q", i, rows[i].Week, want)
		}
	}
	// missing fields are absent, not zero
	if _, ok := rows[1].Values["TOTAL"]; ok {
		t.Errorf("Week 2 has a TOTAL value, want it absent")
	}
	if v, ok := rows[2].Values["TOTAL"]; !ok || !v.Equal(Index(101.5)) {
		t.Errorf("Week 3 TOTAL = %v (present=%v), want 101.5", v, ok)
	}
}

func TestMerge_Empty(t *testing.T) {
	if rows := Merge(); len(rows) != 0 {
		t.Errorf("Merge() of nothing returned %d rows, want 0", len(rows))
	}
	if rows := Merge(NamedSeries{Name: "CORE"}); len(rows) != 0 {
		t.Errorf("Merge() of an empty series returned %d rows, want 0", len(rows))
	}
}

func TestChartRows(t *testing.T) {
	alloc := AllocationSplit{Core: 50, Balance: 30, Dynamic: 20}
	rows := []WeeklyReturnRow{{Week: "Week 1", Core: 2, Balance: 1, Dynamic: -1}}

	chart := ChartRows(rows, alloc)
	if len(chart) != 1 {
		t.Fatalf("ChartRows() returned %d rows, want 1", len(chart))
	}
	row := chart[0]
	if len(row.Values) != 4 {
		t.Errorf("chart row has %d values, want CORE, BALANCE, DYNAMIC and TOTAL", len(row.Values))
	}
	if want := Index(101.1); !row.Values["TOTAL"].Equal(want) {
		t.Errorf("TOTAL = %s, want %s", row.Values["TOTAL"], want)
	}
	if want := Index(102); !row.Values["CORE"].Equal(want) {
		t.Errorf("CORE = %s, want %s", row.Values["CORE"], want)
	}
}
