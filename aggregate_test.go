package committee

import "testing"

func TestBlend_ZeroAllocation(t *testing.T) {
	alloc := AllocationSplit{}
	rows := []WeeklyReturnRow{
		{Week: "Week 1", Core: 5, Balance: 3, Dynamic: -2},
		{Week: "Week 2", Core: 1, Balance: 1, Dynamic: 1},
	}

	blended := Blend(rows, alloc)
	for _, b := range blended {
		if !b.Total.Equal(0) {
			t.Errorf("blended return for %q = %v, want 0 with an all-zero allocation", b.Week, b.Total)
		}
	}
}

func TestBlend_Idempotent(t *testing.T) {
	alloc := AllocationSplit{Core: 60, Balance: 25, Dynamic: 15}
	rows := []WeeklyReturnRow{
		{Week: "Week 1", Core: 1.5, Balance: -0.5, Dynamic: 2},
		{Week: "Week 2", Core: 0, Balance: 0.25, Dynamic: -1},
	}

	first := Blend(rows, alloc)
	second := Blend(rows, alloc)

	if len(first) != len(second) {
		t.Fatalf("two runs returned %d and %d rows", len(first), len(second))
	}
	for i := range first {
		if first[i].Week != second[i].Week || !first[i].Total.Equal(second[i].Total) {
			t.Errorf("row %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// Blend must normalize allocations that do not sum to 100 instead of
// trusting the raw percentages.
func TestBlend_NormalizesDriftingAllocation(t *testing.T) {
	// same proportions as 50/30/20, just doubled.
	alloc := AllocationSplit{Core: 100, Balance: 60, Dynamic: 40}
	rows := []WeeklyReturnRow{{Week: "Week 1", Core: 2, Balance: 1, Dynamic: -1}}

	blended := Blend(rows, alloc)
	if want := Percent(1.1); !blended[0].Total.Equal(want) {
		t.Errorf("blended return = %v, want %v", blended[0].Total, want)
	}
}
