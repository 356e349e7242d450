package committee

import "testing"

func TestSeries_Set(t *testing.T) {
	s := DefaultSeries()

	if err := s.Set(2, Core, "3.5"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if got := s.Rows()[2].Core; !got.Equal(3.5) {
		t.Errorf("cell = %v, want 3.5", got)
	}

	// lenient coercion applies to cell edits
	if err := s.Set(2, Balance, "garbage"); err != nil {
		t.Fatalf("Set() unexpected error: %v", err)
	}
	if got := s.Rows()[2].Balance; !got.Equal(0) {
		t.Errorf("cell = %v, want 0 for garbage input", got)
	}

	if err := s.Set(99, Core, "1"); err == nil {
		t.Errorf("Set() out of range: expected an error")
	}
	if err := s.Set(-1, Core, "1"); err == nil {
		t.Errorf("Set() negative index: expected an error")
	}
}

func TestSeries_AppendAndRemove(t *testing.T) {
	s := DefaultSeries()
	if s.Len() != 8 {
		t.Fatalf("default series has %d weeks, want 8", s.Len())
	}

	row := s.Append()
	if row.Week != "Week 9" {
		t.Errorf("appended week label = %q, want \"Week 9\"", row.Week)
	}
	if s.Len() != 9 {
		t.Errorf("series has %d weeks after append, want 9", s.Len())
	}

	if err := s.Remove(0); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}
	if s.Len() != 8 {
		t.Errorf("series has %d weeks after remove, want 8", s.Len())
	}
	if got := s.Rows()[0].Week; got != "Week 2" {
		t.Errorf("first week after remove = %q, want \"Week 2\"", got)
	}

	// append continues from the highest ordinal, not the length
	row = s.Append()
	if row.Week != "Week 10" {
		t.Errorf("appended week label = %q, want \"Week 10\"", row.Week)
	}
}

func TestSeries_Reset(t *testing.T) {
	s := NewSeries()
	s.Replace([]WeeklyReturnRow{{Week: "W1", Core: 9}})

	s.Reset()
	if s.Len() != 8 {
		t.Fatalf("reset series has %d weeks, want 8", s.Len())
	}
	for i, row := range s.Rows() {
		if !row.Core.Equal(0) || !row.Balance.Equal(0) || !row.Dynamic.Equal(0) {
			t.Errorf("row %d not zeroed: %+v", i, row)
		}
	}
}

func TestSeries_ReplaceCopies(t *testing.T) {
	in := []WeeklyReturnRow{{Week: "Week 1", Core: 1}}
	s := NewSeries()
	s.Replace(in)

	in[0].Core = 99
	if got := s.Rows()[0].Core; !got.Equal(1) {
		t.Errorf("Replace() aliases the caller's slice: cell = %v", got)
	}
}
