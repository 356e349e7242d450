package committee

import (
	"fmt"

	"github.com/chavapalmarubin-lab/fidus-committee/week"
)

// WeeklyReturnRow is one entry of the weekly performance series: a week
// label (unique join key within a series) and one percentage return per fund.
type WeeklyReturnRow struct {
	Week    string
	Core    Percent
	Balance Percent
	Dynamic Percent
}

// Return returns the row's value for the given fund.
func (r WeeklyReturnRow) Return(f Fund) Percent {
	switch f {
	case Core:
		return r.Core
	case Balance:
		return r.Balance
	case Dynamic:
		return r.Dynamic
	}
	return 0
}

// SetReturn sets the row's value for the given fund.
func (r *WeeklyReturnRow) SetReturn(f Fund, v Percent) {
	switch f {
	case Core:
		r.Core = v
	case Balance:
		r.Balance = v
	case Dynamic:
		r.Dynamic = v
	}
}

// defaultWeeks is the length of a freshly reset series.
const defaultWeeks = 8

// Series holds the editable weekly return rows. The local copy is a cache of
// the backend's weekly performance: a successful fetch replaces it wholesale,
// user edits only ever touch the local copy.
type Series struct {
	rows []WeeklyReturnRow
}

// NewSeries returns an empty series.
func NewSeries() *Series { return &Series{} }

// DefaultSeries returns the all-zero series a fresh workspace starts from.
func DefaultSeries() *Series {
	s := &Series{}
	s.Reset()
	return s
}

// Rows returns a copy of the rows in their current order.
func (s *Series) Rows() []WeeklyReturnRow {
	out := make([]WeeklyReturnRow, len(s.rows))
	copy(out, s.rows)
	return out
}

// Len returns the number of weeks in the series.
func (s *Series) Len() int { return len(s.rows) }

// Labels returns the week labels in order.
func (s *Series) Labels() []string {
	labels := make([]string, len(s.rows))
	for i, r := range s.rows {
		labels[i] = r.Week
	}
	return labels
}

// Set edits a single cell from a raw string value. The raw value is coerced
// leniently: non-numeric input becomes 0, a "%" suffix is accepted.
// Only the row index can fail.
func (s *Series) Set(i int, f Fund, raw string) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("no week at index %d (series has %d weeks)", i, len(s.rows))
	}
	s.rows[i].SetReturn(f, CoercePercent(raw))
	return nil
}

// SetWeek renames the label of the i-th row.
func (s *Series) SetWeek(i int, label string) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("no week at index %d (series has %d weeks)", i, len(s.rows))
	}
	s.rows[i].Week = label
	return nil
}

// Append adds a new all-zero row with an auto-generated "Week N" label and
// returns it.
func (s *Series) Append() WeeklyReturnRow {
	row := WeeklyReturnRow{Week: week.Next(s.Labels())}
	s.rows = append(s.rows, row)
	return row
}

// Remove deletes the i-th row.
func (s *Series) Remove(i int) error {
	if i < 0 || i >= len(s.rows) {
		return fmt.Errorf("no week at index %d (series has %d weeks)", i, len(s.rows))
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	return nil
}

// Reset replaces the whole series with the all-zero default.
func (s *Series) Reset() {
	s.rows = make([]WeeklyReturnRow, defaultWeeks)
	for i := range s.rows {
		s.rows[i].Week = week.Label(i + 1)
	}
}

// Replace substitutes the whole series, e.g. after a successful import or
// backend fetch. The given rows are copied.
func (s *Series) Replace(rows []WeeklyReturnRow) {
	s.rows = make([]WeeklyReturnRow, len(rows))
	copy(s.rows, rows)
}
