package committee

// Overlay is the ephemeral what-if substitution for the most recent week.
// It is never persisted: when enabled, the effective series used by every
// downstream derivation is a clone of the raw series with only the last
// row's three fund values replaced. The stored series stays untouched.
type Overlay struct {
	Enabled bool
	Core    Percent
	Balance Percent
	Dynamic Percent
}

// Effective returns the series to feed the projectors and the aggregator.
// With the overlay disabled that is a plain copy of rows; enabled, the copy's
// last row carries the overlay values instead. An empty series stays empty.
func (o Overlay) Effective(rows []WeeklyReturnRow) []WeeklyReturnRow {
	out := make([]WeeklyReturnRow, len(rows))
	copy(out, rows)
	if !o.Enabled || len(out) == 0 {
		return out
	}
	last := &out[len(out)-1]
	last.Core = o.Core
	last.Balance = o.Balance
	last.Dynamic = o.Dynamic
	return out
}
