package committee

// BlendedRow is the portfolio-level weekly return derived from the per-fund
// returns and the normalized allocation weights.
type BlendedRow struct {
	Week  string
	Total Percent
}

// Blend combines the per-fund weekly returns into a single blended series.
// For each week the blended return is the capital-weighted average of the
// fund returns: sum over funds of (r/100 * weight) * 100. It is a pure
// function: same inputs, same output, no hidden state. With an all-zero
// allocation every blended return is 0.
func Blend(rows []WeeklyReturnRow, alloc AllocationSplit) []BlendedRow {
	weights := alloc.Weights()
	out := make([]BlendedRow, 0, len(rows))
	for _, row := range rows {
		var total float64
		for _, f := range AllFunds() {
			total += float64(row.Return(f)) / 100 * weights[f] * 100
		}
		out = append(out, BlendedRow{Week: row.Week, Total: Percent(total)})
	}
	return out
}
