package committee

// IndexPoint is one point of a cumulative NAV-index series.
type IndexPoint struct {
	Week  string
	Value NavIndex
}

// ProjectFund compounds one fund's weekly returns into a NAV-index series.
// The running index starts at 100 and the first emitted point is already
// compounded: 100*(1+r0/100), not a prepended baseline. Input order is
// preserved exactly and an empty input yields an empty output.
func ProjectFund(rows []WeeklyReturnRow, f Fund) []IndexPoint {
	points := make([]IndexPoint, 0, len(rows))
	idx := BaseIndex()
	for _, row := range rows {
		idx = idx.Compound(row.Return(f))
		points = append(points, IndexPoint{Week: row.Week, Value: idx})
	}
	return points
}

// Project compounds every fund independently. No cross-fund interaction:
// each series only depends on its own fund's returns.
func Project(rows []WeeklyReturnRow) map[Fund][]IndexPoint {
	out := make(map[Fund][]IndexPoint, 3)
	for _, f := range AllFunds() {
		out[f] = ProjectFund(rows, f)
	}
	return out
}

// ProjectBlended compounds the blended portfolio returns into the TOTAL
// NAV-index series, with the same base and rounding as the per-fund series.
func ProjectBlended(blended []BlendedRow) []IndexPoint {
	points := make([]IndexPoint, 0, len(blended))
	idx := BaseIndex()
	for _, row := range blended {
		idx = idx.Compound(row.Total)
		points = append(points, IndexPoint{Week: row.Week, Value: idx})
	}
	return points
}
