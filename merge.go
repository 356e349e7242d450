package committee

// NamedSeries is one column of the merged chart: a display name and its
// cumulative points.
type NamedSeries struct {
	Name   string
	Points []IndexPoint
}

// MergedChartRow is one chart row: a week label plus every series value
// available for that week. Series that do not cover the week simply have no
// entry in Values.
type MergedChartRow struct {
	Week   string
	Values map[string]NavIndex
}

// Merge joins any number of independent series by week label, producing one
// row per distinct label in first-seen order. Series of unequal length or
// coverage are fine: missing fields stay absent rather than erroring.
func Merge(series ...NamedSeries) []MergedChartRow {
	var order []string
	byWeek := make(map[string]*MergedChartRow)
	for _, s := range series {
		for _, p := range s.Points {
			row, ok := byWeek[p.Week]
			if !ok {
				row = &MergedChartRow{Week: p.Week, Values: make(map[string]NavIndex)}
				byWeek[p.Week] = row
				order = append(order, p.Week)
			}
			row.Values[s.Name] = p.Value
		}
	}
	out := make([]MergedChartRow, 0, len(order))
	for _, w := range order {
		out = append(out, *byWeek[w])
	}
	return out
}

// ChartRows runs the whole derivation for charting: per-fund cumulative
// series plus the blended TOTAL series, merged by week.
func ChartRows(rows []WeeklyReturnRow, alloc AllocationSplit) []MergedChartRow {
	perFund := Project(rows)
	total := ProjectBlended(Blend(rows, alloc))
	series := make([]NamedSeries, 0, 4)
	for _, f := range AllFunds() {
		series = append(series, NamedSeries{Name: f.String(), Points: perFund[f]})
	}
	series = append(series, NamedSeries{Name: "TOTAL", Points: total})
	return Merge(series...)
}
