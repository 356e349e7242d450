package renderer

import (
	"bytes"

	committee "github.com/chavapalmarubin-lab/fidus-committee"
	md "github.com/nao1215/markdown"
)

// chart column order for the projection table.
var chartColumns = []string{"CORE", "BALANCE", "DYNAMIC", "TOTAL"}

// ProjectionMarkdown renders the merged NAV-index table: one row per week,
// per-fund cumulative values plus the blended TOTAL, all starting from a
// base of 100. Weeks a series does not cover render as "-".
func ProjectionMarkdown(s *committee.Snapshot, o committee.Overlay) string {
	rows := o.Effective(s.Series.Rows())
	merged := committee.ChartRows(rows, s.Allocation)

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("NAV Index Projection (base 100)")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: append([]string{"Week"}, chartColumns...),
		Rows:   [][]string{},
	}
	for _, row := range merged {
		cells := []string{row.Week}
		for _, col := range chartColumns {
			if v, ok := row.Values[col]; ok {
				cells = append(cells, v.String())
			} else {
				cells = append(cells, "-")
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	if o.Enabled {
		doc.PlainText("_Simulation overlay is enabled: the last week compounds the what-if values._")
	}

	return doc.String()
}
