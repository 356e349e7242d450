// Package renderer renders committee reports to markdown, suitable for the
// terminal (through glamour) or for publishing as-is.
package renderer

import (
	"bytes"
	"fmt"
	"time"

	committee "github.com/chavapalmarubin-lab/fidus-committee"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the committee summary: AUM, allocation split with
// normalized weights, and the latest week's raw and blended returns.
func SummaryMarkdown(s *committee.Snapshot, o committee.Overlay) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("FIDUS Investment Committee Summary")
	doc.PlainText(statusLine(s))

	doc.H2(fmt.Sprintf("Allocation (AUM %s)", s.Allocation.AUM.String()))
	weights := s.Allocation.Weights()
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Fund", "Allocation", "Weight"},
		Rows:      [][]string{},
	}
	for _, f := range committee.AllFunds() {
		table.Rows = append(table.Rows, []string{
			f.String(),
			s.Allocation.Percentage(f).String(),
			fmt.Sprintf("%.4f", weights[f]),
		})
	}
	doc.Table(table)
	if !s.Allocation.Balanced() {
		doc.PlainText(fmt.Sprintf("**Warning**: allocation percentages drift from 100%% by %s; weights above are normalized.", s.Allocation.Drift().SignedString()))
	}

	rows := o.Effective(s.Series.Rows())
	blended := committee.Blend(rows, s.Allocation)
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		doc.H2(fmt.Sprintf("Latest Week (%s)", last.Week))
		latest := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"CORE", "BALANCE", "DYNAMIC", "TOTAL"},
			Rows: [][]string{{
				last.Core.SignedString(),
				last.Balance.SignedString(),
				last.Dynamic.SignedString(),
				blended[len(blended)-1].Total.SignedString(),
			}},
		}
		doc.Table(latest)
	}
	if o.Enabled {
		doc.PlainText("_Simulation overlay is enabled: the latest week shows the what-if values, the stored series is untouched._")
	}

	return doc.String()
}

func statusLine(s *committee.Snapshot) string {
	if s.FetchedAt.IsZero() {
		return "No backend fetch recorded yet; figures come from local data only."
	}
	line := fmt.Sprintf("Backend data fetched %s.", s.FetchedAt.Format(time.RFC1123))
	if s.Stale {
		line += " **The last refresh failed; figures below may be stale.**"
	}
	return line
}
