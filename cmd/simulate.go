package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	committee "github.com/chavapalmarubin-lab/fidus-committee"
	"github.com/chavapalmarubin-lab/fidus-committee/renderer"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	core    string
	balance string
	dynamic string
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "what-if: override the most recent week's returns without saving"
}
func (*simulateCmd) Usage() string {
	return `fidus simulate [-core <pct>] [-balance <pct>] [-dynamic <pct>]

  Renders the summary and projection with the most recent week's returns
  replaced by the given values. Omitted funds keep their stored value.
  Nothing is persisted: the stored series is untouched.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.core, "core", "", "Override for the CORE return of the latest week.")
	f.StringVar(&c.balance, "balance", "", "Override for the BALANCE return of the latest week.")
	f.StringVar(&c.dynamic, "dynamic", "", "Override for the DYNAMIC return of the latest week.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if snapshot.Series.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: the series is empty, nothing to simulate on.")
		return subcommands.ExitFailure
	}

	rows := snapshot.Series.Rows()
	last := rows[len(rows)-1]
	overlay := committee.Overlay{
		Enabled: true,
		Core:    last.Core,
		Balance: last.Balance,
		Dynamic: last.Dynamic,
	}
	if c.core != "" {
		overlay.Core = committee.CoercePercent(c.core)
	}
	if c.balance != "" {
		overlay.Balance = committee.CoercePercent(c.balance)
	}
	if c.dynamic != "" {
		overlay.Dynamic = committee.CoercePercent(c.dynamic)
	}

	printMarkdown(renderer.SummaryMarkdown(snapshot, overlay))
	printMarkdown(renderer.ProjectionMarkdown(snapshot, overlay))
	return subcommands.ExitSuccess
}
