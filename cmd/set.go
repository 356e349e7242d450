package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	committee "github.com/chavapalmarubin-lab/fidus-committee"
	"github.com/google/subcommands"
)

type setCmd struct {
	index int
	fund  string
	value string
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "edit one cell of the weekly series" }
func (*setCmd) Usage() string {
	return `fidus set -i <index> -fund <CORE|BALANCE|DYNAMIC> -value <pct>

  Sets one fund's return for the week at the given zero-based index.
  The value is parsed leniently: a "%" suffix is accepted, anything
  non-numeric coerces to 0.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Zero-based index of the week to edit.")
	f.StringVar(&c.fund, "fund", "", "Fund column to edit.")
	f.StringVar(&c.value, "value", "", "New percentage value.")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fund, err := committee.ParseFund(c.fund)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := snapshot.Series.Set(c.index, fund, c.value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := SaveSnapshot(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	row := snapshot.Series.Rows()[c.index]
	fmt.Printf("Set %s of %q to %s\n", fund, row.Week, row.Return(fund))
	return subcommands.ExitSuccess
}
