package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// this file holds the series editing commands: add-week, remove-week, reset.

type addWeekCmd struct{}

func (*addWeekCmd) Name() string     { return "add-week" }
func (*addWeekCmd) Synopsis() string { return "append a new all-zero week to the series" }
func (*addWeekCmd) Usage() string {
	return `fidus add-week

  Appends an all-zero row with the next auto-generated "Week N" label.
`
}
func (c *addWeekCmd) SetFlags(f *flag.FlagSet) {}

func (c *addWeekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	row := snapshot.Series.Append()
	if err := SaveSnapshot(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Appended %q (series now has %d weeks)\n", row.Week, snapshot.Series.Len())
	return subcommands.ExitSuccess
}

type removeWeekCmd struct {
	index int
}

func (*removeWeekCmd) Name() string     { return "remove-week" }
func (*removeWeekCmd) Synopsis() string { return "remove one week from the series" }
func (*removeWeekCmd) Usage() string {
	return `fidus remove-week -i <index>

  Removes the week at the given zero-based index.
`
}
func (c *removeWeekCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Zero-based index of the week to remove.")
}

func (c *removeWeekCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := snapshot.Series.Remove(c.index); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveSnapshot(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed week %d (series now has %d weeks)\n", c.index, snapshot.Series.Len())
	return subcommands.ExitSuccess
}

type resetCmd struct{}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "reset the series to the all-zero default" }
func (*resetCmd) Usage() string {
	return `fidus reset

  Replaces the whole weekly series with 8 all-zero weeks. The allocation
  split and AUM are kept.
`
}
func (c *resetCmd) SetFlags(f *flag.FlagSet) {}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	snapshot.Series.Reset()
	if err := SaveSnapshot(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Series reset to %d all-zero weeks\n", snapshot.Series.Len())
	return subcommands.ExitSuccess
}
