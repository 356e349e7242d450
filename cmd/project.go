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

type projectCmd struct{}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "display the cumulative NAV-index table" }
func (*projectCmd) Usage() string {
	return `fidus project

  Compounds the weekly returns into per-fund NAV-index series and the
  allocation-weighted TOTAL series, merged into one table per week.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProjectionMarkdown(snapshot, committee.Overlay{}))
	return subcommands.ExitSuccess
}
