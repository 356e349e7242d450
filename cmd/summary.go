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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the committee summary" }
func (*summaryCmd) Usage() string {
	return `fidus summary

  Displays AUM, the allocation split with normalized weights, and the latest
  week's per-fund and blended returns.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(snapshot, committee.Overlay{}))
	return subcommands.ExitSuccess
}
