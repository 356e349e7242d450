package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chavapalmarubin-lab/fidus-committee/fidusapi"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	force bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh the local snapshot from the FIDUS backend" }
func (*fetchCmd) Usage() string {
	return `fidus fetch [-force]

  Fetches the portfolio summary (AUM, allocation split, weekly performance)
  from the backend and overwrites the local snapshot. The backend is the
  source of truth; local edits to the series are replaced.

  On failure the last-known snapshot is kept, marked stale, and the command
  reports the error without destroying anything.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Bypass the daily response cache and hit the backend directly.")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	client := fidusapi.New(*apiBase)
	if c.force {
		client = fidusapi.NewDirect(*apiBase)
	}

	summary, err := client.Summary()
	if err != nil {
		// keep serving the last-known data, just flag it
		snapshot.Stale = true
		if saveErr := SaveSnapshot(snapshot); saveErr != nil {
			fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", saveErr)
		}
		fmt.Fprintf(os.Stderr, "Warning: backend fetch failed, keeping last-known data: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot.Allocation = summary.Allocation
	snapshot.Series.Replace(summary.Weekly)
	snapshot.FetchedAt = time.Now()
	snapshot.Stale = false

	if err := SaveSnapshot(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Fetched %d weeks, AUM %s, snapshot written to %s\n", snapshot.Series.Len(), snapshot.Allocation.AUM, *snapshotFile)
	return subcommands.ExitSuccess
}
