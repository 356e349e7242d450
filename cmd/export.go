package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	committee "github.com/chavapalmarubin-lab/fidus-committee"
	"github.com/google/subcommands"
)

type exportCmd struct {
	format string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the weekly series as CSV or JSON" }
func (*exportCmd) Usage() string {
	return `fidus export [-format csv|json] [-o <file>]

  Writes the stored weekly series, in current order, as CSV with the header
  Week,CORE,BALANCE,DYNAMIC or as a JSON array of row objects.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Output format: csv or json.")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout).")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	rows := snapshot.Series.Rows()
	switch c.format {
	case "csv":
		err = committee.ExportCSV(w, rows)
	case "json":
		err = committee.ExportJSON(w, rows)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q (want csv or json)\n", c.format)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting series: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
