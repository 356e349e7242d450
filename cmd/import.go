package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	committee "github.com/chavapalmarubin-lab/fidus-committee"
	"github.com/google/subcommands"
)

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the series from a workbook or CSV file" }
func (*importCmd) Usage() string {
	return `fidus import -file <report.xlsx|report.csv>

  Reads the weekly series from a file and replaces the stored series with it.
  Workbooks use the "FIDUS Investment Committee" sheet when present, else the
  first sheet. Header names are matched case-insensitively; rows without a
  week label are dropped. A file yielding zero valid rows is rejected and the
  stored series is left unchanged.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "File to import (.xlsx or .csv).")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	var rows []committee.WeeklyReturnRow
	if strings.EqualFold(filepath.Ext(c.file), ".csv") {
		rows, err = committee.ImportCSV(in)
	} else {
		rows, err = committee.ImportWorkbook(in)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: import of %q rejected: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	snapshot, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	snapshot.Series.Replace(rows)
	if err := SaveSnapshot(snapshot); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving snapshot: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d weeks from %s\n", len(rows), c.file)
	return subcommands.ExitSuccess
}
