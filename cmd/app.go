// Package cmd implements the CLI application for the FIDUS committee tool.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	committee "github.com/chavapalmarubin-lab/fidus-committee"
	"github.com/google/subcommands"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&summaryCmd{},
	&projectCmd{},
	&simulateCmd{},
	&setCmd{},
	&addWeekCmd{},
	&removeWeekCmd{},
	&resetCmd{},
	&importCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("snapshot-file", filepath.Join(".fidus", "snapshot.jsonl"), "Path to the local snapshot file (JSONL format)")
var apiBase = flag.String("api", defaultAPIBase(), "Base URL of the FIDUS backend API")

func defaultAPIBase() string {
	if v := os.Getenv("FIDUS_API_URL"); v != "" {
		return v
	}
	return "http://localhost:8001"
}

// LoadSnapshot reads the local snapshot file.
func LoadSnapshot() (*committee.Snapshot, error) {
	f, err := os.Open(*snapshotFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, snapshot does not exist, starting from the default series")
		return committee.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open snapshot %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	return committee.DecodeSnapshot(*snapshotFile, f)
}

// SaveSnapshot writes the snapshot back to the local snapshot file.
func SaveSnapshot(s *committee.Snapshot) error {
	if dir := filepath.Dir(*snapshotFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create snapshot directory %q: %w", dir, err)
		}
	}
	f, err := os.Create(*snapshotFile)
	if err != nil {
		return fmt.Errorf("cannot write snapshot %q: %w", *snapshotFile, err)
	}
	defer f.Close()
	return committee.EncodeSnapshot(f, s)
}

// printMarkdown renders markdown content for the terminal.
func printMarkdown(content string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, rerr := r.Render(content); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	// glamour is cosmetic: fall back to the raw markdown.
	fmt.Print(content)
}
