package committee

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// This file persists the local snapshot in a single JSONL file, human
// readable and git friendly. The snapshot is a cache of backend state, never
// a source of truth: a successful fetch overwrites it wholesale, and the
// stale flag records that the last refresh attempt failed.
//
// Format: the first line is a header object with the fetch metadata and the
// allocation split; every following line is one weekly return row.

// Snapshot is the locally cached view of the backend's portfolio summary,
// plus any local edits made since.
type Snapshot struct {
	FetchedAt  time.Time
	Stale      bool
	Allocation AllocationSplit
	Series     *Series
}

// NewSnapshot returns a snapshot with the default all-zero series,
// what a workspace holds before its first fetch.
func NewSnapshot() *Snapshot {
	return &Snapshot{Stale: true, Series: DefaultSeries()}
}

// jheader is the persisted form of the snapshot metadata line.
type jheader struct {
	FetchedAt string  `json:"fetched_at,omitempty"`
	Stale     bool    `json:"stale"`
	AUM       float64 `json:"aum"`
	Currency  string  `json:"currency,omitempty"`
	Core      float64 `json:"CORE"`
	Balance   float64 `json:"BALANCE"`
	Dynamic   float64 `json:"DYNAMIC"`
}

// jrow is the persisted form of one weekly return row.
type jrow struct {
	Week    string  `json:"week"`
	Core    float64 `json:"CORE"`
	Balance float64 `json:"BALANCE"`
	Dynamic float64 `json:"DYNAMIC"`
}

// EncodeSnapshot writes the snapshot in the JSONL cache format.
func EncodeSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	h := jheader{
		Stale:    s.Stale,
		AUM:      s.Allocation.AUM.AsFloat(),
		Currency: s.Allocation.AUM.Currency(),
		Core:     float64(s.Allocation.Core),
		Balance:  float64(s.Allocation.Balance),
		Dynamic:  float64(s.Allocation.Dynamic),
	}
	if !s.FetchedAt.IsZero() {
		h.FetchedAt = s.FetchedAt.Format(time.RFC3339)
	}
	if err := enc.Encode(h); err != nil {
		return fmt.Errorf("cannot encode snapshot header: %w", err)
	}
	for _, row := range s.Series.Rows() {
		j := jrow{
			Week:    row.Week,
			Core:    float64(row.Core),
			Balance: float64(row.Balance),
			Dynamic: float64(row.Dynamic),
		}
		if err := enc.Encode(j); err != nil {
			return fmt.Errorf("cannot encode week %q: %w", row.Week, err)
		}
	}
	return nil
}

// DecodeSnapshot reads a snapshot previously written by EncodeSnapshot.
// filename is for error messages only.
func DecodeSnapshot(filename string, r io.Reader) (*Snapshot, error) {
	s := &Snapshot{Series: NewSeries()}
	scanner := bufio.NewScanner(r)

	i := 0
	var rows []WeeklyReturnRow
	for scanner.Scan() {
		i++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if i == 1 {
			var h jheader
			if err := json.Unmarshal([]byte(line), &h); err != nil {
				return nil, fmt.Errorf("format error in %s:%d: %w", filename, i, err)
			}
			s.Stale = h.Stale
			if h.FetchedAt != "" {
				t, err := time.Parse(time.RFC3339, h.FetchedAt)
				if err != nil {
					return nil, fmt.Errorf("format error in %s:%d: bad fetched_at: %w", filename, i, err)
				}
				s.FetchedAt = t
			}
			s.Allocation = AllocationSplit{
				AUM:     M(h.AUM, h.Currency),
				Core:    Percent(h.Core),
				Balance: Percent(h.Balance),
				Dynamic: Percent(h.Dynamic),
			}
			continue
		}
		var j jrow
		if err := json.Unmarshal([]byte(line), &j); err != nil {
			return nil, fmt.Errorf("format error in %s:%d: %w", filename, i, err)
		}
		if j.Week == "" {
			return nil, fmt.Errorf("format error in %s:%d: missing week label", filename, i)
		}
		rows = append(rows, WeeklyReturnRow{
			Week:    j.Week,
			Core:    Percent(j.Core),
			Balance: Percent(j.Balance),
			Dynamic: Percent(j.Dynamic),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	if i == 0 {
		return nil, fmt.Errorf("format error in %s: empty snapshot", filename)
	}
	s.Series.Replace(rows)
	return s, nil
}
