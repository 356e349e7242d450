package committee

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeSnapshot(t *testing.T) {
	s := &Snapshot{
		FetchedAt: time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC),
		Allocation: AllocationSplit{
			AUM:     M(2500000, "USD"),
			Core:    50,
			Balance: 30,
			Dynamic: 20,
		},
		Series: NewSeries(),
	}
	s.Series.Replace([]WeeklyReturnRow{
		{Week: "Week 1", Core: 2, Balance: 1, Dynamic: -1},
		{Week: "Week 2", Core: 0.5, Balance: 0, Dynamic: 1.25},
	})

	var b strings.Builder
	if err := EncodeSnapshot(&b, s); err != nil {
		t.Fatalf("EncodeSnapshot() unexpected error: %v", err)
	}

	got, err := DecodeSnapshot("test.jsonl", strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeSnapshot() unexpected error: %v", err)
	}

	if !got.FetchedAt.Equal(s.FetchedAt) {
		t.Errorf("FetchedAt = %v, want %v", got.FetchedAt, s.FetchedAt)
	}
	if got.Stale != s.Stale {
		t.Errorf("Stale = %v, want %v", got.Stale, s.Stale)
	}
	if !got.Allocation.AUM.Equal(s.Allocation.AUM) {
		t.Errorf("AUM = %v, want %v", got.Allocation.AUM, s.Allocation.AUM)
	}
	if !got.Allocation.Core.Equal(50) || !got.Allocation.Balance.Equal(30) || !got.Allocation.Dynamic.Equal(20) {
		t.Errorf("allocation = %+v, want 50/30/20", got.Allocation)
	}
	if got.Series.Len() != 2 {
		t.Fatalf("series has %d weeks, want 2", got.Series.Len())
	}
	rows := got.Series.Rows()
	if rows[1].Week != "Week 2" || !rows[1].Dynamic.Equal(1.25) {
		t.Errorf("row 1 = %+v, want Week 2 with DYNAMIC 1.25", rows[1])
	}
}

func TestDecodeSnapshot_StaleFlag(t *testing.T) {
	content := `{"stale":true,"aum":100,"currency":"USD","CORE":50,"BALANCE":30,"DYNAMIC":20}
{"week":"Week 1","CORE":1,"BALANCE":1,"DYNAMIC":1}
`
	got, err := DecodeSnapshot("test.jsonl", strings.NewReader(content))
	if err != nil {
		t.Fatalf("DecodeSnapshot() unexpected error: %v", err)
	}
	if !got.Stale {
		t.Errorf("Stale = false, want true")
	}
	if !got.FetchedAt.IsZero() {
		t.Errorf("FetchedAt = %v, want zero when absent", got.FetchedAt)
	}
}

func TestDecodeSnapshot_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "bad header", content: "not json\n"},
		{name: "bad row", content: "{\"stale\":false,\"aum\":0,\"CORE\":0,\"BALANCE\":0,\"DYNAMIC\":0}\nnot json\n"},
		{name: "row without week", content: "{\"stale\":false,\"aum\":0,\"CORE\":0,\"BALANCE\":0,\"DYNAMIC\":0}\n{\"CORE\":1}\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeSnapshot("test.jsonl", strings.NewReader(tc.content)); err == nil {
				t.Errorf("DecodeSnapshot() expected an error")
			}
		})
	}
}
