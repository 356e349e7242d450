package committee

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// This file contains the import/export formats for the weekly return series.
//
// Export is a CSV with the header `Week,CORE,BALANCE,DYNAMIC` and one line
// per row in current order, plus a JSON array mirroring the row objects.
//
// Import accepts the same CSV, or a workbook whose committee sheet carries a
// header row with any recognized spelling of the four columns. Import is all
// or nothing: a file that yields zero valid rows is rejected and the caller's
// existing series must be left unchanged.

// CommitteeSheet is the workbook sheet the committee publishes its weekly
// figures on. When absent, the first sheet is read instead.
const CommitteeSheet = "FIDUS Investment Committee"

// ErrNoRows is returned when an imported file yields no usable rows.
// Callers surface it as a blocking error and keep their current series.
var ErrNoRows = fmt.Errorf("no valid rows found: need a header with Week, CORE, BALANCE, DYNAMIC columns and at least one row with a week label")

// headerAliases maps each canonical column to its accepted header spellings.
// Matching is case-insensitive on top of the listed variants, so `WEEK` or
// `Core` resolve without their own entries.
var headerAliases = map[string][]string{
	"week":    {"week"},
	"CORE":    {"core", "core fund"},
	"BALANCE": {"balance", "balance fund"},
	"DYNAMIC": {"dynamic", "dynamic fund"},
}

// resolveHeader maps a header row to column indices per canonical field.
// Unrecognized columns are ignored; a canonical field missing from the
// header simply stays unmapped and defaults every cell to zero.
func resolveHeader(header []string) map[string]int {
	cols := make(map[string]int)
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		for canonical, aliases := range headerAliases {
			for _, alias := range aliases {
				if name == alias {
					if _, taken := cols[canonical]; !taken {
						cols[canonical] = i
					}
				}
			}
		}
	}
	return cols
}

// rowsFromRecords converts tabular records (header row included) into weekly
// return rows. Rows lacking a week label are dropped; missing or malformed
// numeric cells default to 0.
func rowsFromRecords(records [][]string) ([]WeeklyReturnRow, error) {
	if len(records) == 0 {
		return nil, ErrNoRows
	}
	cols := resolveHeader(records[0])
	weekCol, ok := cols["week"]
	if !ok {
		return nil, ErrNoRows
	}

	cell := func(record []string, canonical string) string {
		i, ok := cols[canonical]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []WeeklyReturnRow
	for _, record := range records[1:] {
		if weekCol >= len(record) {
			continue
		}
		label := strings.TrimSpace(record[weekCol])
		if label == "" {
			continue
		}
		rows = append(rows, WeeklyReturnRow{
			Week:    label,
			Core:    CoercePercent(cell(record, "CORE")),
			Balance: CoercePercent(cell(record, "BALANCE")),
			Dynamic: CoercePercent(cell(record, "DYNAMIC")),
		})
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

// ImportCSV reads a weekly return series from CSV.
func ImportCSV(r io.Reader) ([]WeeklyReturnRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse csv: %w", err)
	}
	return rowsFromRecords(records)
}

// ImportWorkbook reads a weekly return series from a binary workbook.
// It reads the committee sheet if present, else the first sheet.
func ImportWorkbook(r io.Reader) ([]WeeklyReturnRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}
	sheet := sheets[0]
	for _, s := range sheets {
		if s == CommitteeSheet {
			sheet = s
			break
		}
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	return rowsFromRecords(records)
}

// fmtPercent renders a return value without trailing zeros, so an exported
// file re-imports to the same numbers.
func fmtPercent(p Percent) string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// ExportCSV writes the series as CSV with the canonical header.
func ExportCSV(w io.Writer, rows []WeeklyReturnRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Week", "CORE", "BALANCE", "DYNAMIC"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Week, fmtPercent(row.Core), fmtPercent(row.Balance), fmtPercent(row.Dynamic)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportJSON writes the series as a JSON array mirroring the row objects.
func ExportJSON(w io.Writer, rows []WeeklyReturnRow) error {
	out := make([]jrow, 0, len(rows))
	for _, row := range rows {
		out = append(out, jrow{
			Week:    row.Week,
			Core:    float64(row.Core),
			Balance: float64(row.Balance),
			Dynamic: float64(row.Dynamic),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
