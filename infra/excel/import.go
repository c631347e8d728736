// Package excel adapts yard schedules to and from spreadsheet workbooks.
// The importer yields normalized batches for the engine; the exporter writes
// one report workbook per zone from the finalization history.
package excel

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
	"github.com/POPASMALINOIS/control-de-muelles/core/yard"
)

// headerScanRows bounds how deep the header row is searched for; operational
// files often carry a title block above the table.
const headerScanRows = 10

type columnIndices struct {
	dock      int
	carrier   int
	cargo     int
	arrival   int
	departure int
	plate     int
	seal      int
	remarks   int
}

// ReadBatch opens the workbook at path and normalizes its first sheet into
// an import batch. The batch zone is derived from the file name.
func ReadBatch(path string) (model.ImportBatch, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return model.ImportBatch{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readBatch(f, filepath.Base(path))
}

// ReadBatchFrom normalizes a workbook read from r. The source name is used
// for zone derivation and reporting only.
func ReadBatchFrom(r io.Reader, source string) (model.ImportBatch, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.ImportBatch{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readBatch(f, source)
}

func readBatch(f *excelize.File, source string) (model.ImportBatch, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return model.ImportBatch{}, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	headerRow, cols, ok := findHeader(rows)
	if !ok {
		return model.ImportBatch{}, fmt.Errorf(
			"%s: required columns (carrier, dock) not found: %w", source, yard.ErrImportFormat)
	}

	batch := model.ImportBatch{Source: source, Zone: model.ZoneFromSource(source)}
	for _, row := range rows[headerRow+1:] {
		if len(row) == 0 {
			continue
		}
		dock, err := strconv.Atoi(strings.TrimSpace(cell(row, cols.dock)))
		if err != nil {
			continue
		}
		batch.Records = append(batch.Records, model.ImportRecord{
			Dock:               dock,
			Carrier:            strings.TrimSpace(cell(row, cols.carrier)),
			Cargo:              strings.TrimSpace(cell(row, cols.cargo)),
			ScheduledArrival:   clockValue(cell(row, cols.arrival)),
			ScheduledDeparture: clockValue(cell(row, cols.departure)),
			Plate:              strings.TrimSpace(cell(row, cols.plate)),
			Seal:               strings.TrimSpace(cell(row, cols.seal)),
			Remarks:            strings.TrimSpace(cell(row, cols.remarks)),
		})
	}
	return batch, nil
}

// findHeader scans the first rows for one containing both a carrier and a
// dock column, matching header text case-insensitively by substring.
func findHeader(rows [][]string) (int, columnIndices, bool) {
	limit := len(rows)
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		row := rows[i]
		if len(row) <= 3 {
			continue
		}
		cols := columnIndices{
			dock:      findColumn(row, "dock"),
			carrier:   findColumn(row, "carrier"),
			cargo:     findColumn(row, "destination"),
			arrival:   findColumn(row, "arrival"),
			departure: findColumnAny(row, "departure cap", "departure-cap", "departure"),
			plate:     findColumn(row, "plate"),
			seal:      findColumn(row, "seal"),
			remarks:   findColumn(row, "remarks"),
		}
		if cols.dock >= 0 && cols.carrier >= 0 {
			return i, cols, true
		}
	}
	return 0, columnIndices{}, false
}

// findColumnAny tries the needles in order, so a cap-qualified departure
// header wins over a bare "departure" match.
func findColumnAny(headers []string, needles ...string) int {
	for _, n := range needles {
		if i := findColumn(headers, n); i >= 0 {
			return i
		}
	}
	return -1
}

func findColumn(headers []string, needle string) int {
	for i, h := range headers {
		if strings.Contains(strings.ToLower(strings.TrimSpace(h)), needle) {
			return i
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

var clockCell = regexp.MustCompile(`^\d{1,2}:\d{2}`)

// clockValue normalizes a time cell to HH:MM. Spreadsheets store times
// either as text or as a numeric fraction of a day.
func clockValue(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	if m := clockCell.FindString(s); m != "" {
		return m
	}
	frac, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ""
	}
	total := int(math.Round(frac * 24 * 60))
	return fmt.Sprintf("%02d:%02d", total/60%24, total%60)
}
