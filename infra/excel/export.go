package excel

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/POPASMALINOIS/control-de-muelles/core/model"
)

var reportHeaders = []string{
	"PLATE", "DESTINATION", "DOCK", "ACTUAL ARRIVAL", "ACTUAL DEPARTURE",
	"SEALS", "INCIDENTS", "REMARKS",
}

var reportWidths = []float64{18, 35, 12, 18, 18, 20, 40, 40}

// WriteHistory writes one report workbook per zone into dir and returns the
// created file paths. Records are grouped by the zone captured at
// finalization time.
func WriteHistory(dir string, records []model.HistoryRecord, date time.Time) ([]string, error) {
	byZone := make(map[int][]model.HistoryRecord)
	for _, rec := range records {
		byZone[rec.Zone] = append(byZone[rec.Zone], rec)
	}
	zones := make([]int, 0, len(byZone))
	for z := range byZone {
		zones = append(zones, z)
	}
	sort.Ints(zones)

	var paths []string
	for _, z := range zones {
		name := fmt.Sprintf("Zone_%d_%s.xlsx", z, date.Format("2006-01-02"))
		path := filepath.Join(dir, name)
		if err := writeZone(path, z, byZone[z]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeZone(path string, zone int, records []model.HistoryRecord) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := fmt.Sprintf("Zone %d", zone)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	for i, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, reportWidths[i]); err != nil {
			return err
		}
	}

	for r, rec := range records {
		values := []any{
			rec.Plate, rec.Cargo, rec.Dock, rec.ActualArrival,
			rec.ActualDeparture, rec.Seal, rec.IncidentNote, rec.Remarks,
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}
