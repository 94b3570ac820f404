package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/gosteel/boltcad"
)

// ScheduleRow is one line of an anchor bolt schedule.
type ScheduleRow struct {
	Mark     string
	Variant  boltcad.Variant
	Diameter int // mm
	Dims     boltcad.Dimensions
	Count    int
}

// scheduleHeader is the fixed column layout of the schedule sheet.
var scheduleHeader = []string{
	"Mark", "Variant", "Dia (mm)", "Length l (mm)", "Throw c (mm)",
	"Head a (mm)", "Radius r (mm)", "Count",
}

// WriteSchedule writes an XLSX anchor bolt schedule to w.
func WriteSchedule(w io.Writer, rows []ScheduleRow) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bolt Schedule"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("report: rename sheet: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "H", 14); err != nil {
		return fmt.Errorf("report: set column widths: %w", err)
	}

	for col, title := range scheduleHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("report: header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
	}

	for i, r := range rows {
		values := []any{
			r.Mark, r.Variant.String(), r.Diameter,
			r.Dims.Length, r.Dims.Throw, r.Dims.HeadWidth, r.Dims.Radius,
			r.Count,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("report: schedule cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("report: write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: write xlsx: %w", err)
	}
	return nil
}
