package export

import (
	"fmt"
	"io"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName   = "Monthly Report"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	notApplied  = "N/A"
)

type column struct {
	header string
	width  float64
}

var columns = []column{
	{"Date", 12},
	{"Clock In Time", 15},
	{"Clock In Location", 30},
	{"Status", 18},
	{"Clock Out Time", 15},
	{"Clock Out Location", 30},
}

func FileName(period model.Period) string {
	return period.FileName()
}

func statusLabel(rec *model.AttendanceRecord) string {
	if rec == nil {
		return notApplied
	}
	return utils.FormatBoolean(rec.IsPending(), "Pending Approval", "Approved")
}

func clockTime(rec *model.AttendanceRecord, loc *time.Location) string {
	if rec == nil {
		return notApplied
	}
	return rec.Time().In(loc).Format("03:04 PM")
}

func placeName(rec *model.AttendanceRecord) string {
	if rec == nil {
		return notApplied
	}
	return utils.FormatOr(rec.PlaceName, notApplied)
}

// Rows renders one row per day, in the order given.
func Rows(days []model.DailySummary, loc *time.Location) [][]string {
	if loc == nil {
		loc = time.Local
	}
	return utils.Map(days, func(d model.DailySummary) []string {
		return []string{
			d.Date,
			clockTime(d.ClockIn, loc),
			placeName(d.ClockIn),
			statusLabel(d.ClockIn),
			clockTime(d.ClockOut, loc),
			placeName(d.ClockOut),
		}
	})
}

// WriteMonthlyReport writes the report as an xlsx workbook with a single sheet.
func WriteMonthlyReport(w io.Writer, report core.Report, loc *time.Location) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := utils.Map(columns, func(c column) interface{} { return c.header })
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range Rows(report.Days, loc) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := utils.Map(row, func(v string) interface{} { return v })
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for i, c := range columns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, c.width); err != nil {
			return fmt.Errorf("set width of %s: %w", name, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
