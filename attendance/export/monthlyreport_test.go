package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport() core.Report {
	in := &model.AttendanceRecord{
		ID:        1,
		Type:      model.RecordTypeIn,
		Timestamp: time.Date(2026, 10, 15, 9, 40, 0, 0, time.UTC).UnixMilli(),
		PlaceName: utils.Ptr("Bengaluru, India"),
		Status:    model.StatusApproved,
	}
	out := &model.AttendanceRecord{
		ID:        2,
		Type:      model.RecordTypeOut,
		Timestamp: time.Date(2026, 10, 15, 18, 30, 0, 0, time.UTC).UnixMilli(),
		Status:    model.StatusApproved,
	}
	late := &model.AttendanceRecord{
		ID:        3,
		Type:      model.RecordTypeIn,
		Timestamp: time.Date(2026, 10, 14, 11, 45, 0, 0, time.UTC).UnixMilli(),
		PlaceName: utils.Ptr("Mysuru, India"),
		Status:    model.StatusPending,
	}
	return core.Report{
		Employee: model.Employee{Email: "alice@rcn.example", Name: "Alice", Role: model.RoleMember},
		Period:   model.Period{Year: 2026, Month: time.October},
		Days: []model.DailySummary{
			{Date: "2026-10-15", ClockIn: in, ClockOut: out},
			{Date: "2026-10-14", ClockIn: late},
			{Date: "2026-10-13"},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleReport().Days, time.UTC)
	assert.Equal(t, [][]string{
		{"2026-10-15", "09:40 AM", "Bengaluru, India", "Approved", "06:30 PM", "N/A"},
		{"2026-10-14", "11:45 AM", "Mysuru, India", "Pending Approval", "N/A", "N/A"},
		{"2026-10-13", "N/A", "N/A", "N/A", "N/A", "N/A"},
	}, rows)
}

func TestWriteMonthlyReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMonthlyReport(&buf, sampleReport(), time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Clock In Time", "Clock In Location", "Status", "Clock Out Time", "Clock Out Location"}, rows[0])
	assert.Equal(t, []string{"2026-10-14", "11:45 AM", "Mysuru, India", "Pending Approval", "N/A", "N/A"}, rows[2])

	widths := map[string]float64{"A": 12, "B": 15, "C": 30, "D": 18, "E": 15, "F": 30}
	for col, want := range widths {
		got, err := f.GetColWidth(SheetName, col)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 0.01, col)
	}
}

func TestWriteMonthlyReportEmpty(t *testing.T) {
	report := sampleReport()
	report.Days = nil

	var buf bytes.Buffer
	require.NoError(t, WriteMonthlyReport(&buf, report, time.UTC))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Monthly_Report_October_2026.xlsx", FileName(report.Period))
}
