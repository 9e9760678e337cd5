package core

import (
	"slices"
	"strings"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
)

// RecordGroup is one local calendar day of records, oldest first. Date is
// the grouping key, so it sorts lexically.
type RecordGroup struct {
	Date    string
	Records []model.AttendanceRecord
}

// GetClockIn returns the earliest clock-in of the day.
func (rg *RecordGroup) GetClockIn() *model.AttendanceRecord {
	for i := range rg.Records {
		if rg.Records[i].Type == model.RecordTypeIn {
			rec := rg.Records[i]
			return &rec
		}
	}
	return nil
}

// GetClockOut returns the latest clock-out of the day.
func (rg *RecordGroup) GetClockOut() *model.AttendanceRecord {
	for i := len(rg.Records) - 1; i >= 0; i-- {
		if rg.Records[i].Type == model.RecordTypeOut {
			rec := rg.Records[i]
			return &rec
		}
	}
	return nil
}

func (rg *RecordGroup) Summary() model.DailySummary {
	return model.DailySummary{Date: rg.Date, ClockIn: rg.GetClockIn(), ClockOut: rg.GetClockOut()}
}

// GroupRecords buckets records by local date. Groups come back newest day
// first. The input slice is not modified.
func GroupRecords(records []model.AttendanceRecord, loc *time.Location) []*RecordGroup {
	if loc == nil {
		loc = time.Local
	}
	dategroups := utils.GroupBy(records, func(r model.AttendanceRecord) string {
		return r.Time().In(loc).Format(utils.DateLayout)
	})

	groups := make([]*RecordGroup, 0, len(dategroups))
	for date, recs := range dategroups {
		slices.SortStableFunc(recs, compareRecords)
		groups = append(groups, &RecordGroup{Date: date, Records: recs})
	}

	slices.SortFunc(groups, func(a, b *RecordGroup) int {
		return strings.Compare(b.Date, a.Date)
	})
	return groups
}

// Summarize reduces records to one entry per local day: earliest clock-in
// and latest clock-out, newest day first.
func Summarize(records []model.AttendanceRecord, loc *time.Location) []model.DailySummary {
	return utils.Map(GroupRecords(records, loc), (*RecordGroup).Summary)
}

// SummarizeMonth restricts Summarize to one user and one calendar month.
func SummarizeMonth(records []model.AttendanceRecord, email string, period model.Period, loc *time.Location) []model.DailySummary {
	if loc == nil {
		loc = time.Local
	}
	email = model.NormalizeEmail(email)
	mine := utils.Filter(records, func(r model.AttendanceRecord) bool {
		return strings.EqualFold(r.UserEmail, email) && period.Contains(r.Time(), loc)
	})
	return Summarize(mine, loc)
}

// TotalApprovedDays counts days whose clock-in exists and is approved.
func TotalApprovedDays(days []model.DailySummary) int {
	return len(utils.Filter(days, func(d model.DailySummary) bool {
		return d.ClockIn != nil && d.ClockIn.Status == model.StatusApproved
	}))
}
