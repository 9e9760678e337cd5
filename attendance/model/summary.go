package model

import "time"

// DailySummary is one local calendar day. Date is "YYYY-MM-DD" in the
// reporting timezone.
type DailySummary struct {
	Date     string            `json:"date"`
	ClockIn  *AttendanceRecord `json:"clockIn"`
	ClockOut *AttendanceRecord `json:"clockOut"`
}

// SharedReport is what a share token resolves to.
type SharedReport struct {
	UserEmail string     `json:"userEmail"`
	Month     time.Month `json:"month"`
	Year      int        `json:"year"`
}

func (s SharedReport) Period() Period {
	return Period{Year: s.Year, Month: s.Month}
}
