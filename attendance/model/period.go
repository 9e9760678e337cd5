package model

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar month. Month uses time.Month numbering (1-12).
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q, expected YYYY-MM", s)
	}
	p := PeriodOf(t)
	if !p.Valid() {
		return Period{}, fmt.Errorf("invalid period %q, year must be positive", s)
	}
	return p, nil
}

func (p Period) Valid() bool {
	return p.Year > 0 && p.Month >= time.January && p.Month <= time.December
}

func (p Period) Contains(t time.Time, loc *time.Location) bool {
	local := t.In(loc)
	return local.Year() == p.Year && local.Month() == p.Month
}

// Name renders e.g. "October 2026".
func (p Period) Name() string {
	return fmt.Sprintf("%s %d", p.Month.String(), p.Year)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// FileName renders e.g. "Monthly_Report_October_2026.xlsx".
func (p Period) FileName() string {
	return "Monthly_Report_" + strings.ReplaceAll(p.Name(), " ", "_") + ".xlsx"
}
