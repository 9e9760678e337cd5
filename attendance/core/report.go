package core

import (
	"context"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
)

type Report struct {
	Employee          model.Employee       `json:"employee"`
	Period            model.Period         `json:"period"`
	MonthName         string               `json:"monthName"`
	Days              []model.DailySummary `json:"days"`
	TotalApprovedDays int                  `json:"totalApprovedDays"`
}

type ReportService struct {
	Roster   *Roster
	Records  *store.RecordStore
	Shares   *ShareService
	Location *time.Location
}

func (s *ReportService) Build(ctx context.Context, email string, period model.Period) (Report, error) {
	emp, ok := s.Roster.Find(email)
	if !ok {
		return Report{}, ErrEmployeeNotFound
	}
	days := SummarizeMonth(s.Records.ForUser(ctx, emp.Email), emp.Email, period, s.Location)
	return Report{
		Employee:          emp,
		Period:            period,
		MonthName:         period.Name(),
		Days:              days,
		TotalApprovedDays: TotalApprovedDays(days),
	}, nil
}

// Shared builds the report a share token points at.
func (s *ReportService) Shared(ctx context.Context, token string) (Report, error) {
	shared, err := s.Shares.Resolve(ctx, token)
	if err != nil {
		return Report{}, err
	}
	return s.Build(ctx, shared.UserEmail, shared.Period())
}
