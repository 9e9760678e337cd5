package core

import (
	"context"
	"slices"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/rachitshetty07/Attendance-RCN/utils"
)

// Approve marks the pending record with id as approved in a copy of
// records. It reports false when no pending record has that id.
func Approve(records []model.AttendanceRecord, id int64) ([]model.AttendanceRecord, bool) {
	updated := slices.Clone(records)
	rec := utils.Find(updated, func(r *model.AttendanceRecord) bool { return r.ID == id })
	if rec == nil || rec.Status == model.StatusApproved {
		return records, false
	}
	rec.Status = model.StatusApproved
	return updated, true
}

type ApprovalService struct {
	Records *store.RecordStore
}

// Approve is a no-op for unknown or already approved ids.
func (s *ApprovalService) Approve(ctx context.Context, session *Session, id int64) (bool, error) {
	if !session.Employee.IsManager() {
		return false, ErrForbidden
	}
	changed, err := s.Records.Update(ctx, func(records []model.AttendanceRecord) ([]model.AttendanceRecord, bool) {
		return Approve(records, id)
	})
	if err != nil {
		return false, err
	}
	if changed {
		log.WithField("recordId", id).WithField("approvedBy", session.Employee.Email).Info("attendance approved")
	}
	return changed, nil
}

// Pending lists every pending record, newest first.
func (s *ApprovalService) Pending(ctx context.Context, session *Session) ([]model.AttendanceRecord, error) {
	if !session.Employee.IsManager() {
		return nil, ErrForbidden
	}
	pending := utils.Filter(s.Records.All(ctx), func(r model.AttendanceRecord) bool { return r.IsPending() })
	slices.SortFunc(pending, func(a, b model.AttendanceRecord) int { return compareRecords(b, a) })
	return pending, nil
}
