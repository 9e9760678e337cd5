package core

import (
	"context"
	"testing"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-test-secret-test-sec")

func at(day, hour, minute int) time.Time {
	return time.Date(2026, time.October, day, hour, minute, 0, 0, time.UTC)
}

func rec(id int64, email string, typ model.RecordType, t time.Time, status model.RecordStatus) model.AttendanceRecord {
	return model.AttendanceRecord{ID: id, UserEmail: email, Type: typ, Timestamp: t.UnixMilli(), Status: status}
}

func testRoster(t *testing.T) *Roster {
	t.Helper()
	r, err := NewRoster([]model.Employee{
		{Email: "manager@rcn.example", Name: "Meera Rao", Role: model.RoleManager},
		{Email: "Alice@rcn.example", Name: "Alice", Role: model.RoleMember},
		{Email: "bob@rcn.example", Name: "Bob", Role: model.RoleMember},
	})
	require.NoError(t, err)
	return r
}

func sessionFor(t *testing.T, r *Roster, email string) *Session {
	t.Helper()
	emp, ok := r.Find(email)
	require.True(t, ok)
	return &Session{ID: "sid-" + email, Employee: emp}
}

func seed(t *testing.T, rs *store.RecordStore, records ...model.AttendanceRecord) {
	t.Helper()
	_, err := rs.Update(context.Background(), func(existing []model.AttendanceRecord) ([]model.AttendanceRecord, bool) {
		return append(existing, records...), true
	})
	require.NoError(t, err)
}
