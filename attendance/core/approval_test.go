package core

import (
	"context"
	"testing"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApprovePure(t *testing.T) {
	records := []model.AttendanceRecord{
		rec(1, alice, model.RecordTypeIn, at(15, 11, 30), model.StatusPending),
		rec(2, alice, model.RecordTypeOut, at(15, 18, 30), model.StatusApproved),
	}

	updated, changed := Approve(records, 1)
	assert.True(t, changed)
	assert.Equal(t, model.StatusApproved, updated[0].Status)
	assert.Equal(t, model.StatusPending, records[0].Status, "input must not be mutated")

	again, changed := Approve(updated, 1)
	assert.False(t, changed)
	assert.Equal(t, updated, again)

	_, changed = Approve(records, 99)
	assert.False(t, changed)
}

func TestApprovalService(t *testing.T) {
	ctx := context.Background()
	roster := testRoster(t)
	rs := store.NewRecordStore(store.NewMemoryStore())
	seed(t, rs,
		rec(1, alice, model.RecordTypeIn, at(15, 11, 30), model.StatusPending),
		rec(2, "bob@rcn.example", model.RecordTypeIn, at(16, 9, 0), model.StatusPending),
		rec(3, alice, model.RecordTypeIn, at(14, 10, 0), model.StatusApproved),
	)
	svc := &ApprovalService{Records: rs}
	manager := sessionFor(t, roster, "manager@rcn.example")
	member := sessionFor(t, roster, alice)

	pending, err := svc.Pending(ctx, manager)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(2), pending[0].ID, "newest first")

	_, err = svc.Pending(ctx, member)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Approve(ctx, member, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	changed, err := svc.Approve(ctx, manager, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	// approving twice is a silent no-op
	changed, err = svc.Approve(ctx, manager, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = svc.Approve(ctx, manager, 12345)
	require.NoError(t, err)
	assert.False(t, changed)

	pending, err = svc.Pending(ctx, manager)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, int64(2), pending[0].ID)
}
