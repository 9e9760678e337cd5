package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent [][]model.AttendanceRecord
	err  error
}

func (f *fakeSender) PendingDigest(records []model.AttendanceRecord) string {
	return "digest"
}

func (f *fakeSender) SendPendingDigest(_ context.Context, records []model.AttendanceRecord) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, records)
	return nil
}

func seededRecords(t *testing.T) *store.RecordStore {
	t.Helper()
	day := time.Date(2026, time.October, 5, 0, 0, 0, 0, time.UTC)
	records := store.NewRecordStore(store.NewMemoryStore())
	_, err := records.Update(context.Background(), func(existing []model.AttendanceRecord) ([]model.AttendanceRecord, bool) {
		return []model.AttendanceRecord{
			{ID: 3, UserEmail: "bob@rcn.example", Type: model.RecordTypeIn, Timestamp: day.Add(12 * time.Hour).UnixMilli(), Status: model.StatusPending},
			{ID: 1, UserEmail: "alice@rcn.example", Type: model.RecordTypeIn, Timestamp: day.Add(10 * time.Hour).UnixMilli(), Status: model.StatusApproved},
			{ID: 2, UserEmail: "alice@rcn.example", Type: model.RecordTypeIn, Timestamp: day.Add(11*time.Hour + time.Minute).UnixMilli(), Status: model.StatusPending},
		}, true
	})
	require.NoError(t, err)
	return records
}

func TestSendDigest(t *testing.T) {
	sender := &fakeSender{}
	res, err := SendDigest(context.Background(), seededRecords(t), sender, false)
	require.NoError(t, err)

	assert.Equal(t, DigestResult{Pending: 2, Sent: true, Message: "digest"}, res)
	require.Len(t, sender.sent, 1)
	require.Len(t, sender.sent[0], 2)
	assert.EqualValues(t, 2, sender.sent[0][0].ID)
	assert.EqualValues(t, 3, sender.sent[0][1].ID)
}

func TestSendDigestDryRun(t *testing.T) {
	sender := &fakeSender{}
	res, err := SendDigest(context.Background(), seededRecords(t), sender, true)
	require.NoError(t, err)
	assert.False(t, res.Sent)
	assert.Equal(t, 2, res.Pending)
	assert.Empty(t, sender.sent)
}

func TestSendDigestFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("channel_not_found")}
	res, err := SendDigest(context.Background(), seededRecords(t), sender, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
	assert.False(t, res.Sent)
}
