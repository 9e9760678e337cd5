package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/geo"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlaces struct{ name string }

func (f fakePlaces) PlaceName(context.Context, model.GeoLocation) string { return f.name }

type recordingNotifier struct {
	mu      sync.Mutex
	records []model.AttendanceRecord
	err     error
}

func (n *recordingNotifier) NotifyPending(_ context.Context, _ model.Employee, r model.AttendanceRecord) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.records = append(n.records, r)
	return n.err
}

type blockingLocator struct {
	started chan struct{}
	release chan struct{}
}

func (b blockingLocator) Locate(context.Context) (model.GeoLocation, error) {
	close(b.started)
	<-b.release
	return model.GeoLocation{Latitude: 1, Longitude: 2, Accuracy: 3}, nil
}

func newClockService(now time.Time) (*ClockService, *store.RecordStore, *recordingNotifier) {
	rs := store.NewRecordStore(store.NewMemoryStore())
	rs.Now = func() time.Time { return now }
	n := &recordingNotifier{}
	return &ClockService{
		Records:    rs,
		Rules:      DefaultRules(time.UTC),
		Places:     fakePlaces{name: "Bengaluru, India"},
		Notifier:   n,
		GeoTimeout: time.Second,
		Now:        func() time.Time { return now },
	}, rs, n
}

var bengaluru = &model.GeoLocation{Latitude: 12.9716, Longitude: 77.5946, Accuracy: 25}

func TestClockInOnTime(t *testing.T) {
	ctx := context.Background()
	svc, rs, n := newClockService(at(15, 10, 0))
	session := sessionFor(t, testRoster(t), alice)

	res, err := svc.Clock(ctx, session, model.RecordTypeIn, geo.Reported{Position: bengaluru})
	require.NoError(t, err)
	assert.True(t, res.ClockedIn)
	assert.Empty(t, res.LocationAdvisory)
	assert.Equal(t, model.StatusApproved, res.Record.Status)
	assert.Equal(t, *bengaluru, *res.Record.Location)
	assert.Equal(t, "Bengaluru, India", *res.Record.PlaceName)
	assert.Equal(t, at(15, 10, 0).UnixMilli(), res.Record.Timestamp)
	assert.Empty(t, n.records)

	assert.True(t, svc.Status(ctx, session).ClockedIn)
	assert.Len(t, rs.All(ctx), 1)
}

func TestClockInLateIsPendingAndNotifies(t *testing.T) {
	ctx := context.Background()
	svc, _, n := newClockService(at(15, 11, 30))
	n.err = errors.New("slack down")
	session := sessionFor(t, testRoster(t), alice)

	res, err := svc.Clock(ctx, session, model.RecordTypeIn, geo.Reported{Position: bengaluru})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, res.Record.Status)
	require.Len(t, n.records, 1)
	assert.Equal(t, res.Record.ID, n.records[0].ID)
}

func TestClockWithoutLocation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newClockService(at(15, 9, 45))
	session := sessionFor(t, testRoster(t), alice)

	res, err := svc.Clock(ctx, session, model.RecordTypeIn, geo.Reported{Reason: "permission denied"})
	require.NoError(t, err)
	assert.Equal(t, geo.AdvisoryDenied, res.LocationAdvisory)
	assert.Nil(t, res.Record.Location)
	assert.Nil(t, res.Record.PlaceName)
}

func TestClockOutBeforeThresholdCreatesNothing(t *testing.T) {
	ctx := context.Background()
	svc, rs, _ := newClockService(at(15, 17, 0))
	session := sessionFor(t, testRoster(t), alice)

	_, err := svc.Clock(ctx, session, model.RecordTypeOut, geo.Reported{Position: bengaluru})
	assert.ErrorIs(t, err, ErrClockOutNotAllowed)
	assert.Empty(t, rs.All(ctx))

	svc.Now = func() time.Time { return at(15, 18, 0) }
	res, err := svc.Clock(ctx, session, model.RecordTypeOut, geo.Reported{Position: bengaluru})
	require.NoError(t, err)
	assert.False(t, res.ClockedIn)
	assert.Equal(t, model.StatusApproved, res.Record.Status)
}

func TestClockRejectsConcurrentActionForSameUser(t *testing.T) {
	ctx := context.Background()
	svc, rs, _ := newClockService(at(15, 10, 0))
	roster := testRoster(t)
	session := sessionFor(t, roster, alice)

	loc := blockingLocator{started: make(chan struct{}), release: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		_, err := svc.Clock(ctx, session, model.RecordTypeIn, loc)
		done <- err
	}()
	<-loc.started

	_, err := svc.Clock(ctx, session, model.RecordTypeIn, geo.Reported{Position: bengaluru})
	assert.ErrorIs(t, err, ErrActionInProgress)

	// other users are not blocked
	_, err = svc.Clock(ctx, sessionFor(t, roster, "bob@rcn.example"), model.RecordTypeIn, geo.Reported{Position: bengaluru})
	assert.NoError(t, err)

	close(loc.release)
	require.NoError(t, <-done)
	assert.Len(t, rs.All(ctx), 2)
}

func TestStatusWithNoRecords(t *testing.T) {
	svc, _, _ := newClockService(at(15, 18, 30))
	status := svc.Status(context.Background(), sessionFor(t, testRoster(t), alice))
	assert.False(t, status.ClockedIn)
	assert.Nil(t, status.LastRecord)
	assert.True(t, status.CanClockOut)
	assert.False(t, status.ClockInOnTime)
}
