package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
)

// RecordStore persists every attendance record as one JSON array. Each
// mutation rewrites the whole array under a mutex.
type RecordStore struct {
	blobs BlobStore
	mu    sync.Mutex
	Now   func() time.Time
}

func NewRecordStore(blobs BlobStore) *RecordStore {
	return &RecordStore{blobs: blobs, Now: time.Now}
}

func (s *RecordStore) load(ctx context.Context) ([]model.AttendanceRecord, error) {
	records, err := loadJSON[[]model.AttendanceRecord](ctx, s.blobs, KeyAttendanceRecords)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	return records, nil
}

// All returns a snapshot of every record. A read failure is logged and
// yields no records.
func (s *RecordStore) All(ctx context.Context) []model.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		log.WithError(err).Error("failed to read attendance records")
		return []model.AttendanceRecord{}
	}
	return records
}

func (s *RecordStore) ForUser(ctx context.Context, email string) []model.AttendanceRecord {
	email = model.NormalizeEmail(email)
	return utils.Filter(s.All(ctx), func(r model.AttendanceRecord) bool {
		return model.NormalizeEmail(r.UserEmail) == email
	})
}

// Append assigns the record an id of max(now in ms, highest id + 1) and
// persists it.
func (s *RecordStore) Append(ctx context.Context, rec model.AttendanceRecord) (model.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return model.AttendanceRecord{}, err
	}

	id := s.Now().UnixMilli()
	for _, r := range records {
		if r.ID >= id {
			id = r.ID + 1
		}
	}
	rec.ID = id

	records = append(records, rec)
	if err := saveJSON(ctx, s.blobs, KeyAttendanceRecords, records); err != nil {
		return model.AttendanceRecord{}, err
	}
	return rec, nil
}

// Update hands a copy of all records to fn and saves the result when fn
// reports a change.
func (s *RecordStore) Update(ctx context.Context, fn func([]model.AttendanceRecord) ([]model.AttendanceRecord, bool)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	updated, changed := fn(slices.Clone(records))
	if !changed {
		return false, nil
	}
	if err := saveJSON(ctx, s.blobs, KeyAttendanceRecords, updated); err != nil {
		return false, err
	}
	return true, nil
}
