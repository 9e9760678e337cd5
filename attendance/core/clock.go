package core

import (
	"context"
	"sync"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/geo"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
)

// PlaceNamer turns coordinates into a short human-readable place.
type PlaceNamer interface {
	PlaceName(ctx context.Context, loc model.GeoLocation) string
}

// PendingNotifier is told about clock-ins that need approval.
type PendingNotifier interface {
	NotifyPending(ctx context.Context, employee model.Employee, record model.AttendanceRecord) error
}

type ClockResult struct {
	Record           model.AttendanceRecord `json:"record"`
	ClockedIn        bool                   `json:"clockedIn"`
	LocationAdvisory string                 `json:"locationAdvisory,omitempty"`
}

type ClockStatus struct {
	ClockedIn     bool                    `json:"clockedIn"`
	LastRecord    *model.AttendanceRecord `json:"lastRecord"`
	ClockInOnTime bool                    `json:"clockInOnTime"`
	CanClockOut   bool                    `json:"canClockOut"`
}

type ClockService struct {
	Records    *store.RecordStore
	Rules      Rules
	Places     PlaceNamer
	Notifier   PendingNotifier
	GeoTimeout time.Duration
	Now        func() time.Time

	mu   sync.Mutex
	busy map[string]bool
}

func (s *ClockService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *ClockService) acquire(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy == nil {
		s.busy = make(map[string]bool)
	}
	if s.busy[email] {
		return false
	}
	s.busy[email] = true
	return true
}

func (s *ClockService) release(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, email)
}

// Clock records a clock-in or clock-out for the session's employee. Only one
// clock action per employee runs at a time.
func (s *ClockService) Clock(ctx context.Context, session *Session, typ model.RecordType, locator geo.Locator) (*ClockResult, error) {
	if !typ.Valid() {
		return nil, ErrInvalidRecordType
	}
	email := model.NormalizeEmail(session.Employee.Email)
	if !s.acquire(email) {
		return nil, ErrActionInProgress
	}
	defer s.release(email)

	if _, err := s.Rules.Evaluate(typ, s.now()); err != nil {
		return nil, err
	}

	location, advisory := geo.Resolve(ctx, locator, s.GeoTimeout)
	var placeName *string
	if location != nil && s.Places != nil {
		name := s.Places.PlaceName(ctx, *location)
		placeName = &name
	}
	if advisory != "" {
		log.WithField("user", email).WithField("advisory", advisory).Warn("clocking without location")
	}

	at := s.now()
	status, err := s.Rules.Evaluate(typ, at)
	if err != nil {
		return nil, err
	}

	rec, err := s.Records.Append(ctx, model.AttendanceRecord{
		UserEmail: session.Employee.Email,
		Type:      typ,
		Timestamp: at.UnixMilli(),
		Location:  location,
		PlaceName: placeName,
		Status:    status,
	})
	if err != nil {
		return nil, err
	}

	log.WithField("user", email).WithField("type", typ).WithField("status", status).Info("clock record added")

	if rec.IsPending() && s.Notifier != nil {
		if err := s.Notifier.NotifyPending(ctx, session.Employee, rec); err != nil {
			log.WithError(err).Warn("failed to notify pending approval")
		}
	}

	return &ClockResult{
		Record:           rec,
		ClockedIn:        typ == model.RecordTypeIn,
		LocationAdvisory: advisory,
	}, nil
}

func (s *ClockService) Status(ctx context.Context, session *Session) ClockStatus {
	records := s.Records.ForUser(ctx, session.Employee.Email)
	now := s.now()
	return ClockStatus{
		ClockedIn:     IsClockedIn(records),
		LastRecord:    LatestRecord(records),
		ClockInOnTime: s.Rules.IsClockInOnTime(now),
		CanClockOut:   s.Rules.CanClockOut(now),
	}
}
