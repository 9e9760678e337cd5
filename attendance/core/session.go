package core

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/security"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "attendance")

const DefaultSessionTTL = 12 * time.Hour

// Session is the signed-in employee for one login.
type Session struct {
	ID        string         `json:"-"`
	Employee  model.Employee `json:"employee"`
	ExpiresAt time.Time      `json:"expiresAt"`
}

type SessionService struct {
	Roster   *Roster
	Sessions *store.SessionStore
	Secret   []byte
	TTL      time.Duration
	Now      func() time.Time
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SessionTTL is how long a new session stays valid.
func (s *SessionService) SessionTTL() time.Duration {
	if s.TTL <= 0 {
		return DefaultSessionTTL
	}
	return s.TTL
}

// Login issues a session token for a registered email. No credential is
// checked beyond roster membership.
func (s *SessionService) Login(ctx context.Context, email string) (*Session, string, error) {
	emp, ok := s.Roster.Find(email)
	if !ok {
		return nil, "", ErrEmailNotRegistered
	}

	ttl := s.SessionTTL()
	now := s.now()
	session := &Session{ID: uuid.NewString(), Employee: emp, ExpiresAt: now.Add(ttl)}

	if err := s.Sessions.Put(ctx, session.ID, store.SessionMarker{Email: emp.Email, CreatedAt: now}); err != nil {
		return nil, "", err
	}

	token, err := security.CreateSessionToken(security.Identity{
		Email: emp.Email,
		Name:  emp.Name,
		Role:  string(emp.Role),
	}, session.ID, s.Secret, session.ExpiresAt)
	if err != nil {
		return nil, "", err
	}

	log.WithField("user", emp.Email).Info("signed in")
	return session, token, nil
}

// Verify checks the token signature, that the session was not logged out,
// and that the employee is still on the roster.
func (s *SessionService) Verify(ctx context.Context, token string) (*Session, error) {
	claims, err := security.ParseSessionToken(token, s.Secret)
	if err != nil {
		return nil, ErrInvalidSession
	}

	marker, err := s.Sessions.Get(ctx, claims.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	if !equalEmail(marker.Email, claims.Email) {
		return nil, ErrInvalidSession
	}

	emp, ok := s.Roster.Find(claims.Email)
	if !ok {
		return nil, ErrInvalidSession
	}

	return &Session{ID: claims.ID, Employee: emp, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (s *SessionService) Logout(ctx context.Context, session *Session) error {
	if err := s.Sessions.Delete(ctx, session.ID); err != nil {
		return err
	}
	log.WithField("user", session.Employee.Email).Info("signed out")
	return nil
}

func equalEmail(a, b string) bool {
	return model.NormalizeEmail(a) == model.NormalizeEmail(b)
}
