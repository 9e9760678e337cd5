package store

import (
	"context"
	"errors"
	"time"
)

type SessionMarker struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStore keeps one marker per live session under currentUserEmail/<id>.
type SessionStore struct {
	blobs BlobStore
}

func NewSessionStore(blobs BlobStore) *SessionStore {
	return &SessionStore{blobs: blobs}
}

func sessionKey(id string) string {
	return KeySessionPrefix + id
}

func (s *SessionStore) Put(ctx context.Context, id string, marker SessionMarker) error {
	return saveJSON(ctx, s.blobs, sessionKey(id), marker)
}

// Get returns ErrNotFound when the session was never created or was removed.
func (s *SessionStore) Get(ctx context.Context, id string) (SessionMarker, error) {
	marker, err := loadJSON[*SessionMarker](ctx, s.blobs, sessionKey(id))
	if err != nil {
		return SessionMarker{}, err
	}
	if marker == nil || marker.Email == "" {
		return SessionMarker{}, ErrNotFound
	}
	return *marker, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	err := s.blobs.Delete(ctx, sessionKey(id))
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}
