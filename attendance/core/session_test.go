package core

import (
	"context"
	"testing"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T) (*SessionService, *store.MemoryStore) {
	t.Helper()
	blobs := store.NewMemoryStore()
	return &SessionService{
		Roster:   testRoster(t),
		Sessions: store.NewSessionStore(blobs),
		Secret:   testSecret,
		TTL:      time.Hour,
	}, blobs
}

func TestLoginVerifyLogout(t *testing.T) {
	ctx := context.Background()
	svc, blobs := newSessionService(t)

	session, token, err := svc.Login(ctx, "ALICE@rcn.example")
	require.NoError(t, err)
	assert.Equal(t, "Alice", session.Employee.Name)

	_, err = blobs.Get(ctx, store.KeySessionPrefix+session.ID)
	require.NoError(t, err)

	verified, err := svc.Verify(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, verified.ID)
	assert.Equal(t, session.Employee, verified.Employee)

	require.NoError(t, svc.Logout(ctx, verified))
	_, err = svc.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLoginUnregistered(t *testing.T) {
	svc, _ := newSessionService(t)
	_, _, err := svc.Login(context.Background(), "stranger@elsewhere.example")
	assert.ErrorIs(t, err, ErrEmailNotRegistered)
}

func TestVerifyRejectsTamperedOrStale(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSessionService(t)

	_, err := svc.Verify(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, token, err := svc.Login(ctx, alice)
	require.NoError(t, err)

	other := *svc
	other.Secret = []byte("a-different-secret-a-different-s")
	_, err = other.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	shrunk, err := NewRoster(nil)
	require.NoError(t, err)
	other = *svc
	other.Roster = shrunk
	_, err = other.Verify(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
