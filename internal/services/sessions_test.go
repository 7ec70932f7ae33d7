package services

import (
	"testing"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T, ttl time.Duration) *SessionStore {
	t.Helper()
	store := NewSessionStore(ttl)
	t.Cleanup(store.Close)
	return store
}

func TestSessionStore_GetCreatesFreshSession(t *testing.T) {
	store := newTestSessionStore(t, time.Minute)
	userID := uuid.New()

	session := store.Get("channel-1", userID)

	require.NotNil(t, session)
	assert.Equal(t, "channel-1", session.MatchChannelID)
	assert.Equal(t, userID, session.UserID)
	assert.Empty(t, session.Map)
	assert.Empty(t, session.Environment)
	assert.Nil(t, session.Layout)
}

func TestSessionStore_PutRoundTrip(t *testing.T) {
	store := newTestSessionStore(t, time.Minute)
	userID := uuid.New()

	session := store.Get("channel-1", userID)
	session.Map = "Carentan"
	session.Environment = catalog.EnvNight
	layout := catalog.Layout{1, 1, 1}
	session.Layout = &layout
	store.Put(session)

	got := store.Get("channel-1", userID)
	assert.Equal(t, "Carentan", got.Map)
	assert.Equal(t, catalog.EnvNight, got.Environment)
	require.NotNil(t, got.Layout)
	assert.Equal(t, layout, *got.Layout)
}

func TestSessionStore_SessionsAreKeyedPerUserAndMatch(t *testing.T) {
	store := newTestSessionStore(t, time.Minute)
	user1 := uuid.New()
	user2 := uuid.New()

	session := store.Get("channel-1", user1)
	session.Map = "Foy"
	store.Put(session)

	assert.Empty(t, store.Get("channel-1", user2).Map)
	assert.Empty(t, store.Get("channel-2", user1).Map)
	assert.Equal(t, "Foy", store.Get("channel-1", user1).Map)
}

func TestSessionStore_ExpiredSessionIsReplaced(t *testing.T) {
	store := newTestSessionStore(t, 5*time.Millisecond)
	userID := uuid.New()

	session := store.Get("channel-1", userID)
	session.Map = "Carentan"
	store.Put(session)

	time.Sleep(15 * time.Millisecond)

	got := store.Get("channel-1", userID)
	assert.Empty(t, got.Map)
}

func TestSessionStore_Clear(t *testing.T) {
	store := newTestSessionStore(t, time.Minute)
	userID := uuid.New()

	session := store.Get("channel-1", userID)
	session.Map = "Carentan"
	store.Put(session)

	store.Clear("channel-1", userID)

	assert.Empty(t, store.Get("channel-1", userID).Map)
}

func TestSessionStore_ClearMatch(t *testing.T) {
	store := newTestSessionStore(t, time.Minute)
	user1 := uuid.New()
	user2 := uuid.New()

	for _, userID := range []uuid.UUID{user1, user2} {
		session := store.Get("channel-1", userID)
		session.Map = "Carentan"
		store.Put(session)
	}
	other := store.Get("channel-2", user1)
	other.Map = "Foy"
	store.Put(other)

	store.ClearMatch("channel-1")

	assert.Empty(t, store.Get("channel-1", user1).Map)
	assert.Empty(t, store.Get("channel-1", user2).Map)
	assert.Equal(t, "Foy", store.Get("channel-2", user1).Map)
}

func TestSessionStore_CloseIsIdempotent(t *testing.T) {
	store := NewSessionStore(time.Minute)

	store.Close()
	store.Close()
}
