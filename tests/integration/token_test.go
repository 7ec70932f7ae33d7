package integration

import (
	"context"
	"testing"
	"time"

	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_Integration_StoreAndValidate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	tokenHash := services.HashToken("some-refresh-token")

	err := svc.StoreRefreshToken(ctx, user.ID, tokenHash, time.Now().Add(time.Hour))
	require.NoError(t, err)

	userID, err := svc.ValidateRefreshToken(ctx, tokenHash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestTokenService_Integration_ExpiredTokenIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	tokenHash := services.HashToken("expired-token")
	fixtures.CreateRefreshToken(t, user.ID, tokenHash, time.Now().Add(-time.Hour))

	_, err := svc.ValidateRefreshToken(ctx, tokenHash)
	assert.Error(t, err)
}

func TestTokenService_Integration_Revoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	tokenHash := services.HashToken("revoke-me")
	fixtures.CreateRefreshToken(t, user.ID, tokenHash, time.Now().Add(time.Hour))

	require.NoError(t, svc.RevokeRefreshToken(ctx, tokenHash))

	_, err := svc.ValidateRefreshToken(ctx, tokenHash)
	assert.Error(t, err)
}

func TestTokenService_Integration_RevokeAllUserTokens(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	other := fixtures.CreateUser(t)
	hash1 := services.HashToken("token-1")
	hash2 := services.HashToken("token-2")
	otherHash := services.HashToken("token-other")
	fixtures.CreateRefreshToken(t, user.ID, hash1, time.Now().Add(time.Hour))
	fixtures.CreateRefreshToken(t, user.ID, hash2, time.Now().Add(time.Hour))
	fixtures.CreateRefreshToken(t, other.ID, otherHash, time.Now().Add(time.Hour))

	require.NoError(t, svc.RevokeAllUserTokens(ctx, user.ID))

	_, err := svc.ValidateRefreshToken(ctx, hash1)
	assert.Error(t, err)
	_, err = svc.ValidateRefreshToken(ctx, hash2)
	assert.Error(t, err)

	// Other users keep their sessions.
	userID, err := svc.ValidateRefreshToken(ctx, otherHash)
	require.NoError(t, err)
	assert.Equal(t, other.ID, userID)
}

func TestTokenService_Integration_CleanupExpired(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewTokenService(tdb.DB)
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	liveHash := services.HashToken("live")
	deadHash := services.HashToken("dead")
	fixtures.CreateRefreshToken(t, user.ID, liveHash, time.Now().Add(time.Hour))
	fixtures.CreateRefreshToken(t, user.ID, deadHash, time.Now().Add(-time.Hour))

	require.NoError(t, svc.CleanupExpired(ctx))

	userID, err := svc.ValidateRefreshToken(ctx, liveHash)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestUserService_Integration_FindOrCreateFromOAuth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewUserService(tdb.DB)
	ctx := context.Background()

	info := testutil.OAuthIdentity("new@example.com", "New User", "discord", "discord-1")

	created, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", created.Email)

	// Same identity resolves to the same row.
	found, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// A profile change on the provider side is picked up.
	info.Email = "renamed@example.com"
	updated, err := svc.FindOrCreateFromOAuth(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "renamed@example.com", updated.Email)
}
