package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) SessionRepository {
	t.Helper()
	return NewSessionRepository(newTestDB(t), newTestQueries())
}

func TestSessionLifecycle(t *testing.T) {
	repo := newSessionFixture(t)
	ctx := context.Background()
	tokenID := uuid.NewString()

	require.NoError(t, repo.Create(ctx, &model.Session{
		TokenID:   tokenID,
		UserID:    1,
		ExpiresAt: time.Now().Add(2 * time.Hour),
	}))

	active, err := repo.IsActive(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, active)

	revoked, err := repo.Revoke(ctx, tokenID, time.Now())
	require.NoError(t, err)
	assert.True(t, revoked)

	// Revocation wins even though the original expiry has not passed.
	active, err = repo.IsActive(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, active)

	// Revoked is terminal: a second revoke has nothing to do.
	revoked, err = repo.Revoke(ctx, tokenID, time.Now())
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionIsActiveUnknownToken(t *testing.T) {
	repo := newSessionFixture(t)

	active, err := repo.IsActive(context.Background(), uuid.NewString())
	require.NoError(t, err, "an unknown token is inactive, never an error")
	assert.False(t, active)
}

func TestSessionRevokeUnknownToken(t *testing.T) {
	repo := newSessionFixture(t)

	revoked, err := repo.Revoke(context.Background(), uuid.NewString(), time.Now())
	require.NoError(t, err, "nothing to revoke is not a fault")
	assert.False(t, revoked)
}

func TestSessionExpiresWithoutWrite(t *testing.T) {
	repo := newSessionFixture(t)
	ctx := context.Background()
	tokenID := uuid.NewString()

	require.NoError(t, repo.Create(ctx, &model.Session{
		TokenID:   tokenID,
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	active, err := repo.IsActive(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, active, "expiry is implicit, no explicit write needed")
}

func TestSessionDuplicateTokenID(t *testing.T) {
	repo := newSessionFixture(t)
	ctx := context.Background()
	tokenID := uuid.NewString()

	require.NoError(t, repo.Create(ctx, &model.Session{
		TokenID:   tokenID,
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	err := repo.Create(ctx, &model.Session{
		TokenID:   tokenID,
		UserID:    2,
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrDuplicateToken)
}
