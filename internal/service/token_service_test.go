package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/haminhduc/studygate/config"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionRepo records calls so tests can assert the registry is only
// consulted after the cheap token checks pass.
type fakeSessionRepo struct {
	sessions      map[string]*model.Session
	isActiveCalls int
	active        bool
	createErr     error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*model.Session{}, active: true}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *model.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.sessions[session.TokenID] = session
	return nil
}

func (f *fakeSessionRepo) IsActive(ctx context.Context, tokenID string) (bool, error) {
	f.isActiveCalls++
	return f.active, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, tokenID string, revokedAt time.Time) (bool, error) {
	s, ok := f.sessions[tokenID]
	if !ok || s.RevokedAt != nil {
		return false, nil
	}
	s.RevokedAt = &revokedAt
	return true, nil
}

func testAuthConfig(ttl time.Duration) *config.Config {
	return &config.Config{Auth: config.Auth{
		Secret:   "test-secret",
		Issuer:   "studygate",
		Audience: "studygate-api",
		TokenTTL: ttl,
	}}
}

func testUser() *model.User {
	return &model.User{ID: 7, Email: "student@example.com", Name: "Student Seven", RoleID: model.RoleStudent}
}

func TestTokenServiceIssueRegistersSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewTokenService(testAuthConfig(time.Hour), repo)

	token, claims, err := svc.Issue(context.Background(), testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	_, err = uuid.Parse(claims.ID)
	require.NoError(t, err, "jti must be a well-formed uuid")

	session, ok := repo.sessions[claims.ID]
	require.True(t, ok, "issuing must register the session under the jti")
	assert.Equal(t, uint(7), session.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestTokenServiceValidateRoundTrip(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewTokenService(testAuthConfig(time.Hour), repo)

	token, issued, err := svc.Issue(context.Background(), testUser())
	require.NoError(t, err)

	claims, err := svc.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "Student Seven", claims.Name)
	assert.Equal(t, model.RoleStudent, claims.RoleID)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestTokenServiceRejectsRevokedSession(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewTokenService(testAuthConfig(time.Hour), repo)

	token, _, err := svc.Issue(context.Background(), testUser())
	require.NoError(t, err)

	// The registry is authoritative: the token itself is still well before
	// its expiry claim.
	repo.active = false

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Equal(t, 1, repo.isActiveCalls)
}

func TestTokenServiceExpiredTokenSkipsRegistry(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewTokenService(testAuthConfig(-time.Minute), repo)

	token, _, err := svc.Issue(context.Background(), testUser())
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Zero(t, repo.isActiveCalls, "expired tokens must be rejected before the store lookup")
}

func TestTokenServiceRejectsForeignSignature(t *testing.T) {
	repo := newFakeSessionRepo()
	svc := NewTokenService(testAuthConfig(time.Hour), repo)

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    "studygate",
			Audience:  jwt.ClaimStrings{"studygate-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := foreign.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Zero(t, repo.isActiveCalls)
}

func TestTokenServiceRejectsWrongAudience(t *testing.T) {
	repo := newFakeSessionRepo()
	issuerCfg := testAuthConfig(time.Hour)
	issuerCfg.Auth.Audience = "some-other-api"
	issuer := NewTokenService(issuerCfg, newFakeSessionRepo())

	token, _, err := issuer.Issue(context.Background(), testUser())
	require.NoError(t, err)

	svc := NewTokenService(testAuthConfig(time.Hour), repo)
	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Zero(t, repo.isActiveCalls)
}

func TestTokenServiceRejectsMalformedTokenID(t *testing.T) {
	repo := newFakeSessionRepo()
	cfg := testAuthConfig(time.Hour)
	svc := NewTokenService(cfg, repo)

	crafted := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "not-a-uuid",
			Issuer:    cfg.Auth.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Auth.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := crafted.SignedString([]byte(cfg.Auth.Secret))
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Zero(t, repo.isActiveCalls, "jti check runs before the store lookup")
}
