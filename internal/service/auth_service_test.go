package service

import (
	"context"
	"testing"
	"time"

	"github.com/haminhduc/studygate/internal/dto"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.users[email], nil
}

func newAuthFixture(t *testing.T) (AuthService, *fakeSessionRepo) {
	t.Helper()
	passwordSvc := NewPasswordService()
	sessionRepo := newFakeSessionRepo()
	tokenSvc := NewTokenService(testAuthConfig(time.Hour), sessionRepo)
	userRepo := &fakeUserRepo{users: map[string]*model.User{
		"student@example.com": {
			ID:             7,
			Email:          "student@example.com",
			Name:           "Student Seven",
			PasswordDigest: passwordSvc.Hash("s3cret"),
			RoleID:         model.RoleStudent,
		},
	}}
	return NewAuthService(userRepo, sessionRepo, passwordSvc, tokenSvc), sessionRepo
}

func TestAuthServiceLogin(t *testing.T) {
	svc, sessions := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "student@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, uint(7), resp.User.ID)
	assert.Equal(t, "Student Seven", resp.User.Name)
	assert.Len(t, sessions.sessions, 1, "login registers exactly one session")
}

func TestAuthServiceLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	// Unknown email and wrong password fail identically.
	_, err := svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "student@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLogout(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "student@example.com", Password: "s3cret"})
	require.NoError(t, err)

	var tokenID string
	for id := range sessions.sessions {
		tokenID = id
	}

	revoked, err := svc.Logout(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Second logout has nothing left to revoke.
	revoked, err = svc.Logout(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestAuthServiceLogoutUnknownToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	revoked, err := svc.Logout(context.Background(), "11111111-2222-3333-4444-555555555555")
	require.NoError(t, err, "nothing to revoke is a not-found condition, not a fault")
	assert.False(t, revoked)
}
