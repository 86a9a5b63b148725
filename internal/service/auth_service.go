package service

import (
	"context"
	"errors"
	"time"

	"github.com/haminhduc/studygate/internal/dto"
	"github.com/haminhduc/studygate/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// ErrInvalidCredentials covers both unknown email and wrong password;
// callers surface the same message for either.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService ties the credential verifier, token issuer and session
// registry together for login/logout.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the session behind the given token id. False means
	// there was no active session to revoke.
	Logout(ctx context.Context, tokenID string) (bool, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	passwordSvc PasswordService
	tokenSvc    TokenService
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	passwordSvc PasswordService,
	tokenSvc TokenService,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.passwordSvc.Verify(req.Password, user.PasswordDigest) {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokenSvc.Issue(ctx, user)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("userID", user.ID).Str("jti", claims.ID).Msg("User logged in")

	var resp dto.LoginResponse
	resp.Token = token
	if err := copier.Copy(&resp.User, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := s.sessionRepo.Revoke(ctx, tokenID, time.Now())
	if err != nil {
		return false, err
	}
	if revoked {
		log.Info().Str("jti", tokenID).Msg("Session revoked")
	}
	return revoked, nil
}
