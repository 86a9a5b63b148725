package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/haminhduc/studygate/config"
	"github.com/haminhduc/studygate/internal/model"
	"github.com/haminhduc/studygate/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrInvalidToken is the single authentication failure surfaced to callers.
// Whether the token was malformed, expired, or belongs to a revoked session
// is logged server-side but never distinguished for the client.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims carried by every issued token. The attempt subsystem trusts these
// without re-reading the user store on each call.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	RoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}

// TokenService mints signed tokens and validates incoming ones against
// signature, claims, and the session registry.
type TokenService interface {
	// Issue signs a token for the user and registers its session. The jti is
	// the revocation key.
	Issue(ctx context.Context, user *model.User) (string, *Claims, error)
	// Validate checks, in order: signature and structure, issuer/audience,
	// expiry, jti well-formedness, and finally the session registry. The
	// cheap structural checks run first so malformed tokens never cost a
	// store round-trip. Registry state wins over the token's own expiry
	// claim once a session is revoked.
	Validate(ctx context.Context, tokenString string) (*Claims, error)
}

type tokenService struct {
	cfg         *config.Config
	sessionRepo repository.SessionRepository
}

func NewTokenService(cfg *config.Config, sessionRepo repository.SessionRepository) TokenService {
	return &tokenService{cfg: cfg, sessionRepo: sessionRepo}
}

func (s *tokenService) Issue(ctx context.Context, user *model.User) (string, *Claims, error) {
	now := time.Now()
	expiresAt := now.Add(s.cfg.Auth.TokenTTL)
	tokenID := uuid.NewString()

	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    s.cfg.Auth.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.Auth.Audience},
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	session := model.Session{
		TokenID:   tokenID,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
	if err := s.sessionRepo.Create(ctx, &session); err != nil {
		return "", nil, fmt.Errorf("failed to register session: %w", err)
	}

	return signed, &claims, nil
}

func (s *tokenService) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(s.cfg.Auth.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.Auth.Issuer),
		jwt.WithAudience(s.cfg.Auth.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		log.Debug().Err(err).Msg("Token rejected before registry lookup")
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.ID); err != nil {
		log.Debug().Str("jti", claims.ID).Msg("Token carries a malformed jti")
		return nil, ErrInvalidToken
	}

	active, err := s.sessionRepo.IsActive(ctx, claims.ID)
	if err != nil {
		// Store fault, not an authentication verdict.
		return nil, fmt.Errorf("failed to check session state: %w", err)
	}
	if !active {
		log.Debug().Str("jti", claims.ID).Uint("userID", claims.UserID).Msg("Token belongs to a revoked or expired session")
		return nil, ErrInvalidToken
	}

	return claims, nil
}
