package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/haminhduc/studygate/internal/model"
	"github.com/haminhduc/studygate/internal/query"
	"gorm.io/gorm"
)

// ErrDuplicateToken means a session row already exists for a token id that
// was supposed to be globally unique. Under correct token generation this
// never happens; callers treat it as a fatal integrity violation.
var ErrDuplicateToken = errors.New("session: duplicate token id")

// SessionRepository tracks issued tokens and their revoked/expired status.
// A session moves Active -> Revoked (terminal) by an explicit write, or
// Active -> Expired (terminal) implicitly by time alone.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	// IsActive reports whether a session exists, is not revoked, and has not
	// expired. Unknown token ids are plain false, never an error.
	IsActive(ctx context.Context, tokenID string) (bool, error)
	// Revoke stamps revoked_at on a not-yet-revoked session. False means
	// there was nothing to revoke; callers surface that as not-found, not as
	// a server fault.
	Revoke(ctx context.Context, tokenID string, revokedAt time.Time) (bool, error)
}

type sessionRepository struct {
	db        *gorm.DB
	qIsActive string
	qRevoke   string
}

func NewSessionRepository(db *gorm.DB, queries *query.Provider) SessionRepository {
	return &sessionRepository{
		db:        db,
		qIsActive: queries.MustGet("session_is_active"),
		qRevoke:   queries.MustGet("session_revoke"),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %s", ErrDuplicateToken, session.TokenID)
		}
		return err
	}
	return nil
}

func (r *sessionRepository) IsActive(ctx context.Context, tokenID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(r.qIsActive, tokenID, time.Now()).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, tokenID string, revokedAt time.Time) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(r.qRevoke, revokedAt, tokenID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
