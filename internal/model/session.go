package model

import (
	"time"
)

// Session is the server-side record of one issued token, keyed by the jti
// embedded in the token. A session is active iff RevokedAt is null and
// ExpiresAt is still in the future; expiry is never written explicitly.
type Session struct {
	TokenID   string     `gorm:"primarykey;size:36" json:"token_id"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"not null"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}
