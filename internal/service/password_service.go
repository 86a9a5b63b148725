package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// PasswordService hashes and compares submitted passwords against stored
// digests. The digest is a plain SHA-256 hex string with no per-user salt —
// a deliberate simplification of this core, kept deterministic so verify is
// recompute-and-compare. Do not copy this scheme into anything that needs
// real password storage without adding per-user salting.
type PasswordService interface {
	Hash(password string) string
	Verify(password, storedDigest string) bool
}

type passwordService struct{}

func NewPasswordService() PasswordService {
	return &passwordService{}
}

func (s *passwordService) Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func (s *passwordService) Verify(password, storedDigest string) bool {
	digest := s.Hash(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(storedDigest)) == 1
}
