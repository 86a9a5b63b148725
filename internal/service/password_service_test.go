package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordServiceHashIsDeterministic(t *testing.T) {
	svc := NewPasswordService()

	first := svc.Hash("correct horse battery staple")
	second := svc.Hash("correct horse battery staple")

	assert.Equal(t, first, second)
	assert.Len(t, first, 64)
}

func TestPasswordServiceHashKnownVector(t *testing.T) {
	svc := NewPasswordService()

	// sha256("password") — pins the digest format so stored digests keep
	// verifying across refactors.
	require.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		svc.Hash("password"),
	)
}

func TestPasswordServiceVerify(t *testing.T) {
	svc := NewPasswordService()
	digest := svc.Hash("s3cret")

	assert.True(t, svc.Verify("s3cret", digest))
	assert.False(t, svc.Verify("s3cret ", digest))
	assert.False(t, svc.Verify("", digest))
	assert.False(t, svc.Verify("s3cret", ""))
}
