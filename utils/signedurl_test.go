package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadTokenRoundTrip(t *testing.T) {
	token, err := SignDownloadToken("serial-123", "secret", time.Minute)
	require.NoError(t, err)

	serial, err := VerifyDownloadToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "serial-123", serial)
}

func TestDownloadTokenWrongSecret(t *testing.T) {
	token, err := SignDownloadToken("serial-123", "secret", time.Minute)
	require.NoError(t, err)

	_, err = VerifyDownloadToken(token, "other")
	assert.Error(t, err)
}

func TestDownloadTokenExpired(t *testing.T) {
	token, err := SignDownloadToken("serial-123", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = VerifyDownloadToken(token, "secret")
	assert.Error(t, err)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "customer", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "customer", claims.Role)
}
