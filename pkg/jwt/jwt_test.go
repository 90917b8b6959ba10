package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestGenerateAndParse(t *testing.T) {
	token, claims, err := GenerateToken(secret, 42, "alice", TypeAccess, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	parsed, err := ParseToken(secret, TypeAccess, token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, parsed.UserID)
	assert.Equal(t, "alice", parsed.Username)
	assert.Equal(t, claims.ID, parsed.ID)
	assert.InDelta(t, time.Hour.Seconds(), parsed.Remaining().Seconds(), 5)
}

func TestUniqueTokenID(t *testing.T) {
	_, a, err := GenerateToken(secret, 1, "alice", TypeAccess, time.Hour)
	require.NoError(t, err)
	_, b, err := GenerateToken(secret, 1, "alice", TypeAccess, time.Hour)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseToken_Invalid(t *testing.T) {
	token, _, err := GenerateToken(secret, 1, "alice", TypeAccess, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other"), TypeAccess, token)
	assert.Error(t, err)

	_, err = ParseToken(secret, "refresh", token)
	assert.ErrorIs(t, err, ErrTokenType)

	expired, _, err := GenerateToken(secret, 1, "alice", TypeAccess, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(secret, TypeAccess, expired)
	assert.Error(t, err)

	_, err = ParseToken(secret, TypeAccess, "not-a-token")
	assert.Error(t, err)
}
