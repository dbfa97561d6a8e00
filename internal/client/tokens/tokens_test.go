package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_ReadsClaimsWithoutKey(t *testing.T) {
	exp := time.Now().Add(10 * time.Minute).Truncate(time.Second)
	iat := time.Now().Add(-time.Minute).Truncate(time.Second)
	tok := sign(t, jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	info, err := Inspect(tok)
	require.NoError(t, err)
	assert.Equal(t, "alice", info.Subject)
	assert.True(t, info.ExpiresAt.Equal(exp))
	assert.True(t, info.IssuedAt.Equal(iat))
	assert.False(t, info.Expired(time.Now()))
	assert.Greater(t, info.Remaining(time.Now()), 9*time.Minute)
}

func TestInspect_ExpiredTokenStillReadable(t *testing.T) {
	exp := time.Now().Add(-time.Hour)
	info, err := Inspect(sign(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}))
	require.NoError(t, err)
	assert.True(t, info.Expired(time.Now()))
	assert.Equal(t, time.Duration(0), info.Remaining(time.Now()))
}

func TestInspect_NoExpiration(t *testing.T) {
	_, err := Inspect(sign(t, jwt.RegisteredClaims{Subject: "alice"}))
	require.ErrorIs(t, err, ErrNoExpiration)
}

func TestInspect_OpaqueToken(t *testing.T) {
	_, err := Inspect("9f2d4c3a5e6b1a7d")
	require.ErrorIs(t, err, ErrNotJWT)

	_, err = Inspect("")
	require.ErrorIs(t, err, ErrNotJWT)
}

func TestInfo_ZeroValue(t *testing.T) {
	var i Info
	assert.False(t, i.Expired(time.Now()))
	assert.Equal(t, time.Duration(0), i.Remaining(time.Now()))
}
