package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("admin@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestParseExpiredToken(t *testing.T) {
	token, err := Sign("admin@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token)
	require.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("not.a.jwt")
	require.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := Sign("admin@example.com", time.Hour)
	require.NoError(t, err)

	SetSecret("rotated")
	t.Cleanup(func() { SetSecret(defaultSecret) })

	_, err = Parse(token)
	require.Error(t, err)
}
