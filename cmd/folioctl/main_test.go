package main

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/acwang/folio-core/pkg/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeToken(t *testing.T, token string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token")
	session, err := client.LoadSession(path)
	require.NoError(t, err)
	require.NoError(t, session.Create(token))
	return path
}

func TestAuthFailureDiscardsStoredToken(t *testing.T) {
	path := writeToken(t, "stale")

	handled := discardSessionOnAuthError(&client.RequestError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "token expired",
	}, path)

	assert.True(t, handled)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "stale token file must be removed")
}

func TestOtherFailuresKeepStoredToken(t *testing.T) {
	path := writeToken(t, "tok")

	for _, err := range []error{
		&client.RequestError{StatusCode: http.StatusInternalServerError, Detail: "boom"},
		errors.New("connection error"),
	} {
		assert.False(t, discardSessionOnAuthError(err, path))
	}
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "token survives non-auth failures")
}
