package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	session := NewSession()
	return New(srv.URL, session), session
}

func TestLoginStoresToken(t *testing.T) {
	c, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/admin/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "admin@example.com", r.PostForm.Get("username"))
		require.Equal(t, "hunter22", r.PostForm.Get("password"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-123","token_type":"bearer"}`))
	}))

	require.NoError(t, c.Login("admin@example.com", "hunter22"))
	token, ok := session.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-123", token)
}

func TestLoginRejectedSurfacesDetail(t *testing.T) {
	c, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":0,"code":401,"detail":"Incorrect email or password"}`))
	}))

	err := c.Login("admin@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Incorrect email or password", err.Error())
	assert.True(t, IsAuthError(err))
	_, ok := session.Token()
	assert.False(t, ok)
}

func TestErrorDetailExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"detail string", `{"detail":"not found"}`, "not found"},
		{"message fallback", `{"message":"boom"}`, "boom"},
		{"non-string detail reserialized", `{"detail":{"field":"title","error":"required"}}`, `{"field":"title","error":"required"}`},
		{"non-json body falls back", `<html>bad gateway</html>`, "HTTP 502"},
		{"empty body falls back", ``, "HTTP 502"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(tc.body))
			}))

			_, err := c.ListPortfolio()
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestLegacyIDKeyNormalized(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"_id":"abc","title":"Old","description":"d"},{"id":"def","title":"New","description":"d"}]`))
	}))

	items, err := c.ListPortfolio()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "abc", items[0].ID)
	assert.Equal(t, "def", items[1].ID)
}

func TestAdminBlogListWithoutTokenFailsBeforeNetwork(t *testing.T) {
	called := false
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.ListAllBlogPosts()
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.False(t, called, "no request should be issued without a token")
}

func TestAuthedRequestsCarryBearerToken(t *testing.T) {
	c, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-9", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"email":"a@b.c","nickname":"A"}`))
	}))
	require.NoError(t, session.Create("tok-9"))

	profile, err := c.Me()
	require.NoError(t, err)
	assert.Equal(t, "a@b.c", profile.Email)
}

func TestConnectionErrorIsGeneric(t *testing.T) {
	session := NewSession()
	c := New("http://127.0.0.1:1", session)

	_, err := c.ListPortfolio()
	require.Error(t, err)
	assert.Equal(t, "connection error", err.Error())
}

func TestSessionFilePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	s, err := LoadSession(path)
	require.NoError(t, err)
	_, ok := s.Token()
	assert.False(t, ok, "fresh session should be logged out")

	require.NoError(t, s.Create("tok-42"))

	reloaded, err := LoadSession(path)
	require.NoError(t, err)
	token, ok := reloaded.Token()
	require.True(t, ok)
	assert.Equal(t, "tok-42", token)

	require.NoError(t, reloaded.Invalidate())
	again, err := LoadSession(path)
	require.NoError(t, err)
	_, ok = again.Token()
	assert.False(t, ok)
}

func TestDeleteEscapesID(t *testing.T) {
	var gotPath string
	c, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.WriteHeader(http.StatusOK)
	}))
	require.NoError(t, session.Create("tok"))

	require.NoError(t, c.DeletePortfolio("weird/id"))
	assert.Equal(t, "/api/portfolio/"+url.PathEscape("weird/id"), gotPath)
}
