package blog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/acwang/folio-core/internal/database"
	"github.com/acwang/folio-core/internal/middleware"
	"github.com/acwang/folio-core/internal/models"
	"github.com/acwang/folio-core/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	admin := models.UserModel{Email: "admin@example.com", Password: "x", Nickname: "Admin"}
	require.NoError(t, db.Create(&admin).Error)
	token, err := jwt.Sign(admin.Email, time.Hour)
	require.NoError(t, err)

	r := gin.New()
	api := r.Group("/api")
	NewHandler(db).RegisterRoutes(api, middleware.Auth(db))
	return r, db, token
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreatePublishedPostStampsPublishedAt(t *testing.T) {
	r, _, token := newTestRouter(t)

	published := true
	w := doJSON(t, r, http.MethodPost, "/api/blog", token, CreateBlogPostDTO{
		Title:       "Hello",
		IsPublished: &published,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var got blogPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.IsPublished)
	require.NotNil(t, got.PublishedAt)
	assert.WithinDuration(t, time.Now(), *got.PublishedAt, time.Minute)
}

func TestDraftHasNoPublishedAtUntilPublished(t *testing.T) {
	r, _, token := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/blog", token, CreateBlogPostDTO{Title: "Draft"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created blogPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.False(t, created.IsPublished)
	assert.Nil(t, created.PublishedAt)

	published := true
	w = doJSON(t, r, http.MethodPut, "/api/blog/"+created.ID, token, UpdateBlogPostDTO{IsPublished: &published})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/blog/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got blogPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.IsPublished)
	assert.NotNil(t, got.PublishedAt)
}

func TestPublicListExcludesDrafts(t *testing.T) {
	r, _, token := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/blog", token, CreateBlogPostDTO{Title: "Draft"})
	published := true
	doJSON(t, r, http.MethodPost, "/api/blog", token, CreateBlogPostDTO{Title: "Live", IsPublished: &published})

	w := doJSON(t, r, http.MethodGet, "/api/blog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var publicList []blogPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &publicList))
	require.Len(t, publicList, 1)
	assert.Equal(t, "Live", publicList[0].Title)

	w = doJSON(t, r, http.MethodGet, "/api/blog/all", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var adminList []blogPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &adminList))
	assert.Len(t, adminList, 2)
}

func TestAdminListRequiresAuth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/blog/all", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Could not validate credentials", body["detail"])
}

func TestUnpublishedPostHiddenFromPublicGet(t *testing.T) {
	r, _, token := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/blog", token, CreateBlogPostDTO{Title: "Secret"})
	var created blogPostResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/blog/"+created.ID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "blog post not found", body["detail"])
}

func TestCountHonorsPublishedFilter(t *testing.T) {
	r, _, token := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/blog", token, CreateBlogPostDTO{Title: "Draft"})
	published := true
	doJSON(t, r, http.MethodPost, "/api/blog", token, CreateBlogPostDTO{Title: "Live", IsPublished: &published})

	w := doJSON(t, r, http.MethodGet, "/api/blog/count", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Count int64 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(1), result.Count)

	w = doJSON(t, r, http.MethodGet, "/api/blog/count?publishedOnly=false", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, int64(2), result.Count)
}

func TestDeleteMissingPostReturnsNotFound(t *testing.T) {
	r, _, token := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/blog/nope", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
