package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/acwang/folio-core/internal/database"
	"github.com/acwang/folio-core/internal/middleware"
	"github.com/acwang/folio-core/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	api := r.Group("/api")
	NewHandler(db, time.Hour).RegisterRoutes(api, middleware.Auth(db))
	return r, db
}

func seedAdmin(t *testing.T, db *gorm.DB) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.UserModel{
		Email:    "admin@example.com",
		Password: string(hash),
		Nickname: "Alex",
	}).Error)
}

func login(t *testing.T, r http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginReturnsBearerToken(t *testing.T) {
	r, db := newTestRouter(t)
	seedAdmin(t, db)

	w := login(t, r, "admin@example.com", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body tokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)

	var user models.UserModel
	require.NoError(t, db.First(&user, "email = ?", "admin@example.com").Error)
	assert.NotNil(t, user.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	r, db := newTestRouter(t)
	seedAdmin(t, db)

	w := login(t, r, "admin@example.com", "wrong")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Incorrect email or password", body["detail"])
}

func TestLoginUnknownEmailSameDetail(t *testing.T) {
	r, _ := newTestRouter(t)

	w := login(t, r, "ghost@example.com", "whatever")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Incorrect email or password", body["detail"])
}

func TestMeReturnsProfile(t *testing.T) {
	r, db := newTestRouter(t)
	seedAdmin(t, db)

	w := login(t, r, "admin@example.com", "correct-horse")
	var body tokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.AccessToken)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code, w2.Body.String())

	var me meResponse
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &me))
	assert.Equal(t, "admin@example.com", me.Email)
	assert.Equal(t, "Alex", me.Nickname)
}

func TestRegisterOnlyFirstUser(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postRegister(t, r, "admin@example.com", "longpassword", "Alex")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = postRegister(t, r, "second@example.com", "longpassword", "Eve")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postRegister(t, r, "admin@example.com", "short", "Alex")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func postRegister(t *testing.T, r http.Handler, email, password, nickname string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(RegisterDTO{Email: email, Password: password, Nickname: nickname})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
