package authControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func authRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", Register(db))
	r.POST("/login", Login(db))
	r.POST("/logout", Logout())
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterSuccess(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := postJSON(t, r, "/register", map[string]string{
		"email":    "shopper@example.com",
		"password": "supersecret",
		"name":     "Shopper",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "shopper@example.com", user["email"])
	assert.NotContains(t, user, "password")

	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "shopper@example.com").Error)
	assert.NotEqual(t, "supersecret", stored.Password)
	assert.True(t, stored.CheckPassword("supersecret"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	payload := map[string]string{
		"email":    "dup@example.com",
		"password": "supersecret",
		"name":     "First",
	}
	require.Equal(t, http.StatusCreated, postJSON(t, r, "/register", payload).Code)

	w := postJSON(t, r, "/register", payload)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "The email has already been taken.")
}

func TestRegisterShortPassword(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := postJSON(t, r, "/register", map[string]string{
		"email":    "short@example.com",
		"password": "123",
		"name":     "Short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "The password must be at least 8 characters.")
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	postJSON(t, r, "/register", map[string]string{
		"email":    "login@example.com",
		"password": "supersecret",
		"name":     "Login",
	})

	w := postJSON(t, r, "/login", map[string]string{
		"email":    "login@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	postJSON(t, r, "/register", map[string]string{
		"email":    "wrongpass@example.com",
		"password": "supersecret",
		"name":     "Wrong",
	})

	w := postJSON(t, r, "/login", map[string]string{
		"email":    "wrongpass@example.com",
		"password": "notthepassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := postJSON(t, r, "/login", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	db := setupTestDB(t)
	r := authRouter(db)

	w := postJSON(t, r, "/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
}
