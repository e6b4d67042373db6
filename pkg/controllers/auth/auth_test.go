package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NadirSa01/zelije-backend/pkg/config"
	"github.com/NadirSa01/zelije-backend/pkg/database"
	"github.com/NadirSa01/zelije-backend/pkg/models"
	"github.com/NadirSa01/zelije-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal("failed to connect to test database: " + err.Error())
	}

	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		t.Fatal("failed to migrate test database: " + err.Error())
	}

	database.DB = db

	config.AppConfig = &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: "7d",
		CookieSecure: "false",
	}

	return db
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/auth/signup", AdminSignup)
	router.POST("/auth/signin", AdminSignIn)
	router.POST("/auth/signout", SignOut)

	return router
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) models.Admin {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatal("failed to hash password: " + err.Error())
	}

	admin := models.Admin{
		FullName: "Zelije Admin",
		Email:    email,
		Password: hashed,
	}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatal("failed to seed admin: " + err.Error())
	}
	return admin
}

func TestAdminSignupCreatesAccount(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	payload := map[string]interface{}{
		"fullName":       "Nadir Admin",
		"email":          "Nadir@Zelije.com",
		"password":       "secret123",
		"retypePassword": "secret123",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var admin models.Admin
	assert.NoError(t, db.First(&admin).Error)
	// Email is normalized and the password is stored hashed
	assert.Equal(t, "nadir@zelije.com", admin.Email)
	assert.NotEqual(t, "secret123", admin.Password)
	assert.NoError(t, utils.ComparePassword(admin.Password, "secret123"))

	// The session cookie is set on signup
	cookies := w.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "token" && cookie.Value != "" {
			found = true
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestAdminSignupRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	seedAdmin(t, db, "admin@zelije.com", "secret123")

	payload := map[string]interface{}{
		"fullName":       "Second Admin",
		"email":          "admin@zelije.com",
		"password":       "another1",
		"retypePassword": "another1",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminSignupRejectsPasswordMismatch(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	payload := map[string]interface{}{
		"fullName":       "Nadir Admin",
		"email":          "nadir@zelije.com",
		"password":       "secret123",
		"retypePassword": "different",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminSignInWithValidCredentials(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	seedAdmin(t, db, "admin@zelije.com", "secret123")

	payload := map[string]interface{}{
		"email":    "admin@zelije.com",
		"password": "secret123",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "token" && cookie.Value != "" {
			found = true

			// The cookie carries a verifiable token for the account
			claims, err := utils.VerifyToken(cookie.Value)
			assert.NoError(t, err)
			assert.Equal(t, "admin@zelije.com", claims.Email)
		}
	}
	assert.True(t, found)
}

func TestAdminSignInWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	seedAdmin(t, db, "admin@zelije.com", "secret123")

	payload := map[string]interface{}{
		"email":    "admin@zelije.com",
		"password": "wrong-password",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminSignInRequiresTOTPWhenEnabled(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	admin := seedAdmin(t, db, "admin@zelije.com", "secret123")
	secret := "JBSWY3DPEHPK3PXP"
	assert.NoError(t, db.Model(&admin).Updates(map[string]interface{}{
		"twoFactorEnabled": true,
		"twoFactorSecret":  secret,
	}).Error)

	// Correct password but no TOTP code
	payload := map[string]interface{}{
		"email":    "admin@zelije.com",
		"password": "secret123",
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["requires2FA"])

	// Wrong TOTP code is rejected too
	payload["token"] = "000000"
	body, _ = json.Marshal(payload)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("POST", "/auth/signin", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignOutClearsCookie(t *testing.T) {
	setupTestDB(t)
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/signout", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	found := false
	for _, cookie := range cookies {
		if cookie.Name == "token" {
			found = true
			assert.Empty(t, cookie.Value)
			assert.True(t, cookie.MaxAge < 0)
		}
	}
	assert.True(t, found)
}
