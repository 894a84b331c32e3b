package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ninetd/ninetd/internal/database"
	"github.com/ninetd/ninetd/internal/models"
	"github.com/ninetd/ninetd/internal/repository"
	"github.com/ninetd/ninetd/internal/services"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, "test-secret", time.Hour)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/register", env.handler.Register)

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "newuser",
		"email":    "newuser@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp["ok"])

	var user models.User
	require.NoError(t, env.db.Where("username = ?", "newuser").First(&user).Error)
	require.Equal(t, "newuser@example.com", user.Email)
	require.Equal(t, "user", user.Role)
	require.NotEqual(t, "supersecret", user.PasswordHash)
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/register", env.handler.Register)

	payload := map[string]string{
		"username": "dupuser",
		"email":    "dup@example.com",
		"password": "supersecret",
	}

	w := postJSON(t, r, "/api/auth/register", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/auth/register", payload)
	require.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["error"])
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/register", env.handler.Register)

	w := postJSON(t, r, "/api/auth/register", map[string]string{
		"username": "shorty",
		"email":    "shorty@example.com",
		"password": "short",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupAuthTestEnv(t)

	registered, err := env.authService.Register(services.RegisterInput{
		Username: "loginuser",
		Email:    "login@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"usernameOrEmail": "loginuser",
		"password":        "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID       uint64 `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, registered.ID, resp.User.ID)
	require.Equal(t, "loginuser", resp.User.Username)

	userID, err := env.authService.VerifyToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, registered.ID, userID)
}

func TestAuthHandler_Login_ByEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "emailuser",
		Email:    "email@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"usernameOrEmail": "email@example.com",
		"password":        "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)
	env := setupAuthTestEnv(t)

	_, err := env.authService.Register(services.RegisterInput{
		Username: "wrongpw",
		Email:    "wrongpw@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(t, r, "/api/auth/login", map[string]string{
		"usernameOrEmail": "wrongpw",
		"password":        "not-the-password",
	})

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Invalid credentials", resp["error"])
}
