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
	"github.com/ninetd/ninetd/internal/middleware"
	"github.com/ninetd/ninetd/internal/models"
	"github.com/ninetd/ninetd/internal/repository"
	"github.com/ninetd/ninetd/internal/services"
)

type syncTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

func setupSyncTestEnv(t *testing.T) syncTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.AuditLog{}, &models.Message{})
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo, "test-secret", time.Hour)
	logHandler := NewLogHandler(services.NewAuditService(repository.NewAuditLogRepository(db)))
	messageHandler := NewMessageHandler(services.NewMessageService(repository.NewMessageRepository(db), userRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/api")
	protected.Use(middleware.RequireAuth(authService))
	protected.GET("/logs", logHandler.ListLogs)
	protected.POST("/logs", logHandler.WriteLog)
	protected.GET("/messages", messageHandler.ListMessages)
	protected.POST("/messages", messageHandler.SendMessage)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return syncTestEnv{db: db, router: r, authService: authService}
}

func (env syncTestEnv) createUser(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed",
		Role:         "user",
	}
	require.NoError(t, env.db.Create(user).Error)

	token, err := env.authService.IssueToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func authedRequest(t *testing.T, r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogHandler_WriteAndList(t *testing.T) {
	env := setupSyncTestEnv(t)
	_, token := env.createUser(t, "logger")

	w := authedRequest(t, env.router, http.MethodPost, "/api/logs", token, map[string]string{
		"action": "task.create",
		"target": "42",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var okResp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &okResp))
	require.True(t, okResp["ok"])

	w = authedRequest(t, env.router, http.MethodGet, "/api/logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.AuditLog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "task.create", entries[0].Action)
	require.Equal(t, "42", entries[0].Target)
}

func TestLogHandler_WriteRequiresAction(t *testing.T) {
	env := setupSyncTestEnv(t)
	_, token := env.createUser(t, "strict")

	w := authedRequest(t, env.router, http.MethodPost, "/api/logs", token, map[string]string{
		"target": "orphan",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMessageHandler_SendAndList(t *testing.T) {
	env := setupSyncTestEnv(t)
	_, aliceToken := env.createUser(t, "alice")
	bob, bobToken := env.createUser(t, "bob")

	w := authedRequest(t, env.router, http.MethodPost, "/api/messages", aliceToken, map[string]any{
		"recipientId": bob.ID,
		"body":        "hello bob",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = authedRequest(t, env.router, http.MethodGet, "/api/messages", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var messages []models.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	require.Len(t, messages, 1)
	require.Equal(t, "hello bob", messages[0].Body)
}

func TestMessageHandler_UnknownRecipient(t *testing.T) {
	env := setupSyncTestEnv(t)
	_, token := env.createUser(t, "lonely")

	w := authedRequest(t, env.router, http.MethodPost, "/api/messages", token, map[string]any{
		"recipientId": 9999,
		"body":        "anyone there?",
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "recipient not found", resp["error"])
}
