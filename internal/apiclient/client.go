// Package apiclient is a Go client for the sync API. It mirrors the
// wire contract exactly: mutations return {"ok": true} and every
// failure carries a single {"error": string} body.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ninetd/ninetd/internal/models"
)

// HTTPClient abstracts HTTP calls for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Client wraps the sync REST API.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	token      string
	logger     zerolog.Logger
}

// NewClient creates a new API client. The token is empty until Login
// succeeds or SetToken is called.
func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With().Str("component", "apiclient").Logger(),
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(hc HTTPClient) {
	c.httpClient = hc
}

// SetToken sets the bearer token used on authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	return c.token
}

// Credentials are the login payload.
type Credentials struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

// User is the account shape returned by login.
type User struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	payload := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	return c.doOK(ctx, http.MethodPost, "/api/auth/register", payload)
}

// Login authenticates and stores the returned bearer token on the
// client for subsequent calls.
func (c *Client) Login(ctx context.Context, creds Credentials) (*User, error) {
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", creds)
	if err != nil {
		return nil, err
	}

	var result struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := decodeResponse(resp, &result); err != nil {
		return nil, err
	}

	c.token = result.Token
	c.logger.Debug().Str("username", result.User.Username).Msg("logged in")
	return &result.User, nil
}

// TaskInput is the create/update payload for a task.
type TaskInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
}

// ListTasks fetches the caller's tasks, newest first.
func (c *Client) ListTasks(ctx context.Context) ([]models.TaskRecord, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/tasks", nil)
	if err != nil {
		return nil, err
	}

	var tasks []models.TaskRecord
	if err := decodeResponse(resp, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask stores a new task.
func (c *Client) CreateTask(ctx context.Context, input TaskInput) error {
	return c.doOK(ctx, http.MethodPost, "/api/tasks", input)
}

// UpdateTask overwrites an existing task. The server treats unknown
// ids as a successful no-op.
func (c *Client) UpdateTask(ctx context.Context, id uint64, input TaskInput) error {
	return c.doOK(ctx, http.MethodPut, fmt.Sprintf("/api/tasks/%d", id), input)
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, id uint64) error {
	return c.doOK(ctx, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", id), nil)
}

// ListLogs fetches the caller's audit entries, newest first.
func (c *Client) ListLogs(ctx context.Context) ([]models.AuditLog, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/logs", nil)
	if err != nil {
		return nil, err
	}

	var entries []models.AuditLog
	if err := decodeResponse(resp, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// WriteLog appends one audit entry.
func (c *Client) WriteLog(ctx context.Context, action, target string) error {
	payload := map[string]string{
		"action": action,
		"target": target,
	}
	return c.doOK(ctx, http.MethodPost, "/api/logs", payload)
}

// ListMessages fetches messages the caller sent or received.
func (c *Client) ListMessages(ctx context.Context) ([]models.Message, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/messages", nil)
	if err != nil {
		return nil, err
	}

	var messages []models.Message
	if err := decodeResponse(resp, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage sends a direct message to another user.
func (c *Client) SendMessage(ctx context.Context, recipientID uint64, body string) error {
	payload := map[string]any{
		"recipientId": recipientID,
		"body":        body,
	}
	return c.doOK(ctx, http.MethodPost, "/api/messages", payload)
}

// do executes an API request and surfaces {"error"} bodies as APIError.
func (c *Client) do(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}

	return resp, nil
}

// doOK runs a mutation and discards its {"ok": true} body.
func (c *Client) doOK(ctx context.Context, method, path string, payload any) error {
	resp, err := c.do(ctx, method, path, payload)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// decodeResponse reads and decodes a JSON response.
func decodeResponse(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
