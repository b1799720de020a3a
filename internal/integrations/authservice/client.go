package authservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент для работы с сервисом авторизации (GoTrue-совместимое REST API)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса авторизации
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SignIn выполняет вход по email и паролю
func (c *Client) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", creds, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignUp регистрирует нового пользователя
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*SignUpResponse, error) {
	var resp SignUpResponse
	if err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.UserID() == "" {
		return nil, fmt.Errorf("%w: signup response has no user id", ErrInvalidResponse)
	}
	return &resp, nil
}

// SignOut завершает сессию, выданную по accessToken
func (c *Client) SignOut(ctx context.Context, accessToken string) error {
	return c.do(ctx, http.MethodPost, "/auth/v1/logout", accessToken, nil, nil)
}

// ResetPassword отправляет письмо для сброса пароля
func (c *Client) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/auth/v1/recover", "", body, nil)
}

// GetUser получает пользователя по токену доступа
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path, accessToken string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Auth backend request failed: %s %s: %v", method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return c.backendError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) backendError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var errResp errorResponse
	msg := ""
	if err := json.Unmarshal(raw, &errResp); err == nil {
		msg = errResp.message()
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	c.log.Warn("Auth backend returned status %d: %s", resp.StatusCode, msg)

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", ErrUnauthorized, &BackendError{StatusCode: resp.StatusCode, Message: msg})
	}

	return &BackendError{StatusCode: resp.StatusCode, Message: msg}
}
