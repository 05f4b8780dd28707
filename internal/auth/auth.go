// Package auth performs the Monarch Money login flow. Sessions live in
// memory only; they are never written to disk.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/monarch-agent/monarch-mcp/internal/types"
)

const (
	loginEndpoint = "/auth/login/"

	errorCodeMFARequired        = "MFA_REQUIRED"
	errorCodeInvalidCredentials = "INVALID_CREDENTIALS"
)

// Service handles authentication operations
type Service struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
	logger     types.Logger
}

// NewService creates a new auth service
func NewService(baseURL string, httpClient *http.Client, logger types.Logger) *Service {
	headers := map[string]string{
		"Accept":          "application/json",
		"Content-Type":    "application/json",
		"Client-Platform": "web",
		"User-Agent":      types.UserAgent,
		"Origin":          "https://app.monarchmoney.com",
		"device-uuid":     uuid.New().String(),
	}

	return &Service{
		baseURL:    baseURL,
		httpClient: httpClient,
		headers:    headers,
		logger:     logger,
	}
}

// Login authenticates with the configured credentials and returns a new
// session. When the server demands a second factor and a TOTP seed is
// configured, the code is generated and submitted in the same flow;
// without a seed the attempt fails with types.ErrMFARequired.
func (s *Service) Login(ctx context.Context, creds types.Credentials) (*types.Session, error) {
	session, err := s.login(ctx, creds.Email, creds.Password, "")
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, types.ErrMFARequired) {
		return nil, err
	}

	if creds.MFASecret == "" {
		if s.logger != nil {
			s.logger.Error("Login requires MFA and no TOTP seed is configured", "email", creds.Email)
		}
		return nil, types.ErrMFARequired
	}

	code, err := generateTOTP(creds.MFASecret, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate TOTP code")
	}

	return s.login(ctx, creds.Email, creds.Password, code)
}

// login performs a single login request, optionally carrying a TOTP code.
func (s *Service) login(ctx context.Context, email, password, totpCode string) (*types.Session, error) {
	reqBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	if totpCode != "" {
		reqBody["totp"] = totpCode
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal login request")
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+loginEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create login request")
	}

	for k, v := range s.headers {
		req.Header.Set(k, v)
	}

	if s.logger != nil {
		s.logger.Debug("Login request", "email", email, "totp", totpCode != "")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read login response")
	}

	if s.logger != nil {
		s.logger.Debug("Login response", "status", resp.StatusCode)
	}

	var loginResp loginResponse
	if err := json.Unmarshal(respBody, &loginResp); err != nil {
		return nil, errors.Wrap(err, "failed to parse login response")
	}

	if loginResp.ErrorCode != "" {
		switch loginResp.ErrorCode {
		case errorCodeMFARequired:
			return nil, types.ErrMFARequired
		case errorCodeInvalidCredentials:
			return nil, types.ErrLoginFailed
		default:
			return nil, &types.Error{
				Code:    loginResp.ErrorCode,
				Message: loginResp.Message,
				Err:     types.ErrLoginFailed,
			}
		}
	}

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, types.ErrLoginFailed
		}
		return nil, &types.Error{
			Code:       "LOGIN_FAILED",
			Message:    fmt.Sprintf("login failed with status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        types.ErrLoginFailed,
		}
	}

	if loginResp.Token == "" {
		return nil, errors.Wrap(types.ErrLoginFailed, "no token in login response")
	}

	session := &types.Session{
		Token:      loginResp.Token,
		UserID:     loginResp.UserID,
		Email:      email,
		ExpiresAt:  time.Now().Add(24 * time.Hour), // Default 24h expiry
		DeviceUUID: s.headers["device-uuid"],
	}

	if s.logger != nil {
		s.logger.Info("Login successful", "email", email)
	}

	return session, nil
}

// loginResponse represents the login API response
type loginResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}
