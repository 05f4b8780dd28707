package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monarch-agent/monarch-mcp/internal/types"
)

func TestExecute_RequiresSession(t *testing.T) {
	tr := NewGraphQLTransport(&Options{BaseURL: "https://api.test.example"})

	err := tr.Execute(context.Background(), "query Q { x }", nil, nil)
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestExecute_ExpiredSession(t *testing.T) {
	tr := NewGraphQLTransport(&Options{BaseURL: "https://api.test.example"})
	tr.SetSession(&types.Session{
		Token:     "tok",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	err := tr.Execute(context.Background(), "query Q { x }", nil, nil)
	assert.ErrorIs(t, err, types.ErrSessionExpired)
}

func TestExecute_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, "Token tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "dev-1", r.Header.Get("device-uuid"))

		var req GraphQLRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "GetAccounts")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"accounts": []map[string]interface{}{{"id": "acc-1"}},
			},
		})
	}))
	defer srv.Close()

	tr := NewGraphQLTransport(&Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	tr.SetSession(&types.Session{Token: "tok-123", DeviceUUID: "dev-1"})

	var result struct {
		Accounts []struct {
			ID string `json:"id"`
		} `json:"accounts"`
	}
	err := tr.Execute(context.Background(), "query GetAccounts { accounts { id } }", nil, &result)
	require.NoError(t, err)
	require.Len(t, result.Accounts, 1)
	assert.Equal(t, "acc-1", result.Accounts[0].ID)
}

func TestExecute_RetriesServerErrors(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"ping": "pong"},
		})
	}))
	defer srv.Close()

	tr := NewGraphQLTransport(&Options{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		RetryConfig: &types.RetryConfig{
			MaxRetries: 3,
			RetryWait:  time.Millisecond,
			MaxWait:    5 * time.Millisecond,
		},
	})
	tr.SetSession(&types.Session{Token: "tok"})

	var result struct {
		Ping string `json:"ping"`
	}
	err := tr.Execute(context.Background(), "query Ping { ping }", nil, &result)
	require.NoError(t, err)
	assert.Equal(t, "pong", result.Ping)
	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestExecute_RetriesExhausted(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := NewGraphQLTransport(&Options{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		RetryConfig: &types.RetryConfig{
			MaxRetries: 2,
			RetryWait:  time.Millisecond,
			MaxWait:    5 * time.Millisecond,
		},
	})
	tr.SetSession(&types.Session{Token: "tok"})

	err := tr.Execute(context.Background(), "query Ping { ping }", nil, nil)
	require.Error(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestExecute_GraphQLErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]interface{}{{"message": "field not found"}},
		})
	}))
	defer srv.Close()

	tr := NewGraphQLTransport(&Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	tr.SetSession(&types.Session{Token: "tok"})

	err := tr.Execute(context.Background(), "query Q { x }", nil, nil)
	require.Error(t, err)
	var gqlErrs *types.GraphQLErrors
	assert.ErrorAs(t, err, &gqlErrs)
	assert.Contains(t, err.Error(), "field not found")
}

func TestExecute_AuthExpiryStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	tr := NewGraphQLTransport(&Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	tr.SetSession(&types.Session{Token: "stale"})

	err := tr.Execute(context.Background(), "query Q { x }", nil, nil)
	assert.ErrorIs(t, err, types.ErrNotAuthenticated)
}

func TestHandleHTTPError_ServerError_IncludesResponseBody(t *testing.T) {
	transport := &GraphQLTransport{}

	tests := []struct {
		name          string
		statusCode    int
		responseBody  []byte
		expectedInMsg string
		expectedCode  string
	}{
		{
			name:          "525 SSL Handshake Failed with HTML body",
			statusCode:    525,
			responseBody:  []byte(`<html><body>SSL Handshake Failed</body></html>`),
			expectedInMsg: "525",
			expectedCode:  "SERVER_ERROR",
		},
		{
			name:          "500 with JSON error message",
			statusCode:    500,
			responseBody:  []byte(`{"error": "Internal server error", "message": "Database connection failed"}`),
			expectedInMsg: "Database connection failed",
			expectedCode:  "SERVER_ERROR",
		},
		{
			name:          "502 Bad Gateway with empty body",
			statusCode:    502,
			responseBody:  []byte{},
			expectedInMsg: "502",
			expectedCode:  "SERVER_ERROR",
		},
		{
			name:          "503 Service Unavailable",
			statusCode:    503,
			responseBody:  []byte(`Service temporarily unavailable`),
			expectedInMsg: "503",
			expectedCode:  "SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transport.handleHTTPError(tt.statusCode, tt.responseBody)

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedInMsg, "error should contain status code or message")

			if tt.statusCode == 500 && len(tt.responseBody) > 0 {
				assert.Contains(t, err.Error(), "Database connection failed", "should include parsed error message")
			}
		})
	}
}

func TestHandleHTTPError_ServerError_IncludesStatusCodeDescription(t *testing.T) {
	transport := &GraphQLTransport{}

	tests := []struct {
		name         string
		statusCode   int
		expectedDesc string
	}{
		{"500 Internal Server Error", 500, "Internal Server Error"},
		{"502 Bad Gateway", 502, "Bad Gateway"},
		{"503 Service Unavailable", 503, "Service Unavailable"},
		{"525 SSL Handshake Failed", 525, "SSL Handshake Failed"},
		{"526 Invalid SSL Certificate", 526, "Invalid SSL Certificate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := transport.handleHTTPError(tt.statusCode, []byte(`error page`))

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedDesc, "error should include human-readable description")
		})
	}
}
