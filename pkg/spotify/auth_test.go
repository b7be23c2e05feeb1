package spotify

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestAuthService_ClientCredentials tests the client-credentials exchange.
func TestAuthService_ClientCredentials(t *testing.T) {
	tests := []struct {
		name        string
		response    string
		statusCode  int
		wantToken   string
		wantExpires int
		wantErr     error
		errContains string
	}{
		{
			name:        "success",
			response:    `{"access_token":"BQD-token","token_type":"Bearer","expires_in":3600}`,
			statusCode:  http.StatusOK,
			wantToken:   "BQD-token",
			wantExpires: 3600,
		},
		{
			name:        "invalid client",
			response:    `{"error":"invalid_client","error_description":"Invalid client secret"}`,
			statusCode:  http.StatusBadRequest,
			errContains: "invalid_client: Invalid client secret",
		},
		{
			name:        "unauthorized",
			response:    `{"error":"invalid_client"}`,
			statusCode:  http.StatusUnauthorized,
			wantErr:     ErrUnauthorized,
			errContains: "error 401",
		},
		{
			name:       "missing access token",
			response:   `{"token_type":"Bearer"}`,
			statusCode: http.StatusOK,
			wantErr:    ErrMissingToken,
		},
		{
			name:        "malformed body",
			response:    `not json`,
			statusCode:  http.StatusOK,
			errContains: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify request method
				if r.Method != "POST" {
					t.Errorf("expected POST request, got %s", r.Method)
				}
				if r.URL.Path != "/api/token" {
					t.Errorf("expected path /api/token, got %s", r.URL.Path)
				}

				// Verify Content-Type
				if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
					t.Errorf("expected Content-Type application/x-www-form-urlencoded, got %s", ct)
				}

				// Verify Basic credentials
				wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("test-client-id:test-client-secret"))
				if auth := r.Header.Get("Authorization"); auth != wantAuth {
					t.Errorf("expected Authorization %q, got %q", wantAuth, auth)
				}
				id, secret, ok := r.BasicAuth()
				if !ok || id != "test-client-id" || secret != "test-client-secret" {
					t.Errorf("unexpected basic auth: %q %q %v", id, secret, ok)
				}

				if err := r.ParseForm(); err != nil {
					t.Fatalf("failed to parse form: %v", err)
				}
				if gt := r.FormValue("grant_type"); gt != "client_credentials" {
					t.Errorf("expected grant_type client_credentials, got %s", gt)
				}

				w.WriteHeader(tt.statusCode)
				if _, err := w.Write([]byte(tt.response)); err != nil {
					t.Fatalf("failed to write response body: %v", err)
				}
			}))
			defer server.Close()

			client := newTestClient(t, server.URL, nil)
			token, err := client.Auth().ClientCredentials(context.Background())

			if tt.wantErr != nil || tt.errContains != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error to contain %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token.AccessToken != tt.wantToken {
				t.Errorf("expected token %q, got %q", tt.wantToken, token.AccessToken)
			}
			if token.ExpiresIn != tt.wantExpires {
				t.Errorf("expected expires_in %d, got %d", tt.wantExpires, token.ExpiresIn)
			}
		})
	}
}

func TestAuthService_ClientCredentials_DoesNotLogToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"secret-token-value","token_type":"Bearer","expires_in":3600}`))
	}))
	defer server.Close()

	logger := &recordingLogger{}
	client := newTestClient(t, server.URL, logger)

	if _, err := client.Auth().ClientCredentials(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, line := range logger.lines {
		if strings.Contains(line, "secret-token-value") {
			t.Errorf("token leaked into log line %q", line)
		}
	}
}
