package spotify

import (
	"errors"
	"net/http"
	"testing"
)

func TestResponse_JSON(t *testing.T) {
	resp := &Response{StatusCode: http.StatusOK, Body: []byte(`{"id":"abc","genres":["rock"]}`)}

	data, err := resp.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data["id"] != "abc" {
		t.Errorf("expected id abc, got %v", data["id"])
	}

	// Memoised: mutating the map is visible on the next call.
	data["id"] = "changed"
	again, _ := resp.JSON()
	if again["id"] != "changed" {
		t.Error("expected JSON() to return the cached map")
	}
}

func TestResponse_JSON_Invalid(t *testing.T) {
	resp := &Response{StatusCode: http.StatusBadGateway, Body: []byte("<html>bad gateway</html>")}
	if _, err := resp.JSON(); err == nil {
		t.Fatal("expected parse error")
	}
	if resp.Text() != "<html>bad gateway</html>" {
		t.Errorf("unexpected text %q", resp.Text())
	}
}

func TestResponse_Err(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantNil     bool
		wantMessage string
	}{
		{name: "ok", status: 200, body: `{}`, wantNil: true},
		{name: "no content", status: 204, wantNil: true},
		{
			name:        "regular error",
			status:      400,
			body:        `{"error":{"status":400,"message":"Invalid base62 id"}}`,
			wantMessage: "Invalid base62 id",
		},
		{
			name:        "auth error",
			status:      400,
			body:        `{"error":"unsupported_grant_type","error_description":"grant_type parameter is missing"}`,
			wantMessage: "unsupported_grant_type: grant_type parameter is missing",
		},
		{name: "non json", status: 502, body: "upstream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{StatusCode: tt.status, Body: []byte(tt.body)}
			err := resp.Err()
			if tt.wantNil {
				if err != nil {
					t.Fatalf("expected nil, got %v", err)
				}
				return
			}
			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, apiErr.Status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("expected message %q, got %q", tt.wantMessage, apiErr.Message)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{Status: 502}
	if got := err.Error(); got != "spotify: error 502: Bad Gateway" {
		t.Errorf("Error() = %q", got)
	}
	err = &Error{Status: 404, Message: "Non existing id"}
	if got := err.Error(); got != "spotify: error 404: Non existing id" {
		t.Errorf("Error() = %q", got)
	}
}

func TestMethod(t *testing.T) {
	tests := []struct {
		in         string
		want       Method
		allowsBody bool
	}{
		{"get", MethodGet, false},
		{"POST", MethodPost, true},
		{" put ", MethodPut, true},
		{"Delete", MethodDelete, true},
		{"patch", MethodPatch, true},
	}

	for _, tt := range tests {
		m, err := ParseMethod(tt.in)
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", tt.in, err)
		}
		if m != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, m, tt.want)
		}
		if m.AllowsBody() != tt.allowsBody {
			t.Errorf("%v.AllowsBody() = %v", m, m.AllowsBody())
		}
	}

	if _, err := ParseMethod("HEAD"); err == nil {
		t.Error("expected error for unsupported method")
	}
	if Method(42).String() != "UNKNOWN" {
		t.Errorf("unexpected String() for invalid method: %s", Method(42))
	}
}
