package spotify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents an error response from the Web API or the token endpoint.
//
// Regular Web API errors carry {"error": {"status": 404, "message": "..."}}.
// The token endpoint uses the OAuth2 shape {"error": "invalid_client",
// "error_description": "..."}; both are folded into Status and Message.
type Error struct {
	Status  int    // HTTP status code
	Message string // Error message from Spotify
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("spotify: error %d: %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("spotify: error %d: %s", e.Status, e.Message)
}

// Is checks if the target error is a Spotify error with the same status.
//
// This allows errors.Is(err, spotify.ErrNotFound) to match any 404.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Status == t.Status
}

// Predefined errors for common cases.
var (
	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("spotify: invalid configuration")

	// ErrMissingToken is returned when the token endpoint answers 200 but
	// the body has no access_token.
	ErrMissingToken = errors.New("spotify: token response has no access_token")

	// ErrNotFound matches any 404 response via errors.Is.
	ErrNotFound = &Error{Status: http.StatusNotFound}

	// ErrUnauthorized matches any 401 response via errors.Is.
	ErrUnauthorized = &Error{Status: http.StatusUnauthorized}
)

type regularErrorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

type authErrorBody struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// parseError builds an *Error from a non-2xx response. Bodies that are not
// JSON still produce an *Error with the HTTP status.
func parseError(status int, body []byte) *Error {
	apiErr := &Error{Status: status}

	var regular regularErrorBody
	if err := json.Unmarshal(body, &regular); err == nil && regular.Error.Message != "" {
		apiErr.Message = regular.Error.Message
		return apiErr
	}

	var auth authErrorBody
	if err := json.Unmarshal(body, &auth); err == nil && auth.Error != "" {
		apiErr.Message = auth.Error
		if auth.ErrorDescription != "" {
			apiErr.Message += ": " + auth.ErrorDescription
		}
	}

	return apiErr
}
