package spotify

import (
	"fmt"
	"net/http"
	"strings"
)

// Method selects the HTTP verb for a Request.
type Method int

const (
	MethodGet Method = iota
	MethodPost
	MethodPut
	MethodDelete
	MethodPatch
)

// String returns the HTTP verb, e.g. "GET".
func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	case MethodPut:
		return http.MethodPut
	case MethodDelete:
		return http.MethodDelete
	case MethodPatch:
		return http.MethodPatch
	default:
		return "UNKNOWN"
	}
}

// AllowsBody reports whether requests with this method may carry a body.
// Only POST, PUT, PATCH and DELETE do; a body supplied for GET is ignored.
func (m Method) AllowsBody() bool {
	switch m {
	case MethodPost, MethodPut, MethodPatch, MethodDelete:
		return true
	default:
		return false
	}
}

// ParseMethod converts a verb name (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case http.MethodGet:
		return MethodGet, nil
	case http.MethodPost:
		return MethodPost, nil
	case http.MethodPut:
		return MethodPut, nil
	case http.MethodDelete:
		return MethodDelete, nil
	case http.MethodPatch:
		return MethodPatch, nil
	default:
		return 0, fmt.Errorf("spotify: unsupported method %q", s)
	}
}
