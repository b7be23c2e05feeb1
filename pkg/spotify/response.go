package spotify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
)

// Response is a fully-read Web API response. It is returned unchanged from
// Do regardless of status code.
type Response struct {
	Method     string // Request method as sent
	URL        string // Full request URL, including the query string
	StatusCode int
	Header     http.Header
	Body       []byte

	parseOnce sync.Once
	parsed    map[string]any
	parseErr  error
}

// Text returns the body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON parses the body as a JSON object. The result is computed on first
// call and reused afterwards.
func (r *Response) JSON() (map[string]any, error) {
	r.parseOnce.Do(func() {
		if err := json.Unmarshal(r.Body, &r.parsed); err != nil {
			r.parseErr = fmt.Errorf("failed to parse JSON response: %w", err)
		}
	})
	return r.parsed, r.parseErr
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns the API error carried by a non-2xx response, or nil.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return parseError(r.StatusCode, r.Body)
}
