package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Params holds query parameters for a Request. A nil value, or a nil
// *string, drops the parameter. Other values are formatted with fmt.Sprint.
type Params map[string]any

// Request describes a single Web API call. It is built per call and never
// retained by the client.
//
// At most one body channel is used: Data, then JSON, then Form. The body is
// only sent when Method.AllowsBody reports true.
type Request struct {
	Method Method
	Path   string
	Params Params
	Header http.Header

	Data []byte     // Raw body, sent as-is
	JSON any        // Marshalled as application/json
	Form url.Values // Encoded as application/x-www-form-urlencoded
}

// Do builds req against the base URL, authenticates it with the bearer
// token, and sends it through the configured HTTP client.
//
// The response is returned whatever its status code. Transport errors are
// returned unchanged; there is no retry and no timeout beyond what the
// injected client and ctx impose.
//
// Example:
//
//	resp, err := client.Do(ctx, token, spotify.Request{
//	    Method: spotify.MethodGet,
//	    Path:   "/v1/albums/4aawyAB9vmqN3uQ7FjRGTy",
//	    Params: spotify.Params{"market": "US"},
//	})
func (c *Client) Do(ctx context.Context, token string, req Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Params)

	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method.String(), fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	for k, vs := range req.Header {
		httpReq.Header.Del(k)
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	resp, err := c.send(httpReq)
	if err != nil {
		return nil, err
	}

	c.logDebugf("[%s] %s", resp.Method, resp.URL)
	c.logDebugf("Status: %d", resp.StatusCode)
	c.logDebugf("Body: %s", resp.Text())

	return resp, nil
}

// Get issues a bearer-authenticated GET.
func (c *Client) Get(ctx context.Context, token, path string, params Params, header http.Header) (*Response, error) {
	return c.Do(ctx, token, Request{
		Method: MethodGet,
		Path:   path,
		Params: params,
		Header: header,
	})
}

// Post issues a bearer-authenticated POST. The body channels follow the
// same precedence as Request.
func (c *Client) Post(ctx context.Context, token, path string, data []byte, jsonBody any, form url.Values, header http.Header) (*Response, error) {
	return c.Do(ctx, token, Request{
		Method: MethodPost,
		Path:   path,
		Header: header,
		Data:   data,
		JSON:   jsonBody,
		Form:   form,
	})
}

// send dispatches req and reads the full response body.
func (c *Client) send(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}

	return &Response{
		Method:     req.Method,
		URL:        req.URL.String(),
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// buildURL joins the base URL and path, appending a query string only when
// at least one parameter survives nil-dropping.
func (c *Client) buildURL(path string, params Params) string {
	u := c.baseURL + path

	query := url.Values{}
	for k, v := range params {
		s, ok := paramValue(v)
		if !ok {
			continue
		}
		query.Set(k, s)
	}

	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func paramValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case *string:
		if val == nil {
			return "", false
		}
		return *val, true
	case string:
		return val, true
	default:
		return fmt.Sprint(val), true
	}
}

// encodeBody picks the body channel for req. GET requests never carry one.
func encodeBody(req Request) (io.Reader, string, error) {
	if !req.Method.AllowsBody() {
		return nil, "", nil
	}

	switch {
	case req.Data != nil:
		return bytes.NewReader(req.Data), "", nil
	case req.JSON != nil:
		data, err := json.Marshal(req.JSON)
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode JSON body: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	case req.Form != nil:
		return bytes.NewReader([]byte(req.Form.Encode())), "application/x-www-form-urlencoded", nil
	default:
		return nil, "", nil
	}
}
