package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jfmyers9/tunecheck/pkg/spotify"
	"github.com/spf13/cobra"
)

var (
	getMethod  string
	getParams  []string
	getHeaders []string
	getData    string
	getJSON    string
	getTimeout time.Duration
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get PATH",
	Short: "Send an authenticated request to the Web API",
	Long: `Send a single authenticated request to the Web API and print the response.

PATH is appended to the configured base URL, e.g. /v1/artists/0TnOYISbd1XYRBk9myaseg.
Query parameters with an empty value are dropped. Headers given with -H
override the bearer Authorization header. A body (-d or --json) is only
sent for POST, PUT, PATCH and DELETE.

Examples:
  tunecheck get /v1/albums/4aawyAB9vmqN3uQ7FjRGTy -q market=US
  tunecheck get /v1/artists/0TnOYISbd1XYRBk9myaseg/top-tracks -q country=SE`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&getMethod, "request", "X", "GET", "HTTP method (GET, POST, PUT, DELETE, PATCH)")
	getCmd.Flags().StringArrayVarP(&getParams, "query", "q", nil, "Query parameter key=value (repeatable)")
	getCmd.Flags().StringArrayVarP(&getHeaders, "header", "H", nil, "Header 'Key: Value' (repeatable)")
	getCmd.Flags().StringVarP(&getData, "data", "d", "", "Raw request body")
	getCmd.Flags().StringVar(&getJSON, "json", "", "JSON request body")
	getCmd.Flags().DurationVar(&getTimeout, "timeout", 30*time.Second, "Request timeout (0=none)")
}

func runGet(cmd *cobra.Command, args []string) error {
	method, err := spotify.ParseMethod(getMethod)
	if err != nil {
		return err
	}

	params, err := parseParams(getParams)
	if err != nil {
		return err
	}

	header, err := parseHeaders(getHeaders)
	if err != nil {
		return err
	}

	req := spotify.Request{
		Method: method,
		Path:   args[0],
		Params: params,
		Header: header,
	}
	if getData != "" {
		req.Data = []byte(getData)
	}
	if getJSON != "" {
		if !json.Valid([]byte(getJSON)) {
			return fmt.Errorf("--json is not valid JSON")
		}
		req.JSON = json.RawMessage(getJSON)
	}

	logger, logCloser, err := setupLogger(logFile, logLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	_, session, err := newSession(logger)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if getTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, getTimeout)
		defer cancel()
	}

	token, err := session.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := session.Client().Do(ctx, token, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d %s\n", resp.StatusCode, http.StatusText(resp.StatusCode))
	fmt.Fprintln(out, prettyBody(resp.Body))

	if !resp.OK() {
		return resp.Err()
	}
	return nil
}

// parseParams turns key=value pairs into Params. An empty value maps to nil
// so the parameter is dropped from the query.
func parseParams(pairs []string) (spotify.Params, error) {
	params := spotify.Params{}
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid query parameter %q, expected key=value", p)
		}
		if value == "" {
			params[key] = nil
			continue
		}
		params[key] = value
	}
	return params, nil
}

// parseHeaders turns "Key: Value" strings into an http.Header.
func parseHeaders(lines []string) (http.Header, error) {
	header := http.Header{}
	for _, l := range lines {
		key, value, ok := strings.Cut(l, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q, expected 'Key: Value'", l)
		}
		header.Add(key, strings.TrimSpace(value))
	}
	return header, nil
}

// prettyBody indents JSON bodies and returns anything else unchanged.
func prettyBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}
