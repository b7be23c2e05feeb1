package spotify

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// AuthService provides authentication operations for the Spotify Accounts
// service.
type AuthService struct {
	client *Client
}

// ClientCredentials exchanges the client id and secret for an app access
// token using the OAuth2 client-credentials grant.
//
// The token authenticates the application itself, not a user, so it can
// only be used for public catalog endpoints. It is not refreshed; request a
// new one when it expires.
//
// Example:
//
//	token, err := client.Auth().ClientCredentials(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.Get(ctx, token.AccessToken, "/v1/artists/0TnOYISbd1XYRBk9myaseg", nil, nil)
func (a *AuthService) ClientCredentials(ctx context.Context) (*Token, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.client.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Basic "+a.basicCredentials())

	resp, err := a.client.send(req)
	if err != nil {
		return nil, err
	}

	a.client.logDebugf("[POST] %s", a.client.tokenURL)
	a.client.logDebugf("Status: %d", resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		return nil, parseError(resp.StatusCode, resp.Body)
	}

	var token Token
	if err := resp.Decode(&token); err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, ErrMissingToken
	}

	a.client.logDebugf("Token: type=%s expires_in=%d", token.TokenType, token.ExpiresIn)
	return &token, nil
}

// basicCredentials returns base64(client_id:client_secret).
func (a *AuthService) basicCredentials() string {
	creds := a.client.clientID + ":" + a.client.clientSecret
	return base64.StdEncoding.EncodeToString([]byte(creds))
}
