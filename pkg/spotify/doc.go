// Package spotify provides a small client for the Spotify Web API catalog
// endpoints.
//
// # Overview
//
// The package covers what an API test suite needs: an app access token via
// the client-credentials grant, a request helper that builds authenticated
// requests, and typed lookups for artists, top tracks and albums. Responses
// are returned unchanged, whatever their status code, so callers can assert
// on negative cases as easily as positive ones.
//
// # Quick Start
//
//	client, err := spotify.NewClient(spotify.Config{
//	    ClientID:     "your-client-id",
//	    ClientSecret: "your-client-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := client.Auth().ClientCredentials(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Requests
//
// Client.Do takes a Request descriptor. Query parameters with nil values are
// dropped, caller headers override the bearer Authorization header, and a
// body is only sent for POST, PUT, PATCH and DELETE:
//
//	resp, err := client.Do(ctx, token.AccessToken, spotify.Request{
//	    Method: spotify.MethodGet,
//	    Path:   spotify.TopTracksPath("0TnOYISbd1XYRBk9myaseg"),
//	    Params: spotify.Params{"country": "US"},
//	})
//	if err != nil {
//	    log.Fatal(err) // transport failure, returned unchanged
//	}
//	fmt.Println(resp.StatusCode, resp.Text())
//
// There is no retry and no timeout handling. Configure the injected
// HTTPClient or pass a context with a deadline if you need either.
//
// # Error Handling
//
// Transport errors from the HTTP client are returned as-is. The typed
// catalog methods turn non-2xx responses into *Error:
//
//	album, err := client.Catalog().Album(ctx, token.AccessToken, id, "US")
//	if errors.Is(err, spotify.ErrNotFound) {
//	    // no such album
//	}
//
// # Logging
//
// Set Config.Logger to receive the method, URL, status and body of every
// call. Logging is purely observational.
package spotify
