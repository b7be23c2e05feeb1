package suite

import (
	"context"
	"fmt"
	"sync"

	"github.com/jfmyers9/tunecheck/pkg/spotify"
)

// Fixtures holds the fixed catalog ids and markets the scenarios use
type Fixtures struct {
	ArtistValid   string
	ArtistInvalid string
	AlbumValid    string
	AlbumInvalid  string
	Country       string // country param for top-tracks
	Market        string // market param for album lookups
	TopTracksMax  int    // documented maximum length of a top-tracks list
}

// Session is the shared, read-only state of a test session: one API client
// and one access token, acquired on first use and reused by every scenario.
type Session struct {
	client   *spotify.Client
	fixtures Fixtures

	once      sync.Once
	token     *spotify.Token
	err       error
	exchanges int
}

// NewSession creates a session. No request is made until Token is called.
func NewSession(client *spotify.Client, fixtures Fixtures) *Session {
	return &Session{
		client:   client,
		fixtures: fixtures,
	}
}

// Token returns the session's access token, performing the
// client-credentials exchange on the first call only. A failed exchange is
// cached too, so every later call reports the same error.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.once.Do(func() {
		s.exchanges++
		s.token, s.err = s.client.Auth().ClientCredentials(ctx)
		if s.err != nil {
			s.err = fmt.Errorf("token acquisition failed: %w", s.err)
		}
	})
	if s.err != nil {
		return "", s.err
	}
	return s.token.AccessToken, nil
}

// Exchanges reports how many token exchanges the session has performed.
func (s *Session) Exchanges() int {
	return s.exchanges
}

// Client returns the session's API client.
func (s *Session) Client() *spotify.Client {
	return s.client
}

// Fixtures returns the session's fixture ids.
func (s *Session) Fixtures() Fixtures {
	return s.fixtures
}
