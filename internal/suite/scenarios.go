package suite

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jfmyers9/tunecheck/pkg/spotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// T is the assertion target a scenario reports to. *testing.T satisfies it,
// as does the Recorder used by the CLI runner.
type T interface {
	require.TestingT
	Helper()
	Logf(format string, args ...any)
}

// Kind classifies a scenario
type Kind string

const (
	KindPositive Kind = "positive"
	KindNegative Kind = "negative"
	KindEdge     Kind = "edge"
)

// Scenario is a single independent check against the catalog API
type Scenario struct {
	Name        string
	Kind        Kind
	Description string
	Run         func(ctx context.Context, t T, s *Session)
}

// Scenarios returns the full scenario set in execution order
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:        "artist/valid",
			Kind:        KindPositive,
			Description: "GET artist by valid id returns the artist",
			Run:         checkArtistValid,
		},
		{
			Name:        "artist/invalid",
			Kind:        KindNegative,
			Description: "GET artist by invalid id returns 404",
			Run:         checkArtistInvalid,
		},
		{
			Name:        "top-tracks/valid",
			Kind:        KindPositive,
			Description: "GET top tracks with country returns at most the maximum",
			Run:         checkTopTracksValid,
		},
		{
			Name:        "top-tracks/invalid-artist",
			Kind:        KindNegative,
			Description: "GET top tracks for invalid artist returns 404",
			Run:         checkTopTracksInvalidArtist,
		},
		{
			Name:        "top-tracks/missing-country",
			Kind:        KindEdge,
			Description: "GET top tracks without country falls back to the default market",
			Run:         checkTopTracksMissingCountry,
		},
		{
			Name:        "album/valid",
			Kind:        KindPositive,
			Description: "GET album by valid id returns the album",
			Run:         checkAlbumValid,
		},
		{
			Name:        "album/invalid",
			Kind:        KindNegative,
			Description: "GET album by invalid id returns 404 with an error body",
			Run:         checkAlbumInvalid,
		},
	}
}

// Lookup returns the scenario with the given name
func Lookup(name string) (Scenario, bool) {
	for _, sc := range Scenarios() {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}

func checkArtistValid(ctx context.Context, t T, s *Session) {
	id := s.fixtures.ArtistValid
	resp := get(ctx, t, s, spotify.ArtistPath(id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeObject(t, resp)
	assert.Equal(t, id, data["id"])
	assert.Contains(t, data, "name")
	requireList(t, data, "genres")
	requireList(t, data, "images")
	assert.Contains(t, data, "popularity")

	t.Logf("Artist name: %v, popularity: %v", data["name"], data["popularity"])
}

func checkArtistInvalid(ctx context.Context, t T, s *Session) {
	resp := get(ctx, t, s, spotify.ArtistPath(s.fixtures.ArtistInvalid), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func checkTopTracksValid(ctx context.Context, t T, s *Session) {
	params := spotify.Params{"country": s.fixtures.Country}
	resp := get(ctx, t, s, spotify.TopTracksPath(s.fixtures.ArtistValid), params)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeObject(t, resp)
	tracks := requireList(t, data, "tracks")
	assert.LessOrEqual(t, len(tracks), s.fixtures.TopTracksMax, "top tracks exceed the documented maximum")

	t.Logf("Top tracks:")
	for i, track := range tracks {
		if m, ok := track.(map[string]any); ok {
			t.Logf("%d. %v", i+1, m["name"])
		}
	}
}

func checkTopTracksInvalidArtist(ctx context.Context, t T, s *Session) {
	params := spotify.Params{"country": s.fixtures.Country}
	resp := get(ctx, t, s, spotify.TopTracksPath(s.fixtures.ArtistInvalid), params)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func checkTopTracksMissingCountry(ctx context.Context, t T, s *Session) {
	resp := get(ctx, t, s, spotify.TopTracksPath(s.fixtures.ArtistValid), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "API should use default market when country is not specified")

	data := decodeObject(t, resp)
	tracks := requireList(t, data, "tracks")
	require.NotEmpty(t, tracks, "Expected some tracks even without specifying country")
	assert.LessOrEqual(t, len(tracks), s.fixtures.TopTracksMax, "top tracks exceed the documented maximum without a country")

	if first, ok := tracks[0].(map[string]any); ok {
		t.Logf("Available markets for first track: %v", first["available_markets"])
	}
}

func checkAlbumValid(ctx context.Context, t T, s *Session) {
	id := s.fixtures.AlbumValid
	params := spotify.Params{"market": s.fixtures.Market}
	resp := get(ctx, t, s, spotify.AlbumPath(id), params)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeObject(t, resp)
	assert.Equal(t, id, data["id"])
	for _, key := range []string{"name", "release_date", "total_tracks", "album_type"} {
		assert.Contains(t, data, key)
	}

	artists := requireList(t, data, "artists")
	assert.NotEmpty(t, artists)
	images := requireList(t, data, "images")
	assert.NotEmpty(t, images)

	t.Logf("Album details:")
	t.Logf("Name: %v", data["name"])
	t.Logf("Artists: %s", strings.Join(listNames(artists), ", "))
	t.Logf("Release date: %v", data["release_date"])
	t.Logf("Total tracks: %v", data["total_tracks"])
	t.Logf("Album type: %v", data["album_type"])
}

func checkAlbumInvalid(ctx context.Context, t T, s *Session) {
	params := spotify.Params{"market": s.fixtures.Market}
	resp := get(ctx, t, s, spotify.AlbumPath(s.fixtures.AlbumInvalid), params)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	data := decodeObject(t, resp)
	assert.Contains(t, data, "error", "Response should contain error details")
}

// get issues a bearer-authenticated GET with the session token and logs
// the exchange to t for triage.
func get(ctx context.Context, t T, s *Session, path string, params spotify.Params) *spotify.Response {
	t.Helper()

	token, err := s.Token(ctx)
	require.NoError(t, err)

	resp, err := s.client.Get(ctx, token, path, params, nil)
	require.NoError(t, err, "GET %s", path)

	t.Logf("[%s] %s", resp.Method, resp.URL)
	t.Logf("Status: %d", resp.StatusCode)
	t.Logf("Body: %s", resp.Text())
	return resp
}

func decodeObject(t T, resp *spotify.Response) map[string]any {
	t.Helper()
	data, err := resp.JSON()
	require.NoError(t, err, "body: %s", resp.Text())
	return data
}

func requireList(t T, data map[string]any, key string) []any {
	t.Helper()
	require.Contains(t, data, key)
	list, ok := data[key].([]any)
	require.Truef(t, ok, "%s should be a list, got %T", key, data[key])
	return list
}

// listNames collects the "name" field of each object in list.
func listNames(list []any) []string {
	names := make([]string, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			names = append(names, fmt.Sprint(m["name"]))
		}
	}
	return names
}
