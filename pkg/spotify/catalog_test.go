package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/artists/good", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"good","name":"Pitbull","genres":["pop"],"images":[{"url":"https://i/1","height":640,"width":640}],"popularity":80}`))
	})
	mux.HandleFunc("/v1/artists/good/top-tracks", func(w http.ResponseWriter, r *http.Request) {
		if c := r.URL.Query().Get("country"); c != "" && c != "US" {
			t.Errorf("unexpected country %q", c)
		}
		_, _ = w.Write([]byte(`{"tracks":[{"id":"t1","name":"Timber"},{"id":"t2","name":"Give Me Everything"}]}`))
	})
	mux.HandleFunc("/v1/albums/good", func(w http.ResponseWriter, r *http.Request) {
		if m := r.URL.Query().Get("market"); m != "US" {
			t.Errorf("expected market US, got %q", m)
		}
		_, _ = w.Write([]byte(`{"id":"good","name":"Global Warming","album_type":"album","release_date":"2012-11-16","total_tracks":18,"artists":[{"id":"good","name":"Pitbull"}],"images":[{"url":"https://i/2"}]}`))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"status":404,"message":"Resource not found"}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestCatalogService_Artist(t *testing.T) {
	server := newCatalogServer(t)
	client := newTestClient(t, server.URL, nil)
	ctx := context.Background()

	artist, err := client.Catalog().Artist(ctx, "tok", "good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if artist.ID != "good" || artist.Name != "Pitbull" {
		t.Errorf("unexpected artist: %+v", artist)
	}
	if len(artist.Genres) != 1 || len(artist.Images) != 1 {
		t.Errorf("expected one genre and one image, got %+v", artist)
	}

	_, err = client.Catalog().Artist(ctx, "tok", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Message != "Resource not found" {
		t.Errorf("expected *Error with message, got %v", err)
	}
}

func TestCatalogService_ArtistTopTracks(t *testing.T) {
	server := newCatalogServer(t)
	client := newTestClient(t, server.URL, nil)

	for _, country := range []string{"US", ""} {
		top, err := client.Catalog().ArtistTopTracks(context.Background(), "tok", "good", country)
		if err != nil {
			t.Fatalf("country %q: unexpected error: %v", country, err)
		}
		if len(top.Tracks) != 2 {
			t.Errorf("country %q: expected 2 tracks, got %d", country, len(top.Tracks))
		}
	}
}

func TestCatalogService_Album(t *testing.T) {
	server := newCatalogServer(t)
	client := newTestClient(t, server.URL, nil)

	album, err := client.Catalog().Album(context.Background(), "tok", "good", "US")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if album.TotalTracks != 18 || album.AlbumType != "album" || album.ReleaseDate != "2012-11-16" {
		t.Errorf("unexpected album: %+v", album)
	}
	if len(album.Artists) == 0 || len(album.Images) == 0 {
		t.Errorf("expected artists and images, got %+v", album)
	}
}

func TestResourcePaths(t *testing.T) {
	if got := ArtistPath("abc"); got != "/v1/artists/abc" {
		t.Errorf("ArtistPath() = %q", got)
	}
	if got := TopTracksPath("abc"); got != "/v1/artists/abc/top-tracks" {
		t.Errorf("TopTracksPath() = %q", got)
	}
	if got := AlbumPath("a/b"); got != "/v1/albums/a%2Fb" {
		t.Errorf("AlbumPath() = %q", got)
	}
}
