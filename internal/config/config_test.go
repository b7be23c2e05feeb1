package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Spotify.BaseURL != "https://api.spotify.com" {
		t.Errorf("unexpected base URL %q", cfg.Spotify.BaseURL)
	}
	if cfg.Spotify.TokenURL != "https://accounts.spotify.com/api/token" {
		t.Errorf("unexpected token URL %q", cfg.Spotify.TokenURL)
	}
	if cfg.Fixtures.TopTracksMax != 10 {
		t.Errorf("expected top tracks max 10, got %d", cfg.Fixtures.TopTracksMax)
	}
	if cfg.Fixtures.Country != "US" || cfg.Fixtures.Market != "US" {
		t.Errorf("unexpected markets %q/%q", cfg.Fixtures.Country, cfg.Fixtures.Market)
	}
	if want := filepath.Join(home, ".local", "share", "tunecheck", "history.db"); cfg.HistoryDB != want {
		t.Errorf("expected history db %q, got %q", want, cfg.HistoryDB)
	}

	if _, err := os.Stat(filepath.Join(home, ".config", "tunecheck")); err != nil {
		t.Errorf("expected config dir to be created: %v", err)
	}

	if err := cfg.Validate(); !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TUNECHECK_SPOTIFY_CLIENT_ID", "env-id")
	t.Setenv("TUNECHECK_SPOTIFY_CLIENT_SECRET", "env-secret")
	t.Setenv("TUNECHECK_FIXTURES_MARKET", "SE")
	t.Setenv("TUNECHECK_FIXTURES_TOP_TRACKS_MAX", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Spotify.ClientID != "env-id" || cfg.Spotify.ClientSecret != "env-secret" {
		t.Errorf("credentials not read from env: %+v", cfg.Spotify)
	}
	if cfg.Fixtures.Market != "SE" {
		t.Errorf("expected market SE, got %q", cfg.Fixtures.Market)
	}
	if cfg.Fixtures.TopTracksMax != 5 {
		t.Errorf("expected top tracks max 5, got %d", cfg.Fixtures.TopTracksMax)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Spotify.ClientID = "saved-id"
	cfg.Spotify.ClientSecret = "saved-secret"
	cfg.Fixtures.AlbumValid = "album-123"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Spotify.ClientID != "saved-id" || reloaded.Spotify.ClientSecret != "saved-secret" {
		t.Errorf("credentials not persisted: %+v", reloaded.Spotify)
	}
	if reloaded.Fixtures.AlbumValid != "album-123" {
		t.Errorf("expected album fixture album-123, got %q", reloaded.Fixtures.AlbumValid)
	}
}
