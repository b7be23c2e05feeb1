package cmd

import (
	"fmt"

	"github.com/jfmyers9/tunecheck/internal/config"
	"github.com/jfmyers9/tunecheck/internal/suite"
	"github.com/jfmyers9/tunecheck/pkg/spotify"
	"github.com/rs/zerolog"
)

// newSession loads configuration and builds a client and session from it.
func newSession(logger zerolog.Logger) (*config.Config, *suite.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w. Run 'tunecheck configure' first", err)
	}

	client, err := spotify.NewClient(spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		BaseURL:      cfg.Spotify.BaseURL,
		TokenURL:     cfg.Spotify.TokenURL,
		Logger:       suite.NewRequestLogger(logger),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create client: %w", err)
	}

	session := suite.NewSession(client, suite.Fixtures{
		ArtistValid:   cfg.Fixtures.ArtistValid,
		ArtistInvalid: cfg.Fixtures.ArtistInvalid,
		AlbumValid:    cfg.Fixtures.AlbumValid,
		AlbumInvalid:  cfg.Fixtures.AlbumInvalid,
		Country:       cfg.Fixtures.Country,
		Market:        cfg.Fixtures.Market,
		TopTracksMax:  cfg.Fixtures.TopTracksMax,
	})

	return cfg, session, nil
}
