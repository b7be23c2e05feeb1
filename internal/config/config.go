package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Spotify API credentials and endpoints
	Spotify SpotifyConfig

	// Catalog ids and markets the scenarios run against
	Fixtures FixturesConfig

	// Path to the run history database
	// Default: ~/.local/share/tunecheck/history.db
	HistoryDB string

	// Width of the scenario name column in run reports
	ReportWidth int
}

// SpotifyConfig holds Spotify specific configuration
type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	TokenURL     string
}

// FixturesConfig holds the fixed ids used by the scenario set
type FixturesConfig struct {
	ArtistValid   string
	ArtistInvalid string
	AlbumValid    string
	AlbumInvalid  string
	Country       string
	Market        string
	TopTracksMax  int
}

// ErrMissingCredentials is returned by Validate when the client id or secret is unset.
var ErrMissingCredentials = errors.New("spotify client id and secret are required")

// Load reads configuration from file and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config file locations (in order of precedence)
	configDir := getConfigDir()
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)

	// Read config file (optional - don't fail if missing)
	_ = v.ReadInConfig()

	// Read from environment variables, e.g. TUNECHECK_SPOTIFY_CLIENT_ID
	v.SetEnvPrefix("TUNECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("spotify.base_url", "https://api.spotify.com")
	v.SetDefault("spotify.token_url", "https://accounts.spotify.com/api/token")

	v.SetDefault("fixtures.artist_valid", "0TnOYISbd1XYRBk9myaseg")
	v.SetDefault("fixtures.artist_invalid", "0000000000000000000000")
	v.SetDefault("fixtures.album_valid", "4aawyAB9vmqN3uQ7FjRGTy")
	v.SetDefault("fixtures.album_invalid", "0000000000000000000000")
	v.SetDefault("fixtures.country", "US")
	v.SetDefault("fixtures.market", "US")
	v.SetDefault("fixtures.top_tracks_max", 10)

	v.SetDefault("history_db", filepath.Join(getDataDir(), "history.db"))
	v.SetDefault("report_width", 32)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Spotify: SpotifyConfig{
			ClientID:     v.GetString("spotify.client_id"),
			ClientSecret: v.GetString("spotify.client_secret"),
			BaseURL:      v.GetString("spotify.base_url"),
			TokenURL:     v.GetString("spotify.token_url"),
		},
		Fixtures: FixturesConfig{
			ArtistValid:   v.GetString("fixtures.artist_valid"),
			ArtistInvalid: v.GetString("fixtures.artist_invalid"),
			AlbumValid:    v.GetString("fixtures.album_valid"),
			AlbumInvalid:  v.GetString("fixtures.album_invalid"),
			Country:       v.GetString("fixtures.country"),
			Market:        v.GetString("fixtures.market"),
			TopTracksMax:  v.GetInt("fixtures.top_tracks_max"),
		},
		HistoryDB:   v.GetString("history_db"),
		ReportWidth: v.GetInt("report_width"),
	}
}

// Validate checks that the credentials needed for a session are present
func (c *Config) Validate() error {
	if c.Spotify.ClientID == "" || c.Spotify.ClientSecret == "" {
		return ErrMissingCredentials
	}
	return nil
}

// getConfigDir returns the configuration directory path
// Creates the directory if it doesn't exist
func getConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	configDir := filepath.Join(homeDir, ".config", "tunecheck")

	// Create config directory if it doesn't exist
	_ = os.MkdirAll(configDir, 0755)

	return configDir
}

func getDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(homeDir, ".local", "share", "tunecheck")
}

// GetConfigDir returns the configuration directory path (public helper)
func GetConfigDir() string {
	return getConfigDir()
}

// Save writes configuration to file
func (c *Config) Save() error {
	v := viper.New()

	// Set config file path
	configDir := getConfigDir()
	configFile := filepath.Join(configDir, "config.yaml")

	// Set values in viper
	v.Set("spotify.client_id", c.Spotify.ClientID)
	v.Set("spotify.client_secret", c.Spotify.ClientSecret)
	v.Set("spotify.base_url", c.Spotify.BaseURL)
	v.Set("spotify.token_url", c.Spotify.TokenURL)
	v.Set("fixtures.artist_valid", c.Fixtures.ArtistValid)
	v.Set("fixtures.artist_invalid", c.Fixtures.ArtistInvalid)
	v.Set("fixtures.album_valid", c.Fixtures.AlbumValid)
	v.Set("fixtures.album_invalid", c.Fixtures.AlbumInvalid)
	v.Set("fixtures.country", c.Fixtures.Country)
	v.Set("fixtures.market", c.Fixtures.Market)
	v.Set("fixtures.top_tracks_max", c.Fixtures.TopTracksMax)
	v.Set("history_db", c.HistoryDB)
	v.Set("report_width", c.ReportWidth)

	// Write to file
	return v.WriteConfigAs(configFile)
}
