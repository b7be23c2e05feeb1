package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jfmyers9/tunecheck/internal/config"
	"github.com/jfmyers9/tunecheck/pkg/spotify"
	"github.com/spf13/cobra"
)

var configureSkipVerify bool

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store Spotify API credentials",
	Long: `Store the client id and secret used for the client-credentials flow.

This command will:
1. Prompt for your client id and secret (existing values can be kept)
2. Verify them by requesting an access token
3. Save them to your config file

You can create credentials at: https://developer.spotify.com/dashboard`,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().BoolVar(&configureSkipVerify, "skip-verify", false, "Save without requesting a token first")
}

func runConfigure(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintln(out, "Spotify API Credentials")
	fmt.Fprintln(out, "=======================")
	fmt.Fprintln(out)

	if cfg.Spotify.ClientID != "" && cfg.Spotify.ClientSecret != "" {
		fmt.Fprintf(out, "Found existing credentials.\n")
		fmt.Fprintf(out, "Client ID: %s\n", cfg.Spotify.ClientID)
		fmt.Fprint(out, "\nUse existing credentials? [Y/n]: ")
		if !confirm(reader) {
			cfg.Spotify.ClientID = ""
			cfg.Spotify.ClientSecret = ""
		}
	}

	if cfg.Spotify.ClientID == "" {
		cfg.Spotify.ClientID, err = prompt(reader, out, "Enter your client ID: ")
		if err != nil {
			return fmt.Errorf("failed to read client ID: %w", err)
		}
	}

	if cfg.Spotify.ClientSecret == "" {
		cfg.Spotify.ClientSecret, err = prompt(reader, out, "Enter your client secret: ")
		if err != nil {
			return fmt.Errorf("failed to read client secret: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if !configureSkipVerify {
		fmt.Fprintln(out, "\nRequesting an access token...")
		if err := verifyCredentials(cfg); err != nil {
			return fmt.Errorf("credentials rejected: %w", err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "\n✓ Credentials saved to %s/config.yaml\n", config.GetConfigDir())
	fmt.Fprintln(out, "\nYou can now use 'tunecheck run' to run the scenarios.")
	return nil
}

func verifyCredentials(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := spotify.NewClient(spotify.Config{
		ClientID:     cfg.Spotify.ClientID,
		ClientSecret: cfg.Spotify.ClientSecret,
		BaseURL:      cfg.Spotify.BaseURL,
		TokenURL:     cfg.Spotify.TokenURL,
	})
	if err != nil {
		return err
	}

	_, err = client.Auth().ClientCredentials(ctx)
	return err
}

func prompt(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm reads a yes/no answer, defaulting to yes.
func confirm(reader *bufio.Reader) bool {
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return true
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes"
}
