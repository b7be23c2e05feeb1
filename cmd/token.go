package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var tokenRaw bool

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Acquire an app access token",
	Long: `Exchange the configured client id and secret for an app access token
using the client-credentials flow, and print it.

By default the token is masked. Use --raw to print only the token, e.g.

  curl -H "Authorization: Bearer $(tunecheck token --raw)" https://api.spotify.com/v1/albums/4aawyAB9vmqN3uQ7FjRGTy`,
	RunE: runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().BoolVar(&tokenRaw, "raw", false, "Print the unmasked token only")
}

func runToken(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger, logCloser, err := setupLogger(logFile, logLevel)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	_, session, err := newSession(logger)
	if err != nil {
		return err
	}

	token, err := session.Client().Auth().ClientCredentials(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire token: %w", err)
	}

	out := cmd.OutOrStdout()
	if tokenRaw {
		fmt.Fprintln(out, token.AccessToken)
		return nil
	}

	expires := time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)
	fmt.Fprintf(out, "Token:   %s\n", maskToken(token.AccessToken))
	fmt.Fprintf(out, "Type:    %s\n", token.TokenType)
	fmt.Fprintf(out, "Expires: %s (in %s)\n", expires.Format(time.RFC3339), time.Duration(token.ExpiresIn)*time.Second)
	return nil
}

// maskToken keeps the first and last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 12 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
