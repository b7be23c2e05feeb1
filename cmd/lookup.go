package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jfmyers9/tunecheck/internal/suite"
	"github.com/jfmyers9/tunecheck/pkg/spotify"
	"github.com/spf13/cobra"
)

var lookupMarket string

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up catalog objects",
	Long: `Fetch a catalog object by id and print a summary.

Ids default to the configured valid fixtures when omitted.`,
}

var lookupArtistCmd = &cobra.Command{
	Use:   "artist [ID]",
	Short: "Show an artist",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(func(ctx context.Context, c *spotify.CatalogService, token string, fx suite.Fixtures) error {
			artist, err := c.Artist(ctx, token, argOr(args, fx.ArtistValid))
			if err != nil {
				return err
			}
			renderArtist(cmd.OutOrStdout(), artist)
			return nil
		})
	},
}

var lookupTopTracksCmd = &cobra.Command{
	Use:   "top-tracks [ARTIST_ID]",
	Short: "Show an artist's top tracks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(func(ctx context.Context, c *spotify.CatalogService, token string, fx suite.Fixtures) error {
			market := lookupMarket
			if !cmd.Flags().Changed("market") {
				market = fx.Country
			}
			top, err := c.ArtistTopTracks(ctx, token, argOr(args, fx.ArtistValid), market)
			if err != nil {
				return err
			}
			renderTracks(cmd.OutOrStdout(), top.Tracks)
			return nil
		})
	},
}

var lookupAlbumCmd = &cobra.Command{
	Use:   "album [ID]",
	Short: "Show an album",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withCatalog(func(ctx context.Context, c *spotify.CatalogService, token string, fx suite.Fixtures) error {
			market := lookupMarket
			if !cmd.Flags().Changed("market") {
				market = fx.Market
			}
			album, err := c.Album(ctx, token, argOr(args, fx.AlbumValid), market)
			if err != nil {
				return err
			}
			renderAlbum(cmd.OutOrStdout(), album)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.AddCommand(lookupArtistCmd, lookupTopTracksCmd, lookupAlbumCmd)

	lookupCmd.PersistentFlags().StringVarP(&lookupMarket, "market", "m", "", "Market or country code (empty string omits it)")
}

func withCatalog(fn func(ctx context.Context, c *spotify.CatalogService, token string, fx suite.Fixtures) error) error {
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

	token, err := session.Token(ctx)
	if err != nil {
		return err
	}

	err = fn(ctx, session.Client().Catalog(), token, session.Fixtures())
	if errors.Is(err, spotify.ErrNotFound) {
		return fmt.Errorf("not found: %w", err)
	}
	return err
}

func argOr(args []string, fallback string) string {
	if len(args) > 0 {
		return args[0]
	}
	return fallback
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderArtist(w io.Writer, a *spotify.Artist) {
	t := newTable(w)
	t.AppendRows([]table.Row{
		{"ID", a.ID},
		{"Name", a.Name},
		{"Genres", strings.Join(a.Genres, ", ")},
		{"Popularity", a.Popularity},
		{"Followers", a.Followers.Total},
		{"Images", len(a.Images)},
	})
	t.Render()
}

func renderAlbum(w io.Writer, a *spotify.Album) {
	t := newTable(w)
	t.AppendRows([]table.Row{
		{"ID", a.ID},
		{"Name", a.Name},
		{"Artists", artistNames(a.Artists)},
		{"Type", a.AlbumType},
		{"Released", a.ReleaseDate},
		{"Tracks", a.TotalTracks},
		{"Label", a.Label},
	})
	t.Render()
}

func renderTracks(w io.Writer, tracks []spotify.Track) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Track", "Artists", "Length", "Popularity"})
	for i, tr := range tracks {
		length := time.Duration(tr.DurationMS) * time.Millisecond
		t.AppendRow(table.Row{
			i + 1,
			padToWidth(tr.Name, 40),
			artistNames(tr.Artists),
			fmt.Sprintf("%d:%02d", int(length.Minutes()), int(length.Seconds())%60),
			tr.Popularity,
		})
	}
	t.Render()
}

func artistNames(artists []spotify.SimplifiedArtist) string {
	names := make([]string, len(artists))
	for i, a := range artists {
		names[i] = a.Name
	}
	return strings.Join(names, ", ")
}
