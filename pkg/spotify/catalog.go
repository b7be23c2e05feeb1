package spotify

import (
	"context"
	"net/url"
)

// CatalogService provides typed lookups for public catalog objects.
//
// Each method is a thin decoder over Client.Do. Non-2xx responses are
// returned as *Error, so callers can use errors.Is(err, ErrNotFound).
type CatalogService struct {
	client *Client
}

// Artist fetches an artist by Spotify id.
func (s *CatalogService) Artist(ctx context.Context, token, id string) (*Artist, error) {
	var artist Artist
	if err := s.get(ctx, token, ArtistPath(id), nil, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// ArtistTopTracks fetches an artist's top tracks. An empty country omits
// the parameter and lets the API fall back to its default market.
func (s *CatalogService) ArtistTopTracks(ctx context.Context, token, id, country string) (*TopTracks, error) {
	params := Params{}
	if country != "" {
		params["country"] = country
	}

	var top TopTracks
	if err := s.get(ctx, token, TopTracksPath(id), params, &top); err != nil {
		return nil, err
	}
	return &top, nil
}

// Album fetches an album by Spotify id. An empty market omits the parameter.
func (s *CatalogService) Album(ctx context.Context, token, id, market string) (*Album, error) {
	params := Params{}
	if market != "" {
		params["market"] = market
	}

	var album Album
	if err := s.get(ctx, token, AlbumPath(id), params, &album); err != nil {
		return nil, err
	}
	return &album, nil
}

func (s *CatalogService) get(ctx context.Context, token, path string, params Params, v any) error {
	resp, err := s.client.Get(ctx, token, path, params, nil)
	if err != nil {
		return err
	}
	if err := resp.Err(); err != nil {
		return err
	}
	return resp.Decode(v)
}

// ArtistPath returns the resource path for an artist.
func ArtistPath(id string) string {
	return "/v1/artists/" + url.PathEscape(id)
}

// TopTracksPath returns the resource path for an artist's top tracks.
func TopTracksPath(id string) string {
	return ArtistPath(id) + "/top-tracks"
}

// AlbumPath returns the resource path for an album.
func AlbumPath(id string) string {
	return "/v1/albums/" + url.PathEscape(id)
}
