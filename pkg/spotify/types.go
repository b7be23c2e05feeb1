package spotify

// Token represents a client-credentials access token.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"` // Lifetime in seconds
	Scope       string `json:"scope,omitempty"`
}

// Image is a cover or artist image.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SimplifiedArtist is the artist object embedded in albums and tracks.
type SimplifiedArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	URI  string `json:"uri"`
}

// Artist is the full artist object from GET /v1/artists/{id}.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Images     []Image  `json:"images"`
	Popularity int      `json:"popularity"`
	Type       string   `json:"type"`
	URI        string   `json:"uri"`
	Followers  struct {
		Total int `json:"total"`
	} `json:"followers"`
}

// Track is the track object returned by the top-tracks endpoint.
type Track struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Artists          []SimplifiedArtist `json:"artists"`
	DurationMS       int                `json:"duration_ms"`
	Explicit         bool               `json:"explicit"`
	Popularity       int                `json:"popularity"`
	TrackNumber      int                `json:"track_number"`
	AvailableMarkets []string           `json:"available_markets,omitempty"`
}

// TopTracks is the response from GET /v1/artists/{id}/top-tracks.
type TopTracks struct {
	Tracks []Track `json:"tracks"`
}

// Album is the full album object from GET /v1/albums/{id}.
type Album struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	AlbumType   string             `json:"album_type"`
	ReleaseDate string             `json:"release_date"`
	TotalTracks int                `json:"total_tracks"`
	Artists     []SimplifiedArtist `json:"artists"`
	Images      []Image            `json:"images"`
	Label       string             `json:"label,omitempty"`
	Popularity  int                `json:"popularity"`
}
