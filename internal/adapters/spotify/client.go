// Package spotify implements the catalog provider port against the Spotify
// Web API.
package spotify

import (
	"context"
	"fmt"
	"strings"
	"time"

	api "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/ports"
)

// Client fetches liked-tracks catalogs (exported as playlists) from Spotify.
type Client struct {
	api     *api.Client
	limiter *rate.Limiter
}

var _ ports.CatalogProvider = (*Client)(nil)

// NewClient builds a client-credentials authenticated Spotify client with a
// 1 rps page limiter, which keeps batch fetches well inside Spotify's rate
// limits.
func NewClient(ctx context.Context, clientID, clientSecret string) *Client {
	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := config.Client(ctx)

	return &Client{
		api:     api.New(httpClient),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// PlaylistTracks fetches every track of the playlist, following pagination,
// and returns the records plus the playlist name. Local files and episode
// placeholders (empty track IDs) are skipped.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) ([]domain.TrackRecord, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", fmt.Errorf("spotify adapter: %w", err)
	}

	playlist, err := c.api.GetPlaylist(ctx, api.ID(playlistID))
	if err != nil {
		return nil, "", fmt.Errorf("spotify adapter: get playlist: %w", err)
	}

	var records []domain.TrackRecord
	page := playlist.Tracks
	for {
		for _, item := range page.Tracks {
			if item.Track.ID == "" || item.IsLocal {
				continue
			}
			records = append(records, transform(item.Track))
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return records, playlist.Name, fmt.Errorf("spotify adapter: %w", err)
		}
		err = c.api.NextPage(ctx, &page)
		if err == api.ErrNoMorePages {
			break
		}
		if err != nil {
			return records, playlist.Name, fmt.Errorf("spotify adapter: playlist pagination: %w", err)
		}
	}

	return records, playlist.Name, nil
}

// transform flattens a Spotify track into the engine's record shape.
func transform(t api.FullTrack) domain.TrackRecord {
	artists := make([]string, len(t.Artists))
	for i, a := range t.Artists {
		artists[i] = a.Name
	}

	return domain.TrackRecord{
		ID: string(t.ID),
		RawTrack: domain.RawTrack{
			Title:  t.Name,
			Artist: strings.Join(artists, ", "),
			Album:  t.Album.Name,
		},
	}
}
