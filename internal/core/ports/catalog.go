package ports

import (
	"context"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
)

// CatalogProvider fetches the externally sourced liked-tracks catalog. It
// returns the catalog's track records plus its display name.
type CatalogProvider interface {
	PlaylistTracks(ctx context.Context, playlistID string) ([]domain.TrackRecord, string, error)
}
