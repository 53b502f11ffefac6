package ports

import (
	"context"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
)

// LibraryRepository persists the local music library and reconciliation
// report summaries.
type LibraryRepository interface {
	ListTracks(ctx context.Context) ([]domain.TrackRecord, error)
	ReplaceTracks(ctx context.Context, tracks []domain.TrackRecord) error

	SaveReport(ctx context.Context, summary domain.ReportSummary) error
	GetReport(ctx context.Context, id string) (domain.ReportSummary, error)
}
