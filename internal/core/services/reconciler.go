package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/metadata"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/ports"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/worker"
)

// Reconciler coordinates catalog acquisition, library access and the
// matching engine. The engine itself stays pure; all I/O happens here
// through the injected ports.
type Reconciler struct {
	catalog ports.CatalogProvider
	library ports.LibraryRepository
	pool    *worker.Pool
}

// NewReconciler constructs a Reconciler.
func NewReconciler(catalog ports.CatalogProvider, library ports.LibraryRepository, pool *worker.Pool) *Reconciler {
	if pool == nil {
		pool = worker.NewPool(1)
	}
	return &Reconciler{
		catalog: catalog,
		library: library,
		pool:    pool,
	}
}

// MissingFromLibrary reports every catalog track the local library does not
// already hold, in catalog order, and persists the report summary.
func (s *Reconciler) MissingFromLibrary(ctx context.Context, playlistID string) (domain.MissingReport, error) {
	candidates, source, err := s.collections(ctx, playlistID)
	if err != nil {
		return domain.MissingReport{}, err
	}

	missing := s.pool.MissingTracks(candidates.catalog, candidates.library)

	report := domain.MissingReport{
		ReportSummary: domain.ReportSummary{
			ID:         uuid.NewString(),
			Source:     source,
			Kind:       domain.ReportKindMissing,
			Candidates: len(candidates.catalog),
			Matched:    len(candidates.catalog) - len(missing),
			Missing:    len(missing),
		},
		MissingTracks: missing,
	}
	if err := s.library.SaveReport(ctx, report.ReportSummary); err != nil {
		return domain.MissingReport{}, fmt.Errorf("service: save report: %w", err)
	}
	return report, nil
}

// MatchCatalog pairs every catalog track with its best library match. A
// non-empty superGenre restricts the library side to that category. The
// report summary is persisted.
func (s *Reconciler) MatchCatalog(ctx context.Context, playlistID, superGenre string) (domain.MatchReport, error) {
	candidates, source, err := s.collections(ctx, playlistID)
	if err != nil {
		return domain.MatchReport{}, err
	}

	matches := s.pool.MatchAll(candidates.catalog, candidates.library, superGenre)

	report := domain.MatchReport{
		ReportSummary: domain.ReportSummary{
			ID:         uuid.NewString(),
			Source:     source,
			Kind:       domain.ReportKindMatches,
			Candidates: len(candidates.catalog),
			Matched:    len(matches),
			Missing:    len(candidates.catalog) - len(matches),
		},
		Matches: matches,
	}
	if err := s.library.SaveReport(ctx, report.ReportSummary); err != nil {
		return domain.MatchReport{}, fmt.Errorf("service: save report: %w", err)
	}
	return report, nil
}

// ImportLibrary replaces the stored library with the given records,
// assigning IDs to records that arrive without one. Returns the number of
// stored tracks.
func (s *Reconciler) ImportLibrary(ctx context.Context, records []domain.TrackRecord) (int, error) {
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}
	if err := s.library.ReplaceTracks(ctx, records); err != nil {
		return 0, fmt.Errorf("service: import library: %w", err)
	}
	return len(records), nil
}

// NormalizeTrack exposes the normalization pipeline standalone, so callers
// can display canonical fields before any matching occurs.
func (s *Reconciler) NormalizeTrack(title, artist string) domain.NormalizedMetadata {
	return metadata.Process(title, artist)
}

// GetReport loads a persisted report summary.
func (s *Reconciler) GetReport(ctx context.Context, id string) (domain.ReportSummary, error) {
	summary, err := s.library.GetReport(ctx, id)
	if err != nil {
		return domain.ReportSummary{}, fmt.Errorf("service: load report: %w", err)
	}
	return summary, nil
}

type comparableCollections struct {
	catalog []domain.ComparableTrack
	library []domain.ComparableTrack
}

// collections fetches both collections and runs them through the
// normalization pipeline.
func (s *Reconciler) collections(ctx context.Context, playlistID string) (comparableCollections, string, error) {
	catalogRecords, source, err := s.catalog.PlaylistTracks(ctx, playlistID)
	if err != nil {
		return comparableCollections{}, "", fmt.Errorf("service: fetch catalog: %w", err)
	}

	libraryRecords, err := s.library.ListTracks(ctx)
	if err != nil {
		return comparableCollections{}, "", fmt.Errorf("service: load library: %w", err)
	}

	return comparableCollections{
		catalog: metadata.ComparableAll(catalogRecords),
		library: metadata.ComparableAll(libraryRecords),
	}, source, nil
}
