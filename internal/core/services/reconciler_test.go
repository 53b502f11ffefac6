package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/worker"
)

type mockCatalog struct {
	tracks []domain.TrackRecord
	source string
	err    error
}

func (m *mockCatalog) PlaylistTracks(_ context.Context, _ string) ([]domain.TrackRecord, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.tracks, m.source, nil
}

type mockLibrary struct {
	tracks   []domain.TrackRecord
	listErr  error
	saveErr  error
	replaced []domain.TrackRecord
	saved    []domain.ReportSummary
	reports  map[string]domain.ReportSummary
}

func (m *mockLibrary) ListTracks(_ context.Context) ([]domain.TrackRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.tracks, nil
}

func (m *mockLibrary) ReplaceTracks(_ context.Context, tracks []domain.TrackRecord) error {
	m.replaced = tracks
	return nil
}

func (m *mockLibrary) SaveReport(_ context.Context, summary domain.ReportSummary) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, summary)
	return nil
}

func (m *mockLibrary) GetReport(_ context.Context, id string) (domain.ReportSummary, error) {
	summary, ok := m.reports[id]
	if !ok {
		return domain.ReportSummary{}, domain.ErrNotFound
	}
	return summary, nil
}

func rec(id, title, artist string) domain.TrackRecord {
	return domain.TrackRecord{ID: id, RawTrack: domain.RawTrack{Title: title, Artist: artist}}
}

func TestMissingFromLibrary(t *testing.T) {
	catalog := &mockCatalog{
		source: "Liked Songs",
		tracks: []domain.TrackRecord{
			rec("s1", "Known Song", "Artist"),
			rec("s2", "Unknown Song", "Nobody"),
		},
	}
	library := &mockLibrary{
		tracks: []domain.TrackRecord{rec("l1", "Known Song", "Artist")},
	}

	svc := NewReconciler(catalog, library, worker.NewPool(2))
	report, err := svc.MissingFromLibrary(context.Background(), "playlist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Source != "Liked Songs" || report.Kind != domain.ReportKindMissing {
		t.Fatalf("summary header wrong: %+v", report.ReportSummary)
	}
	if report.Candidates != 2 || report.Matched != 1 || report.Missing != 1 {
		t.Fatalf("counts wrong: %+v", report.ReportSummary)
	}
	if len(report.MissingTracks) != 1 || report.MissingTracks[0].Track.ID != "s2" {
		t.Fatalf("missing entries wrong: %+v", report.MissingTracks)
	}
	if report.ID == "" {
		t.Fatal("report has no ID")
	}
	if len(library.saved) != 1 || library.saved[0].ID != report.ID {
		t.Fatalf("summary not persisted: %+v", library.saved)
	}
}

func TestMissingFromLibraryCatalogError(t *testing.T) {
	catalog := &mockCatalog{err: errors.New("rate limited")}
	svc := NewReconciler(catalog, &mockLibrary{}, nil)

	_, err := svc.MissingFromLibrary(context.Background(), "playlist")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "fetch catalog") {
		t.Fatalf("error lacks context: %v", err)
	}
}

func TestMissingFromLibrarySaveError(t *testing.T) {
	catalog := &mockCatalog{source: "Liked Songs"}
	library := &mockLibrary{saveErr: errors.New("disk full")}
	svc := NewReconciler(catalog, library, nil)

	_, err := svc.MissingFromLibrary(context.Background(), "playlist")
	if err == nil || !strings.Contains(err.Error(), "save report") {
		t.Fatalf("expected a save error, got: %v", err)
	}
}

func TestMatchCatalog(t *testing.T) {
	catalog := &mockCatalog{
		source: "Festival Set",
		tracks: []domain.TrackRecord{
			rec("s1", "Known Song", "Artist"),
			rec("s2", "Unknown Song", "Nobody"),
		},
	}
	library := &mockLibrary{
		tracks: []domain.TrackRecord{
			{ID: "l1", RawTrack: domain.RawTrack{Title: "Known Song", Artist: "Artist"}, SuperGenre: "rock"},
		},
	}

	svc := NewReconciler(catalog, library, nil)

	report, err := svc.MatchCatalog(context.Background(), "playlist", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Kind != domain.ReportKindMatches {
		t.Fatalf("kind: got %q", report.Kind)
	}
	if report.Candidates != 2 || report.Matched != 1 || report.Missing != 1 {
		t.Fatalf("counts wrong: %+v", report.ReportSummary)
	}
	if report.Matches[0].Reference.ID != "l1" {
		t.Fatalf("matched wrong reference: %+v", report.Matches[0].Reference)
	}

	// a category filter that excludes the whole library matches nothing
	filtered, err := svc.MatchCatalog(context.Background(), "playlist", "electronic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filtered.Matched != 0 || filtered.Missing != 2 {
		t.Fatalf("filtered counts wrong: %+v", filtered.ReportSummary)
	}
}

func TestMatchCatalogLibraryError(t *testing.T) {
	catalog := &mockCatalog{source: "Liked Songs"}
	library := &mockLibrary{listErr: errors.New("corrupt table")}
	svc := NewReconciler(catalog, library, nil)

	_, err := svc.MatchCatalog(context.Background(), "playlist", "")
	if err == nil || !strings.Contains(err.Error(), "load library") {
		t.Fatalf("expected a library error, got: %v", err)
	}
}

func TestImportLibrary(t *testing.T) {
	library := &mockLibrary{}
	svc := NewReconciler(&mockCatalog{}, library, nil)

	records := []domain.TrackRecord{
		rec("keep-me", "One", "A"),
		rec("", "Two", "B"),
	}

	count, err := svc.ImportLibrary(context.Background(), records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Fatalf("count: got %d, want 2", count)
	}
	if library.replaced[0].ID != "keep-me" {
		t.Fatalf("existing ID overwritten: %q", library.replaced[0].ID)
	}
	if library.replaced[1].ID == "" {
		t.Fatal("blank ID not assigned")
	}
}

func TestGetReport(t *testing.T) {
	library := &mockLibrary{
		reports: map[string]domain.ReportSummary{
			"known": {ID: "known", Kind: domain.ReportKindMissing},
		},
	}
	svc := NewReconciler(&mockCatalog{}, library, nil)

	summary, err := svc.GetReport(context.Background(), "known")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.ID != "known" {
		t.Fatalf("got %+v", summary)
	}

	_, err = svc.GetReport(context.Background(), "absent")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestNormalizeTrack(t *testing.T) {
	svc := NewReconciler(&mockCatalog{}, &mockLibrary{}, nil)

	meta := svc.NormalizeTrack("Song Title (Radio Edit)", "Beyoncé feat. Jay-Z")
	if meta.CoreTitle != "song title" || meta.PrimaryArtist != "beyonce" || meta.Mix != "Radio Edit" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}
