package sqlite

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	adapter, err := NewAdapter(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

func TestReplaceAndListTracks(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	tracks := []domain.TrackRecord{
		{ID: "a", RawTrack: domain.RawTrack{Title: "One", Artist: "X", Album: "First"}, SuperGenre: "rock"},
		{ID: "b", RawTrack: domain.RawTrack{Title: "Two", Artist: "Y"}},
		{ID: "c", RawTrack: domain.RawTrack{Title: "Three", Artist: "Z", Album: "Third"}},
	}

	if err := adapter.ReplaceTracks(ctx, tracks); err != nil {
		t.Fatalf("ReplaceTracks: %v", err)
	}

	got, err := adapter.ListTracks(ctx)
	if err != nil {
		t.Fatalf("ListTracks: %v", err)
	}
	if !reflect.DeepEqual(got, tracks) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, tracks)
	}

	// a second replace fully discards the previous library
	replacement := []domain.TrackRecord{
		{ID: "d", RawTrack: domain.RawTrack{Title: "Four", Artist: "W"}},
	}
	if err := adapter.ReplaceTracks(ctx, replacement); err != nil {
		t.Fatalf("second ReplaceTracks: %v", err)
	}

	got, err = adapter.ListTracks(ctx)
	if err != nil {
		t.Fatalf("ListTracks after replace: %v", err)
	}
	if len(got) != 1 || got[0].ID != "d" {
		t.Fatalf("old library not discarded: %+v", got)
	}
}

func TestListTracksEmpty(t *testing.T) {
	adapter := newTestAdapter(t)

	got, err := adapter.ListTracks(context.Background())
	if err != nil {
		t.Fatalf("ListTracks: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fresh db is not empty: %+v", got)
	}
}

func TestSaveAndGetReport(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	summary := domain.ReportSummary{
		ID:         "report-1",
		Source:     "Liked Songs",
		Kind:       domain.ReportKindMissing,
		Candidates: 10,
		Matched:    7,
		Missing:    3,
	}
	if err := adapter.SaveReport(ctx, summary); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}

	got, err := adapter.GetReport(ctx, "report-1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if !reflect.DeepEqual(got, summary) {
		t.Fatalf("round trip mismatch:\n got  %+v\n want %+v", got, summary)
	}
}

func TestGetReportNotFound(t *testing.T) {
	adapter := newTestAdapter(t)

	_, err := adapter.GetReport(context.Background(), "absent")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
