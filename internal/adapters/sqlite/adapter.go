// Package sqlite provides a SQLite-backed implementation of the library
// repository port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // driver

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/ports"
)

// Adapter implements ports.LibraryRepository on SQLite.
type Adapter struct {
	db *sql.DB
}

var _ ports.LibraryRepository = (*Adapter)(nil)

// NewAdapter opens the database and runs the schema migration.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return adapter, nil
}

// Close ensures the DB connection is closed gracefully.
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS library_tracks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		album TEXT,
		super_genre TEXT,
		added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS reconcile_reports (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		kind TEXT NOT NULL,
		candidates INTEGER NOT NULL,
		matched INTEGER NOT NULL,
		missing INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := a.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// ListTracks loads the whole library in insertion order.
func (a *Adapter) ListTracks(ctx context.Context) ([]domain.TrackRecord, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, title, artist, IFNULL(album, ''), IFNULL(super_genre, '')
		FROM library_tracks
		ORDER BY added_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load library tracks: %w", err)
	}
	defer rows.Close()

	var tracks []domain.TrackRecord
	for rows.Next() {
		var rec domain.TrackRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Artist, &rec.Album, &rec.SuperGenre); err != nil {
			return nil, fmt.Errorf("failed to scan library track: %w", err)
		}
		tracks = append(tracks, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate library tracks: %w", err)
	}
	return tracks, nil
}

// ReplaceTracks swaps the stored library for the given records in one
// transaction.
func (a *Adapter) ReplaceTracks(ctx context.Context, tracks []domain.TrackRecord) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // no-op after a successful commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM library_tracks"); err != nil {
		return fmt.Errorf("failed to clear library: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO library_tracks (id, title, artist, album, super_genre)
		VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''))
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range tracks {
		if _, err := stmt.ExecContext(ctx, rec.ID, rec.Title, rec.Artist, rec.Album, rec.SuperGenre); err != nil {
			return fmt.Errorf("failed to insert library track %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit library import: %w", err)
	}
	return nil
}

// SaveReport stores one reconciliation report summary.
func (a *Adapter) SaveReport(ctx context.Context, summary domain.ReportSummary) error {
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO reconcile_reports (id, source, kind, candidates, matched, missing)
		VALUES (?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.Source, summary.Kind, summary.Candidates, summary.Matched, summary.Missing)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetReport loads a report summary by ID.
func (a *Adapter) GetReport(ctx context.Context, id string) (domain.ReportSummary, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, source, kind, candidates, matched, missing
		FROM reconcile_reports
		WHERE id = ?
	`, id)

	var summary domain.ReportSummary
	if err := row.Scan(&summary.ID, &summary.Source, &summary.Kind, &summary.Candidates, &summary.Matched, &summary.Missing); err != nil {
		if err == sql.ErrNoRows {
			return domain.ReportSummary{}, domain.ErrNotFound
		}
		return domain.ReportSummary{}, fmt.Errorf("failed to load report: %w", err)
	}
	return summary, nil
}
