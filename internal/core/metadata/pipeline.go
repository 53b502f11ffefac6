package metadata

import "github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"

// Process runs the full normalization pipeline over a raw title and artist
// and returns the canonical metadata record. It never fails, whatever the
// input: missing fields simply come back empty.
//
// The mix label and featured artists keep their extracted display form; the
// remaining fields go through Normalize.
func Process(title, artist string) domain.NormalizedMetadata {
	version := ExtractVersionInfo(title)
	artists := ParseArtists(artist)

	return domain.NormalizedMetadata{
		NormalizedTitle:  Normalize(title),
		NormalizedArtist: Normalize(artist),
		CoreTitle:        Normalize(version.Core),
		PrimaryArtist:    Normalize(artists.Primary),
		FeaturedArtists:  artists.Featured,
		Mix:              version.Mix,
	}
}

// Comparable attaches normalized metadata to a raw track record.
func Comparable(rec domain.TrackRecord) domain.ComparableTrack {
	return domain.ComparableTrack{
		ID:         rec.ID,
		SuperGenre: rec.SuperGenre,
		Raw:        rec.RawTrack,
		Meta:       Process(rec.Title, rec.Artist),
	}
}

// ComparableAll normalizes a whole collection, preserving order.
func ComparableAll(records []domain.TrackRecord) []domain.ComparableTrack {
	tracks := make([]domain.ComparableTrack, len(records))
	for i, rec := range records {
		tracks[i] = Comparable(rec)
	}
	return tracks
}
