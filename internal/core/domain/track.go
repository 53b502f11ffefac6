package domain

// RawTrack carries untrusted track metadata exactly as supplied by a source.
// Any field may be empty.
type RawTrack struct {
	Title  string
	Artist string
	Album  string
}

// TrackRecord is the shape a collection source (library storage, catalog
// provider, CSV import) hands to the engine: raw metadata plus an opaque
// identifier and an optional category tag.
type TrackRecord struct {
	ID string
	RawTrack
	SuperGenre string
}

// NormalizedMetadata is the canonical form of one track's metadata, produced
// once per RawTrack by the normalization pipeline. Every string field is
// either empty or has been through the full pipeline; Mix is kept in its
// human-readable extracted form and is empty when the title carries no
// mix/version label.
type NormalizedMetadata struct {
	NormalizedTitle  string
	NormalizedArtist string
	CoreTitle        string
	PrimaryArtist    string
	FeaturedArtists  []string
	Mix              string
}

// ComparableTrack pairs a raw track with its normalized metadata. SuperGenre
// is used only for filtering reference collections, never for matching.
type ComparableTrack struct {
	ID         string
	SuperGenre string
	Raw        RawTrack
	Meta       NormalizedMetadata
}
