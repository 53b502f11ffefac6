package domain

// Algorithm names the confidence-scorer level that produced a match.
type Algorithm string

const (
	AlgorithmExactCore     Algorithm = "Exact Core Match"
	AlgorithmFuzzy         Algorithm = "Fuzzy Match"
	AlgorithmArtistPartial Algorithm = "Artist + Partial Title"
	AlgorithmArtistOnly    Algorithm = "Artist Only"
)

// MatchScoreBreakdown is the explainable result of scoring a candidate pair.
// Total is always clamp(sum of the six components, 0, 100).
type MatchScoreBreakdown struct {
	CoreTitleMatch int
	ArtistMatch    int
	VersionBonus   int
	AlbumBonus     int
	MixBonus       int
	Penalties      int

	Total     int
	Algorithm Algorithm
	Details   string
}

// Sum adds up the six breakdown components before clamping.
func (b MatchScoreBreakdown) Sum() int {
	return b.CoreTitleMatch + b.ArtistMatch + b.VersionBonus + b.AlbumBonus + b.MixBonus + b.Penalties
}

// TrackMatch pairs a candidate with the reference it matched. It only exists
// for scores with Total >= 60.
type TrackMatch struct {
	Candidate ComparableTrack
	Reference ComparableTrack
	Score     MatchScoreBreakdown
}

// MissingEntry marks a candidate no matcher tier could place in the
// reference collection.
type MissingEntry struct {
	Track  ComparableTrack
	Reason string
}
