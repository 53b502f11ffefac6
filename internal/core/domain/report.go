package domain

// Report kinds persisted by the library repository.
const (
	ReportKindMatches = "matches"
	ReportKindMissing = "missing"
)

// ReportSummary is the persisted outcome of one reconciliation run.
type ReportSummary struct {
	ID         string
	Source     string
	Kind       string
	Candidates int
	Matched    int
	Missing    int
}

// MatchReport pairs every catalog candidate with its best library match.
type MatchReport struct {
	ReportSummary
	Matches []TrackMatch
}

// MissingReport lists catalog candidates absent from the library, in
// candidate order.
type MissingReport struct {
	ReportSummary
	MissingTracks []MissingEntry
}
