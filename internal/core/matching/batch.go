package matching

import "github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"

// FindBestMatch scores the candidate against every reference and keeps the
// highest total. The first-seen reference wins exact ties. ok is false when
// every comparison was discarded.
func FindBestMatch(candidate domain.ComparableTrack, references []domain.ComparableTrack) (domain.TrackMatch, bool) {
	var best domain.TrackMatch
	found := false

	for _, ref := range references {
		score, ok := Score(candidate, ref)
		if !ok {
			continue
		}
		if !found || score.Total > best.Score.Total {
			best = domain.TrackMatch{Candidate: candidate, Reference: ref, Score: score}
			found = true
		}
	}
	return best, found
}

// MatchAll runs FindBestMatch for every candidate, in candidate order. A
// non-empty superGenre keeps only references tagged with exactly that
// category; there is no special "all" value. The cost is O(N*M) similarity
// comparisons by design.
func MatchAll(candidates, references []domain.ComparableTrack, superGenre string) []domain.TrackMatch {
	references = FilterBySuperGenre(references, superGenre)

	matches := make([]domain.TrackMatch, 0, len(candidates))
	for _, candidate := range candidates {
		if match, ok := FindBestMatch(candidate, references); ok {
			matches = append(matches, match)
		}
	}
	return matches
}

// FilterBySuperGenre returns the references whose category tag equals the
// filter. An empty filter passes everything through unchanged.
func FilterBySuperGenre(references []domain.ComparableTrack, superGenre string) []domain.ComparableTrack {
	if superGenre == "" {
		return references
	}
	filtered := make([]domain.ComparableTrack, 0, len(references))
	for _, ref := range references {
		if ref.SuperGenre == superGenre {
			filtered = append(filtered, ref)
		}
	}
	return filtered
}

// MissingTracks runs the tiered matcher for every candidate and reports the
// unmatched ones in candidate order.
func MissingTracks(candidates, references []domain.ComparableTrack) []domain.MissingEntry {
	idx := NewReferenceIndex(references)

	missing := make([]domain.MissingEntry, 0)
	for _, candidate := range candidates {
		if !idx.Matched(candidate) {
			missing = append(missing, domain.MissingEntry{Track: candidate, Reason: MissingReason})
		}
	}
	return missing
}
