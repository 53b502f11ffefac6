package matching

import "github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"

// MissingReason is attached to candidates no matcher tier could place.
const MissingReason = "No matching local track found"

// flatScanThreshold is the minimum title similarity for the fuzzy tier.
const flatScanThreshold = 85

// Matched reports whether the candidate is already present in the indexed
// reference collection. Tiers are tried in order and short-circuit: exact
// key, core key, then a fuzzy scan over references with an identical
// primary artist.
func (idx *ReferenceIndex) Matched(candidate domain.ComparableTrack) bool {
	meta := candidate.Meta

	if _, ok := idx.exact[exactKey(meta)]; ok {
		return true
	}
	if _, ok := idx.core[coreKey(meta)]; ok {
		return true
	}

	for _, ref := range idx.flat {
		if ref.primaryArtist != meta.PrimaryArtist {
			continue
		}
		if Similarity(meta.NormalizedTitle, ref.normalizedTitle) >= flatScanThreshold {
			return true
		}
		if Similarity(meta.CoreTitle, ref.coreTitle) >= flatScanThreshold {
			return true
		}
	}
	return false
}
