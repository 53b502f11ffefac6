package matching

import (
	"strings"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
)

// refEntry is the flat-scan view of one reference track.
type refEntry struct {
	normalizedTitle string
	coreTitle       string
	primaryArtist   string
}

// ReferenceIndex holds the lookup structures for one reference collection.
// It is built once per matching run and read-only afterwards, so it may be
// shared across goroutines.
type ReferenceIndex struct {
	exact map[string]struct{}
	core  map[string]struct{}
	flat  []refEntry
}

// NewReferenceIndex builds the exact-key set, core-key set and flat list for
// the given reference collection.
func NewReferenceIndex(refs []domain.ComparableTrack) *ReferenceIndex {
	idx := &ReferenceIndex{
		exact: make(map[string]struct{}, len(refs)),
		core:  make(map[string]struct{}, len(refs)),
		flat:  make([]refEntry, 0, len(refs)),
	}
	for _, ref := range refs {
		idx.exact[exactKey(ref.Meta)] = struct{}{}
		idx.core[coreKey(ref.Meta)] = struct{}{}
		idx.flat = append(idx.flat, refEntry{
			normalizedTitle: ref.Meta.NormalizedTitle,
			coreTitle:       ref.Meta.CoreTitle,
			primaryArtist:   ref.Meta.PrimaryArtist,
		})
	}
	return idx
}

// exactKey joins the normalized title with the primary artist, the latter
// with any leading "the " stripped so "The Prodigy" and "Prodigy" collide.
func exactKey(meta domain.NormalizedMetadata) string {
	return meta.NormalizedTitle + "_" + strings.TrimPrefix(meta.PrimaryArtist, "the ")
}

func coreKey(meta domain.NormalizedMetadata) string {
	return meta.CoreTitle + "_" + meta.PrimaryArtist
}
