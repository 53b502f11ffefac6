package matching

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/metadata"
)

// Thresholds for the graded confidence levels. The levels are mutually
// exclusive and checked in order.
const (
	fuzzyTitleMin    = 90
	fuzzyArtistMin   = 90
	partialArtistMin = 95
	partialTitleMin  = 70
	artistOnlyMin    = 98

	// MinAcceptedTotal is the floor below which a scored pair is discarded.
	MinAcceptedTotal = 60
)

// Score grades how likely candidate and reference refer to the same
// recording. The first applicable level produces the breakdown; pairs whose
// clamped total falls below MinAcceptedTotal are discarded and reported as
// no match (ok == false).
func Score(candidate, reference domain.ComparableTrack) (domain.MatchScoreBreakdown, bool) {
	c, r := candidate.Meta, reference.Meta

	titleSim := Similarity(c.NormalizedTitle, r.NormalizedTitle)
	artistSim := Similarity(c.NormalizedArtist, r.NormalizedArtist)

	var breakdown domain.MatchScoreBreakdown

	switch {
	case c.CoreTitle == r.CoreTitle && c.PrimaryArtist == r.PrimaryArtist:
		breakdown = scoreExactCore(candidate, reference)

	case titleSim >= fuzzyTitleMin && artistSim >= fuzzyArtistMin:
		breakdown = domain.MatchScoreBreakdown{
			Algorithm:      domain.AlgorithmFuzzy,
			CoreTitleMatch: weight(titleSim, 40),
			ArtistMatch:    weight(artistSim, 20),
			Details:        fmt.Sprintf("title %.1f%% / artist %.1f%% similar", titleSim, artistSim),
		}
		if sameMix(c.Mix, r.Mix) {
			breakdown.VersionBonus = 5
		}
		if sameAlbum(candidate.Raw.Album, reference.Raw.Album) {
			breakdown.AlbumBonus = 3
		}

	case artistSim >= partialArtistMin && titleSim >= partialTitleMin:
		breakdown = domain.MatchScoreBreakdown{
			Algorithm:      domain.AlgorithmArtistPartial,
			ArtistMatch:    30,
			CoreTitleMatch: weight(titleSim, 20),
			Details:        fmt.Sprintf("artist %.1f%% similar, partial title %.1f%%", artistSim, titleSim),
		}
		if c.Mix != "" && r.Mix != "" {
			if sameMix(c.Mix, r.Mix) {
				breakdown.MixBonus = 15
			} else {
				breakdown.Penalties -= 10
			}
		}

	case artistSim >= artistOnlyMin:
		shared := sharedCoreWords(c.CoreTitle, r.CoreTitle)
		breakdown = domain.MatchScoreBreakdown{
			Algorithm:      domain.AlgorithmArtistOnly,
			ArtistMatch:    25,
			CoreTitleMatch: min(15, shared*5),
			Details:        fmt.Sprintf("artist %.1f%% similar, %d shared title words", artistSim, shared),
		}

	default:
		return domain.MatchScoreBreakdown{}, false
	}

	breakdown.Total = clamp(breakdown.Sum(), 0, 100)
	if breakdown.Total < MinAcceptedTotal {
		return domain.MatchScoreBreakdown{}, false
	}
	return breakdown, true
}

func scoreExactCore(candidate, reference domain.ComparableTrack) domain.MatchScoreBreakdown {
	c, r := candidate.Meta, reference.Meta

	breakdown := domain.MatchScoreBreakdown{
		Algorithm:      domain.AlgorithmExactCore,
		CoreTitleMatch: 50,
		ArtistMatch:    20,
		Details:        "core title and primary artist identical",
	}
	if c.Mix != "" && r.Mix != "" {
		if sameMix(c.Mix, r.Mix) {
			breakdown.MixBonus = 15
		} else {
			breakdown.Penalties -= 5
		}
	}
	if sameAlbum(candidate.Raw.Album, reference.Raw.Album) {
		breakdown.AlbumBonus = 5
	}
	return breakdown
}

// sameMix compares mix labels by equality after normalization, never by raw
// display form.
func sameMix(a, b string) bool {
	return metadata.Normalize(a) == metadata.Normalize(b)
}

func sameAlbum(a, b string) bool {
	return metadata.Normalize(a) == metadata.Normalize(b)
}

// sharedCoreWords counts distinct words longer than three characters that
// appear in both core titles.
func sharedCoreWords(a, b string) int {
	words := func(s string) map[string]struct{} {
		set := make(map[string]struct{})
		for _, w := range strings.Fields(s) {
			if utf8.RuneCountInString(w) > 3 {
				set[w] = struct{}{}
			}
		}
		return set
	}

	aWords, bWords := words(a), words(b)
	shared := 0
	for w := range aWords {
		if _, ok := bWords[w]; ok {
			shared++
		}
	}
	return shared
}

func weight(sim float64, max int) int {
	return int(math.Round(sim / 100 * float64(max)))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
