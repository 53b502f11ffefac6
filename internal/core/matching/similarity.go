// Package matching decides whether two track records refer to the same
// recording. It offers an existence query (tiered matcher), a graded query
// (confidence scorer) and batch orchestration over whole collections.
package matching

import (
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

var levenshtein = metrics.NewLevenshtein()

// Similarity returns the Levenshtein similarity between two normalized
// strings as a percentage: (maxLen - distance) / maxLen * 100. Two empty
// strings are 100% similar. Symmetric in its arguments.
func Similarity(a, b string) float64 {
	if a == b {
		return 100
	}
	return strutil.Similarity(a, b, levenshtein) * 100
}
