// Package worker shards batch matching across goroutines. The reference
// lookup structures are read-only once built, so shards share them freely;
// shard outputs are concatenated in shard order, which preserves global
// candidate order.
package worker

import (
	"sync"

	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/domain"
	"github.com/gwherrett/mako-sync-ai-sub000/internal/core/matching"
)

// Pool fans candidate lists out over a fixed number of goroutines.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker count.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// MatchAll behaves exactly like matching.MatchAll but shards the candidate
// list across the pool's workers.
func (p *Pool) MatchAll(candidates, references []domain.ComparableTrack, superGenre string) []domain.TrackMatch {
	references = matching.FilterBySuperGenre(references, superGenre)

	shards := p.shard(len(candidates))
	results := make([][]domain.TrackMatch, len(shards))

	var wg sync.WaitGroup
	for i, bounds := range shards {
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			results[i] = matching.MatchAll(candidates[lo:hi], references, "")
		}(i, bounds[0], bounds[1])
	}
	wg.Wait()

	return concat(results, len(candidates))
}

// MissingTracks behaves exactly like matching.MissingTracks but builds the
// reference index once and scans shards concurrently.
func (p *Pool) MissingTracks(candidates, references []domain.ComparableTrack) []domain.MissingEntry {
	idx := matching.NewReferenceIndex(references)

	shards := p.shard(len(candidates))
	results := make([][]domain.MissingEntry, len(shards))

	var wg sync.WaitGroup
	for i, bounds := range shards {
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			missing := make([]domain.MissingEntry, 0)
			for _, candidate := range candidates[lo:hi] {
				if !idx.Matched(candidate) {
					missing = append(missing, domain.MissingEntry{Track: candidate, Reason: matching.MissingReason})
				}
			}
			results[i] = missing
		}(i, bounds[0], bounds[1])
	}
	wg.Wait()

	return concat(results, len(candidates))
}

// shard splits n items into contiguous [lo, hi) ranges, one per worker,
// with the remainder spread over the leading shards.
func (p *Pool) shard(n int) [][2]int {
	workers := p.workers
	if workers > n {
		workers = n
	}
	if workers == 0 {
		return nil
	}

	size := n / workers
	rem := n % workers

	shards := make([][2]int, 0, workers)
	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		shards = append(shards, [2]int{lo, hi})
		lo = hi
	}
	return shards
}

func concat[T any](parts [][]T, capacity int) []T {
	out := make([]T, 0, capacity)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}
