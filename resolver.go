package fuzzmap

import (
	"github.com/fuzzkit/fuzzmap/errors"
	"github.com/fuzzkit/fuzzmap/score"
)

// Candidate is one key considered for a segment, with its similarity score.
type Candidate struct {
	Key   string `json:"key"`
	Score int    `json:"score"`
}

// SegmentMatch describes how one keypath segment was resolved.
type SegmentMatch struct {
	Segment string `json:"segment"`
	// Key is the selected key at this level. When resolution failed here
	// it holds the best-scoring candidate instead, or "" if the level had
	// no keys at all.
	Key   string `json:"key"`
	Score int    `json:"score"`
	Exact bool   `json:"exact"`
	// Candidates lists every key at this level with its score, in the
	// level's iteration order. Nil for exact matches, which short-circuit
	// scoring.
	Candidates []Candidate `json:"candidates,omitempty"`
}

// resolve walks the keypath one segment at a time, selecting at each level
// either the exact key or the highest-scoring fuzzy candidate. It returns
// the final value and the matched keys. The mapping is never mutated.
//
// An exact segment match always wins without scoring: scoring must never
// override a key that is literally present.
func resolve(root any, segments []string, threshold int, scorer score.Scorer) (value any, matched []string, err error) {
	current := root
	matched = make([]string, 0, len(segments))

	for i, segment := range segments {
		level, ok := AsMapping(current)
		if !ok {
			return nil, nil, &errors.TraversalError{
				Keypath: segments,
				Segment: segment,
				Index:   i,
				Value:   current,
			}
		}

		key, sc, _, ok := matchKey(level, segment, threshold, scorer)
		if !ok {
			kpErr := &errors.KeyPathError{
				Keypath: segments,
				Segment: segment,
				Index:   i,
			}
			if key != "" {
				kpErr.BestKey = key
				kpErr.BestScore = sc
			}
			return nil, nil, kpErr
		}

		matched = append(matched, key)
		current, _ = level.Value(key)
	}

	return current, matched, nil
}

// matchKey selects the key for one segment at one level. The exact key
// short-circuits; otherwise the highest-scoring key wins, ties going to the
// first key in the level's iteration order. On failure it returns the best
// candidate seen (if any) alongside ok=false.
func matchKey(level Mapping, segment string, threshold int, scorer score.Scorer) (key string, sc int, exact, ok bool) {
	if _, found := level.Value(segment); found {
		return segment, 100, true, true
	}

	best := ""
	bestScore := -1
	for _, k := range level.Keys() {
		if s := scorer.Score(segment, k); s > bestScore {
			best, bestScore = k, s
		}
	}

	if bestScore < 0 {
		// Empty level: the score space is empty, nothing can match.
		return "", 0, false, false
	}
	if bestScore < threshold {
		return best, bestScore, false, false
	}
	return best, bestScore, false, true
}

// resolveTrace performs the same walk as resolve but records every level's
// candidates and scores. On failure the trace covers the segments walked so
// far, including the failing one, together with the error.
func resolveTrace(root any, segments []string, threshold int, scorer score.Scorer) ([]SegmentMatch, error) {
	current := root
	trace := make([]SegmentMatch, 0, len(segments))

	for i, segment := range segments {
		level, ok := AsMapping(current)
		if !ok {
			return trace, &errors.TraversalError{
				Keypath: segments,
				Segment: segment,
				Index:   i,
				Value:   current,
			}
		}

		if _, found := level.Value(segment); found {
			trace = append(trace, SegmentMatch{
				Segment: segment,
				Key:     segment,
				Score:   100,
				Exact:   true,
			})
			current, _ = level.Value(segment)
			continue
		}

		keys := level.Keys()
		candidates := make([]Candidate, 0, len(keys))
		best := SegmentMatch{Segment: segment, Score: -1}
		for _, k := range keys {
			s := scorer.Score(segment, k)
			candidates = append(candidates, Candidate{Key: k, Score: s})
			if s > best.Score {
				best.Key, best.Score = k, s
			}
		}
		best.Candidates = candidates

		if best.Score < threshold {
			kpErr := &errors.KeyPathError{
				Keypath: segments,
				Segment: segment,
				Index:   i,
			}
			if best.Score >= 0 {
				kpErr.BestKey = best.Key
				kpErr.BestScore = best.Score
			} else {
				best.Key, best.Score = "", 0
			}
			trace = append(trace, best)
			return trace, kpErr
		}

		trace = append(trace, best)
		current, _ = level.Value(best.Key)
	}

	return trace, nil
}

// traverse is the exact-only walk used when fuzzy indexing is disabled.
func traverse(root any, segments []string) (any, error) {
	current := root
	for i, segment := range segments {
		level, ok := AsMapping(current)
		if !ok {
			return nil, &errors.TraversalError{
				Keypath: segments,
				Segment: segment,
				Index:   i,
				Value:   current,
			}
		}
		value, found := level.Value(segment)
		if !found {
			return nil, &errors.KeyPathError{
				Keypath: segments,
				Segment: segment,
				Index:   i,
			}
		}
		current = value
	}
	return current, nil
}
