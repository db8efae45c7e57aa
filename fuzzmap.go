// Package fuzzmap provides fuzzy-matched key lookup over nested map
// structures addressed by dotted keypaths (e.g. "person.name").
//
// A Map wraps a caller-owned nested structure and resolves keypaths whose
// segments may not exactly match the underlying keys: at each level the
// best-scoring key above a similarity threshold is selected. Exact matches
// always win without scoring. When no sufficiently similar key exists,
// lookup falls back to an optional default factory or fails with a
// KeyPathError.
//
//	m, _ := fuzzmap.New(map[string]any{
//		"person": map[string]any{"name": "John"},
//	})
//	v, _ := m.FuzzyGet("pers.name") // "John"
//
// The wrapped structure is never mutated. A Map is safe for concurrent
// reads as long as neither the structure nor the Map's configuration is
// concurrently modified.
package fuzzmap

import (
	"strings"

	"github.com/fuzzkit/fuzzmap/errors"
	"github.com/fuzzkit/fuzzmap/score"
)

// Defaults applied by New when the corresponding option is not given.
const (
	DefaultThreshold = 80
	DefaultSeparator = "."
)

// Map wraps a nested structure with fuzzy keypath lookup. Configuration is
// per instance; two Maps over the same data never affect each other.
type Map struct {
	root          any
	threshold     int
	separator     string
	factory       func() any
	fuzzyIndexing bool
	scorer        score.Scorer
}

// Option configures a Map at construction.
type Option func(*Map) error

// WithThreshold sets the minimum similarity score, in [0,100], for a fuzzy
// segment match to be accepted. Out-of-range values are rejected, never
// clamped.
func WithThreshold(threshold int) Option {
	return func(m *Map) error {
		if threshold < 0 || threshold > 100 {
			return errors.NewInvalidThreshold(threshold)
		}
		m.threshold = threshold
		return nil
	}
}

// WithDefaultFactory supplies a fallback producer invoked when resolution
// fails at any segment. The factory may have arbitrary side effects; they
// are the caller's responsibility. Without a factory, failed lookups return
// a KeyPathError or TraversalError instead.
func WithDefaultFactory(factory func() any) Option {
	return func(m *Map) error {
		if factory == nil {
			return errors.New("default factory must not be nil")
		}
		m.factory = factory
		return nil
	}
}

// WithSeparator sets the keypath separator. Default ".".
func WithSeparator(sep string) Option {
	return func(m *Map) error {
		if sep == "" {
			return errors.New("separator must not be empty")
		}
		m.separator = sep
		return nil
	}
}

// WithFuzzyIndexing routes Get through fuzzy resolution, so plain lookups
// behave like FuzzyGet. The setting is per instance.
func WithFuzzyIndexing(enabled bool) Option {
	return func(m *Map) error {
		m.fuzzyIndexing = enabled
		return nil
	}
}

// WithScorer replaces the similarity backend. The scorer must return
// normalized scores in [0,100].
func WithScorer(s score.Scorer) Option {
	return func(m *Map) error {
		if s == nil {
			return errors.New("scorer must not be nil")
		}
		m.scorer = s
		return nil
	}
}

// New wraps a nested map. The map is read, never written; a nil map behaves
// as an empty one.
func New(data map[string]any, opts ...Option) (*Map, error) {
	return newMap(data, opts)
}

// NewMapping wraps a custom Mapping implementation, for callers whose
// nested data is not plain Go maps. The Mapping's Keys order defines
// tie-breaking between equally-scored keys.
func NewMapping(root Mapping, opts ...Option) (*Map, error) {
	if root == nil {
		return nil, errors.New("root mapping must not be nil")
	}
	return newMap(root, opts)
}

func newMap(root any, opts []Option) (*Map, error) {
	m := &Map{
		root:      root,
		threshold: DefaultThreshold,
		separator: DefaultSeparator,
		scorer:    score.Default(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Root returns the wrapped structure.
func (m *Map) Root() any { return m.root }

// Threshold returns the current similarity threshold.
func (m *Map) Threshold() int { return m.threshold }

// SetThreshold changes the similarity threshold at runtime. Values outside
// [0,100] are rejected. Callers mutating the threshold while other
// goroutines read the Map must synchronize externally.
func (m *Map) SetThreshold(threshold int) error {
	if threshold < 0 || threshold > 100 {
		return errors.NewInvalidThreshold(threshold)
	}
	m.threshold = threshold
	return nil
}

// Separator returns the keypath separator.
func (m *Map) Separator() string { return m.separator }

// FuzzyIndexing reports whether Get routes through fuzzy resolution.
func (m *Map) FuzzyIndexing() bool { return m.fuzzyIndexing }

// Get resolves a keypath by exact traversal. With fuzzy indexing enabled it
// behaves like FuzzyGet. On failure the default factory is invoked when
// present; otherwise the resolution error is returned.
func (m *Map) Get(keypath string) (any, error) {
	if m.fuzzyIndexing {
		return m.FuzzyGet(keypath)
	}
	value, err := traverse(m.root, m.split(keypath))
	if err != nil {
		return m.fallback(err)
	}
	return value, nil
}

// FuzzyGet resolves a keypath with fuzzy matching at every segment, using
// the Map's threshold. An empty keypath resolves to the root itself.
func (m *Map) FuzzyGet(keypath string) (any, error) {
	return m.fuzzyResolve(m.split(keypath), m.threshold)
}

// FuzzyGetWithThreshold is FuzzyGet with a per-call threshold override.
func (m *Map) FuzzyGetWithThreshold(keypath string, threshold int) (any, error) {
	if threshold < 0 || threshold > 100 {
		return nil, errors.NewInvalidThreshold(threshold)
	}
	return m.fuzzyResolve(m.split(keypath), threshold)
}

// FuzzyGetPath resolves a pre-split keypath, for callers whose segments may
// legitimately contain the separator.
func (m *Map) FuzzyGetPath(segments []string) (any, error) {
	return m.fuzzyResolve(segments, m.threshold)
}

// MatchPath resolves a keypath and returns the canonical matched keypath,
// joined with the Map's separator, without returning the value. The default
// factory does not apply here: there is no path to substitute.
func (m *Map) MatchPath(keypath string) (string, error) {
	_, matched, err := resolve(m.root, m.split(keypath), m.threshold, m.scorer)
	if err != nil {
		return "", err
	}
	return strings.Join(matched, m.separator), nil
}

// Explain resolves a keypath and reports every level's candidates and
// scores. On failure the trace covers the segments walked so far, including
// the failing one, alongside the error.
func (m *Map) Explain(keypath string) ([]SegmentMatch, error) {
	return resolveTrace(m.root, m.split(keypath), m.threshold, m.scorer)
}

func (m *Map) fuzzyResolve(segments []string, threshold int) (any, error) {
	value, _, err := resolve(m.root, segments, threshold, m.scorer)
	if err != nil {
		return m.fallback(err)
	}
	return value, nil
}

// fallback applies the default factory to a failed resolution. Only lookup
// failures are eligible; configuration errors always surface.
func (m *Map) fallback(err error) (any, error) {
	if m.factory != nil {
		return m.factory(), nil
	}
	return nil, err
}

func (m *Map) split(keypath string) []string {
	if keypath == "" {
		return nil
	}
	return strings.Split(keypath, m.separator)
}
