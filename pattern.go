package lineview

import (
	"fmt"

	coregex "github.com/coregx/coregex"

	"github.com/dshills/lineview/internal/regexcache"
	"github.com/dshills/lineview/internal/search"
)

// Pattern is a compiled regular expression. Patterns are immutable and
// safe for concurrent use; matching against a view yields the sub-view
// bounding the leftmost match.
type Pattern struct {
	source string
	re     *coregex.Regex
}

// String returns the pattern's source text.
func (p *Pattern) String() string {
	return p.source
}

// Find returns the sub-view of v bounding the leftmost match, or false
// if the pattern does not match. Matching never fails once compiled.
func (p *Pattern) Find(v View) (View, bool) {
	start, stop, ok := search.Regex(v.Text(), p.re)
	if !ok {
		return View{}, false
	}
	return newView(v.arena, v.start+start, v.start+stop), true
}

// Match reports whether the pattern matches anywhere in v.
func (p *Pattern) Match(v View) bool {
	return p.re.MatchString(v.Text())
}

// PatternCache memoizes compiled patterns by exact pattern text, bounded
// by a least-recently-used eviction policy. Safe for concurrent use;
// concurrent compiles of one pattern text parse it once.
type PatternCache struct {
	cache *regexcache.Cache[*Pattern]
}

// NewPatternCache creates a cache holding at most capacity patterns.
// A capacity of zero or below uses the default (1024).
func NewPatternCache(capacity int) *PatternCache {
	return &PatternCache{
		cache: regexcache.New(capacity, compilePattern),
	}
}

func compilePattern(source string) (*Pattern, error) {
	re, err := coregex.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, source, err)
	}
	return &Pattern{source: source, re: re}, nil
}

// Compile returns the memoized compiled pattern for source, compiling
// it on first use. Malformed syntax fails with ErrBadPattern.
func (pc *PatternCache) Compile(source string) (*Pattern, error) {
	return pc.cache.Compile(source)
}

// Stats returns the cache's hit/miss/eviction counters.
func (pc *PatternCache) Stats() regexcache.Stats {
	return pc.cache.Stats()
}

// Len returns the number of cached patterns.
func (pc *PatternCache) Len() int {
	return pc.cache.Len()
}

// defaultPatternCache backs the package-level Compile. Process-wide,
// lazily populated, never torn down.
var defaultPatternCache = NewPatternCache(regexcache.DefaultCapacity)

// Compile compiles a regular expression through the process-wide
// pattern cache. Compiling the same pattern text twice within the
// cache's retention window returns the identical *Pattern.
func Compile(source string) (*Pattern, error) {
	return defaultPatternCache.Compile(source)
}

// MustCompile is Compile but panics on malformed syntax. Intended for
// patterns fixed at program start.
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic(fmt.Sprintf("lineview: MustCompile(%q): %v", source, err))
	}
	return p
}

// PatternCacheStats returns the process-wide cache's counters.
func PatternCacheStats() regexcache.Stats {
	return defaultPatternCache.Stats()
}
