package hyphen

import (
	"sort"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultCacheSize is the number of words a Dictionary remembers, unless
// configured otherwise with WithCacheSize.
const DefaultCacheSize = 1024

// Dictionary computes hyphenation points for words of a single language.
// It is safe for concurrent use.
type Dictionary struct {
	patterns  *Patterns
	lang      language.Tag
	left      int // minimum number of runes before the first break
	right     int // minimum number of runes after the last break
	cacheSize int
	cache     *lru.Cache[string, []int]
}

// Option configures a Dictionary.
type Option func(*Dictionary)

// WithHyphenMins sets the minimum number of runes to keep at the start
// (left) and at the end (right) of a word. Values below 1 are treated as 1.
func WithHyphenMins(left, right int) Option {
	return func(d *Dictionary) {
		d.left, d.right = left, right
	}
}

// WithLanguage sets the language used for case mapping.
func WithLanguage(tag language.Tag) Option {
	return func(d *Dictionary) {
		d.lang = tag
	}
}

// WithCacheSize sets the number of words to cache. A size of 0 disables
// caching.
func WithCacheSize(n int) Option {
	return func(d *Dictionary) {
		d.cacheSize = n
	}
}

// NewDictionary creates a Dictionary for a set of patterns. Without options,
// hyphenmins are 2 and 3 (the TeX defaults for English).
func NewDictionary(p *Patterns, opts ...Option) *Dictionary {
	if p == nil {
		p = NewPatterns()
	}
	d := &Dictionary{
		patterns:  p,
		lang:      language.Und,
		left:      2,
		right:     3,
		cacheSize: DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.left < 1 {
		d.left = 1
	}
	if d.right < 1 {
		d.right = 1
	}
	if d.cacheSize > 0 {
		cache, err := lru.New[string, []int](d.cacheSize)
		if err != nil {
			tracer().Errorf("hyphenation cache: %v", err)
		} else {
			d.cache = cache
		}
	}
	return d
}

// Language returns the language tag of d.
func (d *Dictionary) Language() language.Tag {
	return d.lang
}

// HyphenMins returns the left and right hyphenmin of d.
func (d *Dictionary) HyphenMins() (int, int) {
	return d.left, d.right
}

// Positions returns the rune offsets at which word may be hyphenated, in
// increasing order. Every offset i satisfies left ≤ i ≤ len(word)-right.
// Words too short to be hyphenated yield an empty result. Words need not be
// in NFC; offsets always refer to the runes of word as given.
func (d *Dictionary) Positions(word string) []int {
	n := utf8.RuneCountInString(word)
	if n < d.left+d.right {
		return []int{}
	}
	lower := d.lowercase(word, n)
	if d.cache != nil {
		if offsets, ok := d.cache.Get(lower); ok {
			return append([]int{}, offsets...)
		}
	}
	offsets := d.hyphenate(lower, n)
	if d.cache != nil {
		d.cache.Add(lower, offsets)
		return append([]int{}, offsets...)
	}
	return offsets
}

// Syllables splits word at its hyphenation points.
func (d *Dictionary) Syllables(word string) []string {
	if word == "" {
		return nil
	}
	offsets := d.Positions(word)
	parts := make([]string, 0, len(offsets)+1)
	runes := []rune(word)
	last := 0
	for _, o := range offsets {
		parts = append(parts, string(runes[last:o]))
		last = o
	}
	return append(parts, string(runes[last:]))
}

// hyphenate finds the breaks of a lower case word of n runes. Patterns and
// exceptions are in NFC, so a decomposed word is composed first and the
// offsets are mapped back.
func (d *Dictionary) hyphenate(lower string, n int) []int {
	var index []int
	if !norm.NFC.IsNormalString(lower) {
		s := borrowScratch()
		defer s.release()
		lower = s.compose(lower)
		index = s.index
	}
	points, ok := d.patterns.exception(lower)
	if !ok {
		points = d.patterns.points(lower)
	}
	points = append([]int(nil), points...)
	sort.Ints(points)
	offsets := []int{}
	for _, o := range points {
		if index != nil {
			if o < 0 || o >= len(index) {
				continue
			}
			o = index[o]
		}
		if o >= d.left && o <= n-d.right && (len(offsets) == 0 || offsets[len(offsets)-1] < o) {
			offsets = append(offsets, o)
		}
	}
	tracer().Debugf("hyphenate %q: points=%v, offsets=%v", lower, points, offsets)
	return offsets
}

// lowercase maps word to lower case with the case rules of d's language.
// Callers rely on rune offsets, so a mapping which changes the number of
// runes (e.g., 'İ' in some languages) is replaced by a rune-by-rune mapping.
func (d *Dictionary) lowercase(word string, n int) string {
	lower := cases.Lower(d.lang).String(word)
	if utf8.RuneCountInString(lower) == n {
		return lower
	}
	runes := []rune(word)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return string(runes)
}
