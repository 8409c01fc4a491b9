package syllable

import (
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/sets/treeset"
)

// Hyphenator finds the hyphenation points of a plain word (without hyphens).
// Offsets are rune offsets in [1, len(word)-1], in increasing order.
// Hyphenators must not fail; words they cannot hyphenate yield an empty result.
type Hyphenator interface {
	Positions(word string) []int
}

// Part is a part of a compound word.
type Part struct {
	Text  string // the part, without hyphens
	Start int    // rune offset of the part within the compound word
}

// Len returns the length of the part in runes.
func (p Part) Len() int {
	return utf8.RuneCountInString(p.Text)
}

// Segment splits a word at its hyphens. Adjacent, leading and trailing
// hyphens result in empty parts. A word without hyphens results in a single
// part.
func Segment(word string) []Part {
	texts := strings.Split(word, "-")
	parts := make([]Part, len(texts))
	start := 0
	for i, text := range texts {
		parts[i] = Part{Text: text, Start: start}
		start += utf8.RuneCountInString(text) + 1
	}
	return parts
}

// Compose computes the syllable boundaries of a word from its parts, as
// produced by Segment. Every part is hyphenated by h and its offsets are
// shifted by the part's start. Between two parts a boundary is placed at the
// first rune after the hyphen.
//
// The result is sorted, free of duplicates, and in [1, n-1] for a word of n
// runes. It is never nil.
func Compose(parts []Part, h Hyphenator) []int {
	if len(parts) == 0 {
		return []int{}
	}
	last := parts[len(parts)-1]
	n := last.Start + last.Len()
	set := treeset.NewWithIntComparator()
	letters := false
	for i, part := range parts {
		plen := part.Len()
		if plen > 0 {
			letters = true
			for _, o := range h.Positions(part.Text) {
				if o >= 1 && o <= plen-1 {
					set.Add(part.Start + o)
				}
			}
		}
		if i < len(parts)-1 {
			set.Add(part.Start + plen + 1)
		}
	}
	if !letters { // hyphens only
		return []int{}
	}
	boundaries := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		if b := v.(int); b >= 1 && b <= n-1 {
			boundaries = append(boundaries, b)
		}
	}
	CT().Debugf("boundaries of %d parts = %v", len(parts), boundaries)
	return boundaries
}

// Boundaries computes the syllable boundaries of a word, which may be a
// hyphenated compound.
func Boundaries(word string, h Hyphenator) []int {
	return Compose(Segment(word), h)
}
