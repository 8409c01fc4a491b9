package hyphen

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/speedata/hyphenation"
	"golang.org/x/text/unicode/norm"
)

// ErrPatternSyntax flags a malformed pattern or exception in a pattern file.
var ErrPatternSyntax = errors.New("hyphen: malformed pattern")

// Patterns is a set of Liang hyphenation patterns plus a list of exception
// words. Clients create pattern sets with ParsePatterns; NewPatterns
// creates an empty one.
//
// Patterns must not be modified once a Dictionary has been created for it.
type Patterns struct {
	lang       *hyphenation.Lang // nil for an empty set
	count      int
	exceptions map[string][]int
}

// NewPatterns creates an empty pattern set, which hyphenates nothing but
// the exception words added to it.
func NewPatterns() *Patterns {
	return &Patterns{exceptions: make(map[string][]int)}
}

// Len returns the number of patterns in the set.
func (p *Patterns) Len() int {
	return p.count
}

// Exceptions returns the number of exception words in the set.
func (p *Patterns) Exceptions() int {
	return len(p.exceptions)
}

// checkPattern validates a pattern like "1b2l" or ".an3te". A pattern has
// to contain at least one letter, and digits may not follow each other.
func checkPattern(pattern string) error {
	letters := 0
	digit := false
	for _, r := range pattern {
		switch {
		case r >= '0' && r <= '9':
			if digit {
				return fmt.Errorf("%w: %q", ErrPatternSyntax, pattern)
			}
			digit = true
		case r == '.' || r == '\'' || unicode.IsLetter(r) || unicode.Is(unicode.Mn, r):
			letters++
			digit = false
		default:
			return fmt.Errorf("%w: %q", ErrPatternSyntax, pattern)
		}
	}
	if letters == 0 {
		return fmt.Errorf("%w: %q", ErrPatternSyntax, pattern)
	}
	return nil
}

// AddException adds a word with explicit hyphens, as in "as-so-ciate".
// A word without hyphens is stored as a word which must never be broken.
func (p *Patterns) AddException(word string) error {
	word = norm.NFC.String(word)
	var offsets []int
	var b strings.Builder
	n := 0
	for _, r := range word {
		if r == '-' {
			if n == 0 || (len(offsets) > 0 && offsets[len(offsets)-1] == n) {
				return fmt.Errorf("%w: exception %q", ErrPatternSyntax, word)
			}
			offsets = append(offsets, n)
			continue
		}
		if !unicode.IsLetter(r) && r != '\'' {
			return fmt.Errorf("%w: exception %q", ErrPatternSyntax, word)
		}
		b.WriteRune(r)
		n++
	}
	if n == 0 || (len(offsets) > 0 && offsets[len(offsets)-1] == n) {
		return fmt.Errorf("%w: exception %q", ErrPatternSyntax, word)
	}
	if offsets == nil {
		offsets = []int{}
	}
	p.exceptions[b.String()] = offsets
	return nil
}

// exception returns the explicit break offsets of word, if any. word has
// to be lower case and in NFC.
func (p *Patterns) exception(word string) ([]int, bool) {
	offsets, ok := p.exceptions[word]
	return offsets, ok
}

// points returns the offsets at which the patterns allow a break in word,
// which has to be lower case and in NFC. Hyphenmins are not applied.
func (p *Patterns) points(word string) []int {
	if p.lang == nil {
		return nil
	}
	return p.lang.Hyphenate(word)
}
