package syllable

import (
	"fmt"

	"github.com/ledora/syllable/hyphen/patterns"
	"golang.org/x/sync/errgroup"
)

// ErrUnknownLocale flags a locale without hyphenation patterns.
var ErrUnknownLocale = patterns.ErrUnknownLocale

// Provider hands out Hyphenators for locales. Locales it does not know
// result in an error wrapping ErrUnknownLocale.
type Provider interface {
	Hyphenator(locale string) (Hyphenator, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(locale string) (Hyphenator, error)

// Hyphenator calls f(locale).
func (f ProviderFunc) Hyphenator(locale string) (Hyphenator, error) {
	return f(locale)
}

// FromRegistry creates a Provider for a registry of hyphenation patterns.
func FromRegistry(r *patterns.Registry) Provider {
	return ProviderFunc(func(locale string) (Hyphenator, error) {
		dict, err := r.Lookup(locale)
		if err != nil {
			return nil, err
		}
		return dict, nil
	})
}

// Analyzer computes syllable boundaries for lists of words.
type Analyzer struct {
	provider Provider
}

// NewAnalyzer creates an Analyzer for a Provider. If p is nil, the registry
// of built-in hyphenation patterns is used.
func NewAnalyzer(p Provider) *Analyzer {
	if p == nil {
		p = FromRegistry(patterns.Default)
	}
	return &Analyzer{provider: p}
}

// Analyze computes the syllable boundaries for every word, with the
// hyphenation rules of locale. The result has an entry for every word, in
// the same order. If the locale is unknown, Analyze returns no result.
func (a *Analyzer) Analyze(words []string, locale string) ([][]int, error) {
	h, err := a.hyphenator(locale)
	if err != nil {
		return nil, err
	}
	result := make([][]int, len(words))
	for i, w := range words {
		result[i] = Boundaries(w, h)
	}
	return result, nil
}

// AnalyzeParallel is like Analyze, but distributes the words over at most
// workers goroutines. workers < 1 means no limit.
func (a *Analyzer) AnalyzeParallel(words []string, locale string, workers int) ([][]int, error) {
	h, err := a.hyphenator(locale)
	if err != nil {
		return nil, err
	}
	result := make([][]int, len(words))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			result[i] = Boundaries(w, h)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

func (a *Analyzer) hyphenator(locale string) (Hyphenator, error) {
	h, err := a.provider.Hyphenator(locale)
	if err != nil {
		CT().Errorf("cannot analyze words: %v", err)
		return nil, fmt.Errorf("syllable: locale %q: %w", locale, err)
	}
	return h, nil
}

// Analyze computes the syllable boundaries for every word, using the
// built-in hyphenation patterns for locale.
func Analyze(words []string, locale string) ([][]int, error) {
	return NewAnalyzer(nil).Analyze(words, locale)
}
