package patterns

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/ledora/syllable/hyphen"
	"github.com/ledora/syllable/locale"
	"golang.org/x/text/language"
)

// ErrUnknownLocale flags a locale for which no hyphenation patterns are
// registered.
var ErrUnknownLocale = errors.New("unknown locale")

//go:embed data/*.tex
var files embed.FS

// Built-in pattern files and their hyphenmins.
var builtins = []struct {
	tag         string
	file        string
	left, right int
}{
	{"pt", "data/hyph-pt.tex", 1, 2},
	{"es", "data/hyph-es.tex", 1, 2},
	{"fr", "data/hyph-fr.tex", 1, 2},
	{"en-US", "data/hyph-en-us.tex", 2, 3},
}

// entry is a registered language. Its dictionary is created on first use.
type entry struct {
	tag  language.Tag
	load func() (*hyphen.Patterns, error)
	opts []hyphen.Option
	once sync.Once
	dict *hyphen.Dictionary
	err  error
}

func (e *entry) dictionary() (*hyphen.Dictionary, error) {
	e.once.Do(func() {
		tracer().Debugf("loading hyphenation patterns for %v", e.tag)
		p, err := e.load()
		if err != nil {
			e.err = fmt.Errorf("patterns for %v: %w", e.tag, err)
			tracer().Errorf(e.err.Error())
			return
		}
		e.dict = hyphen.NewDictionary(p, e.opts...)
		tracer().Infof("loaded %d hyphenation patterns for %v", p.Len(), e.tag)
	})
	return e.dict, e.err
}

// Registry maps locales to hyphenation dictionaries. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []*entry
	matcher language.Matcher
	opts    []hyphen.Option // applied to every dictionary, after the defaults
}

// Default is the registry for the built-in languages.
var Default = New()

// New creates a registry holding the built-in languages. Options are
// applied to every dictionary of the registry and override the built-in
// settings, e.g., the hyphenmins.
func New(opts ...hyphen.Option) *Registry {
	r := &Registry{opts: opts}
	for _, b := range builtins {
		b := b
		tag := language.MustParse(b.tag)
		load := func() (*hyphen.Patterns, error) {
			f, err := files.Open(b.file)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			return hyphen.ParsePatterns(f)
		}
		r.add(tag, load, hyphen.WithHyphenMins(b.left, b.right))
	}
	return r
}

// add registers a language, replacing an existing entry for the same tag.
// Clients must hold the write lock or have exclusive access.
func (r *Registry) add(tag language.Tag, load func() (*hyphen.Patterns, error), opts ...hyphen.Option) {
	all := append([]hyphen.Option{hyphen.WithLanguage(tag)}, opts...)
	all = append(all, r.opts...)
	e := &entry{tag: tag, load: load, opts: all}
	replaced := false
	for i, old := range r.entries {
		if old.tag == tag {
			r.entries[i] = e
			replaced = true
		}
	}
	if !replaced {
		r.entries = append(r.entries, e)
	}
	tags := make([]language.Tag, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.tag
	}
	r.matcher = language.NewMatcher(tags)
}

// Register reads a pattern file for a locale and adds it to the registry.
// Patterns are read immediately; syntax errors wrap hyphen.ErrPatternSyntax.
func (r *Registry) Register(loc string, rd io.Reader, opts ...hyphen.Option) error {
	ctx, err := locale.Parse(loc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnknownLocale, err)
	}
	p, err := hyphen.ParsePatterns(rd)
	if err != nil {
		return fmt.Errorf("patterns for %v: %w", ctx.Tag, err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(ctx.Tag, func() (*hyphen.Patterns, error) { return p, nil }, opts...)
	tracer().Infof("registered %d hyphenation patterns for %v", p.Len(), ctx.Tag)
	return nil
}

// Lookup returns the dictionary for the registered language closest to
// loc. If loc is malformed or no registered language matches it, Lookup
// returns an error wrapping ErrUnknownLocale.
func (r *Registry) Lookup(loc string) (*hyphen.Dictionary, error) {
	ctx, err := locale.Parse(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownLocale, err)
	}
	r.mu.RLock()
	_, index, confidence := r.matcher.Match(ctx.Tag)
	e := r.entries[index]
	r.mu.RUnlock()
	if confidence == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, loc)
	}
	tracer().Debugf("locale %q matches %v with confidence %v", loc, e.tag, confidence)
	return e.dictionary()
}

// Supported lists the languages of the registry.
func (r *Registry) Supported() []language.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]language.Tag, len(r.entries))
	for i, e := range r.entries {
		tags[i] = e.tag
	}
	return tags
}

// Lookup returns the dictionary for a locale from the Default registry.
func Lookup(loc string) (*hyphen.Dictionary, error) {
	return Default.Lookup(loc)
}
