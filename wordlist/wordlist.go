package wordlist

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"unicode"

	"github.com/ledora/syllable/segment"
)

// Errors of package wordlist.
var (
	ErrEmpty       = errors.New("word list is empty")
	ErrUnknownList = errors.New("unknown word list")
)

// Kind is the difficulty of a list.
type Kind string

// Kinds of built-in lists.
const (
	Frequent Kind = "frequent"
	Hard     Kind = "hard"
)

// List describes a built-in word list.
type List struct {
	ID       string // short identifier, e.g. "PT1"
	Kind     Kind
	Locale   string // locale to hyphenate the words with
	Language string
}

// Catalog contains all built-in lists.
var Catalog = []List{
	{"PT1", Frequent, "pt_PT", "pt"},
	{"PT2", Hard, "pt_PT", "pt"},
	{"ES1", Frequent, "es", "es"},
	{"ES2", Hard, "es", "es"},
	{"EN1", Frequent, "en", "en"},
	{"EN2", Hard, "en", "en"},
	{"FR1", Frequent, "fr_FR", "fr"},
	{"FR2", Hard, "fr_FR", "fr"},
}

//go:embed data/*.txt
var files embed.FS

// Find looks up a built-in list by ID. IDs are case-insensitive.
func Find(id string) (List, error) {
	for _, l := range Catalog {
		if strings.EqualFold(l.ID, id) {
			return l, nil
		}
	}
	return List{}, fmt.Errorf("%w: %q", ErrUnknownList, id)
}

// Words returns the words of a built-in list, in file order.
func (l List) Words() ([]string, error) {
	name := fmt.Sprintf("data/%s_%s.txt", l.Language, l.Kind)
	f, err := files.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownList, l.ID)
	}
	defer f.Close()
	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", l.ID, err)
	}
	tracer().Debugf("list %s has %d words", l.ID, len(words))
	return words, nil
}

func (l List) String() string {
	return fmt.Sprintf("%s (%s, %s)", l.ID, l.Locale, l.Kind)
}

// Read splits a text into words. Tokens without any letter, like a lone
// dash, are skipped. If the text has no words, Read returns ErrEmpty.
func Read(r io.Reader) ([]string, error) {
	seg := segment.NewSegmenter()
	seg.Init(bufio.NewReader(r))
	var words []string
	for seg.Next() {
		if w := seg.Text(); hasLetter(w) {
			words = append(words, w)
		}
	}
	if err := seg.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// ReadFile reads the words of a text file.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Shuffle returns the words in random order. words is left untouched.
// If rng is nil, the global source of math/rand is used.
func Shuffle(words []string, rng *rand.Rand) []string {
	shuffled := append([]string(nil), words...)
	swap := func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] }
	if rng == nil {
		rand.Shuffle(len(shuffled), swap)
	} else {
		rng.Shuffle(len(shuffled), swap)
	}
	return shuffled
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
