package wordlist

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ledora/syllable"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCatalogLoads(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, l := range Catalog {
		words, err := l.Words()
		if err != nil {
			t.Errorf("%v: %v", l, err)
			continue
		}
		if len(words) < 20 {
			t.Errorf("%v: expected a reasonable number of words, have %d", l, len(words))
		}
		t.Logf("%v: %d words", l, len(words))
	}
}

func TestCatalogIsHyphenated(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, l := range Catalog {
		words, err := l.Words()
		if err != nil {
			t.Fatal(err)
		}
		boundaries, err := syllable.Analyze(words, l.Locale)
		if err != nil {
			t.Fatalf("%v: %v", l, err)
		}
		if len(boundaries) != len(words) {
			t.Fatalf("%v: expected %d results, have %d", l, len(words), len(boundaries))
		}
		for i, w := range words {
			n := utf8.RuneCountInString(w)
			for j, b := range boundaries[i] {
				if b < 1 || b > n-1 || (j > 0 && boundaries[i][j-1] >= b) {
					t.Errorf("%v: bad boundaries for %q: %v", l, w, boundaries[i])
					break
				}
			}
		}
	}
}

func TestFind(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	l, err := Find("pt2")
	if err != nil {
		t.Fatal(err)
	}
	if l.ID != "PT2" || l.Kind != Hard || l.Locale != "pt_PT" {
		t.Errorf("unexpected list %+v", l)
	}
	if _, err := Find("DE1"); !errors.Is(err, ErrUnknownList) {
		t.Errorf("expected ErrUnknownList, have %v", err)
	}
}

func TestRead(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	words, err := Read(strings.NewReader("O gato, o rato.\nAproximaram-se - devagar."))
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"O", "gato", "o", "rato", "Aproximaram-se", "devagar"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("expected %v, have %v", expected, words)
	}
	for _, empty := range []string{"", "  \n ", " - , . -- "} {
		if _, err := Read(strings.NewReader(empty)); !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty for %q, have %v", empty, err)
		}
	}
}

func TestReadFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("um dois\ntrês\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	words, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(words, []string{"um", "dois", "três"}) {
		t.Errorf("unexpected words %v", words)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestShuffle(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	words := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	orig := append([]string(nil), words...)
	s1 := Shuffle(words, rand.New(rand.NewSource(7)))
	s2 := Shuffle(words, rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("expected same seed to yield same order: %v vs %v", s1, s2)
	}
	if !reflect.DeepEqual(words, orig) {
		t.Errorf("expected input to be left untouched, have %v", words)
	}
	sorted := append([]string(nil), s1...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(sorted, orig) {
		t.Errorf("expected a permutation, have %v", s1)
	}
	if len(Shuffle(nil, nil)) != 0 {
		t.Errorf("expected empty result for no words")
	}
}
