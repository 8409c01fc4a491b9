package hyphen

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/norm"
)

// Patterns from Liang's thesis, just enough to hyphenate "hyphenation".
const liangSample = `
% sample from "Word Hy-phen-a-tion by Com-put-er"
\patterns{
hy3ph he2n hena4 hen5at 1na n2at
1tio 2io o2n
}
\hyphenation{
ta-ble
}
`

func mustParse(t *testing.T, text string) *Patterns {
	t.Helper()
	p, err := ParsePatterns(strings.NewReader(text))
	if err != nil {
		t.Fatalf("cannot parse patterns: %v", err)
	}
	return p
}

func TestParsePatterns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	p := mustParse(t, liangSample)
	if p.Len() != 9 {
		t.Errorf("expected 9 patterns, have %d", p.Len())
	}
	if p.Exceptions() != 1 {
		t.Errorf("expected 1 exception, have %d", p.Exceptions())
	}
	if offsets, ok := p.exception("table"); !ok || !reflect.DeepEqual(offsets, []int{2}) {
		t.Errorf("expected exception table=[2], have %v (%v)", offsets, ok)
	}
}

func TestParseBarePatterns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := mustParse(t, "1b2l 1c\n.an3te % trailing comment\n\\message{ignored}")
	if p.Len() != 3 {
		t.Errorf("expected 3 patterns, have %d", p.Len())
	}
}

func TestParseErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	inputs := []string{
		"1b22l",                // adjacent digits
		"a1b\n42",              // no letters
		"a1b c#d",              // illegal character
		`\hyphenation{ -ab }`,  // leading hyphen
		`\hyphenation{ a--b }`, // double hyphen
		`\hyphenation{ ab- }`,  // trailing hyphen
		`\hyphenation{ ab1c }`, // digit in exception
	}
	for _, input := range inputs {
		_, err := ParsePatterns(strings.NewReader(input))
		if err == nil {
			t.Errorf("expected %q to fail", input)
			continue
		}
		if !errors.Is(err, ErrPatternSyntax) {
			t.Errorf("expected ErrPatternSyntax for %q, have %v", input, err)
		}
		t.Logf("error = %v", err)
	}
}

func TestLiang(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	dict := NewDictionary(mustParse(t, liangSample))
	tests := []struct {
		word    string
		offsets []int
	}{
		{"hyphenation", []int{2, 6}},
		{"Hyphenation", []int{2, 6}},
		{"HYPHENATION", []int{2, 6}},
		{"hyphen", []int{2}},
		{"nation", []int{2}},
		{"table", []int{2}},
		{"hen", []int{}},
		{"", []int{}},
	}
	for _, tt := range tests {
		offsets := dict.Positions(tt.word)
		t.Logf("%q => %v", tt.word, offsets)
		if !reflect.DeepEqual(offsets, tt.offsets) {
			t.Errorf("expected %q to break at %v, have %v", tt.word, tt.offsets, offsets)
		}
	}
}

func TestHyphenMins(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := mustParse(t, "1c")
	loose := NewDictionary(p, WithHyphenMins(1, 2))
	if offsets := loose.Positions("acacaca"); !reflect.DeepEqual(offsets, []int{1, 3, 5}) {
		t.Errorf("expected [1 3 5] for hyphenmins 1/2, have %v", offsets)
	}
	strict := NewDictionary(p, WithHyphenMins(2, 3))
	if offsets := strict.Positions("acacaca"); !reflect.DeepEqual(offsets, []int{3}) {
		t.Errorf("expected [3] for hyphenmins 2/3, have %v", offsets)
	}
	zero := NewDictionary(p, WithHyphenMins(0, 0))
	if l, r := zero.HyphenMins(); l != 1 || r != 1 {
		t.Errorf("expected hyphenmins to be clamped to 1/1, have %d/%d", l, r)
	}
	for _, o := range zero.Positions("cacc") {
		if o < 1 || o > 3 {
			t.Errorf("offset %d out of range for 'cacc'", o)
		}
	}
}

func TestExceptionsOverridePatterns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := mustParse(t, "1b")
	dict := NewDictionary(p, WithHyphenMins(1, 1))
	if offsets := dict.Positions("abba"); !reflect.DeepEqual(offsets, []int{1, 2}) {
		t.Fatalf("expected patterns to yield [1 2], have %v", offsets)
	}
	p = mustParse(t, "1b \\hyphenation{ ab-ba abbey }")
	dict = NewDictionary(p, WithHyphenMins(1, 1))
	if offsets := dict.Positions("abba"); !reflect.DeepEqual(offsets, []int{2}) {
		t.Errorf("expected exception to yield [2], have %v", offsets)
	}
	if offsets := dict.Positions("Abbey"); len(offsets) != 0 {
		t.Errorf("expected 'abbey' to be unbreakable, have %v", offsets)
	}
}

func TestDecomposedWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	p := mustParse(t, "1ç 1n \\hyphenation{ ma-çã }")
	dict := NewDictionary(p, WithHyphenMins(1, 1), WithCacheSize(0))
	tests := []struct {
		word    string
		offsets []int
	}{
		{"aço", []int{1}},
		{"açaçan", []int{1, 3, 5}},
		{"maçã", []int{2}}, // exception
		{"Maçã", []int{2}},
	}
	for _, tt := range tests {
		nfd := norm.NFD.String(tt.word)
		if nfd == tt.word {
			t.Fatalf("expected %q to decompose", tt.word)
		}
		for _, w := range []string{tt.word, nfd} {
			offsets := dict.Positions(w)
			t.Logf("%q (%d runes) => %v", w, len([]rune(w)), offsets)
		}
		if offsets := dict.Positions(tt.word); !reflect.DeepEqual(offsets, tt.offsets) {
			t.Errorf("expected %q to break at %v, have %v", tt.word, tt.offsets, offsets)
		}
	}
	// offsets refer to the runes of the decomposed word
	if offsets := dict.Positions(norm.NFD.String("açaçan")); !reflect.DeepEqual(offsets, []int{1, 4, 7}) {
		t.Errorf("expected NFD 'açaçan' to break at [1 4 7], have %v", offsets)
	}
	if offsets := dict.Positions(norm.NFD.String("maçã")); !reflect.DeepEqual(offsets, []int{2}) {
		t.Errorf("expected NFD 'maçã' to break at [2], have %v", offsets)
	}
	syll := dict.Syllables(norm.NFD.String("aço"))
	if len(syll) != 2 || norm.NFC.String(syll[1]) != "ço" {
		t.Errorf("expected NFD 'aço' to split into a + ço, have %q", syll)
	}
}

func TestCacheReturnsCopies(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	for _, size := range []int{0, 2} {
		dict := NewDictionary(mustParse(t, liangSample), WithCacheSize(size))
		first := dict.Positions("hyphenation")
		first[0] = 99
		second := dict.Positions("hyphenation")
		if !reflect.DeepEqual(second, []int{2, 6}) {
			t.Errorf("cache size %d: result changed to %v", size, second)
		}
	}
}

func TestSyllables(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dict := NewDictionary(mustParse(t, liangSample))
	syll := dict.Syllables("hyphenation")
	if !reflect.DeepEqual(syll, []string{"hy", "phen", "ation"}) {
		t.Errorf("unexpected syllables %v", syll)
	}
	if syll := dict.Syllables("hen"); !reflect.DeepEqual(syll, []string{"hen"}) {
		t.Errorf("expected a short word to stay in one piece, have %v", syll)
	}
	if dict.Syllables("") != nil {
		t.Errorf("expected no syllables for empty word")
	}
}

func TestConcurrentPositions(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	dict := NewDictionary(mustParse(t, liangSample), WithCacheSize(4))
	words := []string{"hyphenation", "hyphen", "nation", "table", "hen"}
	want := make([][]int, len(words))
	for i, w := range words {
		want[i] = dict.Positions(w)
	}
	var wg sync.WaitGroup
	errs := make(chan string, 8*len(words))
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, w := range words {
				if have := dict.Positions(w); !reflect.DeepEqual(have, want[i]) {
					errs <- fmt.Sprintf("%q: want %v, have %v", w, want[i], have)
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}

func ExampleDictionary_Positions() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	pats, _ := ParsePatterns(strings.NewReader("hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n"))
	dict := NewDictionary(pats, WithHyphenMins(2, 3))
	fmt.Println(dict.Positions("hyphenation"))
	fmt.Println(dict.Syllables("hyphenation"))
	// Output:
	// [2 6]
	// [hy phen ation]
}
