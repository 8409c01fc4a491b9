package segment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTwoWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	s := NewSegmenter()
	s.Init(strings.NewReader("Olá mundo!"))
	n := 0
	for s.Next() {
		t.Logf("word = %q", s.Text())
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 words, have %d", n)
	}
}

func TestWhiteSpaceRuns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("	o  gato\n\n  subiu\t ao telhado   "))
	var words []string
	for seg.Next() {
		words = append(words, seg.Text())
	}
	if !reflect.DeepEqual(words, []string{"o", "gato", "subiu", "ao", "telhado"}) {
		t.Errorf("unexpected words %v", words)
	}
}

func TestCompoundsStayTogether(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	words, err := Words("Aproximaram-se do bem-humorado guarda-chuva.")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"Aproximaram-se", "do", "bem-humorado", "guarda-chuva"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("expected %v, have %v", expected, words)
	}
}

func TestPunctuation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	words, err := Words(`Olá, «amigo»! Como estás? Bem.Obrigado; (muito) — “sim”…`)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"Olá", "amigo", "Como", "estás", "Bem", "Obrigado", "muito", "sim"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("expected %v, have %v", expected, words)
	}
}

func TestCustomClassifier(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	onSemicolon := func(r rune) RuneClass {
		if r == ';' {
			return Break
		}
		return Keep
	}
	seg := NewSegmenter(onSemicolon)
	seg.Init(strings.NewReader("a b;c;;d"))
	var words []string
	for seg.Next() {
		words = append(words, seg.Text())
	}
	if !reflect.DeepEqual(words, []string{"a b", "c", "d"}) {
		t.Errorf("unexpected words %v", words)
	}
}

func TestNotInitialized(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	if seg.Next() {
		t.Errorf("expected uninitialized segmenter to stop")
	}
	if !errors.Is(seg.Err(), ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, have %v", seg.Err())
	}
}

func TestTooLong(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Buffer(make([]byte, 0, 4), 4)
	seg.Init(strings.NewReader("casa palavra"))
	if !seg.Next() || seg.Text() != "casa" {
		t.Fatalf("expected first segment 'casa', have %q", seg.Text())
	}
	if seg.Next() {
		t.Errorf("expected 'palavra' to overflow the buffer, have %q", seg.Text())
	}
	if !errors.Is(seg.Err(), ErrTooLong) {
		t.Errorf("expected ErrTooLong, have %v", seg.Err())
	}
}

func TestReInit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewSegmenter()
	seg.Init(strings.NewReader("um dois"))
	seg.Next()
	seg.Init(strings.NewReader("três"))
	if !seg.Next() || seg.Text() != "três" {
		t.Errorf("expected re-initialized segmenter to read 'três', have %q", seg.Text())
	}
	if seg.Position() != int64(len("três")) {
		t.Errorf("expected position %d, have %d", len("três"), seg.Position())
	}
	if seg.Next() {
		t.Errorf("expected end of input")
	}
	if seg.Err() != nil {
		t.Errorf("expected no error at end of input, have %v", seg.Err())
	}
}

func ExampleSegmenter() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	seg := NewSegmenter()
	seg.Init(strings.NewReader("O guarda-chuva, que bonito!"))
	for seg.Next() {
		fmt.Printf("'%s'\n", seg.Text())
	}
	// Output:
	// 'O'
	// 'guarda-chuva'
	// 'que'
	// 'bonito'
}
