package segment

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RuneClass tells a Segmenter what to do with a rune.
type RuneClass int8

// Runes are either part of a word, separate words, or are dropped
// silently.
const (
	Keep RuneClass = iota
	Break
	Drop
)

// Classifier assigns a RuneClass to every rune.
type Classifier func(rune) RuneClass

// WordClassifier is the default Classifier. It breaks on white space and
// sentence punctuation and drops commas, quotes and brackets.
func WordClassifier(r rune) RuneClass {
	switch r {
	case '.', ';', ':', '!', '?', '¡', '¿', '…', '–', '—':
		return Break
	case ',', '"', '“', '”', '„', '«', '»', '(', ')', '[', ']':
		return Drop
	}
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return Break
	}
	return Keep
}

// Segmenter reads runes from an io.RuneReader and splits them into words.
// Its API follows bufio.Scanner.
type Segmenter struct {
	reader   io.RuneReader
	classify Classifier
	word     []byte        // the word found by the last call to Next
	buffer   *bytes.Buffer // collects the runes of the current word
	max      int           // maximum length of a word in bytes
	pos      int64         // bytes read so far
	err      error
	atEOF    bool
	inUse    bool // Next has been called, the buffer must not change
}

// MaxSegmentSize is the default limit for the length of a word, in bytes.
const MaxSegmentSize = 64 * 1024

const startBufSize = 256

// Errors of package segment.
var (
	// ErrTooLong is returned by Err if a word exceeds the maximum length.
	ErrTooLong = errors.New("segmenter: segment too long for buffer")
	// ErrNotInitialized is returned by Err if Next is called before Init.
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
)

// NewSegmenter creates a new Segmenter. Clients may provide a Classifier;
// without one, WordClassifier is used. Segmenters have to be initialized
// with Init before use.
func NewSegmenter(classifier ...Classifier) *Segmenter {
	s := &Segmenter{classify: WordClassifier}
	if len(classifier) > 0 && classifier[0] != nil {
		s.classify = classifier[0]
	}
	return s
}

// Init sets the input of s. A segmenter may be initialized again to read a
// new text; a nil reader is an empty text.
func (s *Segmenter) Init(reader io.RuneReader) {
	if reader == nil {
		reader = strings.NewReader("")
	}
	if s.buffer == nil {
		s.buffer = bytes.NewBuffer(make([]byte, 0, startBufSize))
		s.max = MaxSegmentSize
	}
	s.buffer.Reset()
	*s = Segmenter{
		reader:   reader,
		classify: s.classify,
		buffer:   s.buffer,
		max:      s.max,
	}
}

// Buffer replaces the internal buffer of s. Words may grow up to max bytes,
// or up to cap(buf) if that is larger. Buffer must be called before the
// first call to Next and panics otherwise.
func (s *Segmenter) Buffer(buf []byte, max int) {
	if s.inUse {
		panic("segment.Buffer: buffer already in use; cannot be re-set")
	}
	if c := cap(buf); c > max {
		max = c
	}
	s.buffer = bytes.NewBuffer(buf[:0])
	s.max = max
}

// Err returns the first error of s. Reaching the end of the input is not
// an error.
func (s *Segmenter) Err() error {
	if errors.Is(s.err, io.EOF) {
		return nil
	}
	return s.err
}

// Next moves to the next word of the input, which is then available from
// Bytes and Text. It returns false at the end of the input or after an
// error, which is reported by Err.
func (s *Segmenter) Next() bool {
	if s.reader == nil {
		s.setErr(ErrNotInitialized)
		return false
	}
	if s.Err() != nil {
		return false
	}
	s.inUse = true
	s.buffer.Reset()
	s.word = nil
	for !s.atEOF {
		r, sz, err := s.reader.ReadRune()
		if err != nil {
			s.atEOF = true
			if err != io.EOF {
				CT().Errorf("segmenter cannot read input: %v", err)
				s.setErr(err)
				return false
			}
			break
		}
		s.pos += int64(sz)
		if r == utf8.RuneError && sz == 1 {
			continue // skip invalid input
		}
		switch s.classify(r) {
		case Break:
			if s.buffer.Len() > 0 {
				return s.emit()
			}
		case Keep:
			if s.buffer.Len()+utf8.RuneLen(r) > s.max {
				s.setErr(ErrTooLong)
				return false
			}
			s.buffer.WriteRune(r)
		}
	}
	if s.buffer.Len() > 0 {
		return s.emit()
	}
	return false
}

func (s *Segmenter) emit() bool {
	s.word = s.buffer.Bytes()
	CT().Debugf("word %q", s.word)
	return true
}

// Bytes returns the current word. The slice is only valid until the next
// call to Next.
func (s *Segmenter) Bytes() []byte {
	return s.word
}

// Text returns the current word as a string.
func (s *Segmenter) Text() string {
	return string(s.word)
}

// Position returns the number of bytes read from the input so far.
func (s *Segmenter) Position() int64 {
	return s.pos
}

func (s *Segmenter) setErr(err error) {
	if s.Err() == nil {
		s.err = err
	}
}

// Words splits text into words with a WordClassifier.
func Words(text string) ([]string, error) {
	s := NewSegmenter()
	s.Init(strings.NewReader(text))
	var words []string
	for s.Next() {
		words = append(words, s.Text())
	}
	return words, s.Err()
}
