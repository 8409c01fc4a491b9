/*
Package highlight splits words into syllables for display, with
alternating colors for neighbouring syllables.

BSD License

Copyright (c) 2022–23, The Ledora Authors

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package highlight

import (
	"strings"
)

// Span is a syllable of a word. Start and End are rune offsets; Color is
// the index into a Palette (0 or 1).
type Span struct {
	Text       string
	Start, End int
	Color      int
}

// Spans splits word at the given boundaries. Boundaries which are out of
// range or not increasing are ignored. The empty word has no spans.
func Spans(word string, boundaries []int) []Span {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}
	spans := make([]Span, 0, len(boundaries)+1)
	start := 0
	for _, b := range boundaries {
		if b <= start || b >= len(runes) {
			continue
		}
		spans = append(spans, Span{
			Text:  string(runes[start:b]),
			Start: start,
			End:   b,
			Color: len(spans) % 2,
		})
		start = b
	}
	return append(spans, Span{
		Text:  string(runes[start:]),
		Start: start,
		End:   len(runes),
		Color: len(spans) % 2,
	})
}

// Palette holds the terminal escape sequences for the two syllable colors.
type Palette [2]string

// Reset ends any color sequence.
const Reset = "\x1b[0m"

// Palettes for words on screen, and for words while the exercise is paused.
var (
	DefaultPalette = Palette{"\x1b[1;37m", "\x1b[1;38;5;68m"} // light grey, steel blue
	PausedPalette  = Palette{"\x1b[2;37m", "\x1b[2;38;5;68m"}
)

// ANSI renders word with its syllables in alternating colors of palette p.
func ANSI(word string, boundaries []int, p Palette) string {
	spans := Spans(word, boundaries)
	if len(spans) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(p[s.Color])
		b.WriteString(s.Text)
	}
	b.WriteString(Reset)
	return b.String()
}

// Plain renders word with a separator between syllables, e.g.
// "a·ten·ta·men·te".
func Plain(word string, boundaries []int, sep string) string {
	spans := Spans(word, boundaries)
	texts := make([]string, len(spans))
	for i, s := range spans {
		texts[i] = s.Text
	}
	return strings.Join(texts, sep)
}
