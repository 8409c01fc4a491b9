package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledora/syllable/highlight"
	"github.com/ledora/syllable/session"
)

const (
	clearScreen = "\x1b[2J"
	clearLine   = "\x1b[2K"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// screen shows the words of a session in the middle of the terminal, and a
// progress bar in the last line.
type screen struct {
	w             io.Writer
	width, height int
}

var _ session.View = (*screen)(nil)

func newScreen(w io.Writer, width, height int) *screen {
	if width < 20 {
		width = 80
	}
	if height < 5 {
		height = 24
	}
	return &screen{w: w, width: width, height: height}
}

func (s *screen) ShowWord(word string, boundaries []int, paused bool) {
	palette := highlight.DefaultPalette
	if paused {
		palette = highlight.PausedPalette
	}
	s.center(s.height/2, utf8.RuneCountInString(word), highlight.ANSI(word, boundaries, palette))
}

func (s *screen) Clear() {
	fmt.Fprintf(s.w, "\x1b[%d;1H%s", s.height/2, clearLine)
}

func (s *screen) Progress(current, total int) {
	if total <= 0 {
		return
	}
	label := fmt.Sprintf(" %d/%d", current, total)
	bar := s.width - len(label) - 2
	if bar < 1 {
		bar = 1
	}
	done := bar * current / total
	fmt.Fprintf(s.w, "\x1b[%d;1H%s[%s%s]%s", s.height, clearLine,
		strings.Repeat("=", done), strings.Repeat(" ", bar-done), label)
}

// message shows plain text in the middle of the screen.
func (s *screen) message(text string) {
	s.center(s.height/2, utf8.RuneCountInString(text), text)
}

// center writes text, which takes up width columns, centered in a row.
func (s *screen) center(row, width int, text string) {
	col := (s.width-width)/2 + 1
	if col < 1 {
		col = 1
	}
	fmt.Fprintf(s.w, "\x1b[%d;1H%s\x1b[%d;%dH%s", row, clearLine, row, col, text)
}

// bell rings the terminal bell for cues the player should notice.
type bell struct {
	w io.Writer
}

func (b bell) Play(c session.Cue) {
	switch c {
	case session.CueNegative, session.CueCountdown, session.CueResults:
		io.WriteString(b.w, "\a")
	}
}
