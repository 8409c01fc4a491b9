package session

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// Errors of package session.
var (
	ErrNoWords  = errors.New("session: no words to read")
	ErrMismatch = errors.New("session: words and boundaries do not match")
)

// Key is an input event of the player.
type Key int

// Keys of the game. Finish ends the exercise and shows the results, Abort
// ends it without results.
const (
	Next     Key = iota // right arrow
	Previous            // left arrow
	Pause               // space
	Finish              // end key
	Abort               // escape
)

func (k Key) String() string {
	switch k {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Pause:
		return "pause"
	case Finish:
		return "finish"
	case Abort:
		return "abort"
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// State is the state of a session.
type State int

// States of a session.
const (
	Ready    State = iota // started, no word shown yet
	Showing               // a word is on screen
	Hidden                // the display time of the word has elapsed
	Paused                // the word is shown until the next key press
	Finished              // results are available
	Aborted               // the player cancelled the exercise
)

func (st State) String() string {
	return [...]string{"ready", "showing", "hidden", "paused", "finished", "aborted"}[st]
}

// Cue is a sound effect.
type Cue int

// Sound effects of the game.
const (
	CuePositive Cue = iota
	CueNegative
	CuePause
	CueCountdown
	CueResults
)

// View displays words. Boundaries are the syllable boundaries of the word;
// paused words are to be displayed in a subdued manner.
type View interface {
	ShowWord(word string, boundaries []int, paused bool)
	Clear()
	Progress(current, total int)
}

// Sound plays sound effects.
type Sound interface {
	Play(Cue)
}

// Default display times of a word.
const (
	DefaultWordDuration = 500 * time.Millisecond
	DefaultRuneDuration = 100 * time.Millisecond
)

// Options configure a session. Zero values select defaults.
type Options struct {
	WordDuration time.Duration    // minimum display time of a word
	RuneDuration time.Duration    // display time per character
	Clock        func() time.Time // defaults to time.Now
	Sound        Sound            // optional
}

// Session is a single run through a list of words. It is not safe for
// concurrent use.
type Session struct {
	words      []string
	boundaries [][]int
	view       View
	opts       Options
	state      State
	index      int           // current word, -1 before the first one
	fails      int           // number of returns
	start      time.Time     // start of the exercise
	shownAt    time.Time     // time the current word was shown
	expected   time.Duration // display time of the current word
	visible    bool          // word on screen and subject to hiding
	duration   time.Duration // reading time, as of the last event
}

// New creates a session for words and their syllable boundaries.
func New(words []string, boundaries [][]int, view View, opts Options) (*Session, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	if len(boundaries) != len(words) {
		return nil, fmt.Errorf("%w: %d words, %d boundary lists", ErrMismatch, len(words), len(boundaries))
	}
	if opts.WordDuration <= 0 {
		opts.WordDuration = DefaultWordDuration
	}
	if opts.RuneDuration <= 0 {
		opts.RuneDuration = DefaultRuneDuration
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if view == nil {
		view = nopView{}
	}
	return &Session{
		words:      words,
		boundaries: boundaries,
		view:       view,
		opts:       opts,
		index:      -1,
	}, nil
}

// Start starts the clock of the exercise. Clients call Start after the
// countdown.
func (s *Session) Start() {
	s.start = s.opts.Clock()
	s.state = Ready
	s.view.Clear()
	s.view.Progress(0, len(s.words))
	tracer().Debugf("session started with %d words", len(s.words))
}

// State returns the state of s.
func (s *Session) State() State {
	return s.state
}

// Index returns the index of the current word, or -1 if no word has been
// shown yet.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of words of the exercise.
func (s *Session) Len() int {
	return len(s.words)
}

// Handle reacts to a key press and returns the new state. On the last word,
// every key but Abort finishes the exercise.
func (s *Session) Handle(k Key) State {
	if s.state == Finished || s.state == Aborted {
		return s.state
	}
	tracer().Debugf("key %v at word %d (%v)", k, s.index, s.state)
	switch {
	case k == Abort:
		s.state = Aborted
	case k == Finish || s.index+1 >= len(s.words):
		s.finish()
	case k == Next:
		s.next()
	case k == Previous:
		s.previous()
	case k == Pause:
		s.pause()
	}
	return s.state
}

// Tick hides the current word once its display time has elapsed. Clients
// call Tick periodically.
func (s *Session) Tick() State {
	if !s.visible {
		return s.state
	}
	now := s.opts.Clock()
	if now.Sub(s.shownAt) >= s.expected {
		s.view.Clear()
		s.view.Progress(s.index+1, len(s.words))
		s.visible = false
		s.duration = now.Sub(s.start)
		s.state = Hidden
	}
	return s.state
}

// DisplayTime returns the time a word stays on screen.
func (s *Session) DisplayTime(word string) time.Duration {
	d := time.Duration(utf8.RuneCountInString(word)) * s.opts.RuneDuration
	if d < s.opts.WordDuration {
		return s.opts.WordDuration
	}
	return d
}

func (s *Session) next() {
	s.play(CuePositive)
	s.index++
	s.show(false)
}

// previous steps back to the previous word. This counts as a return, even
// if the player cannot step back further.
func (s *Session) previous() {
	if s.index < 0 {
		return
	}
	s.play(CueNegative)
	if s.index > 0 && s.visible {
		s.index--
	}
	s.fails++
	s.show(false)
}

func (s *Session) pause() {
	if s.index < 0 {
		return
	}
	s.play(CuePause)
	s.view.ShowWord(s.words[s.index], s.boundaries[s.index], true)
	s.visible = false
	s.state = Paused
}

func (s *Session) show(paused bool) {
	now := s.opts.Clock()
	word := s.words[s.index]
	s.view.Clear()
	s.view.ShowWord(word, s.boundaries[s.index], paused)
	s.view.Progress(s.index+1, len(s.words))
	s.shownAt = now
	s.expected = s.DisplayTime(word)
	s.visible = true
	s.duration = now.Sub(s.start)
	s.state = Showing
}

func (s *Session) finish() {
	s.visible = false
	s.state = Finished
	s.play(CueResults)
	tracer().Infof("session finished: %v", s.Results())
}

func (s *Session) play(c Cue) {
	if s.opts.Sound != nil {
		s.opts.Sound.Play(c)
	}
}

type nopView struct{}

func (nopView) ShowWord(string, []int, bool) {}
func (nopView) Clear()                       {}
func (nopView) Progress(int, int)            {}
