// Command ledora is a reading exercise for the terminal. It shows the
// words of a word list one after another, with their syllables in
// alternating colors, and rates the reading pace of the player.
//
// Keys: right arrow (or return) shows the next word, left arrow steps back,
// space pauses, end finishes the exercise and escape aborts it.
//
// With -analyze, ledora prints the syllable boundaries of the words given
// as arguments, or read from stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ledora/syllable"
	"github.com/ledora/syllable/highlight"
	"github.com/ledora/syllable/hyphen"
	"github.com/ledora/syllable/hyphen/patterns"
	"github.com/ledora/syllable/internal/config"
	"github.com/ledora/syllable/locale"
	"github.com/ledora/syllable/session"
	"github.com/ledora/syllable/wordlist"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

var (
	// Flags override the configuration.
	configPath = flag.String("config", "", "YAML configuration file")
	localeFlag = flag.String("locale", "", "Locale of the words, e.g. pt_PT")
	listFlag   = flag.String("list", "", "Built-in word list, e.g. PT1")
	fileFlag   = flag.String("file", "", "Text file to read the words from")
	noShuffle  = flag.Bool("ordered", false, "Keep the words in list order")
	analyze    = flag.Bool("analyze", false, "Print syllable boundaries and exit")
	lists      = flag.Bool("lists", false, "Print the built-in word lists and exit")
	traceLevel = flag.String("trace", "", "Trace level (error, info, debug)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [words...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ledora: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Trace.TraceLevel()
	if err != nil {
		return err
	}
	gtrace.CoreTracer.SetTraceLevel(level)

	if *lists {
		for _, l := range wordlist.Catalog {
			fmt.Println(l)
		}
		return nil
	}
	analyzer := syllable.NewAnalyzer(syllable.FromRegistry(registry(cfg.Hyphenation)))
	if *analyze {
		return printBoundaries(os.Stdout, analyzer, cfg)
	}
	words, loc, err := loadWords(cfg.Game)
	if err != nil {
		return err
	}
	boundaries, err := analyzer.AnalyzeParallel(words, loc, cfg.Hyphenation.Workers)
	if err != nil {
		return err
	}
	return play(words, boundaries, cfg.Game)
}

func applyFlags(cfg *config.Config) {
	if *localeFlag != "" {
		cfg.Game.Locale = *localeFlag
	}
	if *listFlag != "" {
		cfg.Game.List = *listFlag
		cfg.Game.File = ""
	}
	if *fileFlag != "" {
		cfg.Game.File = *fileFlag
	}
	if *noShuffle {
		cfg.Game.Shuffle = false
	}
	if *traceLevel != "" {
		cfg.Trace.Level = *traceLevel
	}
}

func registry(h config.HyphenationConfig) *patterns.Registry {
	opts := []hyphen.Option{hyphen.WithCacheSize(h.CacheSize)}
	if h.HasHyphenMins() {
		opts = append(opts, hyphen.WithHyphenMins(h.LeftHyphenMin, h.RightHyphenMin))
	}
	return patterns.New(opts...)
}

// trapSignals calls onSignal on SIGINT or SIGTERM until stop is called.
func trapSignals(onSignal func()) (stop func()) {
	signals := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer close(exited)
		select {
		case <-signals:
			onSignal()
		case <-done:
		}
	}()
	return func() {
		signal.Stop(signals)
		close(done)
		<-exited
	}
}

// resolveLocale picks the locale for the words: the configured one, that
// of a built-in list, or the one of the user's environment.
func resolveLocale(g config.GameConfig, list *wordlist.List) string {
	switch {
	case g.Locale != "":
		return g.Locale
	case list != nil:
		return list.Locale
	}
	return locale.FromEnvironment().Locale
}

func loadWords(g config.GameConfig) ([]string, string, error) {
	var words []string
	var list *wordlist.List
	if g.File != "" {
		w, err := wordlist.ReadFile(g.File)
		if err != nil {
			return nil, "", err
		}
		words = w
	} else {
		l, err := wordlist.Find(g.List)
		if err != nil {
			return nil, "", err
		}
		if words, err = l.Words(); err != nil {
			return nil, "", err
		}
		list = &l
	}
	if g.Shuffle {
		words = wordlist.Shuffle(words, rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return words, resolveLocale(g, list), nil
}

// printBoundaries prints one line per word, e.g.
//
//	atentamente: [1 4 6 9] (a·ten·ta·men·te)
func printBoundaries(w io.Writer, a *syllable.Analyzer, cfg *config.Config) error {
	var words []string
	if flag.NArg() > 0 {
		words = flag.Args()
	} else {
		var err error
		if words, err = wordlist.Read(os.Stdin); err != nil {
			return err
		}
	}
	loc := resolveLocale(cfg.Game, nil)
	boundaries, err := a.AnalyzeParallel(words, loc, cfg.Hyphenation.Workers)
	if err != nil {
		return err
	}
	for i, word := range words {
		fmt.Fprintf(w, "%s: %v (%s)\n", word, boundaries[i], highlight.Plain(word, boundaries[i], "·"))
	}
	return nil
}

func play(words []string, boundaries [][]int, g config.GameConfig) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the exercise needs a terminal; use -analyze for other input")
	}
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return err
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	restore := func() {
		fmt.Fprint(os.Stdout, showCursor+clearScreen+"\x1b[1;1H")
		term.Restore(fd, state)
	}
	stopSignals := trapSignals(func() {
		restore()
		os.Exit(1)
	})

	scr := newScreen(os.Stdout, width, height)
	fmt.Fprint(os.Stdout, hideCursor+clearScreen)
	s, err := session.New(words, boundaries, scr, session.Options{
		WordDuration: g.WordDuration,
		RuneDuration: g.RuneDuration,
		Sound:        bell{w: os.Stdout},
	})
	if err != nil {
		stopSignals()
		restore()
		return err
	}
	keys := make(chan session.Key)
	go readKeys(os.Stdin, keys)

	st := exercise(s, scr, bell{w: os.Stdout}, keys, g.Countdown, time.Second)
	stopSignals()
	restore()
	if st == session.Finished {
		printResults(os.Stdout, s.Results())
	}
	return nil
}
