package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ledora/syllable/session"
)

const tick = 50 * time.Millisecond

// exercise counts down from count and then runs session s until it is
// finished or aborted. Keys other than Abort are dropped during the
// countdown. A closed key channel aborts.
func exercise(s *session.Session, scr *screen, sound session.Sound, keys <-chan session.Key,
	count int, step time.Duration) session.State {
	//
	for i := count; i > 0; i-- {
		scr.message(fmt.Sprintf("%d", i))
		sound.Play(session.CueCountdown)
		timer := time.NewTimer(step)
		select {
		case k, ok := <-keys:
			timer.Stop()
			if !ok || k == session.Abort {
				return session.Aborted
			}
		case <-timer.C:
		}
	}
	scr.message("")
	s.Start()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	st := s.State()
	for st != session.Finished && st != session.Aborted {
		select {
		case k, ok := <-keys:
			if !ok {
				k = session.Abort
			}
			st = s.Handle(k)
		case <-ticker.C:
			st = s.Tick()
		}
	}
	return st
}

func printResults(w io.Writer, r session.Results) {
	stars := strings.Repeat("★", r.Stars) + strings.Repeat("☆", 5-r.Stars)
	fmt.Fprintf(w, "%s\n\n", stars)
	fmt.Fprintf(w, "words      %d of %d\n", r.Words, r.Total)
	fmt.Fprintf(w, "syllables  %d\n", r.Syllables)
	fmt.Fprintf(w, "time       %v\n", r.Duration.Round(100*time.Millisecond))
	fmt.Fprintf(w, "pace       %d syllables per minute\n", r.Pace)
	fmt.Fprintf(w, "returns    %d\n", r.Returns)
}
