package session

import (
	"fmt"
	"time"
)

// Results summarize a session.
type Results struct {
	Words     int           // number of words shown
	Total     int           // number of words of the exercise
	Syllables int           // syllables of the words shown
	Duration  time.Duration // reading time
	Pace      int           // syllables per minute
	Returns   int           // number of steps back
	Stars     int           // rating, 1 to 5
}

// Results computes the results of s, as of its last event.
func (s *Session) Results() Results {
	r := Results{
		Words:    s.index + 1,
		Total:    len(s.words),
		Duration: s.duration,
		Returns:  s.fails,
	}
	for i := 0; i <= s.index; i++ {
		r.Syllables += len(s.boundaries[i]) + 1
	}
	if secs := s.duration.Seconds(); secs > 0 {
		r.Pace = int(float64(r.Syllables) / secs * 60)
	}
	r.Stars = Stars(s.fails, len(s.words), s.duration)
	return r
}

// Stars rates an exercise of n words. A perfect run earns five stars; one
// star each is lost for any return, for returns on more than 30% of the
// words, for taking more than a second per word, and for taking more than
// two seconds per word.
func Stars(returns, n int, d time.Duration) int {
	stars := 5
	if returns > 0 {
		stars--
	}
	if float64(returns) > 0.3*float64(n) {
		stars--
	}
	if d > time.Duration(n)*time.Second {
		stars--
	}
	if d > time.Duration(n)*2*time.Second {
		stars--
	}
	return stars
}

func (r Results) String() string {
	return fmt.Sprintf("%d/%d words, %d syllables, %d syllables/minute, %d returns, %d stars in %v",
		r.Words, r.Total, r.Syllables, r.Pace, r.Returns, r.Stars, r.Duration.Round(time.Millisecond))
}
