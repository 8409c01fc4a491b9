package main

import (
	"bytes"
	"io"

	"github.com/ledora/syllable/session"
)

const esc = 0x1b

// sequences maps terminal input to keys. Terminals differ in what they send
// for the end key.
var sequences = []struct {
	seq []byte
	key session.Key
}{
	{[]byte("\x1b[C"), session.Next},
	{[]byte("\x1bOC"), session.Next},
	{[]byte("\x1b[D"), session.Previous},
	{[]byte("\x1bOD"), session.Previous},
	{[]byte("\x1b[F"), session.Finish},
	{[]byte("\x1bOF"), session.Finish},
	{[]byte("\x1b[4~"), session.Finish},
	{[]byte("\x1b[8~"), session.Finish},
	{[]byte(" "), session.Pause},
	{[]byte("\r"), session.Next},
	{[]byte("q"), session.Abort},
	{[]byte{0x03}, session.Abort}, // ctrl-c, no signal in raw mode
}

// decode returns the keys in a chunk of terminal input. A lone escape
// aborts; other escape sequences and characters are skipped.
func decode(in []byte) []session.Key {
	var keys []session.Key
	for len(in) > 0 {
		n := 0
		for _, s := range sequences {
			if bytes.HasPrefix(in, s.seq) {
				keys = append(keys, s.key)
				n = len(s.seq)
				break
			}
		}
		if n > 0 {
			in = in[n:]
			continue
		}
		if in[0] == esc {
			if len(in) == 1 {
				return append(keys, session.Abort)
			}
			in = in[skipEscape(in):]
			continue
		}
		in = in[1:]
	}
	return keys
}

// skipEscape returns the length of an unknown escape sequence, up to and
// including its final byte.
func skipEscape(in []byte) int {
	if len(in) < 2 || (in[1] != '[' && in[1] != 'O') {
		return 1
	}
	for i := 2; i < len(in); i++ {
		if in[i] >= 0x40 && in[i] <= 0x7e {
			return i + 1
		}
	}
	return len(in)
}

// readKeys sends the keys read from r to keys until r fails. keys is closed
// on return.
func readKeys(r io.Reader, keys chan<- session.Key) {
	defer close(keys)
	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, k := range decode(buf[:n]) {
			keys <- k
		}
		if err != nil {
			return
		}
	}
}
