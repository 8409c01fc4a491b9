/*
Package syllable computes syllable boundaries for the words of a reading
exercise.

Description

Reading exercises flash words on screen, one at a time, and paint every
syllable in an alternating color. To do so, the exercise needs the offsets
at which a word is to be split. Package syllable computes these offsets
from the hyphenation points of a word, as given by the hyphenation patterns
of the word's language.

Words may be compounds, joined by a hyphen, as in the Portuguese
"aproximaram-se". A compound is split at its hyphens into parts; every part
is hyphenated on its own, its hyphenation points are shifted into the
coordinates of the full word, and an additional boundary is placed right
after every hyphen:

   a-pro-xi-ma-ram-|se
   => [1 4 6 8 12]

Offsets count runes, not bytes, and denote a boundary immediately before
the rune at that offset. For a word of n runes every offset is in [1, n-1];
offsets are strictly increasing. A word made of hyphens only has no
boundaries.

Usage

   boundaries, err := syllable.Analyze(words, "pt_PT")

analyzes a list of words with the built-in hyphenation patterns. Clients
with patterns of their own create an Analyzer with a Provider of their
choice. Unknown locales are reported before any word is analyzed, with an
error wrapping ErrUnknownLocale.

Packages

Hyphenation is done in sub-package hyphen, which implements Liang's
algorithm on TeX pattern files. Sub-package hyphen/patterns is a registry
of built-in pattern files. Packages segment and wordlist read word lists,
package highlight splits words into colored spans, and package session
implements the game logic of a reading exercise.

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
package syllable

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
