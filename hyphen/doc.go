/*
Package hyphen finds hyphenation points in words, using Frank M. Liang's
algorithm and TeX-style pattern files.

Patterns

A pattern file lists short letter sequences interleaved with digits, as in

   \patterns{ .an3te 1b2l 4ab. }

The digits are priorities for the gaps between letters: an odd value
allows a break, an even value inhibits it, and the highest value seen for a
gap wins. A '.' anchors a pattern at the start or end of a word. An optional
\hyphenation{ … } block lists words with explicit hyphens, which override
whatever the patterns would yield.

Pattern matching is done by package github.com/speedata/hyphenation.
Clients load patterns with ParsePatterns and wrap the result in a
Dictionary:

   pats, err := hyphen.ParsePatterns(file)
   dict := hyphen.NewDictionary(pats, hyphen.WithHyphenMins(2, 3))
   dict.Positions("hyphenation")  // => [2 6]

Offsets count runes (not bytes) and denote a break immediately before the
rune at that index. Words in decomposed form (NFD) are composed before the
lookup, offsets still refer to the runes of the word as given. A Dictionary never reports a break closer than the
left hyphenmin to the start of a word, or closer than the right hyphenmin
to its end.

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
package hyphen

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
