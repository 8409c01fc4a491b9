package hyphen

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/speedata/hyphenation"
	"golang.org/x/text/unicode/norm"
)

type parseMode int

const (
	inPatterns parseMode = iota
	inExceptions
)

// ParsePatterns reads a TeX hyphenation file. It understands
//
//   - comments, starting with '%' and extending to the end of the line,
//   - a \patterns{ … } block of Liang patterns,
//   - a \hyphenation{ … } block of exception words,
//   - bare pattern tokens outside of any block.
//
// Other TeX macros are skipped. Errors wrap ErrPatternSyntax and carry the
// line number.
//
// Patterns are NFC-normalized and handed to package hyphenation, one per
// line; exception words stay with the pattern set.
func ParsePatterns(r io.Reader) (*Patterns, error) {
	p := NewPatterns()
	var pats bytes.Buffer
	scanner := bufio.NewScanner(r)
	mode := inPatterns
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Fields(line) {
			switch {
			case strings.HasPrefix(tok, `\patterns`):
				mode = inPatterns
				tok = strings.TrimPrefix(tok, `\patterns`)
			case strings.HasPrefix(tok, `\hyphenation`):
				mode = inExceptions
				tok = strings.TrimPrefix(tok, `\hyphenation`)
			case strings.HasPrefix(tok, `\`):
				continue
			}
			tok = strings.TrimPrefix(tok, "{")
			closing := strings.HasSuffix(tok, "}")
			tok = strings.TrimSuffix(tok, "}")
			if tok != "" {
				var err error
				if mode == inExceptions {
					err = p.AddException(tok)
				} else if err = checkPattern(tok); err == nil {
					pats.WriteString(norm.NFC.String(tok))
					pats.WriteByte('\n')
					p.count++
				}
				if err != nil {
					tracer().Errorf("pattern file, line %d: %v", lineno, err)
					return nil, fmt.Errorf("line %d: %w", lineno, err)
				}
			}
			if closing {
				mode = inPatterns
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if p.count > 0 {
		lang, err := hyphenation.New(&pats)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPatternSyntax, err)
		}
		// hyphenmins are applied by Dictionary
		lang.Leftmin, lang.Rightmin = 1, 1
		p.lang = lang
	}
	tracer().Debugf("read %d patterns and %d exceptions", p.Len(), p.Exceptions())
	return p, nil
}
