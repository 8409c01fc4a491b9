package hyphen

import (
	"context"
	"strings"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/unicode/norm"
)

// scratch holds the working memory for composing a single word.
type scratch struct {
	nfc   strings.Builder
	index []int // rune index in the NFC form -> rune index in the input
}

// compose returns the NFC form of word. Afterwards s.index maps every rune
// offset of the NFC form, including its length, to a rune offset of word.
func (s *scratch) compose(word string) string {
	s.nfc.Reset()
	s.index = s.index[:0]
	pos := 0
	for len(word) > 0 {
		i := norm.NFC.NextBoundaryInString(word, true)
		if i <= 0 {
			i = len(word)
		}
		seg := word[:i]
		for range norm.NFC.String(seg) {
			s.index = append(s.index, pos)
		}
		s.nfc.WriteString(norm.NFC.String(seg))
		pos += utf8.RuneCountInString(seg)
		word = word[i:]
	}
	s.index = append(s.index, pos)
	return s.nfc.String()
}

// Words which are not in NFC need a scratch buffer. Lookups come in bursts
// (a whole word list at once).
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &scratch{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

func borrowScratch() *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		tracer().Debugf("scratch pool: %v", err)
		return &scratch{}
	}
	return o.(*scratch)
}

func (s *scratch) release() {
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, s)
}
