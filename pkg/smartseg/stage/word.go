package stage

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-ego/gse"
	"golang.org/x/text/width"

	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

// The embedded dictionary is large and read-only at analysis time, so
// one copy is shared by every analyzer in the process.
var loadEmbedded = sync.OnceValues(func() (*gse.Segmenter, error) {
	var seg gse.Segmenter
	seg.AlphaNum = true
	if err := seg.LoadDictEmbed("zh"); err != nil {
		return nil, fmt.Errorf("load embedded segmenter dictionary: %w", err)
	}
	return &seg, nil
})

// EmbeddedSegmenter returns the shared statistical segmenter backed by
// the embedded Chinese dictionary.
func EmbeddedSegmenter() (*gse.Segmenter, error) {
	return loadEmbedded()
}

// WordSegmenter breaks each sentence into words using a statistical
// segmenter. Emitted tokens are width-folded and lowercased, and carry
// byte offsets into the original field text. Whitespace segments are
// dropped; punctuation passes through as tokens for the stop filter to
// deal with.
type WordSegmenter struct {
	seg *gse.Segmenter
	src token.Stream

	// words pending from the sentence currently being consumed
	buf  []token.Token
	next int
}

func NewWordSegmenter(seg *gse.Segmenter) *WordSegmenter {
	return &WordSegmenter{seg: seg}
}

func (w *WordSegmenter) Consume(src token.Stream) token.Stream {
	w.src = src
	return w
}

func (w *WordSegmenter) Reset(_ string) {
	w.buf = w.buf[:0]
	w.next = 0
}

func (w *WordSegmenter) Next() (token.Token, error) {
	for w.next >= len(w.buf) {
		sentence, err := w.src.Next()
		if err != nil {
			return token.Token{}, err
		}
		w.segment(sentence)
	}
	t := w.buf[w.next]
	w.next++
	return t, nil
}

func (w *WordSegmenter) segment(sentence token.Token) {
	w.buf = w.buf[:0]
	w.next = 0

	// The offset-bearing Segment call hands back Basic Latin one rune
	// per segment, so byte-adjacent alphanumeric segments are coalesced
	// into whole words before they go downstream.
	var run *token.Token
	flush := func() {
		if run != nil {
			w.buf = append(w.buf, *run)
			run = nil
		}
	}

	for _, s := range w.seg.Segment([]byte(sentence.Text)) {
		text := s.Token().Text()
		if strings.TrimSpace(text) == "" {
			flush()
			continue
		}
		start := sentence.Start + s.Start()
		end := sentence.Start + s.End()
		text = strings.ToLower(width.Fold.String(text))

		if isAlphaNum(text) {
			if run != nil && run.End == start {
				run.Text += text
				run.End = end
				continue
			}
			flush()
			run = &token.Token{Text: text, Start: start, End: end, PosInc: 1}
			continue
		}

		flush()
		w.buf = append(w.buf, token.Token{Text: text, Start: start, End: end, PosInc: 1})
	}
	flush()
}

// isAlphaNum reports whether s is entirely ASCII letters or digits
// (checked after width folding and lowercasing).
func isAlphaNum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}
