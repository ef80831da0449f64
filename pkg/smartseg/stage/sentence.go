package stage

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/cognicore/smartseg/pkg/smartseg/internalerr"
	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

// SentenceSegmenter is the head stage: it cuts raw field text into
// sentence tokens on sentence-final punctuation and line breaks. Word
// segmentation downstream works one sentence at a time, so sentence
// tokens carry the byte offset of the sentence within the field text.
type SentenceSegmenter struct {
	input string
	pos   int
}

func NewSentenceSegmenter() *SentenceSegmenter {
	return &SentenceSegmenter{}
}

// Consume ignores src: the head stage reads raw text set via Reset.
func (s *SentenceSegmenter) Consume(_ token.Stream) token.Stream {
	return s
}

func (s *SentenceSegmenter) Reset(input string) {
	s.input = input
	s.pos = 0
}

func (s *SentenceSegmenter) Next() (token.Token, error) {
	// Skip whitespace between sentences.
	for s.pos < len(s.input) {
		r, size, err := s.decode()
		if err != nil {
			return token.Token{}, err
		}
		if !unicode.IsSpace(r) {
			break
		}
		s.pos += size
	}
	if s.pos >= len(s.input) {
		return token.Token{}, io.EOF
	}

	start := s.pos
	inBoundary := false
	for s.pos < len(s.input) {
		r, size, err := s.decode()
		if err != nil {
			return token.Token{}, err
		}
		if isSentenceEnd(r) {
			s.pos += size
			inBoundary = true
			continue
		}
		// First rune past a boundary run starts the next sentence.
		if inBoundary || r == '\n' || r == '\r' {
			break
		}
		s.pos += size
	}

	end := s.pos
	return token.Token{Text: s.input[start:end], Start: start, End: end, PosInc: 1}, nil
}

func (s *SentenceSegmenter) decode() (rune, int, error) {
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	if r == utf8.RuneError && size == 1 {
		return 0, 0, fmt.Errorf("invalid UTF-8 at byte %d: %w", s.pos, internalerr.ErrInvalidInput)
	}
	return r, size, nil
}

// isSentenceEnd reports whether r terminates a sentence. Covers ASCII,
// full-width and CJK sentence-final punctuation.
func isSentenceEnd(r rune) bool {
	switch r {
	case '.', '!', '?', ';', '。', '．', '！', '？', '；', '…':
		return true
	}
	return false
}
