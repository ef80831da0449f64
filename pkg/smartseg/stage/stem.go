package stage

import (
	snowballeng "github.com/kljensen/snowball/english"

	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

// Stemmer reduces Latin-script tokens to their stems. Tokens containing
// anything other than ASCII letters pass through untouched, so segmented
// CJK words and mixed tokens like "gpt-4" are never mangled. Stemming
// changes token text only, never offsets.
type Stemmer struct {
	src token.Stream
}

func NewStemmer() *Stemmer {
	return &Stemmer{}
}

func (s *Stemmer) Consume(src token.Stream) token.Stream {
	s.src = src
	return s
}

// Reset is a no-op: the stemmer holds no per-document state.
func (s *Stemmer) Reset(_ string) {}

func (s *Stemmer) Next() (token.Token, error) {
	t, err := s.src.Next()
	if err != nil {
		return token.Token{}, err
	}
	if isASCIILetters(t.Text) {
		t.Text = snowballeng.Stem(t.Text, false)
	}
	return t, nil
}

func isASCIILetters(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
