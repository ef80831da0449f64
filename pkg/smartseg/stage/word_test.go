package stage

import (
	"io"
	"strings"
	"testing"

	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

// sliceStream feeds a fixed token slice, for driving one stage in isolation.
type sliceStream struct {
	tokens []token.Token
	i      int
}

func (s *sliceStream) Next() (token.Token, error) {
	if s.i >= len(s.tokens) {
		return token.Token{}, io.EOF
	}
	t := s.tokens[s.i]
	s.i++
	return t, nil
}

func newWordStage(t *testing.T) *WordSegmenter {
	t.Helper()
	seg, err := EmbeddedSegmenter()
	if err != nil {
		t.Fatalf("EmbeddedSegmenter: %v", err)
	}
	return NewWordSegmenter(seg)
}

func wordsFor(t *testing.T, input string) []token.Token {
	t.Helper()
	s := NewSentenceSegmenter()
	w := newWordStage(t)
	out := w.Consume(s.Consume(nil))
	s.Reset(input)
	w.Reset(input)

	tokens, err := token.Drain(out)
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	return tokens
}

func TestWordSegmenterLatin(t *testing.T) {
	tokens := wordsFor(t, "The Quick Fox.")

	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}

	want := []string{"the", "quick", "fox", "."}
	if len(texts) != len(want) {
		t.Fatalf("Expected tokens %v, got %v", want, texts)
	}
	for i, w := range want {
		if texts[i] != w {
			t.Errorf("Token %d = %q, want %q", i, texts[i], w)
		}
	}
}

func TestWordSegmenterChinese(t *testing.T) {
	input := "我是中国人。"
	tokens := wordsFor(t, input)

	if len(tokens) < 2 {
		t.Fatalf("Expected the sentence to segment into multiple words, got %v", tokens)
	}

	// Segmentation must tile the sentence: offsets in bounds, text matching.
	for i, tok := range tokens {
		if tok.Start < 0 || tok.End > len(input) || tok.Start >= tok.End {
			t.Errorf("Token %d has bad offsets [%d,%d)", i, tok.Start, tok.End)
		}
		if input[tok.Start:tok.End] != tok.Text {
			t.Errorf("Token %d: offsets [%d,%d) cover %q, text is %q",
				i, tok.Start, tok.End, input[tok.Start:tok.End], tok.Text)
		}
	}
}

func TestWordSegmenterOffsetsAcrossSentences(t *testing.T) {
	input := "One. Two."
	tokens := wordsFor(t, input)

	for i, tok := range tokens {
		covered := input[tok.Start:tok.End]
		// Latin token text is lowercased, offsets still point at the original.
		if len(covered) != len(tok.Text) {
			t.Errorf("Token %d %q: offset span %q has different length", i, tok.Text, covered)
		}
	}

	last := tokens[len(tokens)-1]
	if last.End != len(input) {
		t.Errorf("Last token should end at %d, got %d", len(input), last.End)
	}
}

func TestWordSegmenterDropsWhitespace(t *testing.T) {
	tokens := wordsFor(t, "a  b")
	for _, tok := range tokens {
		if tok.Text == " " || tok.Text == "" {
			t.Errorf("Whitespace segment leaked into output: %q", tok.Text)
		}
	}
}

func TestWordSegmenterFoldsWidth(t *testing.T) {
	tokens := wordsFor(t, "ＡＢＣ")
	if len(tokens) == 0 {
		t.Fatal("Expected at least one token")
	}
	var joined string
	for _, tok := range tokens {
		joined += tok.Text
	}
	if joined != "abc" {
		t.Errorf("Full-width latin should fold and lowercase to %q, got %q", "abc", joined)
	}
}

func TestWordSegmenterWholeLatinWords(t *testing.T) {
	input := "Running quickly!"
	tokens := wordsFor(t, input)

	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}

	want := []string{"running", "quickly", "!"}
	if len(texts) != len(want) {
		t.Fatalf("Latin words must come out whole, not rune by rune: want %v, got %v", want, texts)
	}
	for i, w := range want {
		if texts[i] != w {
			t.Errorf("Token %d = %q, want %q", i, texts[i], w)
		}
	}

	// Coalesced words keep the offsets of the full original span.
	for i, tok := range tokens {
		covered := strings.ToLower(input[tok.Start:tok.End])
		if covered != tok.Text {
			t.Errorf("Token %d: offsets [%d,%d) cover %q, text is %q",
				i, tok.Start, tok.End, covered, tok.Text)
		}
	}
}

func TestWordSegmenterKeepsAlphaNumRunsTogether(t *testing.T) {
	tokens := wordsFor(t, "utf8 and gpt4")

	texts := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		texts[tok.Text] = true
	}
	for _, w := range []string{"utf8", "gpt4", "and"} {
		if !texts[w] {
			t.Errorf("Expected whole token %q in %v", w, tokens)
		}
	}
}

func TestWordSegmenterDoesNotMergeAcrossGaps(t *testing.T) {
	tokens := wordsFor(t, "one, two")

	for _, tok := range tokens {
		switch tok.Text {
		case "onetwo", "one,", ",two", "one,two":
			t.Errorf("Tokens merged across a gap: %q", tok.Text)
		}
	}
}

func TestWordSegmenterPositionIncrements(t *testing.T) {
	tokens := wordsFor(t, "one two three.")
	for i, tok := range tokens {
		if tok.PosInc != 1 {
			t.Errorf("Token %d PosInc = %d, want 1", i, tok.PosInc)
		}
	}
}
