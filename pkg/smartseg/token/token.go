package token

import "io"

// Token is one normalized text unit emitted by the analysis chain.
// Start and End are byte offsets into the original field text; PosInc is
// the position distance from the previously emitted token. A Token is a
// value and never mutated after it has been emitted.
type Token struct {
	Text   string
	Start  int
	End    int
	PosInc int
}

// Stream is a pull-based, single-pass source of tokens. Next returns
// io.EOF when the input is exhausted; any other error is a stage failure
// and terminates the stream. A Stream is only restartable by resetting
// the pipeline that produced it.
type Stream interface {
	Next() (Token, error)
}

// Drain pulls the remainder of a stream into a slice. Intended for
// callers that want the eager form, and for tests.
func Drain(s Stream) ([]Token, error) {
	var tokens []Token
	for {
		t, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
}
