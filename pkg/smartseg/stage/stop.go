package stage

import (
	"github.com/cognicore/smartseg/pkg/smartseg/stopwords"
	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

// StopFilter drops tokens present in the stopword set. Dropped tokens do
// not add to the position increment of the token that follows them, so
// phrase positions are unaffected by how many stopwords sat in between.
type StopFilter struct {
	stops *stopwords.Set
	src   token.Stream
}

func NewStopFilter(stops *stopwords.Set) *StopFilter {
	return &StopFilter{stops: stops}
}

func (f *StopFilter) Consume(src token.Stream) token.Stream {
	f.src = src
	return f
}

// Reset is a no-op: the filter holds no per-document state.
func (f *StopFilter) Reset(_ string) {}

func (f *StopFilter) Next() (token.Token, error) {
	for {
		t, err := f.src.Next()
		if err != nil {
			return token.Token{}, err
		}
		if f.stops.Contains(t.Text) {
			continue
		}
		return t, nil
	}
}
