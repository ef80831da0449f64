// Package smartseg analyzes raw field text for Chinese or mixed
// Chinese-English content: sentences are cut first, each sentence is
// segmented into words by a statistical model, Latin tokens are stemmed,
// and stopwords are filtered. The package's job is composing those
// stages into a pipeline and reusing built pipelines across documents;
// the linguistic work itself lives in the stage package.
package smartseg

import (
	"fmt"

	"github.com/go-ego/gse"

	"github.com/cognicore/smartseg/pkg/smartseg/stage"
	"github.com/cognicore/smartseg/pkg/smartseg/stopwords"
)

// Options configures an Analyzer.
//
// The two stopword fields are resolved once, at construction:
// CustomStopwords, when non-nil, is used verbatim and wins over
// UseDefaultStopwords. With UseDefaultStopwords the bundled punctuation
// list is loaded; a load failure is a configuration error returned from
// New. With neither, no filtering stage is inserted at all and
// punctuation passes through to the output.
type Options struct {
	UseDefaultStopwords bool
	CustomStopwords     *stopwords.Set
}

// Analyzer holds the immutable recipe for building analysis pipelines:
// the stopword set and the shared segmenter model. It is safe to share
// one Analyzer across workers; the pipelines it builds are not.
type Analyzer struct {
	stops *stopwords.Set // nil means no filtering stage
	seg   *gse.Segmenter
}

// New resolves the configuration and returns an Analyzer. The segmenter
// dictionary and, when requested, the default stopword resource are
// loaded here so that configuration problems surface at construction
// time rather than on the first document.
func New(opts Options) (*Analyzer, error) {
	var stops *stopwords.Set
	switch {
	case opts.CustomStopwords != nil:
		stops = opts.CustomStopwords
	case opts.UseDefaultStopwords:
		s, err := stopwords.Default()
		if err != nil {
			return nil, fmt.Errorf("default stopwords: %w", err)
		}
		stops = s
	}

	seg, err := stage.EmbeddedSegmenter()
	if err != nil {
		return nil, err
	}

	return &Analyzer{stops: stops, seg: seg}, nil
}

// Stopwords returns the resolved stopword set, or nil when filtering is
// disabled.
func (a *Analyzer) Stopwords() *stopwords.Set {
	return a.stops
}

// BuildPipeline allocates a fresh, fully initialized pipeline for the
// given input. Callers that process many documents should go through a
// Session instead, which reuses one pipeline per field via Reset.
func (a *Analyzer) BuildPipeline(input string) (*Pipeline, error) {
	p := &Pipeline{stages: a.newStages()}
	if err := p.build(input); err != nil {
		return nil, err
	}
	return p, nil
}

// newStages allocates the stage chain in its fixed order:
// sentence segmentation, word segmentation, stemming, then stopword
// filtering when a set is configured. The order never varies per
// document.
func (a *Analyzer) newStages() []stage.Stage {
	stages := []stage.Stage{
		stage.NewSentenceSegmenter(),
		stage.NewWordSegmenter(a.seg),
		stage.NewStemmer(),
	}
	if a.stops != nil {
		stages = append(stages, stage.NewStopFilter(a.stops))
	}
	return stages
}
