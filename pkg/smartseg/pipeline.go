package smartseg

import (
	"github.com/cognicore/smartseg/pkg/smartseg/internalerr"
	"github.com/cognicore/smartseg/pkg/smartseg/stage"
	"github.com/cognicore/smartseg/pkg/smartseg/token"
)

// Pipeline owns an ordered stage chain and presents it as a single
// token stream. Build happens once, inside Analyzer.BuildPipeline; after
// that the pipeline is re-pointed at new input with Reset, which
// reinitializes every stage in place without reallocating or re-linking
// anything. Stages can hold large model references, which is exactly why
// reuse goes through Reset instead of a rebuild.
//
// A Pipeline is not safe for concurrent use.
type Pipeline struct {
	stages []stage.Stage
	out    token.Stream
}

// build wires stage n's output into stage n+1 and points the chain at
// input. Calling build on an already built pipeline is a protocol
// violation: a fresh chain must come from Analyzer.BuildPipeline.
func (p *Pipeline) build(input string) error {
	if p.out != nil {
		return internalerr.ErrAlreadyBuilt
	}
	var src token.Stream
	for _, st := range p.stages {
		src = st.Consume(src)
	}
	p.out = src
	p.resetStages(input)
	return nil
}

// Reset reinitializes the existing stages for a new document, in chain
// order. Every stage discards whatever it buffered from the previous
// document; nothing is reallocated. Reset must be called before each
// reuse — a pipeline is never assumed to be clean just because its
// previous stream was fully consumed.
func (p *Pipeline) Reset(input string) error {
	if p.out == nil {
		return internalerr.ErrNotBuilt
	}
	p.resetStages(input)
	return nil
}

func (p *Pipeline) resetStages(input string) {
	for _, st := range p.stages {
		st.Reset(input)
	}
}

// Tokens returns the terminal stage's output stream: a lazy, finite,
// single-pass token sequence. It is only restartable via Reset, not
// mid-sequence.
func (p *Pipeline) Tokens() token.Stream {
	return p.out
}
