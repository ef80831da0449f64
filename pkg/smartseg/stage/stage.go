// Package stage implements the transformation steps of the analysis
// chain: sentence segmentation, statistical word segmentation, stemming
// and stopword filtering. Stages are wired into a fixed-order chain once
// and re-pointed at new input via Reset, never reallocated.
package stage

import "github.com/cognicore/smartseg/pkg/smartseg/token"

// Stage is one transformation step in the analysis chain.
//
// Consume wires the stage to its upstream token source and returns the
// stage's own output stream; it is called exactly once, when the chain
// is built. The head stage receives a nil source and reads raw text
// instead.
//
// Reset points the stage at a new document and discards every piece of
// state buffered from the previous one. Only the head stage consumes the
// input text; downstream stages ignore it. Reset must be called before
// a stage is reused for another document; a stage never carries token
// data across a Reset.
type Stage interface {
	Consume(src token.Stream) token.Stream
	Reset(input string)
}
