package smartseg

import "github.com/cognicore/smartseg/pkg/smartseg/token"

// Session caches one built pipeline per field, so that analyzing the
// next document for the same field reuses the existing stage chain via
// Reset instead of paying construction cost again.
//
// A Session is an explicit value, not hidden thread-local state: exactly
// one caller may use it at a time, and concurrent workers must each
// carry their own Session. Reused and freshly built pipelines produce
// byte-identical token sequences for the same analyzer and input; the
// cache is purely a cost optimization.
type Session struct {
	analyzer  *Analyzer
	pipelines map[string]*Pipeline
}

// NewSession creates an empty per-worker pipeline cache for the
// analyzer. The session starts empty; pipelines are built lazily on
// first use per field and live until the session is dropped.
func NewSession(a *Analyzer) *Session {
	return &Session{
		analyzer:  a,
		pipelines: make(map[string]*Pipeline),
	}
}

// Acquire returns a token stream over input for the named field. The
// field name is an opaque cache key. On the first call for a field the
// pipeline is built; on every later call the cached pipeline is reset in
// place. The returned stream is only valid until the next Acquire for
// the same field.
func (s *Session) Acquire(field, input string) (token.Stream, error) {
	if p, ok := s.pipelines[field]; ok {
		if err := p.Reset(input); err != nil {
			return nil, err
		}
		return p.Tokens(), nil
	}

	p, err := s.analyzer.BuildPipeline(input)
	if err != nil {
		return nil, err
	}
	s.pipelines[field] = p
	return p.Tokens(), nil
}
