// Package stopwords holds the immutable stopword set used by the
// analysis chain's filtering stage, and the line-oriented loader that
// produces one from a resource file.
package stopwords

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/cognicore/smartseg/pkg/smartseg/internalerr"
)

// DefaultCommentPrefix marks comment lines in the bundled resource format.
const DefaultCommentPrefix = "//"

//go:embed default.txt
var defaultResource string

// Set is an immutable membership set of normalized token texts.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words, used verbatim.
func New(words []string) *Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return &Set{words: m}
}

// Contains reports whether text is a stopword.
func (s *Set) Contains(text string) bool {
	_, ok := s.words[text]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns the set contents in sorted order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Load reads a line-oriented stopword resource. Leading and trailing
// whitespace is trimmed, blank lines are skipped, and lines starting with
// commentPrefix (after trimming) are ignored. Invalid UTF-8 anywhere in
// the resource is a configuration error.
func Load(r io.Reader, commentPrefix string) (*Set, error) {
	words := make(map[string]struct{})
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if commentPrefix != "" && strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("stopword resource line %d is not valid UTF-8: %w", lineNo, internalerr.ErrInvalidConfig)
		}
		words[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopword resource: %w", err)
	}
	return &Set{words: words}, nil
}

// Default loads the bundled default stopword resource. The default list
// is punctuation only; without it no punctuation is removed from the
// token stream. A malformed or empty bundled resource is a packaging
// defect and surfaces as a configuration error.
func Default() (*Set, error) {
	set, err := Load(strings.NewReader(defaultResource), DefaultCommentPrefix)
	if err != nil {
		return nil, err
	}
	if set.Len() == 0 {
		return nil, fmt.Errorf("bundled stopword resource is empty: %w", internalerr.ErrInvalidConfig)
	}
	return set, nil
}
