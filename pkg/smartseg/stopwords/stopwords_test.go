package stopwords

import (
	"errors"
	"strings"
	"testing"

	"github.com/cognicore/smartseg/pkg/smartseg/internalerr"
)

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	resource := `// header comment
the

a
  of
// trailing comment
`
	set, err := Load(strings.NewReader(resource), "//")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if set.Len() != 3 {
		t.Errorf("Expected 3 words, got %d: %v", set.Len(), set.Words())
	}
	for _, w := range []string{"the", "a", "of"} {
		if !set.Contains(w) {
			t.Errorf("Set should contain %q", w)
		}
	}
	if set.Contains("// header comment") {
		t.Error("Comment lines should not become stopwords")
	}
}

func TestLoadCustomCommentPrefix(t *testing.T) {
	resource := "# comment\nword\n"
	set, err := Load(strings.NewReader(resource), "#")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if set.Len() != 1 || !set.Contains("word") {
		t.Errorf("Expected only 'word', got %v", set.Words())
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	_, err := Load(strings.NewReader("ok\n\xff\xfe\n"), "//")
	if err == nil {
		t.Fatal("Expected error for invalid UTF-8 resource")
	}
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestDefaultContainsPunctuation(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if set.Len() == 0 {
		t.Fatal("Default set should not be empty")
	}

	for _, p := range []string{",", ".", "!", "?", "，", "。", "、"} {
		if !set.Contains(p) {
			t.Errorf("Default set should contain %q", p)
		}
	}
	if set.Contains("the") {
		t.Error("Default set is punctuation only, should not contain 'the'")
	}
}

func TestNewUsedVerbatim(t *testing.T) {
	set := New([]string{"The", "the"})
	if !set.Contains("The") || !set.Contains("the") {
		t.Error("Caller-supplied words should be used verbatim, no normalization")
	}
	if set.Len() != 2 {
		t.Errorf("Expected 2 words, got %d", set.Len())
	}
}

func TestWordsSorted(t *testing.T) {
	set := New([]string{"b", "a", "c"})
	words := set.Words()
	want := []string{"a", "b", "c"}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("Words()[%d] = %q, want %q", i, words[i], w)
		}
	}
}
