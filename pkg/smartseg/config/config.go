// Package config loads the YAML configuration used by the commands and
// turns its analyzer section into a ready smartseg.Analyzer.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/smartseg/pkg/smartseg"
	"github.com/cognicore/smartseg/pkg/smartseg/internalerr"
	"github.com/cognicore/smartseg/pkg/smartseg/stopwords"
)

// Config is the full configuration file.
type Config struct {
	Analyzer Analyzer `yaml:"analyzer"`
	Indexer  Indexer  `yaml:"indexer"`
}

// Analyzer configures stopword handling. StopwordsPath, when set, names
// a line-oriented stopword file used verbatim instead of the bundled
// default list; CommentPrefix defaults to "//".
type Analyzer struct {
	UseDefaultStopwords bool   `yaml:"use_default_stopwords"`
	StopwordsPath       string `yaml:"stopwords_path"`
	CommentPrefix       string `yaml:"comment_prefix"`
}

// Indexer configures the doc-indexer command.
type Indexer struct {
	DBPath string   `yaml:"db_path"`
	Fields []string `yaml:"fields"`
}

// Default returns the configuration used when no file is given: default
// stopwords, title and body fields.
func Default() *Config {
	return &Config{
		Analyzer: Analyzer{UseDefaultStopwords: true},
		Indexer:  Indexer{Fields: []string{"title", "body"}},
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies defaults and rejects inconsistent settings.
func (c *Config) Validate() error {
	if c.Analyzer.CommentPrefix == "" {
		c.Analyzer.CommentPrefix = stopwords.DefaultCommentPrefix
	}
	if len(c.Indexer.Fields) == 0 {
		return fmt.Errorf("indexer.fields must not be empty: %w", internalerr.ErrInvalidConfig)
	}
	seen := make(map[string]struct{}, len(c.Indexer.Fields))
	for _, f := range c.Indexer.Fields {
		if f == "" {
			return fmt.Errorf("indexer.fields contains an empty name: %w", internalerr.ErrInvalidConfig)
		}
		if _, dup := seen[f]; dup {
			return fmt.Errorf("indexer.fields contains %q twice: %w", f, internalerr.ErrInvalidConfig)
		}
		seen[f] = struct{}{}
	}
	return nil
}

// BuildAnalyzer resolves the analyzer section. A stopword file, when
// configured, is loaded here and takes precedence over the default list.
func (c *Config) BuildAnalyzer() (*smartseg.Analyzer, error) {
	opts := smartseg.Options{UseDefaultStopwords: c.Analyzer.UseDefaultStopwords}

	if c.Analyzer.StopwordsPath != "" {
		f, err := os.Open(c.Analyzer.StopwordsPath)
		if err != nil {
			return nil, fmt.Errorf("open stopword file: %w", err)
		}
		defer f.Close()

		set, err := stopwords.Load(f, c.Analyzer.CommentPrefix)
		if err != nil {
			return nil, fmt.Errorf("load stopword file %s: %w", c.Analyzer.StopwordsPath, err)
		}
		opts.CustomStopwords = set
	}

	return smartseg.New(opts)
}
