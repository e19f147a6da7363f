package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nlpkit/retok"
)

// tokenizerConfig is the schema of a --config file: a map of named
// tokenizer definitions.
//
//	tokenizers:
//	  csv:
//	    pattern: ',[ \t]*'
//	    mode: gap
//	    keep_empty: true
type tokenizerConfig struct {
	Tokenizers map[string]definition `yaml:"tokenizers"`
}

// definition is one named tokenizer. Mode defaults to "token"; absent match
// options default to enabled, which is why the fields are pointers.
type definition struct {
	Pattern      string        `yaml:"pattern"`
	Mode         string        `yaml:"mode"`
	KeepEmpty    bool          `yaml:"keep_empty"`
	MatchOptions *matchOptions `yaml:"match_options"`
}

type matchOptions struct {
	UnicodeClasses   *bool `yaml:"unicode_classes"`
	MultilineAnchors *bool `yaml:"multiline_anchors"`
	DotAll           *bool `yaml:"dot_all"`
}

func loadConfig(path string) (*tokenizerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg tokenizerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for name, def := range cfg.Tokenizers {
		if def.Pattern == "" {
			return nil, fmt.Errorf("tokenizer %q: pattern is required", name)
		}
		switch def.Mode {
		case "", "token", "gap":
		default:
			return nil, fmt.Errorf("tokenizer %q: unknown mode %q", name, def.Mode)
		}
	}
	return &cfg, nil
}

func (d definition) build() (*retok.Tokenizer, error) {
	opts := retok.DefaultMatchOptions()
	if mo := d.MatchOptions; mo != nil {
		if mo.UnicodeClasses != nil {
			opts.UnicodeClasses = *mo.UnicodeClasses
		}
		if mo.MultilineAnchors != nil {
			opts.MultilineAnchors = *mo.MultilineAnchors
		}
		if mo.DotAll != nil {
			opts.DotAll = *mo.DotAll
		}
	}
	options := []retok.Option{retok.WithMatchOptions(opts)}
	if d.Mode == "gap" {
		options = append(options, retok.Gaps())
	}
	if d.KeepEmpty {
		options = append(options, retok.KeepEmpty())
	}
	return retok.New(d.Pattern, options...)
}
