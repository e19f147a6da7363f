package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nlpkit/retok"
)

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Tokenize text and print one token per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := tokenizerFromFlags(cmd)
			if err != nil {
				return err
			}
			text, err := readText(args)
			if err != nil {
				return err
			}
			tokens := tok.Tokenize(text)
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(os.Stdout).Encode(tokens)
			}
			printTokens(os.Stdout, tokens)
			return nil
		},
	}
	addTokenizerFlags(cmd)
	return cmd
}

// addTokenizerFlags registers the flags shared by split and spans.
func addTokenizerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("pattern", "p", "", "Tokenizer pattern")
	cmd.Flags().Bool("gaps", false, "Treat pattern matches as separators")
	cmd.Flags().Bool("keep-empty", false, "Keep zero-length tokens in gap mode")
	cmd.Flags().Bool("ascii-classes", false, "Keep \\w, \\d and \\s ASCII-only")
	cmd.Flags().Bool("no-multiline", false, "Anchors match only at text boundaries")
	cmd.Flags().Bool("no-dotall", false, "Dot does not match newline")
	cmd.Flags().String("preset", "", "Preset tokenizer (whitespace|blanklines|wordpunct)")
	cmd.Flags().String("config", "", "YAML file with named tokenizer definitions")
	cmd.Flags().String("name", "", "Tokenizer name from --config")
}

// tokenizerFromFlags builds the tokenizer a subcommand should run, from a
// config file entry, a preset name, or an inline pattern, in that order.
func tokenizerFromFlags(cmd *cobra.Command) (*retok.Tokenizer, error) {
	log := newLogger(cmd)

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			return nil, fmt.Errorf("--config requires --name")
		}
		cfg, err := loadConfig(path)
		if err != nil {
			return nil, err
		}
		def, ok := cfg.Tokenizers[name]
		if !ok {
			return nil, fmt.Errorf("tokenizer %q not defined in %s", name, path)
		}
		log.Debug("using configured tokenizer", "name", name, "pattern", def.Pattern)
		return def.build()
	}

	if preset, _ := cmd.Flags().GetString("preset"); preset != "" {
		log.Debug("using preset tokenizer", "preset", preset)
		switch preset {
		case "whitespace":
			return retok.Whitespace(), nil
		case "blanklines":
			return retok.BlankLines(), nil
		case "wordpunct":
			return retok.WordPunct(), nil
		default:
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	}

	pattern, _ := cmd.Flags().GetString("pattern")
	if pattern == "" {
		return nil, fmt.Errorf("one of --pattern, --preset or --config/--name is required")
	}

	opts := retok.DefaultMatchOptions()
	if ascii, _ := cmd.Flags().GetBool("ascii-classes"); ascii {
		opts.UnicodeClasses = false
	}
	if noML, _ := cmd.Flags().GetBool("no-multiline"); noML {
		opts.MultilineAnchors = false
	}
	if noDA, _ := cmd.Flags().GetBool("no-dotall"); noDA {
		opts.DotAll = false
	}
	options := []retok.Option{retok.WithMatchOptions(opts)}
	if gaps, _ := cmd.Flags().GetBool("gaps"); gaps {
		options = append(options, retok.Gaps())
	}
	if keep, _ := cmd.Flags().GetBool("keep-empty"); keep {
		options = append(options, retok.KeepEmpty())
	}

	tok, err := retok.New(pattern, options...)
	if err != nil {
		return nil, err
	}
	log.Debug("compiled tokenizer", "tokenizer", tok.String())
	return tok, nil
}

// readText joins the arguments, or reads stdin when there are none.
func readText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printTokens(f *os.File, tokens []string) {
	if isatty.IsTerminal(f.Fd()) {
		tokenColor := color.New(color.FgCyan).SprintFunc()
		for i, tok := range tokens {
			fmt.Fprintf(f, "%d\t%s\n", i, tokenColor(tok))
		}
		return
	}
	for _, tok := range tokens {
		fmt.Fprintln(f, tok)
	}
}
