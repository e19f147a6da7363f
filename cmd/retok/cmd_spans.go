package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type spanOut struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func newSpansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spans [text]",
		Short: "Print token boundaries as start/end byte offsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := tokenizerFromFlags(cmd)
			if err != nil {
				return err
			}
			text, err := readText(args)
			if err != nil {
				return err
			}
			var spans []spanOut
			for s := range tok.SpanTokenize(text) {
				spans = append(spans, spanOut{Start: s.Start, End: s.End, Text: s.Slice(text)})
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(os.Stdout).Encode(spans)
			}
			printSpans(os.Stdout, spans)
			return nil
		},
	}
	addTokenizerFlags(cmd)
	return cmd
}

func printSpans(f *os.File, spans []spanOut) {
	offsetColor := fmt.Sprintf
	if isatty.IsTerminal(f.Fd()) {
		offsetColor = color.New(color.FgYellow).SprintfFunc()
	}
	for _, s := range spans {
		fmt.Fprintf(f, "%s\t%s\n", offsetColor("%d:%d", s.Start, s.End), s.Text)
	}
}
