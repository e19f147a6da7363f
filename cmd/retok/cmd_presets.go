package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nlpkit/retok"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in preset tokenizers",
		Run: func(cmd *cobra.Command, args []string) {
			presets := []struct {
				Name      string `json:"name"`
				Tokenizer string `json:"tokenizer"`
			}{
				{"whitespace", retok.Whitespace().String()},
				{"blanklines", retok.BlankLines().String()},
				{"wordpunct", retok.WordPunct().String()},
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				_ = json.NewEncoder(os.Stdout).Encode(presets)
				return
			}
			for _, p := range presets {
				fmt.Printf("%-12s %s\n", p.Name, p.Tokenizer)
			}
		},
	}
}
