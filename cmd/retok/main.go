package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "retok",
		Short: "Split text with a pattern-driven tokenizer",
		Long: `retok splits text using a single regular expression, either by
treating matches as the tokens or as the separators between them.

Text is read from the arguments, or from stdin when no argument is given.`,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newSplitCmd(),
		newSpansCmd(),
		newPresetsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the stderr logger used by all subcommands.
func newLogger(cmd *cobra.Command) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
				return
			}
			fmt.Printf("retok version %s\n", version)
		},
	}
}
