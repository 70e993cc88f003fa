package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/api"
	"github.com/jackzampolin/chapterize/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "chapterize",
	Short: "Split PDF books into per-chapter files",
	Long: `Chapterize splits a PDF book into a directory tree of sub-PDFs,
one file per table-of-contents entry.

The TOC comes from the PDF's built-in bookmarks, a JSON file you provide,
or an LLM transcription of the book's printed TOC pages. Entries with
subtopics become directories; entries with a start page become files
spanning their resolved page range.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.chapterize/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "chapterize home directory (default: ~/.chapterize)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}
