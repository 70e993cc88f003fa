package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/server/endpoints"
)

var serverURL string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Commands that call the running server",
	Long: `API commands call the running Chapterize server via HTTP.

These commands require a running server (chapterize serve).
Use --server to specify a custom server URL.

Examples:
  chapterize api health               # Check server health
  chapterize api upload book.pdf      # Upload a PDF
  chapterize api toc <doc-id>         # Fetch the parsed TOC
  chapterize api split <doc-id>       # Queue a split job`,
}

// getServerURL returns the server URL at runtime (after flag parsing).
func getServerURL() string {
	return serverURL
}

func init() {
	// Add --server flag to api command (persistent so all subcommands inherit it)
	apiCmd.PersistentFlags().StringVar(
		&serverURL, "server", "http://localhost:8080", "Server URL",
	)

	for _, ep := range endpoints.All() {
		if cmd := ep.Command(getServerURL); cmd != nil {
			apiCmd.AddCommand(cmd)
		}
	}

	rootCmd.AddCommand(apiCmd)
}
