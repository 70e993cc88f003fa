package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/api"
	"github.com/jackzampolin/chapterize/internal/document"
	"github.com/jackzampolin/chapterize/internal/toc"
)

var tocOutputFile string

var tocCmd = &cobra.Command{
	Use:   "toc <book.pdf>",
	Short: "Parse a PDF's built-in outline into a table of contents",
	Long: `Parse a PDF's built-in bookmarks into a hierarchical table of contents
and print it, without a server.

Documents without an outline get a single-chapter fallback spanning the
whole file. Save the result with -f, edit it, and feed it back to
"chapterize split --toc".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := document.Open(args[0])
		if err != nil {
			return err
		}
		defer doc.Close()

		tree := toc.ParseBuiltin(doc)
		if tree == nil {
			tree = toc.Fallback()
		}

		if tocOutputFile != "" {
			return api.OutputToFile(tree, tocOutputFile)
		}
		return api.Output(tree)
	},
}

func init() {
	tocCmd.Flags().StringVarP(&tocOutputFile, "file", "f", "", "Write the TOC to a file instead of stdout")

	rootCmd.AddCommand(tocCmd)
}
