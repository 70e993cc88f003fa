package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/api"
	"github.com/jackzampolin/chapterize/internal/archive"
	"github.com/jackzampolin/chapterize/internal/document"
	"github.com/jackzampolin/chapterize/internal/splitter"
	"github.com/jackzampolin/chapterize/internal/toc"
)

var (
	splitTocFile   string
	splitOutputDir string
	splitZip       bool
)

var splitCmd = &cobra.Command{
	Use:   "split <book.pdf>",
	Short: "Split a PDF into per-chapter files, without a server",
	Long: `Split a PDF book into a directory tree of sub-PDFs.

By default the TOC comes from the PDF's built-in bookmarks; pass --toc to
use an edited JSON file instead. Entries that cannot be extracted are
reported and skipped, never aborting the rest of the split.

Examples:
  chapterize split book.pdf                         # TOC from bookmarks
  chapterize split book.pdf --toc toc.json          # TOC from a file
  chapterize split book.pdf -d ./out --zip          # Archive the result`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		doc, err := document.Open(args[0])
		if err != nil {
			return err
		}
		defer doc.Close()

		var tree *toc.Tree
		if splitTocFile != "" {
			data, err := os.ReadFile(splitTocFile)
			if err != nil {
				return err
			}
			tree, err = toc.DecodeTree(data)
			if err != nil {
				return err
			}
		} else {
			tree = toc.ParseBuiltin(doc)
			if tree == nil {
				tree = toc.Fallback()
			}
		}

		report, err := splitter.New(doc, logger).Split(tree, splitOutputDir)
		if err != nil {
			return err
		}

		if splitZip {
			zipPath := report.Root + ".zip"
			if err := archive.Zip(report.Root, zipPath); err != nil {
				return err
			}
			logger.Info("archived output", "path", zipPath)
		}

		return api.Output(report)
	},
}

func init() {
	splitCmd.Flags().StringVar(&splitTocFile, "toc", "", "TOC JSON file (default: the PDF's bookmarks)")
	splitCmd.Flags().StringVarP(&splitOutputDir, "output-dir", "d", ".", "Directory to write the output tree under")
	splitCmd.Flags().BoolVar(&splitZip, "zip", false, "Zip the output tree after splitting")

	rootCmd.AddCommand(splitCmd)
}
