// Package splitter resolves page ranges for every node of a TOC tree and
// materializes each page-bearing node as a standalone PDF, mirroring the
// tree as nested directories.
package splitter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jackzampolin/chapterize/internal/toc"
)

// Source is the document surface the engine needs: a page count and the
// ability to materialize a contiguous 1-based inclusive page range.
// *document.Document satisfies it.
type Source interface {
	Path() string
	Stem() string
	PageCount() int
	ExtractRange(from, to int, outPath string) error
}

// maxDepth bounds the tree walk so malformed or hostile TOC input cannot
// grow the call stack without limit. Subtrees past the bound are skipped
// and reported, never a crash.
const maxDepth = 32

// StructureError indicates the TOC tree has no nodes at all. It is fatal:
// nothing is written. Callers should substitute toc.Fallback() before
// splitting a document without an outline.
type StructureError struct {
	Reason string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("invalid TOC structure: %s", e.Reason)
}

// Emitted records one written sub-document and its resolved page range.
type Emitted struct {
	Path  string `json:"path"`
	Num   string `json:"number"`
	Start int    `json:"start_page"`
	End   int    `json:"end_page"`
}

// Skip records a node that could not be materialized. Skips are warnings:
// the walk continues with siblings and the rest of the tree.
type Skip struct {
	Num    string `json:"number"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// Report summarizes one split operation.
type Report struct {
	Root    string    `json:"root"`
	Files   []Emitted `json:"files"`
	Dirs    int       `json:"dirs"`
	Skipped []Skip    `json:"skipped,omitempty"`
}

// Splitter walks a TOC tree over one open document. The walk is strictly
// sequential: each sibling's end page depends on the next sibling's start
// page, so nodes are resolved in TOC order.
type Splitter struct {
	doc    Source
	logger *slog.Logger
}

// New creates a Splitter for doc. The document handle is borrowed for the
// duration of Split calls and never retained past them.
func New(doc Source, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{doc: doc, logger: logger}
}

// Split writes one PDF per page-bearing node and one directory per node
// with subtopics under outputRoot/<document stem>/. Individual node
// failures are collected in the report; only an empty tree or an unwritable
// output root fails the whole operation, in which case nothing is written.
func (s *Splitter) Split(tree *toc.Tree, outputRoot string) (*Report, error) {
	if tree.IsEmpty() {
		return nil, &StructureError{Reason: "tree has no nodes"}
	}

	root := filepath.Join(outputRoot, SafeName(s.doc.Stem()))
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output root: %w", err)
	}

	rep := &Report{Root: root}
	s.walk(tree.Chapters, root, 0, 1, rep)

	s.logger.Info("split complete",
		"document", s.doc.Path(),
		"files", len(rep.Files),
		"dirs", rep.Dirs,
		"skipped", len(rep.Skipped))
	return rep, nil
}

// walk resolves and emits one sibling sequence. parentEnd is the exclusive
// boundary inherited from the parent (0 when unbounded): the last sibling
// ends at parentEnd-1, or at the document's last page when unbounded.
func (s *Splitter) walk(nodes []*toc.Node, parentDir string, parentEnd, depth int, rep *Report) {
	if depth > maxDepth {
		s.skipSubtree(nodes, "max tree depth exceeded", rep)
		return
	}

	pageCount := s.doc.PageCount()

	for i, node := range nodes {
		var end int
		switch {
		case i < len(nodes)-1:
			if next := nodes[i+1]; next.Page > 0 {
				end = next.Page - 1
			} else {
				// A page-less sibling stands in for the document end, so the
				// same minus-one boundary applies.
				end = pageCount - 1
			}
		case parentEnd > 0:
			end = parentEnd - 1
		default:
			end = pageCount
		}

		start := node.Page
		if start == 0 {
			start = 1
		}
		// Out-of-order sibling pages can produce an inverted range; clamp
		// so every emitted file has at least one page rather than failing.
		if end < start {
			s.logger.Debug("clamping inverted range",
				"number", node.Number, "title", node.Title,
				"start", start, "end", end)
			end = start
		}

		safe := SafeName(node.Number + "_" + node.Title)
		nodeDir := parentDir
		if len(node.Subtopics) > 0 {
			nodeDir = filepath.Join(parentDir, safe)
			if err := os.MkdirAll(nodeDir, 0o755); err != nil {
				s.logger.Warn("failed to create node directory",
					"dir", nodeDir, "error", err)
				rep.Skipped = append(rep.Skipped, Skip{
					Num: node.Number, Title: node.Title,
					Reason: fmt.Sprintf("mkdir failed: %v", err),
				})
				s.skipSubtree(node.Subtopics, "parent directory unavailable", rep)
				continue
			}
			rep.Dirs++
		}

		if node.Page > 0 {
			s.emit(node, nodeDir, safe, start, end, pageCount, rep)
		}

		if len(node.Subtopics) > 0 {
			s.walk(node.Subtopics, nodeDir, end, depth+1, rep)
		}
	}
}

// emit extracts pages [start, end] for one node, capping at the document's
// last page. A failure is recorded and the walk moves on.
func (s *Splitter) emit(node *toc.Node, dir, safe string, start, end, pageCount int, rep *Report) {
	if start > pageCount {
		rep.Skipped = append(rep.Skipped, Skip{
			Num: node.Number, Title: node.Title,
			Reason: fmt.Sprintf("start page %d beyond document end %d", start, pageCount),
		})
		return
	}
	if end > pageCount {
		end = pageCount
	}

	outFile := filepath.Join(dir, safe+".pdf")
	if err := s.doc.ExtractRange(start, end, outFile); err != nil {
		s.logger.Warn("failed to extract node",
			"number", node.Number, "title", node.Title,
			"start", start, "end", end, "error", err)
		rep.Skipped = append(rep.Skipped, Skip{
			Num: node.Number, Title: node.Title,
			Reason: fmt.Sprintf("extraction failed: %v", err),
		})
		return
	}

	s.logger.Debug("emitted node", "path", outFile, "start", start, "end", end)
	rep.Files = append(rep.Files, Emitted{
		Path: outFile, Num: node.Number, Start: start, End: end,
	})
}

// skipSubtree records every page-bearing node under nodes as skipped.
// Iterative so a hostile tree depth cannot grow the call stack.
func (s *Splitter) skipSubtree(nodes []*toc.Node, reason string, rep *Report) {
	stack := make([]*toc.Node, len(nodes))
	for i, node := range nodes {
		stack[len(nodes)-1-i] = node
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.Page > 0 {
			rep.Skipped = append(rep.Skipped, Skip{
				Num: node.Number, Title: node.Title, Reason: reason,
			})
		}
		for i := len(node.Subtopics) - 1; i >= 0; i-- {
			stack = append(stack, node.Subtopics[i])
		}
	}
}
