// Package document wraps a paginated PDF behind the small surface the
// splitting engine needs: page count, outline access, and contiguous
// page-range extraction. Page numbers are 1-based and ranges inclusive.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// LoadError indicates the document could not be opened: missing file,
// corrupt data, or an empty document. It is fatal for any operation on
// the document; nothing downstream runs after one.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load document %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Document is an open PDF. It is exclusively owned by one operation at a
// time; the opener is responsible for calling Close.
type Document struct {
	path      string
	f         *os.File
	ctx       *model.Context
	pageCount int
}

// Open loads the PDF at path. Any failure is reported as a *LoadError.
func Open(path string) (*Document, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("not a PDF file")}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	pageCount, err := api.PageCount(f, nil)
	if err != nil {
		f.Close()
		return nil, &LoadError{Path: path, Err: err}
	}
	if pageCount < 1 {
		f.Close()
		return nil, &LoadError{Path: path, Err: fmt.Errorf("document has no pages")}
	}

	if _, err := f.Seek(0, 0); err != nil {
		f.Close()
		return nil, &LoadError{Path: path, Err: err}
	}
	ctx, err := api.ReadContext(f, nil)
	if err != nil {
		f.Close()
		return nil, &LoadError{Path: path, Err: err}
	}

	return &Document{path: path, f: f, ctx: ctx, pageCount: pageCount}, nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// Stem returns the filename without directory or extension.
func (d *Document) Stem() string {
	base := filepath.Base(d.path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int { return d.pageCount }

// ExtractRange writes pages [from, to] (1-based, inclusive) to a new
// standalone PDF at outPath.
func (d *Document) ExtractRange(from, to int, outPath string) error {
	if from < 1 || to < from || to > d.pageCount {
		return fmt.Errorf("invalid page range [%d, %d] for %d-page document", from, to, d.pageCount)
	}

	pages := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		pages = append(pages, p)
	}

	extracted, err := pdfcpu.ExtractPages(d.ctx, pages, false)
	if err != nil {
		return fmt.Errorf("failed to extract pages %d-%d: %w", from, to, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer out.Close()

	if err := api.WriteContext(extracted, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}
