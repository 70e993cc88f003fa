package document

import (
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// OutlineEntry is one flattened bookmark: its nesting level (1 = outermost),
// trimmed title, and 1-based target page (0 when the bookmark has no page).
type OutlineEntry struct {
	Level int
	Title string
	Page  int
}

// Outline returns the document's built-in bookmarks flattened to ordered
// (level, title, page) entries. A document without an outline yields nil.
func (d *Document) Outline() ([]OutlineEntry, error) {
	if _, err := d.f.Seek(0, 0); err != nil {
		return nil, err
	}

	bms, err := api.Bookmarks(d.f, nil)
	if err != nil {
		// pdfcpu reports a missing outline as an error; treat it as an
		// empty outline since the caller has a fallback path for that.
		return nil, nil
	}

	var entries []OutlineEntry
	flattenBookmarks(bms, 1, &entries)
	return entries, nil
}

func flattenBookmarks(bms []pdfcpu.Bookmark, level int, out *[]OutlineEntry) {
	for _, bm := range bms {
		*out = append(*out, OutlineEntry{
			Level: level,
			Title: strings.TrimSpace(bm.Title),
			Page:  bm.PageFrom,
		})
		if len(bm.Kids) > 0 {
			flattenBookmarks(bm.Kids, level+1, out)
		}
	}
}
