// Package toc models a hierarchical table of contents and builds one from
// a document's built-in bookmarks.
package toc

// Node is one TOC entry: a chapter, section, or sub-section.
type Node struct {
	// Title is the entry's display title, whitespace-trimmed.
	Title string `json:"title"`

	// Number is the dotted decimal number ("1", "1.1", "2"), synthesized
	// from sibling order when the source has none. Unique only among
	// siblings by construction order.
	Number string `json:"number"`

	// Page is the 1-based page the entry starts on. Zero means the entry
	// has no content of its own and only groups its subtopics.
	Page int `json:"page,omitempty"`

	// Subtopics are the entry's children, in source order. Order is
	// semantically meaningful: it drives page-range resolution.
	Subtopics []*Node `json:"subtopics"`
}

// Tree is an ordered sequence of root-level nodes.
type Tree struct {
	Chapters []*Node `json:"chapters"`
}

// IsEmpty reports whether the tree has no nodes at all.
func (t *Tree) IsEmpty() bool {
	return t == nil || len(t.Chapters) == 0
}

// Fallback returns the single-chapter tree used when a document has no
// built-in outline: one node spanning the whole document.
func Fallback() *Tree {
	return &Tree{
		Chapters: []*Node{
			{Title: "Document", Number: "1", Page: 1, Subtopics: []*Node{}},
		},
	}
}
