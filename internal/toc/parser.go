package toc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jackzampolin/chapterize/internal/document"
)

// ParseOutline converts a flat, level-tagged outline into a Tree.
//
// Numbers are synthesized from per-depth counters: entering a level
// increments its counter and discards counters for all deeper levels, so
// numbering restarts whenever the parent context changes. The node attaches
// under the nearest open ancestor with a strictly shallower level; an entry
// that jumps levels (1 straight to 3) attaches to whatever ancestor remains,
// which is accepted as-is rather than renormalized.
func ParseOutline(entries []document.OutlineEntry) *Tree {
	tree := &Tree{Chapters: []*Node{}}

	type frame struct {
		level int
		node  *Node
	}
	var stack []frame
	counters := map[int]int{}

	for _, entry := range entries {
		if entry.Level < 1 {
			continue
		}

		counters[entry.Level]++
		for depth := range counters {
			if depth > entry.Level {
				delete(counters, depth)
			}
		}

		node := &Node{
			Title:     strings.TrimSpace(entry.Title),
			Number:    composeNumber(counters, entry.Level),
			Page:      entry.Page,
			Subtopics: []*Node{},
		}
		if node.Page < 0 {
			node.Page = 0
		}

		for len(stack) > 0 && stack[len(stack)-1].level >= entry.Level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1].node
			parent.Subtopics = append(parent.Subtopics, node)
		} else {
			tree.Chapters = append(tree.Chapters, node)
		}
		stack = append(stack, frame{level: entry.Level, node: node})
	}

	return tree
}

func composeNumber(counters map[int]int, level int) string {
	depths := make([]int, 0, len(counters))
	for depth := range counters {
		if depth <= level {
			depths = append(depths, depth)
		}
	}
	sort.Ints(depths)

	parts := make([]string, len(depths))
	for i, depth := range depths {
		parts[i] = strconv.Itoa(counters[depth])
	}
	return strings.Join(parts, ".")
}

// ParseBuiltin extracts the document's built-in bookmarks and parses them
// into a Tree. Returns nil when the document has no usable outline; the
// caller is expected to fall back to Fallback().
func ParseBuiltin(doc *document.Document) *Tree {
	entries, err := doc.Outline()
	if err != nil || len(entries) == 0 {
		return nil
	}
	tree := ParseOutline(entries)
	if tree.IsEmpty() {
		return nil
	}
	return tree
}
