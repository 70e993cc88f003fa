package toc

import (
	"testing"

	"github.com/jackzampolin/chapterize/internal/document"
)

func entries(triples ...[3]any) []document.OutlineEntry {
	out := make([]document.OutlineEntry, len(triples))
	for i, t := range triples {
		out[i] = document.OutlineEntry{Level: t[0].(int), Title: t[1].(string), Page: t[2].(int)}
	}
	return out
}

func TestParseOutline_NumberSynthesis(t *testing.T) {
	tree := ParseOutline(entries(
		[3]any{1, "A", 1},
		[3]any{2, "A.1", 2},
		[3]any{2, "A.2", 5},
		[3]any{1, "B", 10},
	))

	if len(tree.Chapters) != 2 {
		t.Fatalf("expected 2 root chapters, got %d", len(tree.Chapters))
	}

	a := tree.Chapters[0]
	b := tree.Chapters[1]
	if a.Number != "1" || b.Number != "2" {
		t.Errorf("expected root numbers 1 and 2, got %q and %q", a.Number, b.Number)
	}
	if len(a.Subtopics) != 2 {
		t.Fatalf("expected 2 subtopics under A, got %d", len(a.Subtopics))
	}
	if a.Subtopics[0].Number != "1.1" || a.Subtopics[1].Number != "1.2" {
		t.Errorf("expected subtopic numbers 1.1 and 1.2, got %q and %q",
			a.Subtopics[0].Number, a.Subtopics[1].Number)
	}
	if len(b.Subtopics) != 0 {
		t.Errorf("expected no subtopics under B, got %d", len(b.Subtopics))
	}
}

func TestParseOutline_CounterResetAfterShallowerSibling(t *testing.T) {
	// The deep counter must restart once a shallower entry appears.
	tree := ParseOutline(entries(
		[3]any{1, "A", 1},
		[3]any{2, "A.x", 2},
		[3]any{1, "B", 5},
		[3]any{2, "B.x", 6},
	))

	bx := tree.Chapters[1].Subtopics[0]
	if bx.Number != "2.1" {
		t.Errorf("expected B.x numbered 2.1, got %q", bx.Number)
	}
}

func TestParseOutline_LevelJump(t *testing.T) {
	// Jumping from level 1 to level 3 attaches under the level-1 node,
	// the nearest ancestor left on the stack.
	tree := ParseOutline(entries(
		[3]any{1, "A", 1},
		[3]any{3, "deep", 2},
	))

	if len(tree.Chapters) != 1 {
		t.Fatalf("expected 1 root chapter, got %d", len(tree.Chapters))
	}
	a := tree.Chapters[0]
	if len(a.Subtopics) != 1 || a.Subtopics[0].Title != "deep" {
		t.Fatalf("expected deep attached under A, got %+v", a.Subtopics)
	}
	if a.Subtopics[0].Number != "1.1" {
		t.Errorf("expected deep numbered 1.1, got %q", a.Subtopics[0].Number)
	}
}

func TestParseOutline_TrimsTitles(t *testing.T) {
	tree := ParseOutline(entries([3]any{1, "  Intro  ", 1}))
	if tree.Chapters[0].Title != "Intro" {
		t.Errorf("expected trimmed title, got %q", tree.Chapters[0].Title)
	}
}

func TestParseOutline_SkipsMalformedEntries(t *testing.T) {
	tree := ParseOutline(entries(
		[3]any{0, "bogus", 1},
		[3]any{1, "A", 1},
	))
	if len(tree.Chapters) != 1 || tree.Chapters[0].Title != "A" {
		t.Fatalf("expected only the valid entry, got %+v", tree.Chapters)
	}
}

func TestParseOutline_Empty(t *testing.T) {
	tree := ParseOutline(nil)
	if !tree.IsEmpty() {
		t.Error("expected empty tree from empty outline")
	}
}

func TestFallback(t *testing.T) {
	tree := Fallback()
	if len(tree.Chapters) != 1 {
		t.Fatalf("expected single chapter, got %d", len(tree.Chapters))
	}
	ch := tree.Chapters[0]
	if ch.Title != "Document" || ch.Number != "1" || ch.Page != 1 {
		t.Errorf("unexpected fallback chapter: %+v", ch)
	}
}
