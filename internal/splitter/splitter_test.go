package splitter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jackzampolin/chapterize/internal/toc"
)

// fakeSource stands in for an open PDF: extraction writes a marker file
// recording the requested range so tests can assert on it.
type fakeSource struct {
	stem      string
	pageCount int
	failPages map[int]bool // start pages whose extraction should fail
}

func (f *fakeSource) Path() string   { return f.stem + ".pdf" }
func (f *fakeSource) Stem() string   { return f.stem }
func (f *fakeSource) PageCount() int { return f.pageCount }

func (f *fakeSource) ExtractRange(from, to int, outPath string) error {
	if from < 1 || to < from || to > f.pageCount {
		return fmt.Errorf("invalid page range [%d, %d]", from, to)
	}
	if f.failPages[from] {
		return fmt.Errorf("simulated extraction failure at page %d", from)
	}
	return os.WriteFile(outPath, []byte(fmt.Sprintf("pages %d-%d", from, to)), 0o644)
}

func newFake(pages int) *fakeSource {
	return &fakeSource{stem: "book", pageCount: pages, failPages: map[int]bool{}}
}

func node(title, number string, page int, subtopics ...*toc.Node) *toc.Node {
	return &toc.Node{Title: title, Number: number, Page: page, Subtopics: subtopics}
}

func TestSplit_EndPageDerivation(t *testing.T) {
	// Siblings [{start=1},{start=5},{start=5}] under an unbounded parent
	// with 20 pages resolve to (1,4), (5,5) after clamping, (5,20).
	tree := &toc.Tree{Chapters: []*toc.Node{
		node("A", "1", 1),
		node("B", "2", 5),
		node("C", "3", 5),
	}}

	sp := New(newFake(20), nil)
	rep, err := sp.Split(tree, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := [][2]int{{1, 4}, {5, 5}, {5, 20}}
	if len(rep.Files) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(rep.Files))
	}
	for i, w := range want {
		if rep.Files[i].Start != w[0] || rep.Files[i].End != w[1] {
			t.Errorf("file %d: expected range (%d,%d), got (%d,%d)",
				i, w[0], w[1], rep.Files[i].Start, rep.Files[i].End)
		}
	}
}

func TestSplit_PagelessSiblingBound(t *testing.T) {
	// A following sibling without a start page stands in for the document
	// end, so the preceding node ends at pageCount-1, not pageCount.
	tree := &toc.Tree{Chapters: []*toc.Node{
		node("A", "1", 1),
		node("Part II", "2", 0,
			node("Ch 1", "2.1", 5),
		),
	}}

	sp := New(newFake(20), nil)
	rep, err := sp.Split(tree, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rep.Files) == 0 {
		t.Fatal("expected at least one emitted file")
	}
	if rep.Files[0].Num != "1" || rep.Files[0].Start != 1 || rep.Files[0].End != 19 {
		t.Errorf("A: expected range (1,19), got (%d,%d)",
			rep.Files[0].Start, rep.Files[0].End)
	}
}

func TestSplit_RangeInvariants(t *testing.T) {
	// Every emitted range stays within [1, pageCount] and siblings never
	// overlap (up to the single-page clamp).
	tree := &toc.Tree{Chapters: []*toc.Node{
		node("Intro", "1", 1),
		node("Body", "2", 4,
			node("First", "2.1", 4),
			node("Second", "2.2", 7),
			node("Beyond", "2.3", 99),
		),
		node("End", "3", 9),
	}}

	fake := newFake(10)
	sp := New(fake, nil)
	rep, err := sp.Split(tree, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, f := range rep.Files {
		if f.Start < 1 || f.Start > f.End || f.End > fake.pageCount {
			t.Errorf("range (%d,%d) violates 1 <= start <= end <= %d",
				f.Start, f.End, fake.pageCount)
		}
	}

	// Node 2.3 starts past the document end and must be skipped, not fatal.
	if len(rep.Skipped) != 1 || rep.Skipped[0].Num != "2.3" {
		t.Errorf("expected node 2.3 skipped, got %+v", rep.Skipped)
	}
}

func TestSplit_DirectoryLayout(t *testing.T) {
	tree := &toc.Tree{Chapters: []*toc.Node{
		node("Intro", "1", 1),
		node("Body", "2", 3,
			node("First", "2.1", 3),
			node("Second", "2.2", 6),
		),
	}}

	root := t.TempDir()
	sp := New(newFake(10), nil)
	rep, err := sp.Split(tree, root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rep.Root != filepath.Join(root, "book") {
		t.Errorf("unexpected output root %s", rep.Root)
	}

	// Leaf at the top level: file directly in the book dir.
	if _, err := os.Stat(filepath.Join(rep.Root, "1_Intro.pdf")); err != nil {
		t.Errorf("expected 1_Intro.pdf at root: %v", err)
	}
	// Node with subtopics: own directory holding its file and children.
	for _, p := range []string{
		filepath.Join(rep.Root, "2_Body", "2_Body.pdf"),
		filepath.Join(rep.Root, "2_Body", "21_First.pdf"),
		filepath.Join(rep.Root, "2_Body", "22_Second.pdf"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}
	if rep.Dirs != 1 {
		t.Errorf("expected 1 directory, got %d", rep.Dirs)
	}
}

func TestSplit_ContainerNodeEmitsNoFile(t *testing.T) {
	tree := &toc.Tree{Chapters: []*toc.Node{
		node("Part I", "1", 0,
			node("Ch 1", "1.1", 1),
			node("Ch 2", "1.2", 5),
		),
	}}

	sp := New(newFake(10), nil)
	rep, err := sp.Split(tree, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rep.Files) != 2 {
		t.Fatalf("expected 2 files (children only), got %d", len(rep.Files))
	}
	if _, err := os.Stat(filepath.Join(rep.Root, "1_Part_I", "1_Part_I.pdf")); err == nil {
		t.Error("container node should not emit a file")
	}
}

func TestSplit_ChildRangesScopedByParent(t *testing.T) {
	// The last child's end page comes from the parent's resolved end.
	tree := &toc.Tree{Chapters: []*toc.Node{
		node("A", "1", 1,
			node("A.1", "1.1", 2),
			node("A.2", "1.2", 5),
		),
		node("B", "2", 11),
	}}

	sp := New(newFake(20), nil)
	rep, err := sp.Split(tree, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byNum := map[string][2]int{}
	for _, f := range rep.Files {
		byNum[f.Num] = [2]int{f.Start, f.End}
	}

	// A resolves to (1,10); its last child A.2 ends at A's end minus one.
	if byNum["1"] != [2]int{1, 10} {
		t.Errorf("A: expected (1,10), got %v", byNum["1"])
	}
	if byNum["1.2"] != [2]int{5, 9} {
		t.Errorf("A.2: expected (5,9), got %v", byNum["1.2"])
	}
	if byNum["2"] != [2]int{11, 20} {
		t.Errorf("B: expected (11,20), got %v", byNum["2"])
	}
}

func TestSplit_EmptyTree(t *testing.T) {
	sp := New(newFake(10), nil)

	for _, tree := range []*toc.Tree{nil, {}, {Chapters: []*toc.Node{}}} {
		_, err := sp.Split(tree, t.TempDir())
		if err == nil {
			t.Fatal("expected StructureError for empty tree")
		}
		var serr *StructureError
		if !errors.As(err, &serr) {
			t.Errorf("expected *StructureError, got %T", err)
		}
	}
}

func TestSplit_ExtractionFailureContinues(t *testing.T) {
	fake := newFake(20)
	fake.failPages[5] = true

	tree := &toc.Tree{Chapters: []*toc.Node{
		node("A", "1", 1),
		node("B", "2", 5),
		node("C", "3", 10),
	}}

	sp := New(fake, nil)
	rep, err := sp.Split(tree, t.TempDir())
	if err != nil {
		t.Fatalf("single-node failure must not abort the walk: %v", err)
	}

	if len(rep.Files) != 2 {
		t.Errorf("expected siblings of the failed node emitted, got %d files", len(rep.Files))
	}
	if len(rep.Skipped) != 1 || rep.Skipped[0].Num != "2" {
		t.Errorf("expected node 2 in the warnings list, got %+v", rep.Skipped)
	}
}

func TestSplit_Idempotent(t *testing.T) {
	tree := &toc.Tree{Chapters: []*toc.Node{
		node("A", "1", 1, node("A.1", "1.1", 2)),
		node("B", "2", 6),
	}}

	sp := New(newFake(10), nil)

	run := func(root string) []string {
		rep, err := sp.Split(tree, root)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var rel []string
		for _, f := range rep.Files {
			r, _ := filepath.Rel(root, f.Path)
			rel = append(rel, fmt.Sprintf("%s %d-%d", r, f.Start, f.End))
		}
		sort.Strings(rel)
		return rel
	}

	first := run(t.TempDir())
	second := run(t.TempDir())
	if len(first) != len(second) {
		t.Fatalf("runs differ in file count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("run mismatch at %d: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestSplit_DepthBound(t *testing.T) {
	// A chain deeper than the walk bound is reported, not a crash.
	leaf := node("bottom", "x", 2)
	cur := leaf
	for i := 0; i < maxDepth+5; i++ {
		cur = node("level", "1", 1, cur)
	}
	tree := &toc.Tree{Chapters: []*toc.Node{cur}}

	sp := New(newFake(10), nil)
	rep, err := sp.Split(tree, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rep.Skipped) == 0 {
		t.Error("expected nodes beyond the depth bound to be reported as skipped")
	}
}
