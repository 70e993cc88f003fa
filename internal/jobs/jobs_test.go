package jobs

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/chapterize/internal/home"
	"github.com/jackzampolin/chapterize/internal/store"
	"github.com/jackzampolin/chapterize/internal/toc"
)

func testManager(t *testing.T) *Manager {
	t.Helper()
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New failed: %v", err)
	}
	if err := h.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	return NewManager(store.NewMemory[Record](), h, true, slog.Default())
}

func singleChapterTree() *toc.Tree {
	return &toc.Tree{Chapters: []*toc.Node{
		{Title: "Intro", Number: "1", Page: 1, Subtopics: []*toc.Node{}},
	}}
}

func TestStartSplitRejectsEmptyTree(t *testing.T) {
	m := testManager(t)

	if _, err := m.StartSplit(context.Background(), "doc-1", "book.pdf", nil); err == nil {
		t.Error("expected error for nil tree")
	}
	if _, err := m.StartSplit(context.Background(), "doc-1", "book.pdf", &toc.Tree{}); err == nil {
		t.Error("expected error for empty tree")
	}
	if got := len(m.List()); got != 0 {
		t.Errorf("rejected splits should not leave records, got %d", got)
	}
}

func TestSplitJobFailsOnMissingDocument(t *testing.T) {
	m := testManager(t)

	path := filepath.Join(t.TempDir(), "missing.pdf")
	jobID, err := m.StartSplit(context.Background(), "doc-1", path, singleChapterTree())
	if err != nil {
		t.Fatalf("StartSplit failed: %v", err)
	}
	m.Wait()

	record, ok := m.Get(jobID)
	if !ok {
		t.Fatal("job record not found")
	}
	if record.Status != StatusFailed {
		t.Errorf("status = %q, want %q", record.Status, StatusFailed)
	}
	if record.Error == "" {
		t.Error("failed job should carry an error message")
	}
	if record.CompletedAt == nil {
		t.Error("failed job should have a completion time")
	}
}

func TestSplitJobAbandonedWhenContextCancelled(t *testing.T) {
	m := testManager(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobID, err := m.StartSplit(ctx, "doc-1", "book.pdf", singleChapterTree())
	if err != nil {
		t.Fatalf("StartSplit failed: %v", err)
	}
	m.Wait()

	record, ok := m.Get(jobID)
	if !ok {
		t.Fatal("job record not found")
	}
	if record.Status != StatusFailed {
		t.Errorf("status = %q, want %q", record.Status, StatusFailed)
	}
}

func TestManagerUsesInjectedStore(t *testing.T) {
	h, err := home.New(t.TempDir())
	if err != nil {
		t.Fatalf("home.New failed: %v", err)
	}
	records := store.NewMemory[Record]()
	record := NewRecord(TypeSplit, "doc-1")
	records.Put(record.ID, *record)

	m := NewManager(records, h, false, slog.Default())
	if _, ok := m.Get(record.ID); !ok {
		t.Error("manager should serve records from the store it was given")
	}
}

func TestNewRecordDefaults(t *testing.T) {
	r := NewRecord(TypeSplit, "doc-42")
	if r.ID == "" {
		t.Error("record should have an ID")
	}
	if r.Status != StatusQueued {
		t.Errorf("status = %q, want %q", r.Status, StatusQueued)
	}
	if r.DocumentID != "doc-42" {
		t.Errorf("document id = %q", r.DocumentID)
	}
	if r.CreatedAt.IsZero() {
		t.Error("created_at should be set")
	}
}

func TestGetReturnsSnapshot(t *testing.T) {
	m := testManager(t)
	record := NewRecord(TypeSplit, "doc-1")
	m.records.Put(record.ID, *record)

	got, _ := m.Get(record.ID)
	got.Status = StatusCompleted

	again, _ := m.Get(record.ID)
	if again.Status != StatusQueued {
		t.Errorf("mutating a snapshot leaked into the store: %q", again.Status)
	}
}
