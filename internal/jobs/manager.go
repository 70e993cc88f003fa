// Package jobs tracks background split jobs. Jobs run on goroutines owned by
// the Manager; records live in the store the Manager is constructed with and
// are served over the API while the job runs.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jackzampolin/chapterize/internal/archive"
	"github.com/jackzampolin/chapterize/internal/document"
	"github.com/jackzampolin/chapterize/internal/home"
	"github.com/jackzampolin/chapterize/internal/splitter"
	"github.com/jackzampolin/chapterize/internal/store"
	"github.com/jackzampolin/chapterize/internal/toc"
)

// Progress checkpoints reported for a split job.
const (
	progressStarted = 10
	progressSplit   = 80
	progressDone    = 100
)

// Manager creates and tracks split jobs.
type Manager struct {
	records store.Store[Record]
	home    *home.Dir
	logger  *slog.Logger
	archive bool

	mu sync.Mutex // serializes read-modify-write record updates
	wg sync.WaitGroup
}

// NewManager creates a job manager backed by records. When archiveOutputs is
// set, completed jobs are zipped for download.
func NewManager(records store.Store[Record], h *home.Dir, archiveOutputs bool, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		records: records,
		home:    h,
		logger:  logger,
		archive: archiveOutputs,
	}
}

// Get returns a snapshot of a job record.
func (m *Manager) Get(jobID string) (Record, bool) {
	return m.records.Get(jobID)
}

// List returns snapshots of all job records.
func (m *Manager) List() []Record {
	return m.records.List()
}

// Wait blocks until all running jobs finish. Used during shutdown.
func (m *Manager) Wait() {
	m.wg.Wait()
}

// StartSplit queues a split of the PDF at pdfPath according to tree and
// returns the job ID. The context should outlive the calling request; it is
// only consulted to abandon a job queued during shutdown.
func (m *Manager) StartSplit(ctx context.Context, documentID, pdfPath string, tree *toc.Tree) (string, error) {
	if tree == nil || tree.IsEmpty() {
		return "", fmt.Errorf("cannot split: table of contents is empty")
	}

	record := NewRecord(TypeSplit, documentID)
	m.records.Put(record.ID, *record)
	m.logger.Info("job created", "id", record.ID, "type", record.JobType, "document", documentID)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		if ctx.Err() != nil {
			m.fail(record.ID, ctx.Err())
			return
		}
		m.runSplit(record.ID, pdfPath, tree)
	}()

	return record.ID, nil
}

func (m *Manager) runSplit(jobID, pdfPath string, tree *toc.Tree) {
	now := time.Now().UTC()
	m.update(jobID, func(r *Record) {
		r.Status = StatusRunning
		r.StartedAt = &now
		r.Progress = progressStarted
	})

	doc, err := document.Open(pdfPath)
	if err != nil {
		m.fail(jobID, err)
		return
	}
	defer doc.Close()

	report, err := splitter.New(doc, m.logger).Split(tree, m.home.JobOutputDir(jobID))
	if err != nil {
		m.fail(jobID, err)
		return
	}

	m.update(jobID, func(r *Record) {
		r.Progress = progressSplit
		r.OutputDir = report.Root
		r.Files = report.Files
		r.Skipped = report.Skipped
	})

	var archivePath string
	if m.archive {
		archivePath = m.home.ArchivePath(jobID)
		if err := archive.Zip(report.Root, archivePath); err != nil {
			m.fail(jobID, fmt.Errorf("failed to archive job output: %w", err))
			return
		}
	}

	done := time.Now().UTC()
	m.update(jobID, func(r *Record) {
		r.Status = StatusCompleted
		r.Progress = progressDone
		r.CompletedAt = &done
		r.ArchivePath = archivePath
	})
	m.logger.Info("job completed", "id", jobID, "files", len(report.Files), "skipped", len(report.Skipped))
}

func (m *Manager) fail(jobID string, err error) {
	now := time.Now().UTC()
	m.update(jobID, func(r *Record) {
		r.Status = StatusFailed
		r.CompletedAt = &now
		r.Error = err.Error()
	})
	m.logger.Error("job failed", "id", jobID, "error", err)
}

func (m *Manager) update(jobID string, apply func(*Record)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records.Get(jobID)
	if !ok {
		return
	}
	apply(&record)
	m.records.Put(jobID, record)
}
