package jobs

import (
	"time"

	"github.com/google/uuid"

	"github.com/jackzampolin/chapterize/internal/splitter"
)

// Status represents the current state of a job.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job type identifiers.
const (
	TypeSplit = "split"
)

// Record represents a job tracked by the Manager.
type Record struct {
	ID          string     `json:"id"`
	JobType     string     `json:"job_type"`
	Status      Status     `json:"status"`
	Progress    int        `json:"progress"` // 0-100
	DocumentID  string     `json:"document_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Error       string     `json:"error,omitempty"`

	// Populated when a split job completes.
	OutputDir   string             `json:"output_dir,omitempty"`
	ArchivePath string             `json:"archive_path,omitempty"`
	Files       []splitter.Emitted `json:"files,omitempty"`
	Skipped     []splitter.Skip    `json:"skipped,omitempty"`
}

// NewRecord creates a queued job record with a fresh ID.
func NewRecord(jobType, documentID string) *Record {
	return &Record{
		ID:         uuid.NewString(),
		JobType:    jobType,
		Status:     StatusQueued,
		DocumentID: documentID,
		CreatedAt:  time.Now().UTC(),
	}
}
