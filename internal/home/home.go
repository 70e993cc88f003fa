package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the chapterize home directory.
	DefaultDirName = ".chapterize"

	// UploadsDirName is the subdirectory for uploaded source PDFs.
	UploadsDirName = "uploads"

	// OutputsDirName is the subdirectory for split output trees.
	OutputsDirName = "outputs"

	// ArchivesDirName is the subdirectory for zipped job output.
	ArchivesDirName = "archives"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the chapterize home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.chapterize).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// UploadsDir returns the directory holding uploaded PDFs.
func (d *Dir) UploadsDir() string {
	return filepath.Join(d.path, UploadsDirName)
}

// UploadPath returns the path for an uploaded PDF by document ID.
func (d *Dir) UploadPath(docID string) string {
	return filepath.Join(d.UploadsDir(), docID+".pdf")
}

// OutputsDir returns the directory holding split output trees.
func (d *Dir) OutputsDir() string {
	return filepath.Join(d.path, OutputsDirName)
}

// JobOutputDir returns the output root for a specific split job.
func (d *Dir) JobOutputDir(jobID string) string {
	return filepath.Join(d.OutputsDir(), jobID)
}

// ArchivesDir returns the directory holding zipped job output.
func (d *Dir) ArchivesDir() string {
	return filepath.Join(d.path, ArchivesDirName)
}

// ArchivePath returns the zip path for a completed split job.
func (d *Dir) ArchivePath(jobID string) string {
	return filepath.Join(d.ArchivesDir(), jobID+".zip")
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	for _, dir := range []string{d.UploadsDir(), d.OutputsDir(), d.ArchivesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
