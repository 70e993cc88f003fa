package document

import "time"

// Info describes an uploaded document tracked by the server.
type Info struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Pages      int       `json:"pages"`
	SizeBytes  int64     `json:"size_bytes"`
	UploadedAt time.Time `json:"uploaded_at"`

	// Path is where the uploaded PDF lives on disk.
	Path string `json:"-"`
}
