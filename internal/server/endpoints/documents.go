package endpoints

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/api"
	"github.com/jackzampolin/chapterize/internal/document"
	"github.com/jackzampolin/chapterize/internal/svcctx"
	"github.com/jackzampolin/chapterize/internal/toc"
)

// TOC source identifiers reported on upload.
const (
	TocSourceOutline  = "outline"
	TocSourceFallback = "fallback"
)

// DocumentResponse describes an uploaded document.
type DocumentResponse struct {
	document.Info

	// TocSource reports where the document's current TOC came from:
	// "outline" (built-in bookmarks), "fallback" (single chapter),
	// or "llm" / "manual" after later edits.
	TocSource string `json:"toc_source,omitempty"`
}

// UploadDocumentEndpoint handles POST /api/documents with a multipart PDF upload.
type UploadDocumentEndpoint struct{}

var _ api.Endpoint = (*UploadDocumentEndpoint)(nil)

func (e *UploadDocumentEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/documents", e.handler
}

func (e *UploadDocumentEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Upload a PDF document
//	@Description	Upload a PDF; its built-in outline is parsed into a TOC, falling back to a single chapter
//	@Tags			documents
//	@Accept			mpfd
//	@Produce		json
//	@Param			file	formData	file	true	"PDF file"
//	@Success		201	{object}	DocumentResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/documents [post]
func (e *UploadDocumentEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	homeDir := svcctx.HomeFrom(r.Context())
	docs := svcctx.DocumentsFrom(r.Context())
	tocs := svcctx.TOCsFrom(r.Context())
	logger := svcctx.LoggerFrom(r.Context())

	maxBytes := int64(500) << 20
	if cm := svcctx.ConfigMgrFrom(r.Context()); cm != nil {
		if mb := cm.Get().Server.MaxUploadMB; mb > 0 {
			maxBytes = int64(mb) << 20
		}
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	src, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer src.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("file %s is not a PDF", header.Filename))
		return
	}

	docID := uuid.NewString()
	destPath := homeDir.UploadPath(docID)

	dst, err := os.Create(destPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return
	}
	written, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(destPath)
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to store upload: %v", err))
		return
	}

	// Validate the PDF and pull its outline in one open.
	doc, err := document.Open(destPath)
	if err != nil {
		os.Remove(destPath)
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid PDF: %v", err))
		return
	}
	defer doc.Close()

	info := document.Info{
		ID:         docID,
		Filename:   header.Filename,
		Pages:      doc.PageCount(),
		SizeBytes:  written,
		UploadedAt: time.Now().UTC(),
		Path:       destPath,
	}
	docs.Put(docID, info)

	source := TocSourceOutline
	tree := toc.ParseBuiltin(doc)
	if tree == nil {
		tree = toc.Fallback()
		source = TocSourceFallback
	}
	tocs.Put(docID, tree)

	if logger != nil {
		logger.Info("document uploaded",
			"id", docID, "filename", header.Filename,
			"pages", info.Pages, "toc_source", source)
	}

	writeJSON(w, http.StatusCreated, DocumentResponse{Info: info, TocSource: source})
}

func (e *UploadDocumentEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.pdf>",
		Short: "Upload a PDF to the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp DocumentResponse
			if err := client.UploadFile(cmd.Context(), "/api/documents", args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// ListDocumentsEndpoint handles GET /api/documents.
type ListDocumentsEndpoint struct{}

var _ api.Endpoint = (*ListDocumentsEndpoint)(nil)

func (e *ListDocumentsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/documents", e.handler
}

func (e *ListDocumentsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List uploaded documents
//	@Tags			documents
//	@Produce		json
//	@Success		200	{array}	document.Info
//	@Router			/api/documents [get]
func (e *ListDocumentsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	docs := svcctx.DocumentsFrom(r.Context())
	writeJSON(w, http.StatusOK, docs.List())
}

func (e *ListDocumentsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "documents",
		Short: "List uploaded documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp []document.Info
			if err := client.Get(cmd.Context(), "/api/documents", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetDocumentEndpoint handles GET /api/documents/{id}.
type GetDocumentEndpoint struct{}

var _ api.Endpoint = (*GetDocumentEndpoint)(nil)

func (e *GetDocumentEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/documents/{id}", e.handler
}

func (e *GetDocumentEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get document metadata
//	@Tags			documents
//	@Produce		json
//	@Param			id	path		string	true	"Document ID"
//	@Success		200	{object}	document.Info
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/documents/{id} [get]
func (e *GetDocumentEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	docs := svcctx.DocumentsFrom(r.Context())
	info, ok := docs.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (e *GetDocumentEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "document <doc-id>",
		Short: "Get document metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp document.Info
			if err := client.Get(cmd.Context(), "/api/documents/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// DeleteDocumentEndpoint handles DELETE /api/documents/{id}, removing the
// upload and its stored TOC. Completed job output is left in place.
type DeleteDocumentEndpoint struct{}

var _ api.Endpoint = (*DeleteDocumentEndpoint)(nil)

func (e *DeleteDocumentEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/documents/{id}", e.handler
}

func (e *DeleteDocumentEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Delete an uploaded document
//	@Tags			documents
//	@Produce		json
//	@Param			id	path	string	true	"Document ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/documents/{id} [delete]
func (e *DeleteDocumentEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	docs := svcctx.DocumentsFrom(r.Context())
	tocs := svcctx.TOCsFrom(r.Context())

	docID := r.PathValue("id")
	info, ok := docs.Get(docID)
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	if err := os.Remove(info.Path); err != nil && !os.IsNotExist(err) {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to remove upload: %v", err))
		return
	}
	docs.Delete(docID)
	tocs.Delete(docID)

	if logger := svcctx.LoggerFrom(r.Context()); logger != nil {
		logger.Info("document deleted", "id", docID)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (e *DeleteDocumentEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <doc-id>",
		Short: "Delete an uploaded document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			if err := client.Delete(cmd.Context(), "/api/documents/"+args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}

// DocumentPDFEndpoint handles GET /api/documents/{id}/pdf, serving the raw upload.
type DocumentPDFEndpoint struct{}

var _ api.Endpoint = (*DocumentPDFEndpoint)(nil)

func (e *DocumentPDFEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/documents/{id}/pdf", e.handler
}

func (e *DocumentPDFEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Download the original PDF
//	@Tags			documents
//	@Produce		application/pdf
//	@Param			id	path	string	true	"Document ID"
//	@Success		200	{file}	binary
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/documents/{id}/pdf [get]
func (e *DocumentPDFEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	docs := svcctx.DocumentsFrom(r.Context())
	info, ok := docs.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, info.Path)
}

func (e *DocumentPDFEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "download-pdf <doc-id>",
		Short: "Download the original PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			out := outputFile
			if out == "" {
				out = args[0] + ".pdf"
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := client.Download(cmd.Context(), "/api/documents/"+args[0]+"/pdf", f); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	return cmd
}
