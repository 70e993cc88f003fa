package endpoints

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/api"
	"github.com/jackzampolin/chapterize/internal/svcctx"
	"github.com/jackzampolin/chapterize/internal/toc"
)

// GetTOCEndpoint handles GET /api/documents/{id}/toc.
type GetTOCEndpoint struct{}

var _ api.Endpoint = (*GetTOCEndpoint)(nil)

func (e *GetTOCEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/documents/{id}/toc", e.handler
}

func (e *GetTOCEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get a document's table of contents
//	@Tags			toc
//	@Produce		json
//	@Param			id	path		string	true	"Document ID"
//	@Success		200	{object}	toc.Tree
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/documents/{id}/toc [get]
func (e *GetTOCEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	tocs := svcctx.TOCsFrom(r.Context())
	tree, ok := tocs.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, tree)
}

func (e *GetTOCEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "toc <doc-id>",
		Short: "Fetch a document's table of contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var tree toc.Tree
			if err := client.Get(cmd.Context(), "/api/documents/"+args[0]+"/toc", &tree); err != nil {
				return err
			}
			if outputFile != "" {
				return api.OutputToFile(tree, outputFile)
			}
			return api.Output(tree)
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	return cmd
}

// PutTOCEndpoint handles PUT /api/documents/{id}/toc, replacing the stored TOC.
type PutTOCEndpoint struct{}

var _ api.Endpoint = (*PutTOCEndpoint)(nil)

func (e *PutTOCEndpoint) Route() (string, string, http.HandlerFunc) {
	return "PUT", "/api/documents/{id}/toc", e.handler
}

func (e *PutTOCEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Replace a document's table of contents
//	@Description	The body is validated against the chapters schema before replacing the stored TOC
//	@Tags			toc
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string		true	"Document ID"
//	@Param			toc	body		toc.Tree	true	"New table of contents"
//	@Success		200	{object}	toc.Tree
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/documents/{id}/toc [put]
func (e *PutTOCEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	docs := svcctx.DocumentsFrom(r.Context())
	tocs := svcctx.TOCsFrom(r.Context())

	docID := r.PathValue("id")
	if _, ok := docs.Get(docID); !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read body: %v", err))
		return
	}

	tree, err := toc.DecodeTree(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid toc: %v", err))
		return
	}

	tocs.Put(docID, tree)
	writeJSON(w, http.StatusOK, tree)
}

func (e *PutTOCEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-toc <doc-id> <toc.json>",
		Short: "Replace a document's table of contents from a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			var body json.RawMessage = data

			client := api.NewClient(getServerURL())
			var tree toc.Tree
			if err := client.Put(cmd.Context(), "/api/documents/"+args[0]+"/toc", body, &tree); err != nil {
				return err
			}
			return api.Output(tree)
		},
	}
}

// ExtractTOCRequest designates the printed TOC pages to transcribe.
type ExtractTOCRequest struct {
	FromPage int `json:"from_page"`
	ToPage   int `json:"to_page"`
}

// ExtractTOCEndpoint handles POST /api/documents/{id}/toc/extract.
// It sends the text of the designated pages to the configured model and
// replaces the stored TOC with the transcription.
type ExtractTOCEndpoint struct{}

var _ api.Endpoint = (*ExtractTOCEndpoint)(nil)

func (e *ExtractTOCEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/documents/{id}/toc/extract", e.handler
}

func (e *ExtractTOCEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Extract a TOC from printed TOC pages via LLM
//	@Tags			toc
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Document ID"
//	@Param			pages	body		ExtractTOCRequest	true	"Printed TOC page range"
//	@Success		200		{object}	toc.Tree
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/documents/{id}/toc/extract [post]
func (e *ExtractTOCEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	extractor := svcctx.ExtractorFrom(r.Context())
	if extractor == nil {
		writeError(w, http.StatusServiceUnavailable, "llm toc extraction is not configured")
		return
	}

	docs := svcctx.DocumentsFrom(r.Context())
	tocs := svcctx.TOCsFrom(r.Context())

	docID := r.PathValue("id")
	info, ok := docs.Get(docID)
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	var req ExtractTOCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if req.FromPage < 1 || req.ToPage < req.FromPage {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid page range %d-%d", req.FromPage, req.ToPage))
		return
	}

	tree, err := extractor.Extract(r.Context(), info.Path, req.FromPage, req.ToPage)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tocs.Put(docID, tree)
	writeJSON(w, http.StatusOK, tree)
}

func (e *ExtractTOCEndpoint) Command(getServerURL func() string) *cobra.Command {
	var fromPage, toPage int
	cmd := &cobra.Command{
		Use:   "extract-toc <doc-id>",
		Short: "Extract a TOC from printed TOC pages via the configured model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var tree toc.Tree
			req := ExtractTOCRequest{FromPage: fromPage, ToPage: toPage}
			if err := client.Post(cmd.Context(), "/api/documents/"+args[0]+"/toc/extract", req, &tree); err != nil {
				return err
			}
			return api.Output(tree)
		},
	}
	cmd.Flags().IntVar(&fromPage, "from", 1, "First printed TOC page (1-based)")
	cmd.Flags().IntVar(&toPage, "to", 1, "Last printed TOC page (inclusive)")
	return cmd
}
