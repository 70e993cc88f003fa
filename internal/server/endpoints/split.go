package endpoints

import (
	"context"
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

// SplitResponse acknowledges a queued split job.
type SplitResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// SplitEndpoint handles POST /api/documents/{id}/split.
// It queues a background job that splits the document according to its
// stored TOC and reports progress via the jobs API.
type SplitEndpoint struct{}

var _ api.Endpoint = (*SplitEndpoint)(nil)

func (e *SplitEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/documents/{id}/split", e.handler
}

func (e *SplitEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Split a document by its table of contents
//	@Description	Queues a background job producing one sub-PDF per TOC entry. A TOC in the request body overrides the stored one.
//	@Tags			split
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string		true	"Document ID"
//	@Param			toc	body		toc.Tree	false	"TOC to split by (default: the stored TOC)"
//	@Success		202	{object}	SplitResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/documents/{id}/split [post]
func (e *SplitEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	docs := svcctx.DocumentsFrom(r.Context())
	tocs := svcctx.TOCsFrom(r.Context())
	manager := svcctx.JobManagerFrom(r.Context())

	docID := r.PathValue("id")
	info, ok := docs.Get(docID)
	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read body: %v", err))
		return
	}

	var tree *toc.Tree
	if len(body) > 0 {
		tree, err = toc.DecodeTree(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid toc: %v", err))
			return
		}
		tocs.Put(docID, tree)
	} else {
		tree, ok = tocs.Get(docID)
		if !ok {
			writeError(w, http.StatusNotFound, "document has no table of contents")
			return
		}
	}

	// The request context dies with the response; jobs outlive it.
	jobID, err := manager.StartSplit(context.WithoutCancel(r.Context()), docID, info.Path, tree)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, SplitResponse{JobID: jobID, Status: "queued"})
}

func (e *SplitEndpoint) Command(getServerURL func() string) *cobra.Command {
	var tocFile string
	cmd := &cobra.Command{
		Use:   "split <doc-id>",
		Short: "Queue a split job for a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any
			if tocFile != "" {
				data, err := os.ReadFile(tocFile)
				if err != nil {
					return err
				}
				body = json.RawMessage(data)
			}

			client := api.NewClient(getServerURL())
			var resp SplitResponse
			if err := client.Post(cmd.Context(), "/api/documents/"+args[0]+"/split", body, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&tocFile, "toc", "", "TOC JSON file overriding the stored TOC")
	return cmd
}
