package endpoints

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/chapterize/internal/api"
	"github.com/jackzampolin/chapterize/internal/jobs"
	"github.com/jackzampolin/chapterize/internal/svcctx"
)

// ListJobsEndpoint handles GET /api/jobs.
type ListJobsEndpoint struct{}

var _ api.Endpoint = (*ListJobsEndpoint)(nil)

func (e *ListJobsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs", e.handler
}

func (e *ListJobsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		List jobs
//	@Tags			jobs
//	@Produce		json
//	@Success		200	{array}	jobs.Record
//	@Router			/api/jobs [get]
func (e *ListJobsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	manager := svcctx.JobManagerFrom(r.Context())
	writeJSON(w, http.StatusOK, manager.List())
}

func (e *ListJobsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "jobs",
		Short: "List jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp []jobs.Record
			if err := client.Get(cmd.Context(), "/api/jobs", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// GetJobEndpoint handles GET /api/jobs/{id}.
type GetJobEndpoint struct{}

var _ api.Endpoint = (*GetJobEndpoint)(nil)

func (e *GetJobEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs/{id}", e.handler
}

func (e *GetJobEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get job status
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string	true	"Job ID"
//	@Success		200	{object}	jobs.Record
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/jobs/{id} [get]
func (e *GetJobEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	manager := svcctx.JobManagerFrom(r.Context())
	record, ok := manager.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (e *GetJobEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "job <job-id>",
		Short: "Get job status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp jobs.Record
			if err := client.Get(cmd.Context(), "/api/jobs/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// DownloadJobEndpoint handles GET /api/jobs/{id}/download, serving the
// zipped output of a completed split job.
type DownloadJobEndpoint struct{}

var _ api.Endpoint = (*DownloadJobEndpoint)(nil)

func (e *DownloadJobEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs/{id}/download", e.handler
}

func (e *DownloadJobEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Download a completed job's output archive
//	@Tags			jobs
//	@Produce		application/zip
//	@Param			id	path	string	true	"Job ID"
//	@Success		200	{file}	binary
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/api/jobs/{id}/download [get]
func (e *DownloadJobEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	manager := svcctx.JobManagerFrom(r.Context())
	record, ok := manager.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "job not found")
		return
	}
	if record.Status != jobs.StatusCompleted {
		writeError(w, http.StatusConflict, fmt.Sprintf("job is %s", record.Status))
		return
	}
	if record.ArchivePath == "" {
		writeError(w, http.StatusNotFound, "job output was not archived")
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.ID+".zip"))
	http.ServeFile(w, r, record.ArchivePath)
}

func (e *DownloadJobEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "download <job-id>",
		Short: "Download a completed job's output archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			out := outputFile
			if out == "" {
				out = args[0] + ".zip"
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := client.Download(cmd.Context(), "/api/jobs/"+args[0]+"/download", f); err != nil {
				return err
			}
			fmt.Printf("Saved %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	return cmd
}
