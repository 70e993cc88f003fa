package endpoints

import (
	"github.com/jackzampolin/chapterize/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},

		// Document endpoints
		&UploadDocumentEndpoint{},
		&ListDocumentsEndpoint{},
		&GetDocumentEndpoint{},
		&DeleteDocumentEndpoint{},
		&DocumentPDFEndpoint{},

		// TOC endpoints
		&GetTOCEndpoint{},
		&PutTOCEndpoint{},
		&ExtractTOCEndpoint{},

		// Split and job endpoints
		&SplitEndpoint{},
		&ListJobsEndpoint{},
		&GetJobEndpoint{},
		&DownloadJobEndpoint{},

		// OpenAPI spec
		&SwaggerEndpoint{},
	}
}
