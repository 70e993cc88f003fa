// Package docs provides generated OpenAPI documentation.
//
// Chapterize API
//
//	@title			Chapterize API
//	@version		1.0
//	@description	Split PDF books into per-chapter files driven by a hierarchical table of contents.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/jackzampolin/chapterize
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
package docs

//go:generate swag init -g ../cmd/chapterize/serve.go -o ./swagger --parseDependency --parseInternal
