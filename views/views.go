// Package views embeds the dashboard page shell and the list item fragments.
package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

const (
	Shell        = "dashboard"
	DetailedItem = "partials/detailed_item"
	SummaryItem  = "partials/summary_item"
)

func New() (*html.Engine, error) {
	root, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded templates: %w", err)
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	if err := engine.Load(); err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return engine, nil
}
