// Package views embeds the HTML templates and builds the Fiber template
// engine that renders them. Embedding keeps the binary self-contained
// and lets handler tests render without a working directory dependency.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed *.html layouts/*.html
var files embed.FS

// Layout is the shared page frame every view is rendered into.
const Layout = "layouts/main"

// Engine returns an html/template engine over the embedded views.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
