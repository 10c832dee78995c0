// Package views renders the portfolio page, its modal fragments and the
// contact-form responses as gomponents node trees.
package views

import (
	"net/http"

	g "maragu.dev/gomponents"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// Renderer adapts a node to gin's render.Render, so handlers can call
// c.Render(status, views.Renderer{Node: node}).
type Renderer struct {
	Node g.Node
}

func (h Renderer) Render(w http.ResponseWriter) error {
	h.WriteContentType(w)
	return h.Node.Render(w)
}

func (h Renderer) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
