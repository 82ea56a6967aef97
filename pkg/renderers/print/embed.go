package print

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded chrome template bundle for consumers
// that want the built-in print layout out of the box.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// Should never happen, but fall back to raw FS so templates
		// remain usable.
		return embeddedTemplates
	}
	return sub
}
