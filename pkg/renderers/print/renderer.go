// Package print renders an assembled document as a complete A4 HTML
// page ready for the external HTML-to-PDF collaborator: 20mm page
// margins, fixed header and footer chrome and an optional watermark.
// Pagination itself is left to the print engine; page sections are
// emitted as no-split blocks.
package print

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/render"
)

const templateName = "document.tmpl"

type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate chrome template bundle.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the chrome templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer produces the print HTML document.
type Renderer struct {
	mu  sync.Mutex
	set *pongo2.TemplateSet
	tpl *pongo2.Template
}

// New constructs the print renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	set := pongo2.NewSet("docgen-print", pongo2.NewFSLoader(cfg.templateFS))
	tpl, err := set.FromFile(templateName)
	if err != nil {
		return nil, fmt.Errorf("print renderer: load chrome template: %w", err)
	}

	return &Renderer{set: set, tpl: tpl}, nil
}

func (r *Renderer) Name() string {
	return "print"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render wraps the logical pages into the full print document.
func (r *Renderer) Render(ctx context.Context, doc document.Rendered, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, fmt.Errorf("print renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("print renderer: document has no pages")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out, err := r.tpl.Execute(pongo2.Context{
		"title":     doc.Title,
		"pages":     doc.Pages,
		"footer":    doc.Footer,
		"watermark": options.Watermark,
		"draft":     options.Draft,
	})
	if err != nil {
		return nil, fmt.Errorf("print renderer: execute chrome template: %w", err)
	}
	return []byte(out), nil
}

var _ render.Renderer = (*Renderer)(nil)
