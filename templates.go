package docgen

import (
	"io/fs"

	"github.com/advocflow/docgen/pkg/catalog"
	"github.com/advocflow/docgen/pkg/renderers/print"
)

// EmbeddedCatalog exposes the built-in template documents so callers
// can reuse or extend them without importing the catalog package
// directly.
func EmbeddedCatalog() fs.FS {
	return catalog.EmbeddedFS()
}

// EmbeddedPrintTemplates exposes the built-in print chrome templates.
func EmbeddedPrintTemplates() fs.FS {
	return print.TemplatesFS()
}
