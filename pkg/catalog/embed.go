package catalog

import (
	"embed"
	"io/fs"
)

//go:embed documents/*.yaml
var embeddedDocuments embed.FS

// EmbeddedFS returns the built-in template documents rooted at the
// documents directory.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDocuments, "documents")
	if err != nil {
		// The subtree is embedded above, so this cannot fail at runtime.
		panic(err)
	}
	return sub
}
