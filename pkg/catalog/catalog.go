// Package catalog holds the static document templates: per document
// kind and party kind, an ordered list of named page sections whose
// clause text carries /TOKEN/ placeholders plus the structural anchors
// the assembler fills. Templates ship embedded in the binary, are
// parsed once and never change afterwards; callers may load alternate
// catalogs from any fs.FS.
package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/party"
)

// Structural anchors replaced by the assembler before placeholder
// resolution. They are markers, not /TOKEN/ placeholders: the content
// they expand to is generated, not looked up.
const (
	// ScheduleAnchor marks where the payment schedule table is injected.
	// The table is a no-split unit and must sit inside a single page
	// section.
	ScheduleAnchor = "<!--demonstrativo-->"
	// ClientsAnchor marks where the partnership client list expands.
	ClientsAnchor = "<!--clientes-->"
)

// Page is one logical page section. Sections are no-split units: the
// assembler concatenates them in order and never breaks inside one, so
// anything that must stay together (the schedule table, a signature
// block) lives in a single section.
type Page struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
}

// Template is the full clause structure of one document variant.
type Template struct {
	Kind  document.Kind `yaml:"kind"`
	Party party.Kind    `yaml:"party"`
	Title string        `yaml:"title"`
	Pages []Page        `yaml:"pages"`
}

type key struct {
	kind  document.Kind
	party party.Kind
}

// Catalog is the immutable template registry keyed by
// (document kind, party kind).
type Catalog struct {
	templates map[key]Template
}

// Load walks fsys and parses every .yaml/.yml file as one Template.
// Duplicate (kind, party) pairs are rejected.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{templates: make(map[key]Template)}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isTemplateFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		var tpl Template
		if err := yaml.Unmarshal(data, &tpl); err != nil {
			return fmt.Errorf("catalog: parse %s: %w", path, err)
		}
		if tpl.Kind == "" || tpl.Party == "" {
			return fmt.Errorf("catalog: %s is missing kind or party", path)
		}
		if len(tpl.Pages) == 0 {
			return fmt.Errorf("catalog: %s defines no pages", path)
		}

		k := key{kind: tpl.Kind, party: tpl.Party}
		if _, exists := c.templates[k]; exists {
			return fmt.Errorf("catalog: duplicate template %s/%s (file %s)", tpl.Kind, tpl.Party, path)
		}
		c.templates[k] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog parsed from the embedded documents. The
// parse happens once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Load(EmbeddedFS())
	})
	return defaultCatalog, defaultErr
}

// Lookup returns the template for the document/party pair.
func (c *Catalog) Lookup(kind document.Kind, pk party.Kind) (Template, error) {
	if c == nil {
		return Template{}, fmt.Errorf("catalog: catalog is nil")
	}
	tpl, ok := c.templates[key{kind: kind, party: pk}]
	if !ok {
		return Template{}, fmt.Errorf("catalog: no template for %s/%s", kind, pk)
	}
	return tpl, nil
}

// Kinds lists every (kind, party) pair the catalog can produce, useful
// for hosts that enumerate available documents.
func (c *Catalog) Kinds() []document.Kind {
	seen := map[document.Kind]struct{}{}
	var kinds []document.Kind
	for k := range c.templates {
		if _, ok := seen[k.kind]; ok {
			continue
		}
		seen[k.kind] = struct{}{}
		kinds = append(kinds, k.kind)
	}
	return kinds
}

// ExpandClients renders the partnership client list as comma-joined
// "name (document)" fragments for the ClientsAnchor expansion.
func ExpandClients(clients []party.Client) string {
	if len(clients) == 0 {
		return "________________"
	}
	fragments := make([]string, 0, len(clients))
	for _, cl := range clients {
		name := strings.TrimSpace(cl.Name)
		if name == "" {
			continue
		}
		if doc := strings.TrimSpace(cl.Document); doc != "" {
			fragments = append(fragments, fmt.Sprintf("%s (%s)", name, doc))
		} else {
			fragments = append(fragments, name)
		}
	}
	if len(fragments) == 0 {
		return "________________"
	}
	return strings.Join(fragments, ", ")
}

func isTemplateFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
