// Package assembler coordinates the generation pipeline: template
// lookup, schedule-table injection, client-list expansion, manual page
// overrides and placeholder resolution, in that order. It applies
// sensible defaults (embedded catalog, built-in schedule table, UGC
// sanitizer) while remaining open to dependency injection.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/advocflow/docgen/pkg/catalog"
	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/money"
	"github.com/advocflow/docgen/pkg/party"
	"github.com/advocflow/docgen/pkg/resolver"
	"github.com/advocflow/docgen/pkg/schedule"
)

// DefaultFooter is the office metadata printed on every generated page.
var DefaultFooter = document.Footer{
	Office:  "Escritório de Advocacia AdvocFlow",
	Contact: "contato@advocflow.com.br | (21) 3500-0000",
	Counsel: "Responsável técnico: Dra. Helena Martins",
	OAB:     "OAB/RJ 145.220",
}

// Option customises the assembler configuration.
type Option func(*Assembler)

// WithCatalog injects a custom template catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(a *Assembler) {
		a.catalog = c
	}
}

// WithScheduleTemplate overrides the pongo2 source used to render the
// payment schedule table.
func WithScheduleTemplate(src string) Option {
	return func(a *Assembler) {
		if strings.TrimSpace(src) == "" {
			return
		}
		a.scheduleSrc = src
	}
}

// WithSanitizer injects the policy applied to manually overridden pages.
func WithSanitizer(p *bluemonday.Policy) Option {
	return func(a *Assembler) {
		a.sanitizer = p
	}
}

// WithClock overrides the time source used when a record carries no
// signature date. Tests pin it.
func WithClock(clock func() time.Time) Option {
	return func(a *Assembler) {
		a.clock = clock
	}
}

// WithFooter overrides the office metadata.
func WithFooter(f document.Footer) Option {
	return func(a *Assembler) {
		a.footer = f
	}
}

// WithResolver injects a custom placeholder resolver.
func WithResolver(r *resolver.Resolver) Option {
	return func(a *Assembler) {
		a.resolver = r
	}
}

// Assembler turns a party record into fully substituted documents.
type Assembler struct {
	catalog     *catalog.Catalog
	scheduleSrc string
	scheduleTpl *pongo2.Template
	sanitizer   *bluemonday.Policy
	clock       func() time.Time
	footer      document.Footer
	resolver    *resolver.Resolver

	initialiseErr error
}

// New constructs an Assembler applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Assembler {
	a := &Assembler{
		scheduleSrc: defaultScheduleTemplate,
		footer:      DefaultFooter,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	a.applyDefaults()
	return a
}

func (a *Assembler) applyDefaults() {
	if a.catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			a.initialiseErr = fmt.Errorf("assembler: load embedded catalog: %w", err)
			return
		}
		a.catalog = c
	}
	if a.sanitizer == nil {
		a.sanitizer = defaultSanitizer()
	}
	if a.clock == nil {
		a.clock = time.Now
	}
	if a.resolver == nil {
		a.resolver = resolver.New()
	}

	tpl, err := pongo2.FromString(a.scheduleSrc)
	if err != nil {
		a.initialiseErr = fmt.Errorf("assembler: parse schedule template: %w", err)
		return
	}
	a.scheduleTpl = tpl
}

// defaultSanitizer keeps the markup a contentEditable page edit can
// legitimately contain: UGC tags plus tables and the class attributes
// the print chrome styles by.
func defaultSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowTables()
	p.AllowAttrs("class").Globally()
	return p
}

// PageOrigin tells how a page body was produced.
type PageOrigin string

const (
	// Generated pages come straight from the catalog template.
	Generated PageOrigin = "generated"
	// Overridden pages carry operator-edited markup. They are sanitized
	// and still pass through the resolver, so fixing a field in the
	// record updates even a hand-edited page.
	Overridden PageOrigin = "overridden"
)

// Page is one assembled page body together with its origin.
type Page struct {
	Name   string     `json:"name"`
	Origin PageOrigin `json:"origin"`
	HTML   string     `json:"html"`
}

// Request describes one document to assemble.
type Request struct {
	// ContractType selects the party variant the templates address.
	ContractType party.ContractType

	// Kind selects the document template.
	Kind document.Kind

	// Data is the party record placeholders resolve against.
	Data party.Data

	// Overrides replaces generated page bodies by zero-based page index
	// with operator-edited markup.
	Overrides map[int]string
}

// Result pairs the rendered document with the per-page origin detail
// hosts surface in their editing UI.
type Result struct {
	Document document.Rendered
	Pages    []Page
}

// Assemble runs the full pipeline for a single document.
func (a *Assembler) Assemble(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("assembler: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := a.initialiseErr; err != nil {
		return Result{}, err
	}
	if req.Kind == "" {
		return Result{}, errors.New("assembler: document kind is required")
	}

	data := req.Data.Normalize()
	if data.Kind == "" {
		data.Kind = req.ContractType.PartyKind()
	}
	if data.SignDate.IsZero() {
		data.SignDate = a.clock()
	}

	tpl, err := a.catalog.Lookup(req.Kind, req.ContractType.PartyKind())
	if err != nil {
		return Result{}, err
	}

	scheduleHTML := ""
	if req.Kind == document.Honorarios {
		scheduleHTML, err = a.renderScheduleTable(data.Terms)
		if err != nil {
			return Result{}, err
		}
	}

	pages := make([]Page, 0, len(tpl.Pages))
	bodies := make([]string, 0, len(tpl.Pages))
	for i, pg := range tpl.Pages {
		body, origin := pg.Body, Generated
		if raw, ok := req.Overrides[i]; ok {
			body, origin = a.sanitizer.Sanitize(raw), Overridden
		}

		// Structural anchors expand before token resolution so that a
		// subsequent resolver pass sees the final text exactly once.
		body = strings.ReplaceAll(body, catalog.ScheduleAnchor, scheduleHTML)
		if data.Partnership != nil {
			body = strings.ReplaceAll(body, catalog.ClientsAnchor, catalog.ExpandClients(data.Partnership.Clients))
		}

		body = a.resolver.Resolve(body, data)
		pages = append(pages, Page{Name: pg.Name, Origin: origin, HTML: body})
		bodies = append(bodies, body)
	}

	return Result{
		Document: document.Rendered{
			Kind:   req.Kind,
			Title:  tpl.Title,
			Pages:  bodies,
			Footer: a.footer,
		},
		Pages: pages,
	}, nil
}

// Bundle assembles the ordered document set a contract type implies.
func (a *Assembler) Bundle(ctx context.Context, ct party.ContractType, data party.Data) ([]document.Rendered, error) {
	var docs []document.Rendered
	for _, kind := range BundleKinds(ct) {
		res, err := a.Assemble(ctx, Request{ContractType: ct, Kind: kind, Data: data})
		if err != nil {
			return nil, fmt.Errorf("assembler: bundle %s: %w", kind, err)
		}
		docs = append(docs, res.Document)
	}
	return docs, nil
}

// BundleKinds lists the documents a contract type produces, in signing
// order.
func BundleKinds(ct party.ContractType) []document.Kind {
	if ct == party.PartnershipDeal {
		return []document.Kind{document.Parceria}
	}
	return []document.Kind{document.Honorarios, document.Procuracao, document.Hipossuficiencia}
}

// renderScheduleTable renders the payment demonstration table. Terms
// that yield no schedule collapse the anchor to nothing.
func (a *Assembler) renderScheduleTable(t schedule.Terms) (string, error) {
	entries := schedule.Compute(t)
	if len(entries) == 0 {
		return "", nil
	}

	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]string{
			"label":  e.Label,
			"due":    schedule.FormatDate(e.DueDate),
			"amount": money.FormatBRL(e.Amount),
		})
	}

	out, err := a.scheduleTpl.Execute(pongo2.Context{
		"rows":  rows,
		"total": money.FormatBRL(t.Total),
	})
	if err != nil {
		return "", fmt.Errorf("assembler: render schedule table: %w", err)
	}
	return strings.TrimSpace(out), nil
}
