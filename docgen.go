// Package docgen generates Brazilian legal document sets (fee
// contracts, powers of attorney, indigency declarations and partnership
// agreements) from a structured party record: placeholder resolution,
// payment schedule derivation and A4 print output.
package docgen

import (
	"context"

	"github.com/advocflow/docgen/pkg/assembler"
	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/party"
	"github.com/advocflow/docgen/pkg/render"
	"github.com/advocflow/docgen/pkg/renderers/print"
)

// Data aliases the party record consumed by every generation entry point.
type Data = party.Data

// ContractType selects which document bundle is generated.
type ContractType = party.ContractType

// Contract type values re-exported for convenience.
const (
	PFBundle        = party.PFBundle
	PJBundle        = party.PJBundle
	PartnershipDeal = party.PartnershipDeal
)

// Kind aliases the document kind enum.
type Kind = document.Kind

// Rendered aliases the assembled document output type.
type Rendered = document.Rendered

// Options aliases the per-render options renderers accept.
type Options = render.Options

// NewAssembler exposes the assembler constructor from the top-level
// module.
func NewAssembler(options ...assembler.Option) *assembler.Assembler {
	return assembler.New(options...)
}

// GenerateHTML assembles a single document and renders it as a complete
// A4 print HTML page. It is the simplest entry point for callers that
// just want HTML output.
func GenerateHTML(ctx context.Context, ct ContractType, kind Kind, data Data, options ...assembler.Option) ([]byte, error) {
	res, err := assembler.New(options...).Assemble(ctx, assembler.Request{
		ContractType: ct,
		Kind:         kind,
		Data:         data,
	})
	if err != nil {
		return nil, err
	}

	renderer, err := print.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, res.Document, render.Options{})
}

// GenerateBundle assembles the full document set a contract type
// implies, in signing order.
func GenerateBundle(ctx context.Context, ct ContractType, data Data, options ...assembler.Option) ([]Rendered, error) {
	return assembler.New(options...).Bundle(ctx, ct, data)
}
