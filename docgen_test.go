package docgen

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/party"
)

func TestGenerateHTMLEndToEnd(t *testing.T) {
	data := Data{
		Kind: party.PF,
		Individual: &party.Individual{
			Name:          "Maria da Silva",
			MaritalStatus: "casada",
			Profession:    "professora",
			Nationality:   "brasileira",
			CPF:           "123.456.789-00",
			Street:        "Rua das Flores, 123",
			City:          "Niterói",
			State:         "RJ",
			CEP:           "24000-000",
		},
	}

	out, err := GenerateHTML(context.Background(), PFBundle, document.Procuracao, data)
	if err != nil {
		t.Fatalf("GenerateHTML() error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "Maria da Silva") {
		t.Error("output missing the party name")
	}
	if !strings.Contains(html, "PROCURAÇÃO") {
		t.Error("output missing the document title")
	}
}

func TestGenerateBundleKinds(t *testing.T) {
	docs, err := GenerateBundle(context.Background(), PJBundle, Data{
		Kind:   party.PJ,
		Entity: &party.Entity{LegalName: "Transportes Ipanema Ltda"},
	})
	if err != nil {
		t.Fatalf("GenerateBundle() error: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("bundle size = %d, want 3", len(docs))
	}
}

func TestEmbeddedFilesystems(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedCatalog(), "honorarios_pf.yaml"); err != nil {
		t.Errorf("embedded catalog unreadable: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedPrintTemplates(), "document.tmpl"); err != nil {
		t.Errorf("embedded print templates unreadable: %v", err)
	}
}
