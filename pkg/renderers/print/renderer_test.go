package print

import (
	"context"
	"strings"
	"testing"

	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/render"
)

func sampleDoc() document.Rendered {
	return document.Rendered{
		Kind:  document.Procuracao,
		Title: "PROCURAÇÃO AD JUDICIA ET EXTRA",
		Pages: []string{
			"<p>Primeira página.</p>",
			"<p>Segunda página.</p>",
		},
		Footer: document.Footer{
			Office:  "Escritório de Advocacia AdvocFlow",
			Contact: "contato@advocflow.com.br",
			Counsel: "Responsável técnico: Dra. Helena Martins",
			OAB:     "OAB/RJ 145.220",
		},
	}
}

func TestRenderPrintDocument(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	out, err := r.Render(context.Background(), sampleDoc(), render.Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	html := string(out)
	for _, want := range []string{
		"size: A4 portrait",
		"margin: 20mm",
		"<h1>PROCURAÇÃO AD JUDICIA ET EXTRA</h1>",
		"<p>Primeira página.</p>",
		"<p>Segunda página.</p>",
		"Escritório de Advocacia AdvocFlow",
		"OAB/RJ 145.220",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("print output missing %q", want)
		}
	}
	if strings.Count(html, `<section class="doc-page">`) != 2 {
		t.Error("want one section per logical page")
	}
	if strings.Contains(html, "doc-watermark") {
		t.Error("watermark chrome present without a watermark")
	}
}

func TestRenderWatermark(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	out, err := r.Render(context.Background(), sampleDoc(), render.Options{Watermark: "MINUTA"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(string(out), `<div class="doc-watermark">MINUTA</div>`) {
		t.Error("watermark missing from output")
	}
}

func TestRenderRejectsEmptyDocument(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := r.Render(context.Background(), document.Rendered{}, render.Options{}); err == nil {
		t.Fatal("empty document: want error")
	}
}

func TestRendererMetadata(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if r.Name() != "print" {
		t.Errorf("Name() = %q", r.Name())
	}
	if r.ContentType() != "text/html; charset=utf-8" {
		t.Errorf("ContentType() = %q", r.ContentType())
	}
}
