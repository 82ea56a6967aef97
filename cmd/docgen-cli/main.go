package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/advocflow/docgen/pkg/assembler"
	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/party"
	"github.com/advocflow/docgen/pkg/render"
	"github.com/advocflow/docgen/pkg/renderers/print"
)

func main() {
	dataPath := flag.String("data", "", "party record JSON file (stdin if empty)")
	contract := flag.String("contract", "PF_BUNDLE", "contract type: PF_BUNDLE, PJ_BUNDLE or PARTNERSHIP")
	kind := flag.String("kind", "", "single document kind (full bundle if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	watermark := flag.String("watermark", "", "watermark text stamped on every page")
	interactive := flag.Bool("interactive", false, "prompt for missing fields before generating")
	flag.Parse()

	ctx := context.Background()

	data, err := loadData(*dataPath)
	if err != nil {
		log.Fatalf("Failed to load party record: %v", err)
	}

	ct := party.ContractType(strings.ToUpper(strings.TrimSpace(*contract)))
	if data.Kind == "" {
		data.Kind = ct.PartyKind()
	}

	if *interactive {
		if err := fillMissing(&data); err != nil {
			log.Fatalf("Interactive fill failed: %v", err)
		}
	}

	kinds := assembler.BundleKinds(ct)
	if *kind != "" {
		kinds = []document.Kind{document.Kind(strings.ToUpper(strings.TrimSpace(*kind)))}
	}

	gen := assembler.New()
	printRenderer, err := print.New()
	if err != nil {
		log.Fatalf("Failed to initialise print renderer: %v", err)
	}

	var out strings.Builder
	for _, k := range kinds {
		res, err := gen.Assemble(ctx, assembler.Request{
			ContractType: ct,
			Kind:         k,
			Data:         data,
		})
		if err != nil {
			log.Fatalf("Failed to assemble %s: %v", k, err)
		}

		html, err := printRenderer.Render(ctx, res.Document, render.Options{Watermark: *watermark})
		if err != nil {
			log.Fatalf("Failed to render %s: %v", k, err)
		}
		out.Write(html)
		out.WriteByte('\n')
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out.String()), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Documents written to %s\n", *output)
	} else {
		fmt.Println(out.String())
	}
}

func loadData(path string) (party.Data, error) {
	var data party.Data

	source := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return data, err
		}
		defer f.Close()
		source = f
	}

	if err := json.NewDecoder(source).Decode(&data); err != nil {
		return data, fmt.Errorf("decode party record: %w", err)
	}
	return data, nil
}
