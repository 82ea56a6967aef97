package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/advocflow/docgen/internal/webhook"
	"github.com/advocflow/docgen/pkg/assembler"
	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/party"
	"github.com/advocflow/docgen/pkg/render"
	"github.com/advocflow/docgen/pkg/resolver"
)

type generateRequest struct {
	ContractType party.ContractType `json:"contractType"`
	Kind         document.Kind      `json:"kind"`
	Data         party.Data         `json:"data"`
	Overrides    map[string]string  `json:"overrides,omitempty"`
	Watermark    string             `json:"watermark,omitempty"`
	Full         bool               `json:"full,omitempty"`
}

type generatedDocument struct {
	Kind          document.Kind    `json:"kind"`
	Title         string           `json:"title"`
	Pages         []assembler.Page `json:"pages"`
	HTML          string           `json:"html,omitempty"`
	UnknownTokens []string         `json:"unknownTokens,omitempty"`
}

// generateHandler assembles one document (kind set) or the whole bundle
// (kind omitted). With full=true each document also carries the
// complete print HTML.
func generateHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
		if req.ContractType == "" {
			writeError(w, http.StatusBadRequest, "contractType is required")
			return
		}

		kinds := assembler.BundleKinds(req.ContractType)
		if req.Kind != "" {
			kinds = []document.Kind{req.Kind}
		}

		docs := make([]generatedDocument, 0, len(kinds))
		for _, kind := range kinds {
			doc, err := generateOne(r.Context(), deps, req, kind)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			docs = append(docs, doc)
		}

		writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
	}
}

func generateOne(ctx context.Context, deps Deps, req generateRequest, kind document.Kind) (generatedDocument, error) {
	res, err := deps.Assembler.Assemble(ctx, assembler.Request{
		ContractType: req.ContractType,
		Kind:         kind,
		Data:         req.Data,
		Overrides:    parseOverrides(req.Overrides),
	})
	if err != nil {
		return generatedDocument{}, err
	}
	deps.Metrics.IncrDocumentGenerated(string(kind))

	out := generatedDocument{
		Kind:  kind,
		Title: res.Document.Title,
		Pages: res.Pages,
	}

	// Leftover tokens mean the record is missing data. Soft failure:
	// the document still renders, the host surfaces the gap.
	out.UnknownTokens = resolver.Unknown(strings.Join(res.Document.Pages, "\n"))
	if len(out.UnknownTokens) > 0 {
		deps.Metrics.AddUnknownTokens(len(out.UnknownTokens))
		deps.Logger.Warn("unresolved placeholder tokens",
			zap.String("kind", string(kind)),
			zap.Strings("tokens", out.UnknownTokens),
		)
	}

	if req.Full {
		html, err := renderPrint(ctx, deps, res, req.Watermark)
		if err != nil {
			return generatedDocument{}, err
		}
		out.HTML = html
	}
	return out, nil
}

func renderPrint(ctx context.Context, deps Deps, res assembler.Result, watermark string) (string, error) {
	renderer, err := deps.Renderers.Get("print")
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(ctx, res.Document, render.Options{Watermark: watermark})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type submitResponse struct {
	HistoryID   string          `json:"historyId"`
	Documents   []document.Kind `json:"documents"`
	DeliveredAt string          `json:"deliveredAt"`
}

// submitHandler generates the full bundle, delivers it to the
// automation webhook and records the event in the history.
func submitHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
		if req.ContractType == "" {
			writeError(w, http.StatusBadRequest, "contractType is required")
			return
		}

		ctx := r.Context()
		rendered := make(map[document.Kind]string)
		var kinds []document.Kind
		for _, kind := range assembler.BundleKinds(req.ContractType) {
			res, err := deps.Assembler.Assemble(ctx, assembler.Request{
				ContractType: req.ContractType,
				Kind:         kind,
				Data:         req.Data,
			})
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			html, err := renderPrint(ctx, deps, res, "")
			if err != nil {
				writeError(w, http.StatusInternalServerError, err.Error())
				return
			}
			deps.Metrics.IncrDocumentGenerated(string(kind))
			rendered[kind] = html
			kinds = append(kinds, kind)
		}

		payload := webhook.Payload{
			ContractType: req.ContractType,
			Data:         req.Data.Normalize(),
			Documents:    rendered,
		}
		url := deps.Config.WebhookURL(string(req.ContractType.PartyKind()))
		if err := deps.Webhook.Deliver(ctx, url, payload); err != nil {
			deps.Metrics.IncrWebhookDelivery("error")
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		deps.Metrics.IncrWebhookDelivery("success")

		entry, err := deps.History.Add(ctx,
			req.Data.DisplayName(), bundleLabel(kinds), string(req.ContractType), req.Data)
		if err != nil {
			// Delivery already succeeded; history loss is logged, not fatal.
			deps.Logger.Error("history write failed", zap.Error(err))
		}

		writeJSON(w, http.StatusOK, submitResponse{
			HistoryID:   entry.ID,
			Documents:   kinds,
			DeliveredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// pdfHandler generates a single document and converts it through the
// external PDF service, returning the download URL.
func pdfHandler(deps Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}
		if req.ContractType == "" || req.Kind == "" {
			writeError(w, http.StatusBadRequest, "contractType and kind are required")
			return
		}

		ctx := r.Context()
		res, err := deps.Assembler.Assemble(ctx, assembler.Request{
			ContractType: req.ContractType,
			Kind:         req.Kind,
			Data:         req.Data,
			Overrides:    parseOverrides(req.Overrides),
		})
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		html, err := renderPrint(ctx, deps, res, req.Watermark)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		fileName := fmt.Sprintf("%s-%s.pdf",
			strings.ToLower(string(req.Kind)),
			strings.ReplaceAll(strings.ToLower(req.Data.DisplayName()), " ", "-"))
		url, err := deps.PDF.Convert(ctx, html, fileName)
		if err != nil {
			deps.Metrics.IncrPDFRequest("error")
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		deps.Metrics.IncrPDFRequest("success")
		deps.Metrics.IncrDocumentGenerated(string(req.Kind))

		writeJSON(w, http.StatusOK, map[string]string{"url": url})
	}
}

func bundleLabel(kinds []document.Kind) string {
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, string(k))
	}
	return strings.Join(parts, ",")
}
