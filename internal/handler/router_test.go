package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/advocflow/docgen/internal/config"
	"github.com/advocflow/docgen/internal/handler"
	"github.com/advocflow/docgen/internal/history"
	"github.com/advocflow/docgen/internal/observability"
	"github.com/advocflow/docgen/internal/pdfapi"
	"github.com/advocflow/docgen/internal/resilience"
	"github.com/advocflow/docgen/internal/webhook"
	"github.com/advocflow/docgen/pkg/assembler"
	"github.com/advocflow/docgen/pkg/render"
	"github.com/advocflow/docgen/pkg/renderers/print"
)

func newTestRouter(t *testing.T, webhookURL string) http.Handler {
	t.Helper()

	registry := render.NewRegistry()
	printRenderer, err := print.New()
	require.NoError(t, err)
	registry.MustRegister(printRenderer)

	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	retry := resilience.Config{MaxRetries: 1, InitialBackoff: 5 * time.Millisecond}
	logger := zap.NewNop()

	return handler.NewRouter(handler.Deps{
		Assembler: assembler.New(),
		Renderers: registry,
		Webhook:   webhook.New(time.Second, retry, logger),
		PDF:       pdfapi.New("", "", time.Second, retry, logger),
		History:   store,
		Config: &config.Config{
			WebhookURLPF: webhookURL,
			WebhookURLPJ: webhookURL,
		},
		Metrics: observability.NewMetrics(),
		Logger:  logger,
	})
}

func pfBody() map[string]any {
	return map[string]any{
		"contractType": "PF_BUNDLE",
		"data": map[string]any{
			"kind": "PF",
			"pf": map[string]any{
				"nome":          "Maria da Silva",
				"estadoCivil":   "casada",
				"profissao":     "professora",
				"nacionalidade": "brasileira",
				"cpf":           "123.456.789-00",
				"rua":           "Rua das Flores, 123",
				"cidade":        "Niterói",
				"estado":        "RJ",
				"cep":           "24000-000",
			},
			"numProcesso": "0001234-56.2024.8.19.0002",
		},
	}
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, "")
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestGenerateBundle(t *testing.T) {
	router := newTestRouter(t, "")
	rec := postJSON(t, router, "/v1/documents/generate", pfBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Documents []struct {
			Kind  string `json:"kind"`
			Title string `json:"title"`
			Pages []struct {
				Origin string `json:"origin"`
				HTML   string `json:"html"`
			} `json:"pages"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Documents, 3)
	assert.Equal(t, "HONORARIOS", resp.Documents[0].Kind)
	assert.Equal(t, "PROCURACAO", resp.Documents[1].Kind)
	assert.Equal(t, "HIPOSSUFICIENCIA", resp.Documents[2].Kind)
	assert.Contains(t, resp.Documents[1].Pages[0].HTML, "Maria da Silva")
}

func TestGenerateSingleDocumentWithFullHTML(t *testing.T) {
	router := newTestRouter(t, "")
	body := pfBody()
	body["kind"] = "PROCURACAO"
	body["full"] = true
	rec := postJSON(t, router, "/v1/documents/generate", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Documents []struct {
			Kind string `json:"kind"`
			HTML string `json:"html"`
		} `json:"documents"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Documents, 1)
	assert.Contains(t, resp.Documents[0].HTML, "<!DOCTYPE html>")
	assert.Contains(t, resp.Documents[0].HTML, "size: A4 portrait")
}

func TestGenerateRejectsMissingContractType(t *testing.T) {
	router := newTestRouter(t, "")
	rec := postJSON(t, router, "/v1/documents/generate", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitDeliversWebhookAndRecordsHistory(t *testing.T) {
	received := make(chan webhook.Payload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var p webhook.Payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		received <- p
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	router := newTestRouter(t, srv.URL)
	rec := postJSON(t, router, "/v1/documents/submit", pfBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	payload := <-received
	assert.Len(t, payload.Documents, 3)
	assert.Equal(t, "Maria da Silva", payload.Data.Individual.Name)

	histReq := httptest.NewRequest(http.MethodGet, "/v1/history", nil)
	histRec := httptest.NewRecorder()
	router.ServeHTTP(histRec, histReq)
	require.Equal(t, http.StatusOK, histRec.Code)

	var hist struct {
		Entries []history.Entry `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(histRec.Body.Bytes(), &hist))
	require.Len(t, hist.Entries, 1)
	assert.Equal(t, "Maria da Silva", hist.Entries[0].ClientName)
	assert.Equal(t, "PF_BUNDLE", hist.Entries[0].ContractType)
}

func TestSubmitFailsWhenWebhookDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	router := newTestRouter(t, srv.URL)
	rec := postJSON(t, router, "/v1/documents/submit", pfBody())
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
