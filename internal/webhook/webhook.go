// Package webhook delivers generated document sets to the downstream
// automation endpoint. Delivery failure is the host's hard error
// boundary: generation itself never fails soft, the webhook can.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/advocflow/docgen/internal/resilience"
	"github.com/advocflow/docgen/pkg/document"
	"github.com/advocflow/docgen/pkg/party"
)

// Payload is the JSON body posted to the automation endpoint.
type Payload struct {
	ContractType party.ContractType `json:"contractType"`
	Data         party.Data         `json:"data"`
	// Documents maps document kind to the rendered print HTML.
	Documents map[document.Kind]string `json:"documents"`
	Timestamp string                   `json:"timestamp"`
}

// Client posts payloads with retry and a circuit breaker.
type Client struct {
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	retry   resilience.Config
	logger  *zap.Logger
}

// New constructs a webhook client.
func New(timeout time.Duration, retry resilience.Config, logger *zap.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		breaker: resilience.NewCircuitBreaker("webhook"),
		retry:   retry,
		logger:  logger,
	}
}

// Deliver posts the payload to url. The timestamp is stamped here so
// retries carry the original submission time.
func (c *Client) Deliver(ctx context.Context, url string, p Payload) error {
	if url == "" {
		return fmt.Errorf("webhook: delivery url is not configured")
	}
	if p.Timestamp == "" {
		p.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("webhook: marshal payload: %w", err)
	}

	err = resilience.RetryWithBackoff(ctx, c.retry, func() error {
		_, err := c.breaker.Execute(func() (any, error) {
			return nil, c.post(ctx, url, body)
		})
		return err
	})
	if err != nil {
		c.logger.Error("webhook delivery failed",
			zap.String("url", url),
			zap.String("contract_type", string(p.ContractType)),
			zap.Error(err),
		)
		return fmt.Errorf("webhook: deliver to %s: %w", url, err)
	}

	c.logger.Info("webhook delivered",
		zap.String("url", url),
		zap.String("contract_type", string(p.ContractType)),
		zap.Int("documents", len(p.Documents)),
	)
	return nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: endpoint returned %s", resp.Status)
	}
	return nil
}
