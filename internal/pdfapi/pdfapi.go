// Package pdfapi calls the external HTML-to-PDF conversion service.
// The service receives the full print HTML and returns a download URL
// for the produced file.
package pdfapi

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
)

// conversionOptions mirror the print chrome: A4 portrait with 20mm
// margins and backgrounds on, so the PDF matches the HTML preview.
type conversionOptions struct {
	Format          string `json:"format"`
	Orientation     string `json:"orientation"`
	Margins         string `json:"margins"`
	PrintBackground bool   `json:"printBackground"`
}

type conversionRequest struct {
	HTML     string            `json:"html"`
	FileName string            `json:"fileName,omitempty"`
	Options  conversionOptions `json:"options"`
}

type conversionResponse struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

// Client converts print HTML into PDFs through the external API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	retry   resilience.Config
	logger  *zap.Logger
}

// New constructs a PDF API client.
func New(baseURL, apiKey string, timeout time.Duration, retry resilience.Config, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		breaker: resilience.NewCircuitBreaker("pdfapi"),
		retry:   retry,
		logger:  logger,
	}
}

// Convert sends html to the conversion service and returns the download
// URL of the produced PDF.
func (c *Client) Convert(ctx context.Context, html, fileName string) (string, error) {
	if c.baseURL == "" {
		return "", fmt.Errorf("pdfapi: base url is not configured")
	}

	body, err := json.Marshal(conversionRequest{
		HTML:     html,
		FileName: fileName,
		Options: conversionOptions{
			Format:          "A4",
			Orientation:     "portrait",
			Margins:         "20mm",
			PrintBackground: true,
		},
	})
	if err != nil {
		return "", fmt.Errorf("pdfapi: marshal request: %w", err)
	}

	var url string
	err = resilience.RetryWithBackoff(ctx, c.retry, func() error {
		result, err := c.breaker.Execute(func() (any, error) {
			return c.post(ctx, body)
		})
		if err != nil {
			return err
		}
		url = result.(string)
		return nil
	})
	if err != nil {
		c.logger.Error("pdf conversion failed", zap.String("file", fileName), zap.Error(err))
		return "", fmt.Errorf("pdfapi: convert: %w", err)
	}

	c.logger.Info("pdf converted", zap.String("file", fileName), zap.String("url", url))
	return url, nil
}

func (c *Client) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("pdfapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("pdfapi: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("pdfapi: service returned %s", resp.Status)
	}

	var out conversionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("pdfapi: decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("pdfapi: service error: %s", out.Error)
	}
	if out.URL == "" {
		return "", fmt.Errorf("pdfapi: service returned no download url")
	}
	return out.URL, nil
}
