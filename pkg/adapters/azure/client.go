// Package azure implements the Translator port against the Azure Translator
// 3.0 REST API.
package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint is the Azure Translator 3.0 endpoint, already carrying the
// api-version query parameter.
const DefaultEndpoint = "https://api.cognitive.microsofttranslator.com/translate?api-version=3.0"

// maxBatchSize is the Azure per-request text limit; larger batches are
// chunked transparently.
const maxBatchSize = 100

// Client calls the Azure Translator API. It is safe for concurrent use.
type Client struct {
	key      string
	region   string
	endpoint string
	http     *http.Client
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithRegion sets the Azure resource region header (default "global").
func WithRegion(region string) Option {
	return func(c *Client) {
		c.region = region
	}
}

// WithEndpoint overrides the service endpoint. The value must already carry
// the api-version query parameter, as DefaultEndpoint does.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient overrides the underlying HTTP client, e.g. to set a custom
// timeout or transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a Client with the given subscription key.
func New(key string, opts ...Option) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("azure: subscription key is required")
	}
	c := &Client{
		key:      key,
		region:   "global",
		endpoint: DefaultEndpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type requestItem struct {
	Text string `json:"Text"`
}

type responseItem struct {
	Translations []struct {
		Text string `json:"text"`
		To   string `json:"to"`
	} `json:"translations"`
}

// Translate implements ports.Translator. The batch is split into chunks of
// at most 100 texts to respect the service request limits; the results are
// reassembled in input order.
func (c *Client) Translate(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	if !IsSupportedLanguage(targetLang) {
		return nil, fmt.Errorf("azure: unsupported target language %q", targetLang)
	}

	out := make([]string, 0, len(texts))
	for start := 0; start < len(texts); start += maxBatchSize {
		end := min(start+maxBatchSize, len(texts))
		chunk, err := c.translateChunk(ctx, texts[start:end], targetLang)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

func (c *Client) translateChunk(ctx context.Context, texts []string, targetLang string) ([]string, error) {
	body := make([]requestItem, len(texts))
	for i, text := range texts {
		body[i] = requestItem{Text: text}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("azure: encode request: %w", err)
	}

	url := fmt.Sprintf("%s&to=%s", c.endpoint, targetLang)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("azure: build request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Ocp-Apim-Subscription-Region", c.region)
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("azure: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("azure: unexpected status %d: %s", resp.StatusCode, snippet)
	}

	var items []responseItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("azure: decode response: %w", err)
	}
	if len(items) != len(texts) {
		return nil, fmt.Errorf("azure: expected %d results, got %d", len(texts), len(items))
	}

	out := make([]string, len(items))
	for i, item := range items {
		if len(item.Translations) == 0 {
			return nil, fmt.Errorf("azure: result %d carries no translation", i)
		}
		out[i] = item.Translations[0].Text
	}
	return out, nil
}
