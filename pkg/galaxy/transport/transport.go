// Package transport defines the single external collaborator the
// interact driver depends on: a synchronous send(bits) -> bits round
// trip to the alien server, grounded on spec's "Transport contract"
// (§6) and original_source/interpreter/src/lib.rs's use of a plain
// HTTP POST with no retry or backoff logic of its own.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Sender is the interface the driver depends on. bits and the returned
// string are both ASCII "0"/"1" strings, already modulated/demodulated
// by the caller — this package never touches the codec.
type Sender interface {
	Send(ctx context.Context, bits string) (string, error)
}

// DefaultBaseURL is the production alien server endpoint from spec §6.
const DefaultBaseURL = "https://icfpc2020-api.testkontur.ru/aliens/send"

// HTTPSender implements Sender against the alien server over HTTP. The
// Client field defaults to http.DefaultClient lazily, but may be set
// explicitly in tests to point at an httptest.Server.
type HTTPSender struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
}

// NewHTTPSender constructs a sender for the production endpoint, using
// apiKey as the apiKey query parameter on every request.
func NewHTTPSender(apiKey string) *HTTPSender {
	return &HTTPSender{BaseURL: DefaultBaseURL, APIKey: apiKey}
}

func (h *HTTPSender) client() *http.Client {
	if h.Client != nil {
		return h.Client
	}
	//
	return http.DefaultClient
}

// Send POSTs bits to the alien server and returns its response body,
// unmodified. ctx lets a caller cancel a pending round trip between
// ticks, per spec §5.
func (h *HTTPSender) Send(ctx context.Context, bits string) (string, error) {
	url := fmt.Sprintf("%s?apiKey=%s", h.BaseURL, h.APIKey)
	//
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(bits))
	if err != nil {
		return "", fmt.Errorf("building alien server request: %w", err)
	}
	//
	resp, err := h.client().Do(req)
	if err != nil {
		return "", fmt.Errorf("alien server round trip: %w", err)
	}
	//
	defer resp.Body.Close()
	//
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading alien server response: %w", err)
	}
	//
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("alien server returned status %d: %s", resp.StatusCode, string(body))
	}
	//
	return string(body), nil
}
