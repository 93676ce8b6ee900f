// Package advisor proxies user questions to an external
// OpenAI-compatible language-model API with injected financial context.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// clientTimeout is the total request timeout for one completion.
	clientTimeout = 30 * time.Second
	// dialTimeout is the connection timeout.
	dialTimeout = 10 * time.Second
	// tlsHandshakeTimeout is the TLS negotiation timeout.
	tlsHandshakeTimeout = 10 * time.Second
	// responseHeaderTimeout is time to wait for response headers.
	responseHeaderTimeout = 15 * time.Second
)

// newHTTPClient creates an HTTP client configured for provider calls.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: clientTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   dialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   tlsHandshakeTimeout,
			ResponseHeaderTimeout: responseHeaderTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
		},
	}
}

// Client is a minimal chat-completions client. One request per call,
// no retries, no streaming.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient creates a Client for the given provider endpoint. An empty
// apiKey produces an unconfigured client; calls against it must be
// guarded with Configured.
func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		httpClient: newHTTPClient(),
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	// User is the provider-side session key, letting the provider
	// maintain conversational memory per user.
	User string `json:"user,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete issues a single chat-completions request carrying a
// system-level instruction and the user's message, and returns the
// provider's reply text verbatim.
func (c *Client) Complete(ctx context.Context, sessionKey, systemPrompt, userMessage string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		User: sessionKey,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &UpstreamError{Message: err.Error()}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &UpstreamError{Message: fmt.Sprintf("unexpected provider response (status %d)", resp.StatusCode)}
	}

	if resp.StatusCode != http.StatusOK {
		message := fmt.Sprintf("provider returned status %d", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			message = parsed.Error.Message
		}
		return "", &UpstreamError{Message: message}
	}

	if len(parsed.Choices) == 0 {
		return "", &UpstreamError{Message: "provider returned no choices"}
	}

	return parsed.Choices[0].Message.Content, nil
}
