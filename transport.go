package lastvote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
)

// ──────────────────────────────────────────────
// Model transports
// ──────────────────────────────────────────────

// Transport turns a built prompt into uncensored candidate speech. The
// pipeline owns retries at the top level; a transport may still retry
// internally for transient upstream failures.
type Transport interface {
	Generate(ctx context.Context, prompt BuiltPrompt) (string, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, prompt BuiltPrompt) (string, error)

func (f TransportFunc) Generate(ctx context.Context, prompt BuiltPrompt) (string, error) {
	return f(ctx, prompt)
}

// ──────────────────────────────────────────────
// Relay transport: HTTP to the hosting backend
// ──────────────────────────────────────────────

const (
	relayTimeout    = 10 * time.Second
	relayMaxRetries = 3
	relayBaseDelay  = 1 * time.Second
	relayMaxDelay   = 30 * time.Second
)

type relayRequest struct {
	Question     string `json:"question"`
	SystemPrompt string `json:"systemPrompt"`
	CandidateID  string `json:"candidateId"`
}

type relayResponse struct {
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

// RelayTransport calls the hosting relay over HTTP. The relay keeps
// the model API key server-side; this client never sees it.
type RelayTransport struct {
	url    string
	client *http.Client
}

func NewRelayTransport(url string) *RelayTransport {
	return &RelayTransport{
		url: url,
		client: &http.Client{
			Timeout: relayTimeout,
		},
	}
}

// Generate posts the prompt to the relay with exponential backoff.
// Rate limiting (429) counts as a retryable failure like any other.
func (t *RelayTransport) Generate(ctx context.Context, prompt BuiltPrompt) (string, error) {
	body, err := json.Marshal(relayRequest{
		Question:     prompt.UserPrompt,
		SystemPrompt: prompt.SystemPrompt,
		CandidateID:  prompt.CandidateID,
	})
	if err != nil {
		return "", err
	}

	var lastErr error
	delay := relayBaseDelay

	for attempt := 0; attempt <= relayMaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
			if delay > relayMaxDelay {
				delay = relayMaxDelay
			}
		}

		content, err := t.post(ctx, body)
		if err == nil {
			return content, nil
		}
		lastErr = err
	}
	return "", lastErr
}

func (t *RelayTransport) post(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("rate limited (429)")
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("relay error: %s", resp.Status)
	}

	var out relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("relay: %s", out.Error)
	}
	if strings.TrimSpace(out.Content) == "" {
		return "", fmt.Errorf("%w: empty content", ErrInvalidResponse)
	}
	return out.Content, nil
}

// ──────────────────────────────────────────────
// Gemini transport: direct model access
// ──────────────────────────────────────────────

// GeminiTransport talks to the Gemini API directly. Used by the relay
// process; game clients should prefer RelayTransport so the API key
// stays off the player's machine.
type GeminiTransport struct {
	model *genai.GenerativeModel
}

func NewGeminiTransport(client *genai.Client, modelName string) *GeminiTransport {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiTransport{model: client.GenerativeModel(modelName)}
}

func (t *GeminiTransport) Generate(ctx context.Context, prompt BuiltPrompt) (string, error) {
	resp, err := t.model.GenerateContent(ctx, genai.Text(prompt.FullPrompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates returned", ErrInvalidResponse)
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("%w: unexpected part type", ErrInvalidResponse)
	}
	if strings.TrimSpace(string(text)) == "" {
		return "", fmt.Errorf("%w: empty content", ErrInvalidResponse)
	}
	return string(text), nil
}
