package lastvote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRelayTransport_Success(t *testing.T) {
	var got relayRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(relayResponse{Content: "I stand by my record."})
	}))
	defer srv.Close()

	roster := testRoster()
	prompt := BuildCandidatePrompt(&roster[0], PromptOptions{Question: "Why should we trust you?"})

	transport := NewRelayTransport(srv.URL)
	content, err := transport.Generate(context.Background(), prompt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "I stand by my record." {
		t.Fatalf("unexpected content: %q", content)
	}
	if got.CandidateID != roster[0].ID {
		t.Fatalf("relay did not receive candidate id, got %q", got.CandidateID)
	}
	if got.SystemPrompt == "" || got.Question == "" {
		t.Fatal("relay request missing prompt fields")
	}
}

func TestRelayTransport_RetriesThenGivesUp(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// A short deadline cuts the backoff sleeps; the first attempt
	// runs before any sleep, so the failure is still observed.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	roster := testRoster()
	prompt := BuildCandidatePrompt(&roster[0], PromptOptions{Question: "anything"})

	transport := NewRelayTransport(srv.URL)
	_, err := transport.Generate(ctx, prompt)
	if err == nil {
		t.Fatal("expected error from failing relay")
	}
	if hits == 0 {
		t.Fatal("relay was never called")
	}
}

func TestRelayTransport_EmptyContentIsInvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(relayResponse{Content: "   "})
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	roster := testRoster()
	prompt := BuildCandidatePrompt(&roster[0], PromptOptions{Question: "anything"})

	transport := NewRelayTransport(srv.URL)
	_, err := transport.Generate(ctx, prompt)
	if err == nil {
		t.Fatal("expected error for blank content")
	}
	// The deadline may fire during backoff, so the final error is
	// either the sentinel or the context expiry.
	if !errors.Is(err, ErrInvalidResponse) && !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRelayTransport_RateLimitClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	roster := testRoster()
	prompt := BuildCandidatePrompt(&roster[0], PromptOptions{Question: "anything"})

	transport := NewRelayTransport(srv.URL)
	_, err := transport.Generate(ctx, prompt)
	if err == nil {
		t.Fatal("expected error from rate-limited relay")
	}
}

func TestClassifyError(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorCategory
	}{
		{errors.New("rate limited (429)"), ErrorRateLimit},
		{errors.New("request timeout exceeded"), ErrorTimeout},
		{context.DeadlineExceeded, ErrorTimeout},
		{errors.New("dial tcp: connection refused"), ErrorNetwork},
		{ErrInvalidResponse, ErrorInvalidResponse},
		{errors.New("something else entirely"), ErrorUnknown},
	}
	for _, c := range cases {
		if got := ClassifyError(c.err); got != c.want {
			t.Fatalf("ClassifyError(%v): expected %s, got %s", c.err, c.want, got)
		}
	}
}
