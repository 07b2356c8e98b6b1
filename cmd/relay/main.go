// Command relay is the thin HTTP layer that keeps the model API key
// off the player's machine. It accepts a prompt pair, calls the
// upstream model, and returns plain text.
//
// Run with: go run ./cmd/relay
package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	lastvote "github.com/ChindanaiNaKub/thelastvote"
)

type chatRequest struct {
	Question     string `json:"question"`
	SystemPrompt string `json:"systemPrompt"`
	CandidateID  string `json:"candidateId"`
}

type chatResponse struct {
	Content string `json:"content"`
	Error   string `json:"error,omitempty"`
}

type server struct {
	transport lastvote.Transport
}

func main() {
	env := lastvote.EnvironmentFromEnv()
	if env.GeminiAPIKey == "" {
		log.Fatal("[Relay] GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(env.GeminiAPIKey))
	if err != nil {
		log.Fatalf("[Relay] create client: %v", err)
	}
	defer client.Close()

	s := &server{transport: lastvote.NewGeminiTransport(client, os.Getenv("LASTVOTE_MODEL"))}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/chat", s.handleChat)

	addr := ":" + port()
	log.Printf("[Relay] listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, withCORS(mux)))
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "3001"
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, chatResponse{Error: "POST only"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatResponse{Error: "invalid JSON body"})
		return
	}
	if req.Question == "" || req.SystemPrompt == "" {
		writeJSON(w, http.StatusBadRequest, chatResponse{Error: "missing required fields: question, systemPrompt"})
		return
	}

	log.Printf("[Relay] question for %s (%d chars)", req.CandidateID, len(req.Question))

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	start := time.Now()
	content, err := s.transport.Generate(ctx, lastvote.BuiltPrompt{
		SystemPrompt: req.SystemPrompt,
		UserPrompt:   req.Question,
		FullPrompt:   req.SystemPrompt + "\n\n" + req.Question,
		CandidateID:  req.CandidateID,
	})
	if err != nil {
		log.Printf("[Relay] generation failed (%s): %v", lastvote.ClassifyError(err), err)
		writeJSON(w, http.StatusBadGateway, chatResponse{Error: "generation failed"})
		return
	}

	log.Printf("[Relay] responded in %s", time.Since(start).Round(time.Millisecond))
	writeJSON(w, http.StatusOK, chatResponse{Content: content})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Relay] write response: %v", err)
	}
}

// withCORS allows the browser client to call from another origin.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
