package lastvote

import (
	"context"
	"errors"
	"testing"
	"time"
)

func failingTransport(err error) Transport {
	return TransportFunc(func(ctx context.Context, prompt BuiltPrompt) (string, error) {
		return "", err
	})
}

func fixedTransport(content string) Transport {
	return TransportFunc(func(ctx context.Context, prompt BuiltPrompt) (string, error) {
		return content, nil
	})
}

func newTestPipeline(mode PipelineMode, transport Transport) *Pipeline {
	p := NewPipeline(mode, DefaultTable{}, transport, nil)
	p.mockDelay = func() time.Duration { return 0 }
	return p
}

func TestPipeline_APIHappyPath(t *testing.T) {
	p := newTestPipeline(ModeAPI, fixedTransport("a considered answer"))
	roster := testRoster()

	resp := p.Generate(context.Background(), &roster[0], "why should we trust you?", nil)
	if resp.Content != "a considered answer" {
		t.Fatalf("unexpected content: %q", resp.Content)
	}
	if resp.ModeUsed != ModeAPI || resp.FellBackFrom != "" {
		t.Fatalf("expected clean api response, got mode=%s fellBackFrom=%s", resp.ModeUsed, resp.FellBackFrom)
	}
	if resp.CandidateID != roster[0].ID {
		t.Fatalf("wrong candidate id: %s", resp.CandidateID)
	}
	if resp.Timestamp.IsZero() || resp.RetryCount != 0 {
		t.Fatalf("bad metadata: %+v", resp)
	}
}

func TestPipeline_APIFailureFallsBack(t *testing.T) {
	p := newTestPipeline(ModeAPI, failingTransport(errors.New("dial tcp: connection refused")))
	roster := testRoster()

	resp := p.Generate(context.Background(), &roster[0], "why should we trust you?", nil)
	if resp.Content == "" {
		t.Fatal("degraded response must still carry content")
	}
	if resp.ModeUsed != ModeFallback {
		t.Fatalf("expected fallback mode, got %s", resp.ModeUsed)
	}
	if resp.FellBackFrom != ModeAPI {
		t.Fatalf("expected fellBackFrom=api, got %s", resp.FellBackFrom)
	}

	stats := p.Stats()
	if stats.StepDowns != 1 || stats.APICalls != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestPipeline_GuaranteedResponse(t *testing.T) {
	// api fails and the fallback table is empty of lines for the
	// archetype: the hardcoded line must still come back.
	empty := emptyLineTable{}
	p := NewPipeline(ModeAPI, empty, failingTransport(errors.New("boom")), nil)
	roster := testRoster()

	resp := p.Generate(context.Background(), &roster[0], "anything", nil)
	if resp.Content != empty.GuaranteedLine() {
		t.Fatalf("expected guaranteed line, got %q", resp.Content)
	}
}

// emptyLineTable has candidates but no canned dialogue.
type emptyLineTable struct{}

func (emptyLineTable) Candidates() []Candidate { return DefaultTable{}.Candidates() }
func (emptyLineTable) FallbackLines(Archetype) []string { return nil }
func (emptyLineTable) GuaranteedLine() string { return "I hear you." }
func (emptyLineTable) ClashLines(ClashTrigger) []string { return nil }
func (emptyLineTable) ConsequenceSet(string) (ConsequenceData, bool) {
	return ConsequenceData{}, false
}
func (emptyLineTable) AlternativeLine(string) string { return "" }

func TestPipeline_FallbackDeterministic(t *testing.T) {
	p := newTestPipeline(ModeFallback, nil)
	roster := testRoster()

	question := "What is your plan for the economy?"
	first := p.Generate(context.Background(), &roster[1], question, nil)
	second := p.Generate(context.Background(), &roster[1], question, nil)
	if first.Content != second.Content {
		t.Fatal("same question must pick the same canned line")
	}
	if first.ModeUsed != ModeFallback || first.FellBackFrom != "" {
		t.Fatalf("unexpected mode metadata: %+v", first)
	}
}

func TestPipeline_MockDelaysAndAnswers(t *testing.T) {
	p := newTestPipeline(ModeMock, nil)
	roster := testRoster()

	resp := p.Generate(context.Background(), &roster[2], "Will you keep us safe?", nil)
	if resp.ModeUsed != ModeMock {
		t.Fatalf("expected mock mode, got %s", resp.ModeUsed)
	}
	if resp.Content == "" {
		t.Fatal("mock mode must answer")
	}
}

func TestPipeline_GenerateAllKeepsOrder(t *testing.T) {
	p := newTestPipeline(ModeFallback, nil)
	roster := testRoster()

	responses := p.GenerateAll(context.Background(), roster, "one question for everyone", nil)
	if len(responses) != len(roster) {
		t.Fatalf("expected %d responses, got %d", len(roster), len(responses))
	}
	for i, r := range responses {
		if r.CandidateID != roster[i].ID {
			t.Fatalf("response %d out of order: got %s, want %s", i, r.CandidateID, roster[i].ID)
		}
		if r.Content == "" {
			t.Fatalf("empty content for %s", r.CandidateID)
		}
	}
}

func TestDetectMode(t *testing.T) {
	cases := []struct {
		env  Environment
		want PipelineMode
	}{
		{Environment{}, ModeFallback},
		{Environment{APIURL: "http://localhost:3001/api/chat"}, ModeAPI},
		{Environment{APIMode: "mock"}, ModeMock},
		{Environment{APIMode: "fallback", APIURL: "http://x"}, ModeFallback},
		{Environment{APIMode: "api"}, ModeAPI},
	}
	for _, c := range cases {
		if got := DetectMode(c.env); got != c.want {
			t.Fatalf("env %+v: expected %s, got %s", c.env, c.want, got)
		}
	}
}
