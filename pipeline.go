package lastvote

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/atomic"
)

// ErrNoTransport is returned when api mode runs without a transport.
var ErrNoTransport = errors.New("no transport configured")

// ──────────────────────────────────────────────
// Response pipeline: three-tier graceful degradation
// ──────────────────────────────────────────────

// PipelineMode is one tier of the degradation chain. api is live model
// output, mock simulates latency over canned lines, fallback is canned
// lines with no delay.
type PipelineMode string

const (
	ModeAPI      PipelineMode = "api"
	ModeMock     PipelineMode = "mock"
	ModeFallback PipelineMode = "fallback"
)

// nextMode is the single-rung degradation chain. A failed tier steps
// straight to fallback: once something has gone wrong, the player
// should not also sit through a simulated delay.
func nextMode(m PipelineMode) PipelineMode {
	switch m {
	case ModeAPI, ModeMock:
		return ModeFallback
	}
	return ""
}

// DetectMode resolves the operating tier from the environment. An
// explicit LASTVOTE_API_MODE wins; otherwise a configured relay URL
// means api, and the zero environment means fallback.
func DetectMode(env Environment) PipelineMode {
	switch env.APIMode {
	case string(ModeAPI), string(ModeMock), string(ModeFallback):
		return PipelineMode(env.APIMode)
	}
	if env.APIURL != "" {
		return ModeAPI
	}
	return ModeFallback
}

// Response is one candidate's answer, whatever tier produced it.
type Response struct {
	CandidateID   string
	CandidateName string
	Content       string
	ModeUsed      PipelineMode
	// FellBackFrom is set when the requested tier failed and the next
	// tier answered instead. Empty on the happy path.
	FellBackFrom PipelineMode
	// RetryCount is the number of extra tier attempts this response
	// needed. Zero on the happy path.
	RetryCount   int
	Timestamp    time.Time
	ResponseTime time.Duration
}

// PipelineStats counts tier usage over the process lifetime.
type PipelineStats struct {
	APICalls      int64
	MockCalls     int64
	FallbackCalls int64
	StepDowns     int64
	Guaranteed    int64
}

// Pipeline produces candidate responses with guaranteed delivery: a
// response always comes back, even with no transport and no luck. It
// is safe for concurrent use.
type Pipeline struct {
	mode      PipelineMode
	table     ContentTable
	transport Transport

	// mockDelay simulates thinking time in mock mode. Tests replace it.
	mockDelay func() time.Duration

	mu  sync.Mutex
	rng *rand.Rand

	apiCalls      atomic.Int64
	mockCalls     atomic.Int64
	fallbackCalls atomic.Int64
	stepDowns     atomic.Int64
	guaranteed    atomic.Int64
}

// NewPipeline builds a pipeline in the given mode. transport may be
// nil unless mode is api. rng drives the mock delay jitter only; it
// never influences which line a question gets.
func NewPipeline(mode PipelineMode, table ContentTable, transport Transport, rng *rand.Rand) *Pipeline {
	p := &Pipeline{
		mode:      mode,
		table:     table,
		transport: transport,
		rng:       rng,
	}
	p.mockDelay = p.randomMockDelay
	return p
}

// NewPipelineFromEnv wires a pipeline off the process environment,
// with a relay transport when a URL is configured.
func NewPipelineFromEnv(env Environment, table ContentTable) *Pipeline {
	mode := DetectMode(env)
	var transport Transport
	if env.APIURL != "" {
		transport = NewRelayTransport(env.APIURL)
	}
	p := NewPipeline(mode, table, transport, rand.New(rand.NewSource(time.Now().UnixNano())))
	if !env.MockDelays {
		p.mockDelay = func() time.Duration { return 0 }
	}
	return p
}

// Mode reports the configured tier.
func (p *Pipeline) Mode() PipelineMode { return p.mode }

// Stats snapshots the usage counters.
func (p *Pipeline) Stats() PipelineStats {
	return PipelineStats{
		APICalls:      p.apiCalls.Load(),
		MockCalls:     p.mockCalls.Load(),
		FallbackCalls: p.fallbackCalls.Load(),
		StepDowns:     p.stepDowns.Load(),
		Guaranteed:    p.guaranteed.Load(),
	}
}

// Generate answers one question for one candidate. It never fails:
// if the configured tier errors, the next tier down answers and the
// response carries FellBackFrom; if that fails too, a guaranteed
// hardcoded line comes back.
func (p *Pipeline) Generate(ctx context.Context, candidate *Candidate, question string, history []ConversationEntry) Response {
	start := time.Now()

	resp, err := p.runMode(ctx, p.mode, candidate, question, history)
	if err == nil {
		return p.stamp(resp, start)
	}
	log.Printf("[Pipeline] %s mode failed for %s (%s): %v", p.mode, candidate.ID, ClassifyError(err), err)

	if next := nextMode(p.mode); next != "" {
		p.stepDowns.Inc()
		resp, err = p.runMode(ctx, next, candidate, question, history)
		if err == nil {
			resp.FellBackFrom = p.mode
			resp.RetryCount = 1
			return p.stamp(resp, start)
		}
		log.Printf("[Pipeline] step-down to %s also failed for %s: %v", next, candidate.ID, err)
	}

	p.guaranteed.Inc()
	return p.stamp(Response{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Content:       p.table.GuaranteedLine(),
		ModeUsed:      ModeFallback,
		FellBackFrom:  p.mode,
		RetryCount:    2,
	}, start)
}

func (p *Pipeline) stamp(resp Response, start time.Time) Response {
	resp.Timestamp = start
	resp.ResponseTime = time.Since(start)
	return resp
}

// GenerateAll fans one question out to every given candidate
// concurrently and returns responses in the same order.
func (p *Pipeline) GenerateAll(ctx context.Context, candidates []Candidate, question string, history []ConversationEntry) []Response {
	out := make([]Response, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = p.Generate(ctx, &candidates[i], question, history)
		}(i)
	}
	wg.Wait()
	return out
}

func (p *Pipeline) runMode(ctx context.Context, mode PipelineMode, candidate *Candidate, question string, history []ConversationEntry) (Response, error) {
	switch mode {
	case ModeAPI:
		return p.runAPI(ctx, candidate, question, history)
	case ModeMock:
		return p.runMock(ctx, candidate, question)
	default:
		p.fallbackCalls.Inc()
		return Response{
			CandidateID:   candidate.ID,
			CandidateName: candidate.Name,
			Content:       p.cannedLine(candidate, question),
			ModeUsed:      ModeFallback,
		}, nil
	}
}

func (p *Pipeline) runAPI(ctx context.Context, candidate *Candidate, question string, history []ConversationEntry) (Response, error) {
	if p.transport == nil {
		return Response{}, ErrNoTransport
	}
	p.apiCalls.Inc()

	prompt := BuildCandidatePrompt(candidate, PromptOptions{
		Question:       question,
		History:        history,
		IncludeHistory: true,
	})

	content, err := p.transport.Generate(ctx, prompt)
	if err != nil {
		return Response{}, err
	}
	return Response{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Content:       content,
		ModeUsed:      ModeAPI,
	}, nil
}

func (p *Pipeline) runMock(ctx context.Context, candidate *Candidate, question string) (Response, error) {
	p.mockCalls.Inc()

	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case <-time.After(p.mockDelay()):
	}

	return Response{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		Content:       p.cannedLine(candidate, question),
		ModeUsed:      ModeMock,
	}, nil
}

// cannedLine picks from the archetype pool with a stable hash of the
// question, so repeating a question repeats the answer.
func (p *Pipeline) cannedLine(candidate *Candidate, question string) string {
	lines := p.table.FallbackLines(candidate.Archetype)
	if len(lines) == 0 {
		return p.table.GuaranteedLine()
	}
	h := xxhash.Sum64String(question)
	return lines[h%uint64(len(lines))]
}

// randomMockDelay is 1-3 seconds, matching a slow human-ish pause.
func (p *Pipeline) randomMockDelay() time.Duration {
	if p.rng == nil {
		return 2 * time.Second
	}
	p.mu.Lock()
	jitter := p.rng.Int63n(int64(2 * time.Second))
	p.mu.Unlock()
	return time.Second + time.Duration(jitter)
}
