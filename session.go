package lastvote

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ──────────────────────────────────────────────
// Session: the orchestration layer
// ──────────────────────────────────────────────

// senatorTwistChance is the probability the hidden senator overrides
// the player's vote with another finalist.
const senatorTwistChance = 0.6

var (
	// ErrBusy means a question round is already in flight.
	ErrBusy = errors.New("session busy")

	// ErrNoQuestionsLeft means the question budget is exhausted.
	ErrNoQuestionsLeft = errors.New("no questions remaining")

	// ErrEliminationCap means no further eliminations are allowed.
	ErrEliminationCap = errors.New("elimination cap reached")

	// ErrCandidateEliminated means the operation named an already
	// eliminated candidate.
	ErrCandidateEliminated = errors.New("candidate already eliminated")
)

// Session drives one playthrough. It serializes every state change
// through the reducer, owns all randomness and clock access, and calls
// the pipeline and generators between dispatches. Safe for concurrent
// use; concurrent question rounds are rejected with ErrBusy rather
// than queued.
type Session struct {
	mu       sync.Mutex
	state    GameState
	table    ContentTable
	pipeline *Pipeline
	rng      *rand.Rand
	now      func() time.Time
}

// NewSession starts a fresh playthrough. rng drives the session-start
// secret shuffle and the senator twist; pass a seeded source for
// reproducible runs.
func NewSession(table ContentTable, pipeline *Pipeline, rng *rand.Rand) *Session {
	s := &Session{
		table:    table,
		pipeline: pipeline,
		rng:      rng,
		now:      time.Now,
	}
	s.state = InitialState(s.shuffledRoster())
	return s
}

// shuffledRoster draws each candidate's active secret from their pool,
// so replays can surface different hidden material.
func (s *Session) shuffledRoster() []Candidate {
	roster := s.table.Candidates()
	if s.rng == nil {
		return roster
	}
	for i := range roster {
		c := &roster[i]
		if len(c.AltSecrets) == 0 {
			continue
		}
		pool := append([]string{c.HiddenSecret}, c.AltSecrets...)
		c.HiddenSecret = pool[s.rng.Intn(len(pool))]
	}
	return roster
}

// State returns a snapshot of the current aggregate. The reducer's
// copy-on-write discipline makes the value safe to read freely.
func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) apply(actions ...Action) {
	for _, a := range actions {
		s.state = Reduce(s.state, a)
	}
}

// Advance moves the session to the next phase, enforcing the legal
// transition graph. Entry conditions beyond the graph (question budget,
// finalist count for voting) are checked here too.
func (s *Session) Advance(to GamePhase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := CheckTransition(s.state.Phase, to); err != nil {
		return err
	}
	if to == PhaseVoting {
		if active := len(s.state.ActiveCandidates()); active != 2 {
			return fmt.Errorf("voting needs exactly 2 finalists, have %d", active)
		}
	}
	s.apply(SetPhase{Phase: to})
	return nil
}

// SelectCandidate sets the question-targeting context.
func (s *Session) SelectCandidate(candidateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(SelectCandidate{CandidateID: candidateID})
}

// AskQuestion runs one full question round: append the player's
// question, consume budget, fan the question out to every active
// candidate, append their responses contiguously in roster order, then
// recompute pressure, clash, and tension. Responses are returned in
// the same order they were appended.
func (s *Session) AskQuestion(ctx context.Context, question, targetID string) ([]Response, error) {
	s.mu.Lock()
	if s.state.Phase != PhaseQuestioning {
		s.mu.Unlock()
		return nil, fmt.Errorf("cannot ask in phase %q", s.state.Phase)
	}
	if s.state.QuestionsRemaining <= 0 {
		s.mu.Unlock()
		return nil, ErrNoQuestionsLeft
	}
	if s.state.IsProcessing {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	if targetID != "" {
		if s.state.CandidateByID(targetID) == nil {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrUnknownCandidate, targetID)
		}
		if s.state.IsEliminated(targetID) {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %s", ErrCandidateEliminated, targetID)
		}
	}

	now := s.now()
	s.apply(
		SetProcessing{Processing: true},
		AddEntry{Entry: ConversationEntry{
			ID:                uuid.NewString(),
			Timestamp:         now,
			Type:              EntryQuestion,
			Speaker:           SpeakerPlayer,
			Content:           question,
			TargetedCandidate: targetID,
		}},
		DecrementQuestions{},
		TrackQuestion{
			Question:    question,
			CandidateID: targetID,
			Topics:      AnalyzeQuestionTopics(question),
			Aggressive:  IsAggressiveQuestion(question),
			Suspicion:   AnalyzeSuspicion(question),
			At:          now,
		},
	)

	active := s.state.ActiveCandidates()
	history := s.state.ConversationHistory
	s.mu.Unlock()

	// Fan-out happens outside the lock; IsProcessing keeps a second
	// round from interleaving.
	responses := s.pipeline.GenerateAll(ctx, active, question, history)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range responses {
		s.apply(AddEntry{Entry: ConversationEntry{
			ID:        uuid.NewString(),
			Timestamp: s.now(),
			Type:      EntryResponse,
			Speaker:   r.CandidateID,
			Content:   r.Content,
		}})
	}

	s.recomputeDerived()
	s.apply(SetProcessing{Processing: false})
	return responses, nil
}

// Eliminate removes a candidate between question rounds. Idempotence
// lives in the reducer; the cap and phase checks live here because
// they are player-facing contract violations.
func (s *Session) Eliminate(candidateID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseElimination {
		return fmt.Errorf("cannot eliminate in phase %q", s.state.Phase)
	}
	if s.state.CandidateByID(candidateID) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownCandidate, candidateID)
	}
	if s.state.IsEliminated(candidateID) {
		return fmt.Errorf("%w: %s", ErrCandidateEliminated, candidateID)
	}
	if len(s.state.EliminatedCandidateIDs) >= MaxEliminations {
		return ErrEliminationCap
	}

	now := s.now()
	s.apply(
		EliminateCandidate{CandidateID: candidateID, At: now},
		TrackDecision{At: now},
	)
	s.recomputeDerived()

	log.Printf("[Session] eliminated %s, %d remaining", candidateID, len(s.state.ActiveCandidates()))
	return nil
}

// VoteResult reports where the player's vote actually landed.
type VoteResult struct {
	RequestedID string
	FinalID     string
	// Overridden is true when the senator twist redirected the vote.
	Overridden bool
}

// CastVote records the final choice, rolls the senator twist, computes
// the aftermath exactly once, and moves to the consequence phase. The
// twist happens strictly before consequence generation so the
// generator stays pure.
func (s *Session) CastVote(candidateID string) (VoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != PhaseVoting {
		return VoteResult{}, fmt.Errorf("cannot vote in phase %q", s.state.Phase)
	}
	if s.state.CandidateByID(candidateID) == nil {
		return VoteResult{}, fmt.Errorf("%w: %s", ErrUnknownCandidate, candidateID)
	}
	if s.state.IsEliminated(candidateID) {
		return VoteResult{}, fmt.Errorf("%w: %s", ErrCandidateEliminated, candidateID)
	}

	result := VoteResult{RequestedID: candidateID, FinalID: candidateID}
	if s.rng != nil && s.rng.Float64() < senatorTwistChance {
		others := []string{}
		for _, c := range s.state.ActiveCandidates() {
			if c.ID != candidateID {
				others = append(others, c.ID)
			}
		}
		if len(others) > 0 {
			result.FinalID = others[s.rng.Intn(len(others))]
			result.Overridden = true
			log.Printf("[Session] senator twist: vote moved from %s to %s", candidateID, result.FinalID)
		}
	}

	now := s.now()
	s.apply(
		SetVote{CandidateID: result.FinalID},
		TrackDecision{At: now},
		CompleteGame{At: now},
	)

	consequences, err := GenerateConsequences(&s.state, s.table)
	if err != nil {
		return VoteResult{}, err
	}
	s.apply(
		SetConsequences{Data: *consequences},
		SetPhase{Phase: PhaseConsequence},
	)
	s.recomputeDerived()
	return result, nil
}

// Reset starts the session over with a freshly shuffled roster.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apply(ResetGame{Candidates: s.shuffledRoster()})
	log.Printf("[Session] reset")
}

// MetaAwarenessReport scores how much the player saw through the game.
func (s *Session) MetaAwarenessReport() MetaAwareness {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CalculateMetaAwareness(&s.state)
}

// recomputeDerived refreshes pressure, clash, and tension after any
// state change that can move them. Caller holds the lock.
func (s *Session) recomputeDerived() {
	for _, p := range CalculateAllPressures(&s.state) {
		s.apply(UpdatePressure{State: p})
	}

	if clash := CheckClashConditions(&s.state, s.table); clash != nil {
		clash.ID = uuid.NewString()
		clash.Timestamp = s.now()
		s.apply(AddClash{Clash: *clash})
		log.Printf("[Session] clash: %s vs %s (%s)", clash.Initiator, clash.Target, clash.Trigger)
	}

	s.apply(SetTension{Level: CalculateTension(&s.state)})
}
