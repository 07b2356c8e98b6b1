package lastvote

import "time"

// ──────────────────────────────────────────────
// Reducer actions: a closed set of transition requests
// ──────────────────────────────────────────────

// Action is a sealed transition request consumed by Reduce. The set of
// implementations below is closed; unknown actions are no-ops.
type Action interface {
	isAction()
}

// SetPhase unconditionally overwrites the phase. Callers are
// responsible for only requesting legal transitions (see phase.go).
type SetPhase struct {
	Phase GamePhase
}

// DecrementQuestions consumes one question from the budget. The
// counter never goes below zero.
type DecrementQuestions struct{}

// AddEntry appends one complete conversation entry. The caller stamps
// ID and Timestamp so the reducer stays clock-free and random-free.
type AddEntry struct {
	Entry ConversationEntry
}

// EliminateCandidate marks a candidate eliminated. Idempotent: a
// second elimination of the same id is a no-op.
type EliminateCandidate struct {
	CandidateID string
	At          time.Time
}

// SetVote records the final, terminal choice. The caller is
// responsible for voting on an active candidate.
type SetVote struct {
	CandidateID string
}

// SetConsequences stores the precomputed aftermath record.
type SetConsequences struct {
	Data ConsequenceData
}

// SetProcessing toggles the UI-facing busy flag.
type SetProcessing struct {
	Processing bool
}

// SelectCandidate sets question-targeting context. Purely advisory;
// an empty id clears the selection.
type SelectCandidate struct {
	CandidateID string
}

// ResetGame restores all per-session state. The fresh roster is passed
// in so any secret re-randomization happens in the caller, not here.
type ResetGame struct {
	Candidates []Candidate
}

// TrackQuestion updates per-candidate question counters, the topic
// tally, and the sticky suspicion flags, then recomputes the
// favorite/ignored derivations.
type TrackQuestion struct {
	Question    string
	CandidateID string // empty when the question was untargeted
	Topics      []string
	Aggressive  bool
	Suspicion   SuspicionAnalysis
	At          time.Time
}

// TrackDecision appends a decision timestamp and recomputes the
// rolling average interval and the rushed counter.
type TrackDecision struct {
	At time.Time
}

// CompleteGame classifies eliminations against the final vote and
// computes the ruthlessness score.
type CompleteGame struct {
	At time.Time
}

// UpdatePressure stores a recomputed pressure state for one candidate.
type UpdatePressure struct {
	State PressureState
}

// AddClash appends a clash to history plus its conversation entry.
// The caller stamps the event's ID and Timestamp.
type AddClash struct {
	Clash ClashEvent
}

// RevealSecret records a surfaced secret. Duplicate reveals are no-ops.
type RevealSecret struct {
	Reveal SecretReveal
}

// SetTension stores the derived global tension level.
type SetTension struct {
	Level int
}

func (SetPhase) isAction()           {}
func (DecrementQuestions) isAction() {}
func (AddEntry) isAction()           {}
func (EliminateCandidate) isAction() {}
func (SetVote) isAction()            {}
func (SetConsequences) isAction()    {}
func (SetProcessing) isAction()      {}
func (SelectCandidate) isAction()    {}
func (ResetGame) isAction()          {}
func (TrackQuestion) isAction()      {}
func (TrackDecision) isAction()      {}
func (CompleteGame) isAction()       {}
func (UpdatePressure) isAction()     {}
func (AddClash) isAction()           {}
func (RevealSecret) isAction()       {}
func (SetTension) isAction()         {}
