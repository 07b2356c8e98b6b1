package lastvote

import "time"

// ──────────────────────────────────────────────
// Domain model: entities and their invariants
// ──────────────────────────────────────────────

// GamePhase is the current stage of a session. The game progresses
// linearly; see phase.go for the legal transition graph.
type GamePhase string

const (
	PhaseIntroduction GamePhase = "introduction"
	PhaseRoster       GamePhase = "roster"
	PhaseQuestioning  GamePhase = "questioning"
	PhaseElimination  GamePhase = "elimination"
	PhaseVoting       GamePhase = "voting"
	PhaseConsequence  GamePhase = "consequence"
	PhaseCredits      GamePhase = "credits"
)

// Archetype is one of the 5 fixed personality categories. Each drives
// both the candidate's public text and their deception style.
type Archetype string

const (
	ArchetypeCharismaticReformer Archetype = "charismatic_reformer"
	ArchetypePragmaticTechnocrat Archetype = "pragmatic_technocrat"
	ArchetypeHealerProtector     Archetype = "healer_protector"
	ArchetypeCynicalRealist      Archetype = "cynical_realist"
	ArchetypeRadicalOutsider     Archetype = "radical_outsider"
)

// RelationshipType describes how one candidate relates to another.
type RelationshipType string

const (
	RelationBestFriend    RelationshipType = "best_friend"
	RelationAlly          RelationshipType = "ally"
	RelationFriendlyRival RelationshipType = "friendly_rival"
	RelationRival         RelationshipType = "rival"
	RelationEnemy         RelationshipType = "enemy"
	RelationSecretFriend  RelationshipType = "secret_friend"
	RelationSecretEnemy   RelationshipType = "secret_enemy"
	RelationNeutral       RelationshipType = "neutral"
)

// Relationship is a typed edge in the candidate relationship graph.
// Strength is 0-100. Secret edges are never surfaced in public text.
type Relationship struct {
	Type     RelationshipType `json:"type"`
	Strength int              `json:"strength"`
	Secret   bool             `json:"secret"`
}

// Candidate is one of exactly 5 participants. Exactly 5 candidates
// exist for the lifetime of a session; ids are immutable; elimination
// is monotonic (never undone except by a full reset).
type Candidate struct {
	// Static identity, visible to the player.
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Archetype  Archetype `json:"archetype"`
	Portrait   string    `json:"portrait"`
	ColorTheme string    `json:"color_theme"`

	// Public traits, visible to the player.
	Personality   string `json:"personality"`
	SpeakingStyle string `json:"speaking_style"`
	PublicStance  string `json:"public_stance"`

	// Hidden traits. Never surfaced to the player; consumed only by
	// the response pipeline as prompt context.
	HiddenMotivation string   `json:"-"`
	CoreTruth        string   `json:"-"`
	PartialTruth     string   `json:"-"`
	ActiveLie        string   `json:"-"`
	HiddenSecret     string   `json:"-"`
	AltSecrets       []string `json:"-"` // optional pool for replay variance

	// LoneWolf marks a candidate as socially isolated. Archetype-specific.
	LoneWolf bool `json:"-"`

	// Dynamic state, mutated only through reducer transitions.
	HasSpoken     bool                    `json:"has_spoken"`
	TrustLevel    int                     `json:"trust_level"` // 0-100, informational
	Relationships map[string]Relationship `json:"relationships"`

	IsEliminated       bool `json:"is_eliminated"`
	EliminatedAtRound  int  `json:"eliminated_at_round,omitempty"`
	EliminatedByPlayer bool `json:"eliminated_by_player,omitempty"`
}

// RelationTo returns the candidate's relationship to another candidate.
// A missing entry is neutral, never an error.
func (c *Candidate) RelationTo(otherID string) Relationship {
	if r, ok := c.Relationships[otherID]; ok {
		return r
	}
	return Relationship{Type: RelationNeutral}
}

// EntryType categorizes conversation events.
type EntryType string

const (
	EntryQuestion     EntryType = "question"
	EntryResponse     EntryType = "response"
	EntryInterruption EntryType = "interruption"
	EntrySystem       EntryType = "system"
	EntryClash        EntryType = "clash"
)

// SpeakerPlayer and SpeakerSystem are the two non-candidate speakers.
const (
	SpeakerPlayer = "player"
	SpeakerSystem = "system"
)

// ConversationEntry is one immutable record in the append-only log.
// Entries are never edited or removed except by a full game reset.
type ConversationEntry struct {
	ID                string      `json:"id"`
	Timestamp         time.Time   `json:"timestamp"`
	Type              EntryType   `json:"type"`
	Speaker           string      `json:"speaker"` // SpeakerPlayer, SpeakerSystem, or a candidate id
	Content           string      `json:"content"`
	TargetedCandidate string      `json:"targeted_candidate,omitempty"`
	Clash             *ClashEvent `json:"clash,omitempty"`
}

// EliminationEvent records one elimination decision. A candidate id
// appears in at most one event per session.
type EliminationEvent struct {
	Round                 int       `json:"round"`
	EliminatedCandidateID string    `json:"eliminated_candidate_id"`
	RemainingCandidates   []string  `json:"remaining_candidates"`
	Timestamp             time.Time `json:"timestamp"`
}

// PressureTriggers holds the counters feeding a pressure score.
type PressureTriggers struct {
	QuestionsTargeted     int `json:"questions_targeted"`
	AlliesEliminated      int `json:"allies_eliminated"`
	ContradictionsExposed int `json:"contradictions_exposed"`
}

// PressureState is the derived tension score for one active candidate.
// It is a cache, not a source of truth: recomputable at any time from
// conversation history + relationship graph + elimination history.
type PressureState struct {
	CandidateID   string           `json:"candidate_id"`
	PressureLevel int              `json:"pressure_level"` // 0-100, clamped
	Triggers      PressureTriggers `json:"triggers"`
	HasSlippedUp  bool             `json:"has_slipped_up"`
}

// ClashTrigger classifies what provoked a clash.
type ClashTrigger string

const (
	TriggerContradiction ClashTrigger = "contradiction"
	TriggerAllyDefense   ClashTrigger = "ally_defense"
	TriggerRivalAttack   ClashTrigger = "rival_attack"
	TriggerPressure      ClashTrigger = "pressure"
)

// Emotion tags a clash dialogue line.
type Emotion string

const (
	EmotionAngry     Emotion = "angry"
	EmotionDesperate Emotion = "desperate"
	EmotionDefensive Emotion = "defensive"
)

// ClashLine is one line of a synthesized clash exchange.
type ClashLine struct {
	Speaker string  `json:"speaker"`
	Content string  `json:"content"`
	Emotion Emotion `json:"emotion"`
}

// ClashEvent is a synthesized public conflict between two candidates,
// inserted into conversation history as a special entry. At most one
// clash may be in flight at a time; clashes are only ever appended.
type ClashEvent struct {
	ID               string       `json:"id"`
	Timestamp        time.Time    `json:"timestamp"`
	Initiator        string       `json:"initiator"`
	Target           string       `json:"target"`
	Topic            string       `json:"topic"`
	DialogueExchange []ClashLine  `json:"dialogue_exchange"`
	Trigger          ClashTrigger `json:"trigger"`
	TriggerContext   string       `json:"trigger_context"`
}

// SecretReveal records a secret surfaced to the player mid-game.
type SecretReveal struct {
	Knowers    []string  `json:"knowers"`
	TargetID   string    `json:"target_id"`
	SecretType string    `json:"secret_type"`
	Revealed   bool      `json:"revealed"`
	Timestamp  time.Time `json:"timestamp"`
}

// ──────────────────────────────────────────────
// Consequence record
// ──────────────────────────────────────────────

// ImmediateAftermath is the short-term outcome after the vote.
type ImmediateAftermath struct {
	Timeframe         string `json:"timeframe"`
	Outcome           string `json:"outcome"`
	ExpectedOutcome   string `json:"expected_outcome"`
	UnexpectedOutcome string `json:"unexpected_outcome"`
}

// OtherCandidateSecret is a post-vote reveal about a non-chosen candidate.
type OtherCandidateSecret struct {
	CandidateID        string `json:"candidate_id"`
	Secret             string `json:"secret"`
	MakesPlayerRethink bool   `json:"makes_player_rethink"`
}

// HiddenTruths contains the secrets revealed after the vote.
type HiddenTruths struct {
	ChosenCandidateSecret string                 `json:"chosen_candidate_secret"`
	OtherCandidateSecrets []OtherCandidateSecret `json:"other_candidate_secrets"`
	QuestionNeverAsked    string                 `json:"question_never_asked"`
}

// LongTermConsequences is the ultimate outcome years later.
type LongTermConsequences struct {
	Timeframe       string   `json:"timeframe"`
	Outcome         string   `json:"outcome"`
	GoodOutcomes    []string `json:"good_outcomes"`
	BadOutcomes     []string `json:"bad_outcomes"`
	FinalReflection string   `json:"final_reflection"`
}

// AlternativePath is the "what if" line for one non-chosen candidate.
type AlternativePath struct {
	CandidateID       string `json:"candidate_id"`
	WouldHaveHappened string `json:"would_have_happened"`
}

// ConsequenceData is the structured aftermath record, computed exactly
// once per session at vote time. Immutable once generated.
type ConsequenceData struct {
	ChosenCandidateID    string               `json:"chosen_candidate_id"`
	ImmediateAftermath   ImmediateAftermath   `json:"immediate_aftermath"`
	HiddenTruths         HiddenTruths         `json:"hidden_truths"`
	LongTermConsequences LongTermConsequences `json:"long_term_consequences"`
	AlternativePaths     []AlternativePath    `json:"alternative_paths"`
}

// ──────────────────────────────────────────────
// Player telemetry
// ──────────────────────────────────────────────

// TopicEntry records one question with its detected topics.
type TopicEntry struct {
	Question          string    `json:"question"`
	Topics            []string  `json:"topics"`
	TargetedCandidate string    `json:"targeted_candidate,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
}

// MetaConditions are the suspicion flags feeding the end-game reveal.
type MetaConditions struct {
	AskedAboutGameMaster bool `json:"asked_about_game_master"`
	QuestionedReality    bool `json:"questioned_reality"`
	ShowedSkepticism     bool `json:"showed_skepticism"`
}

// PlayerStats is accumulated telemetry. Informational and derived; it
// never gates core correctness but feeds the consequence narrative.
type PlayerStats struct {
	QuestionCounts    map[string]int `json:"question_counts"` // per-candidate
	TopicTally        map[string]int `json:"topic_tally"`
	TopicLog          []TopicEntry   `json:"topic_log"`
	AggressionCount   int            `json:"aggression_count"`
	FavoriteCandidate string         `json:"favorite_candidate,omitempty"` // unique argmax, ties yield none
	IgnoredCandidates []string       `json:"ignored_candidates"`

	EliminatedAllies []string `json:"eliminated_allies"`
	EliminatedRivals []string `json:"eliminated_rivals"`
	RuthlessScore    int      `json:"ruthless_score"` // 0-100, computed at game completion

	DecisionTimes     []time.Time   `json:"decision_times"`
	AverageDecisionMs time.Duration `json:"average_decision_ms"`
	RushedDecisions   int           `json:"rushed_decisions"` // decisions under 5s apart

	Meta MetaConditions `json:"meta"`
}

// ──────────────────────────────────────────────
// Aggregate root
// ──────────────────────────────────────────────

// GameState is the aggregate root. The reducer exclusively owns its
// mutation; every other component receives read-only views or
// pure-function inputs derived from it.
type GameState struct {
	Phase              GamePhase `json:"phase"`
	QuestionsRemaining int       `json:"questions_remaining"`

	ConversationHistory []ConversationEntry `json:"conversation_history"`

	Candidates []Candidate `json:"candidates"`

	EliminatedCandidateIDs []string           `json:"eliminated_candidate_ids"`
	EliminationHistory     []EliminationEvent `json:"elimination_history"`

	PlayerVote   string           `json:"player_vote,omitempty"`
	Consequences *ConsequenceData `json:"consequences,omitempty"`

	IsProcessing      bool   `json:"is_processing"`
	SelectedCandidate string `json:"selected_candidate,omitempty"`
	TensionLevel      int    `json:"tension_level"`

	PressureStates map[string]PressureState `json:"pressure_states"`
	ClashHistory   []ClashEvent             `json:"clash_history"`
	SecretReveals  []SecretReveal           `json:"secret_reveals"`

	PlayerStats PlayerStats `json:"player_stats"`
}

// TotalQuestions is the fixed per-session question budget.
const TotalQuestions = 3

// RosterSize is the fixed number of candidates per session.
const RosterSize = 5

// MaxEliminations caps eliminations so the final vote is between the
// two remaining finalists.
const MaxEliminations = RosterSize - 2

// CurrentRound derives the question-then-elimination round number.
func (s *GameState) CurrentRound() int {
	return TotalQuestions - s.QuestionsRemaining
}

// CandidateByID finds a candidate in the roster, or nil.
func (s *GameState) CandidateByID(id string) *Candidate {
	for i := range s.Candidates {
		if s.Candidates[i].ID == id {
			return &s.Candidates[i]
		}
	}
	return nil
}

// ActiveCandidates returns the non-eliminated candidates in roster order.
func (s *GameState) ActiveCandidates() []Candidate {
	active := make([]Candidate, 0, len(s.Candidates))
	for _, c := range s.Candidates {
		if !c.IsEliminated {
			active = append(active, c)
		}
	}
	return active
}

// IsEliminated reports whether the id appears in the eliminated set.
func (s *GameState) IsEliminated(id string) bool {
	for _, e := range s.EliminatedCandidateIDs {
		if e == id {
			return true
		}
	}
	return false
}

// LastEntry returns the most recent conversation entry, or nil.
func (s *GameState) LastEntry() *ConversationEntry {
	if len(s.ConversationHistory) == 0 {
		return nil
	}
	return &s.ConversationHistory[len(s.ConversationHistory)-1]
}
