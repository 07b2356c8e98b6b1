package lastvote

// ──────────────────────────────────────────────
// Game state machine: the single authoritative reducer
// ──────────────────────────────────────────────

// InitialState builds a fresh session aggregate around the given
// roster. Pressure states start zeroed for every candidate.
func InitialState(candidates []Candidate) GameState {
	roster := make([]Candidate, len(candidates))
	copy(roster, candidates)

	pressures := make(map[string]PressureState, len(roster))
	for _, c := range roster {
		pressures[c.ID] = PressureState{CandidateID: c.ID}
	}

	return GameState{
		Phase:                  PhaseIntroduction,
		QuestionsRemaining:     TotalQuestions,
		ConversationHistory:    []ConversationEntry{},
		Candidates:             roster,
		EliminatedCandidateIDs: []string{},
		EliminationHistory:     []EliminationEvent{},
		PressureStates:         pressures,
		ClashHistory:           []ClashEvent{},
		SecretReveals:          []SecretReveal{},
		PlayerStats: PlayerStats{
			QuestionCounts:    map[string]int{},
			TopicTally:        map[string]int{},
			TopicLog:          []TopicEntry{},
			IgnoredCandidates: []string{},
			EliminatedAllies:  []string{},
			EliminatedRivals:  []string{},
		},
	}
}

// Reduce is the single transition function: (state, action) → state.
// It is pure, total, and synchronous: no I/O, no clock, no randomness
// (timestamps and fresh rosters arrive inside action payloads). It
// never panics; unknown actions return the state unchanged.
func Reduce(state GameState, action Action) GameState {
	switch a := action.(type) {
	case SetPhase:
		state.Phase = a.Phase
		return state

	case DecrementQuestions:
		if state.QuestionsRemaining > 0 {
			state.QuestionsRemaining--
		}
		return state

	case AddEntry:
		state.ConversationHistory = appendEntry(state.ConversationHistory, a.Entry)
		if a.Entry.Type == EntryResponse {
			state.Candidates = markSpoken(state.Candidates, a.Entry.Speaker)
		}
		return state

	case EliminateCandidate:
		return reduceElimination(state, a)

	case SetVote:
		state.PlayerVote = a.CandidateID
		return state

	case SetConsequences:
		data := a.Data
		state.Consequences = &data
		return state

	case SetProcessing:
		state.IsProcessing = a.Processing
		return state

	case SelectCandidate:
		state.SelectedCandidate = a.CandidateID
		return state

	case ResetGame:
		return InitialState(a.Candidates)

	case TrackQuestion:
		return reduceTrackQuestion(state, a)

	case TrackDecision:
		return reduceTrackDecision(state, a)

	case CompleteGame:
		return reduceCompleteGame(state)

	case UpdatePressure:
		pressures := make(map[string]PressureState, len(state.PressureStates))
		for id, p := range state.PressureStates {
			pressures[id] = p
		}
		pressures[a.State.CandidateID] = a.State
		state.PressureStates = pressures
		return state

	case AddClash:
		entry := ConversationEntry{
			ID:        a.Clash.ID,
			Timestamp: a.Clash.Timestamp,
			Type:      EntryClash,
			Speaker:   SpeakerSystem,
			Content:   "clash: " + a.Clash.Initiator + " vs " + a.Clash.Target,
			Clash:     &a.Clash,
		}
		state.ConversationHistory = appendEntry(state.ConversationHistory, entry)
		clashes := make([]ClashEvent, len(state.ClashHistory), len(state.ClashHistory)+1)
		copy(clashes, state.ClashHistory)
		state.ClashHistory = append(clashes, a.Clash)
		return state

	case RevealSecret:
		if hasReveal(state.SecretReveals, a.Reveal) {
			return state
		}
		reveals := make([]SecretReveal, len(state.SecretReveals), len(state.SecretReveals)+1)
		copy(reveals, state.SecretReveals)
		a.Reveal.Revealed = true
		state.SecretReveals = append(reveals, a.Reveal)
		return state

	case SetTension:
		state.TensionLevel = clamp(a.Level, 0, 100)
		return state

	default:
		return state
	}
}

// appendEntry copies the history slice before appending so prior state
// values stay untouched (history is append-only across values too).
func appendEntry(history []ConversationEntry, entry ConversationEntry) []ConversationEntry {
	out := make([]ConversationEntry, len(history), len(history)+1)
	copy(out, history)
	return append(out, entry)
}

func markSpoken(candidates []Candidate, speaker string) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i := range out {
		if out[i].ID == speaker {
			out[i].HasSpoken = true
		}
	}
	return out
}

func reduceElimination(state GameState, a EliminateCandidate) GameState {
	if state.IsEliminated(a.CandidateID) {
		return state
	}
	if state.CandidateByID(a.CandidateID) == nil {
		return state
	}

	round := state.CurrentRound()

	remaining := make([]string, 0, len(state.Candidates))
	for _, c := range state.Candidates {
		if c.ID != a.CandidateID && !state.IsEliminated(c.ID) {
			remaining = append(remaining, c.ID)
		}
	}

	eliminated := make([]string, len(state.EliminatedCandidateIDs), len(state.EliminatedCandidateIDs)+1)
	copy(eliminated, state.EliminatedCandidateIDs)
	state.EliminatedCandidateIDs = append(eliminated, a.CandidateID)

	events := make([]EliminationEvent, len(state.EliminationHistory), len(state.EliminationHistory)+1)
	copy(events, state.EliminationHistory)
	state.EliminationHistory = append(events, EliminationEvent{
		Round:                 round,
		EliminatedCandidateID: a.CandidateID,
		RemainingCandidates:   remaining,
		Timestamp:             a.At,
	})

	roster := make([]Candidate, len(state.Candidates))
	copy(roster, state.Candidates)
	for i := range roster {
		if roster[i].ID == a.CandidateID {
			roster[i].IsEliminated = true
			roster[i].EliminatedAtRound = round
			roster[i].EliminatedByPlayer = true
		}
	}
	state.Candidates = roster

	// Classify the loss against the vote target when one is already
	// known; CompleteGame recomputes the full lists either way.
	if state.PlayerVote != "" {
		state.PlayerStats = classifyElimination(state.PlayerStats, state.CandidateByID(a.CandidateID), state.PlayerVote)
	}
	return state
}

func hasReveal(reveals []SecretReveal, r SecretReveal) bool {
	for _, existing := range reveals {
		if existing.TargetID == r.TargetID &&
			existing.SecretType == r.SecretType &&
			sameStrings(existing.Knowers, r.Knowers) {
			return true
		}
	}
	return false
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func appendString(list []string, s string) []string {
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
