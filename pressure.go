package lastvote

// ──────────────────────────────────────────────
// Pressure engine: deterministic "cornered" scoring
// ──────────────────────────────────────────────

// Per-trigger weights. Elimination pressure depends on the strength of
// the tie to each eliminated candidate.
const (
	pressurePerTargetedQuestion = 20
	pressurePerContradiction    = 15
	pressureLoneWolfBonus       = 20
)

var eliminationWeights = map[RelationshipType]int{
	RelationBestFriend:    50,
	RelationSecretFriend:  40,
	RelationAlly:          30,
	RelationFriendlyRival: 15,
}

// CalculatePressure derives the 0-100 pressure score for one candidate.
// It is a pure function of conversation history, the relationship
// graph, and elimination history, recomputable at any time. The
// contradiction counter is carried over from the prior pressure state;
// it is accumulated by an external detector, never computed here.
func CalculatePressure(candidateID string, state *GameState) PressureState {
	candidate := state.CandidateByID(candidateID)
	if candidate == nil {
		return PressureState{CandidateID: candidateID}
	}

	prior := state.PressureStates[candidateID]

	targeted := 0
	for _, entry := range state.ConversationHistory {
		if entry.Type == EntryQuestion && entry.TargetedCandidate == candidateID {
			targeted++
		}
	}

	eliminationPressure := 0
	alliesLost := 0
	for _, eliminatedID := range state.EliminatedCandidateIDs {
		rel := candidate.RelationTo(eliminatedID)
		if w, ok := eliminationWeights[rel.Type]; ok {
			eliminationPressure += w
			alliesLost++
		}
	}

	bonus := 0
	if candidate.LoneWolf {
		bonus = pressureLoneWolfBonus
	}

	level := targeted*pressurePerTargetedQuestion +
		eliminationPressure +
		prior.Triggers.ContradictionsExposed*pressurePerContradiction +
		bonus

	return PressureState{
		CandidateID:   candidateID,
		PressureLevel: clamp(level, 0, 100),
		Triggers: PressureTriggers{
			QuestionsTargeted:     targeted,
			AlliesEliminated:      alliesLost,
			ContradictionsExposed: prior.Triggers.ContradictionsExposed,
		},
		HasSlippedUp: prior.HasSlippedUp,
	}
}

// CalculateAllPressures recomputes pressure for every active candidate.
func CalculateAllPressures(state *GameState) map[string]PressureState {
	pressures := make(map[string]PressureState)
	for _, c := range state.Candidates {
		if c.IsEliminated {
			continue
		}
		pressures[c.ID] = CalculatePressure(c.ID, state)
	}
	return pressures
}
