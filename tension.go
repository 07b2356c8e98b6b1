package lastvote

import "math"

// ──────────────────────────────────────────────
// Tension: global atmosphere score for the presentation layer
// ──────────────────────────────────────────────

// TensionCategory buckets the 0-100 tension level for visual effects.
type TensionCategory string

const (
	TensionLow      TensionCategory = "low"
	TensionMedium   TensionCategory = "medium"
	TensionHigh     TensionCategory = "high"
	TensionCritical TensionCategory = "critical"
)

var phaseTension = map[GamePhase]int{
	PhaseIntroduction: 0,
	PhaseRoster:       2,
	PhaseQuestioning:  5,
	PhaseElimination:  8,
	PhaseVoting:       10,
	PhaseConsequence:  5,
	PhaseCredits:      0,
}

// CalculateTension derives the global tension level from the question
// budget, eliminations, average active pressure, clash count, and the
// current phase. Clamped to 0-100.
func CalculateTension(state *GameState) int {
	tension := float64((TotalQuestions-state.QuestionsRemaining)*10 +
		len(state.EliminatedCandidateIDs)*10)

	// Average pressure across active candidates that have any.
	sum, n := 0, 0
	for _, c := range state.Candidates {
		if c.IsEliminated {
			continue
		}
		if p := state.PressureStates[c.ID].PressureLevel; p > 0 {
			sum += p
			n++
		}
	}
	if n > 0 {
		tension += float64(sum) / float64(n) / 100 * 25
	}

	clashTension := len(state.ClashHistory) * 5
	if clashTension > 15 {
		clashTension = 15
	}
	tension += float64(clashTension)
	tension += float64(phaseTension[state.Phase])

	return clamp(int(math.Round(tension)), 0, 100)
}

// CategorizeTension maps a tension level to its display bucket.
func CategorizeTension(level int) TensionCategory {
	switch {
	case level <= 30:
		return TensionLow
	case level <= 60:
		return TensionMedium
	case level <= 80:
		return TensionHigh
	default:
		return TensionCritical
	}
}
