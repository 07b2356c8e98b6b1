package lastvote

import "fmt"

// phaseGraph is the legal transition table. The reducer itself stays
// permissive (SetPhase overwrites unconditionally); the orchestration
// layer consults this table so illegal transitions fail fast instead
// of silently producing an inconsistent view.
var phaseGraph = map[GamePhase][]GamePhase{
	PhaseIntroduction: {PhaseRoster},
	PhaseRoster:       {PhaseQuestioning},
	PhaseQuestioning:  {PhaseElimination, PhaseVoting},
	PhaseElimination:  {PhaseQuestioning, PhaseVoting},
	PhaseVoting:       {PhaseConsequence},
	PhaseConsequence:  {PhaseCredits, PhaseIntroduction},
	PhaseCredits:      {PhaseIntroduction},
}

// ValidTransition reports whether from → to is a legal phase move.
func ValidTransition(from, to GamePhase) bool {
	for _, next := range phaseGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextPhases returns the legal successors of a phase.
func NextPhases(from GamePhase) []GamePhase {
	next := phaseGraph[from]
	out := make([]GamePhase, len(next))
	copy(out, next)
	return out
}

// CheckTransition returns a descriptive error for an illegal move.
func CheckTransition(from, to GamePhase) error {
	if !ValidTransition(from, to) {
		return fmt.Errorf("illegal phase transition %s → %s", from, to)
	}
	return nil
}
