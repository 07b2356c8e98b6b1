package lastvote

import (
	"errors"
	"fmt"
)

// ErrUnknownCandidate is returned when an operation names a candidate
// id that is not part of the roster or content table.
var ErrUnknownCandidate = errors.New("unknown candidate")

// GenerateConsequences assembles the full aftermath record for the
// voted candidate. Pure: the same state and table always produce the
// same record. Alternative paths cover every non-chosen candidate in
// roster order, survivors and eliminated alike.
func GenerateConsequences(state *GameState, table ContentTable) (*ConsequenceData, error) {
	if state.PlayerVote == "" {
		return nil, errors.New("no vote cast")
	}

	set, ok := table.ConsequenceSet(state.PlayerVote)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCandidate, state.PlayerVote)
	}

	paths := make([]AlternativePath, 0, len(state.Candidates)-1)
	for _, c := range state.Candidates {
		if c.ID == state.PlayerVote {
			continue
		}
		paths = append(paths, AlternativePath{
			CandidateID:       c.ID,
			WouldHaveHappened: table.AlternativeLine(c.ID),
		})
	}
	set.AlternativePaths = paths

	return &set, nil
}
