package lastvote

import (
	"math"
	"time"
)

// ──────────────────────────────────────────────
// Player telemetry folds
// ──────────────────────────────────────────────

// All derivations here run inside the reducer: they take the current
// stats value and return a new one, copying any slice or map they
// touch.

func reduceTrackQuestion(state GameState, a TrackQuestion) GameState {
	stats := state.PlayerStats

	counts := make(map[string]int, len(stats.QuestionCounts))
	for id, n := range stats.QuestionCounts {
		counts[id] = n
	}
	if a.CandidateID != "" {
		counts[a.CandidateID]++
	}
	stats.QuestionCounts = counts

	tally := make(map[string]int, len(stats.TopicTally))
	for t, n := range stats.TopicTally {
		tally[t] = n
	}
	for _, t := range a.Topics {
		tally[t]++
	}
	stats.TopicTally = tally

	if a.Aggressive {
		stats.AggressionCount++
	}

	stats.Meta = UpdateMetaConditions(stats.Meta, a.Suspicion)

	topics := make([]TopicEntry, len(stats.TopicLog), len(stats.TopicLog)+1)
	copy(topics, stats.TopicLog)
	stats.TopicLog = append(topics, TopicEntry{
		Question:          a.Question,
		Topics:            a.Topics,
		TargetedCandidate: a.CandidateID,
		Timestamp:         a.At,
	})

	// Favorite is the unique argmax of per-candidate counts; a tie
	// yields no favorite. Ignored is every candidate never asked.
	stats.FavoriteCandidate = favoriteCandidate(counts)
	stats.IgnoredCandidates = ignoredCandidates(state.Candidates, counts)

	state.PlayerStats = stats
	return state
}

func favoriteCandidate(counts map[string]int) string {
	best, bestCount, tied := "", 0, false
	for id, n := range counts {
		switch {
		case n > bestCount:
			best, bestCount, tied = id, n, false
		case n == bestCount && n > 0:
			tied = true
		}
	}
	if tied || bestCount == 0 {
		return ""
	}
	return best
}

func ignoredCandidates(candidates []Candidate, counts map[string]int) []string {
	ignored := []string{}
	for _, c := range candidates {
		if counts[c.ID] == 0 {
			ignored = append(ignored, c.ID)
		}
	}
	return ignored
}

func reduceTrackDecision(state GameState, a TrackDecision) GameState {
	stats := state.PlayerStats

	times := make([]time.Time, len(stats.DecisionTimes), len(stats.DecisionTimes)+1)
	copy(times, stats.DecisionTimes)
	times = append(times, a.At)
	stats.DecisionTimes = times

	if len(times) > 1 {
		var total time.Duration
		rushed := 0
		for i := 1; i < len(times); i++ {
			gap := times[i].Sub(times[i-1])
			total += gap
			if gap < 5*time.Second {
				rushed++
			}
		}
		stats.AverageDecisionMs = total / time.Duration(len(times)-1)
		stats.RushedDecisions = rushed
	}

	state.PlayerStats = stats
	return state
}

// classifyElimination sorts an eliminated candidate into the ally or
// rival bucket relative to where the final vote landed.
func classifyElimination(stats PlayerStats, eliminated *Candidate, voteTarget string) PlayerStats {
	if eliminated == nil || eliminated.ID == voteTarget {
		return stats
	}
	switch eliminated.RelationTo(voteTarget).Type {
	case RelationBestFriend, RelationAlly, RelationSecretFriend, RelationFriendlyRival:
		stats.EliminatedAllies = appendString(stats.EliminatedAllies, eliminated.ID)
	case RelationRival, RelationEnemy, RelationSecretEnemy:
		stats.EliminatedRivals = appendString(stats.EliminatedRivals, eliminated.ID)
	}
	return stats
}

func reduceCompleteGame(state GameState) GameState {
	stats := state.PlayerStats
	stats.EliminatedAllies = []string{}
	stats.EliminatedRivals = []string{}

	if state.PlayerVote != "" {
		for _, ev := range state.EliminationHistory {
			stats = classifyElimination(stats, state.CandidateByID(ev.EliminatedCandidateID), state.PlayerVote)
		}
	}

	allies := len(stats.EliminatedAllies)
	rivals := len(stats.EliminatedRivals)
	total := allies + rivals
	if total < 1 {
		total = 1
	}
	raw := math.Round(float64(allies*100-rivals*20) / float64(total))
	stats.RuthlessScore = clamp(int(raw), 0, 100)

	state.PlayerStats = stats
	return state
}
