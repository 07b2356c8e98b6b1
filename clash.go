package lastvote

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ──────────────────────────────────────────────
// Clash detection: candidate-vs-candidate public conflict
// ──────────────────────────────────────────────

// Pressure thresholds for the rival-attack trigger. A friendly rival
// needles at lower pressure than a true rival commits to an attack.
const (
	clashFriendlyRivalThreshold = 30
	clashRivalThreshold         = 50
	clashPressureThreshold      = 80
	clashRecentWindow           = 5
)

// CheckClashConditions evaluates the clash triggers in strict priority
// order and returns the first match, or nil. Deterministic and
// side-effect free: the returned event carries no ID or Timestamp;
// the orchestration layer stamps both before dispatching AddClash.
//
// Clashes only fire during questioning, and never chain: if the most
// recent conversation entry is itself a clash, nothing fires.
func CheckClashConditions(state *GameState, table ContentTable) *ClashEvent {
	if state.Phase != PhaseQuestioning {
		return nil
	}
	if last := state.LastEntry(); last != nil && last.Type == EntryClash {
		return nil
	}

	active := state.ActiveCandidates()
	if len(active) < 2 {
		return nil
	}

	if clash := checkAllyDefense(state, active, table); clash != nil {
		return clash
	}
	if clash := checkRivalAttack(state, active, table); clash != nil {
		return clash
	}
	return checkPressureBreak(state, active, table)
}

// checkAllyDefense fires when the most recently eliminated candidate
// left behind someone who cared. A best friend erupts in their
// defense; a lesser tie turns into an opportunistic attack.
func checkAllyDefense(state *GameState, active []Candidate, table ContentTable) *ClashEvent {
	if len(state.EliminationHistory) == 0 {
		return nil
	}
	lastEliminated := state.EliminationHistory[len(state.EliminationHistory)-1].EliminatedCandidateID

	// The strongest tie to the fallen candidate reacts first.
	var initiator *Candidate
	var initiatorRel Relationship
	bestWeight := 0
	for i := range active {
		rel := active[i].RelationTo(lastEliminated)
		w, qualifies := eliminationWeights[rel.Type]
		if !qualifies || w <= bestWeight {
			continue
		}
		initiator, initiatorRel, bestWeight = &active[i], rel, w
	}
	if initiator == nil {
		return nil
	}

	target := pickClashTarget(initiator, active)
	if target == "" {
		return nil
	}

	trigger := TriggerRivalAttack
	if initiatorRel.Type == RelationBestFriend {
		trigger = TriggerAllyDefense
	}
	return buildClash(state, table, initiator.ID, target, trigger,
		fmt.Sprintf("%s lashes out after losing %s", initiator.Name, lastEliminated))
}

// checkRivalAttack scans the recent window for responses that a
// pressured rival cannot let stand.
func checkRivalAttack(state *GameState, active []Candidate, table ContentTable) *ClashEvent {
	history := state.ConversationHistory
	start := len(history) - clashRecentWindow
	if start < 0 {
		start = 0
	}

	for _, entry := range history[start:] {
		if entry.Type != EntryResponse {
			continue
		}
		speaker := state.CandidateByID(entry.Speaker)
		if speaker == nil || speaker.IsEliminated {
			continue
		}

		for _, candidate := range active {
			if candidate.ID == speaker.ID {
				continue
			}
			rel := candidate.RelationTo(speaker.ID)
			threshold := 0
			switch rel.Type {
			case RelationFriendlyRival:
				threshold = clashFriendlyRivalThreshold
			case RelationRival, RelationEnemy:
				threshold = clashRivalThreshold
			default:
				continue
			}
			if state.PressureStates[candidate.ID].PressureLevel > threshold {
				return buildClash(state, table, candidate.ID, speaker.ID, TriggerRivalAttack,
					fmt.Sprintf("%s attacks %s right after they spoke", candidate.Name, speaker.Name))
			}
		}
	}
	return nil
}

// checkPressureBreak fires when a candidate who has not yet slipped up
// crosses the breaking point. The highest-pressure candidate snaps at
// a rival when one exists, otherwise at whoever is nearest.
func checkPressureBreak(state *GameState, active []Candidate, table ContentTable) *ClashEvent {
	var initiator *Candidate
	best := clashPressureThreshold
	for i := range active {
		p := state.PressureStates[active[i].ID]
		if p.HasSlippedUp {
			continue
		}
		if p.PressureLevel > best {
			best = p.PressureLevel
			initiator = &active[i]
		}
	}
	if initiator == nil {
		return nil
	}

	target := pickClashTarget(initiator, active)
	if target == "" {
		return nil
	}
	return buildClash(state, table, initiator.ID, target, TriggerPressure,
		fmt.Sprintf("%s cracks under pressure", initiator.Name))
}

// pickClashTarget prefers a declared enemy or rival, then anyone else.
func pickClashTarget(initiator *Candidate, active []Candidate) string {
	for _, c := range active {
		if c.ID == initiator.ID {
			continue
		}
		switch initiator.RelationTo(c.ID).Type {
		case RelationEnemy, RelationRival, RelationFriendlyRival:
			return c.ID
		}
	}
	for _, c := range active {
		if c.ID != initiator.ID {
			return c.ID
		}
	}
	return ""
}

func buildClash(state *GameState, table ContentTable, initiatorID, targetID string, trigger ClashTrigger, context string) *ClashEvent {
	initiator := state.CandidateByID(initiatorID)

	emotion := EmotionDesperate
	if trigger == TriggerAllyDefense {
		emotion = EmotionAngry
	}

	return &ClashEvent{
		Initiator: initiatorID,
		Target:    targetID,
		Topic:     clashTopics[trigger],
		DialogueExchange: []ClashLine{
			{
				Speaker: targetID,
				Content: fmt.Sprintf("[Interrupted by %s]", initiator.Name),
				Emotion: EmotionDefensive,
			},
			{
				Speaker: initiatorID,
				Content: pickClashLine(table, trigger, initiatorID, targetID),
				Emotion: emotion,
			},
		},
		Trigger:        trigger,
		TriggerContext: context,
	}
}

var clashTopics = map[ClashTrigger]string{
	TriggerAllyDefense:   "the elimination",
	TriggerRivalAttack:   "personal feud",
	TriggerPressure:      "the breaking point",
	TriggerContradiction: "a contradiction",
}

// pickClashLine selects from the trigger-keyed pool with a stable hash
// of the pairing, so detection stays a pure function of state.
func pickClashLine(table ContentTable, trigger ClashTrigger, initiatorID, targetID string) string {
	lines := table.ClashLines(trigger)
	if len(lines) == 0 {
		return ""
	}
	h := xxhash.Sum64String(initiatorID + "|" + targetID + "|" + string(trigger))
	return lines[h%uint64(len(lines))]
}
