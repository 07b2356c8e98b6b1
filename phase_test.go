package lastvote

import "testing"

func TestValidTransition_Graph(t *testing.T) {
	legal := [][2]GamePhase{
		{PhaseIntroduction, PhaseRoster},
		{PhaseRoster, PhaseQuestioning},
		{PhaseQuestioning, PhaseElimination},
		{PhaseQuestioning, PhaseVoting},
		{PhaseElimination, PhaseQuestioning},
		{PhaseElimination, PhaseVoting},
		{PhaseVoting, PhaseConsequence},
		{PhaseConsequence, PhaseCredits},
		{PhaseConsequence, PhaseIntroduction},
		{PhaseCredits, PhaseIntroduction},
	}
	for _, pair := range legal {
		if !ValidTransition(pair[0], pair[1]) {
			t.Fatalf("%s -> %s should be legal", pair[0], pair[1])
		}
	}

	illegal := [][2]GamePhase{
		{PhaseIntroduction, PhaseVoting},
		{PhaseRoster, PhaseElimination},
		{PhaseQuestioning, PhaseConsequence},
		{PhaseVoting, PhaseQuestioning},
		{PhaseConsequence, PhaseVoting},
		{PhaseCredits, PhaseCredits},
	}
	for _, pair := range illegal {
		if ValidTransition(pair[0], pair[1]) {
			t.Fatalf("%s -> %s should be illegal", pair[0], pair[1])
		}
	}
}

func TestCheckTransition_ErrorMessage(t *testing.T) {
	if err := CheckTransition(PhaseIntroduction, PhaseRoster); err != nil {
		t.Fatalf("legal transition returned error: %v", err)
	}
	if err := CheckTransition(PhaseVoting, PhaseQuestioning); err == nil {
		t.Fatal("expected error for illegal transition")
	}
}

func TestNextPhases_CopyIsolated(t *testing.T) {
	next := NextPhases(PhaseQuestioning)
	if len(next) != 2 {
		t.Fatalf("questioning should have 2 successors, got %d", len(next))
	}
	next[0] = PhaseCredits
	if NextPhases(PhaseQuestioning)[0] == PhaseCredits {
		t.Fatal("NextPhases must return a copy")
	}
}
