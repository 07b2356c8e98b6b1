package lastvote

import (
	"testing"
	"time"
)

func TestCalculatePressure_TargetedQuestions(t *testing.T) {
	state := InitialState(testRoster())
	for i := 0; i < 2; i++ {
		state = Reduce(state, AddEntry{Entry: ConversationEntry{
			Type: EntryQuestion, Speaker: SpeakerPlayer, Content: "q", TargetedCandidate: "candidate_1",
		}})
	}

	p := CalculatePressure("candidate_1", &state)
	if p.PressureLevel != 40 {
		t.Fatalf("two targeted questions should score 40, got %d", p.PressureLevel)
	}
	if p.Triggers.QuestionsTargeted != 2 {
		t.Fatalf("expected 2 targeted, got %d", p.Triggers.QuestionsTargeted)
	}
}

func TestCalculatePressure_BestFriendElimination(t *testing.T) {
	state := InitialState(testRoster())
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_4", At: time.Now()})

	// candidate_3 loses a best friend: 50 pressure.
	p := CalculatePressure("candidate_3", &state)
	if p.PressureLevel != 50 {
		t.Fatalf("best friend loss should score 50, got %d", p.PressureLevel)
	}
	if p.Triggers.AlliesEliminated != 1 {
		t.Fatalf("expected 1 ally eliminated, got %d", p.Triggers.AlliesEliminated)
	}

	// candidate_2 loses a secret friend: 40 pressure.
	if p := CalculatePressure("candidate_2", &state); p.PressureLevel != 40 {
		t.Fatalf("secret friend loss should score 40, got %d", p.PressureLevel)
	}
}

func TestCalculatePressure_LoneWolfBonus(t *testing.T) {
	state := InitialState(testRoster())

	// candidate_5 is the lone wolf: flat 20 with nothing else going on.
	if p := CalculatePressure("candidate_5", &state); p.PressureLevel != 20 {
		t.Fatalf("lone wolf baseline should be 20, got %d", p.PressureLevel)
	}
	if p := CalculatePressure("candidate_1", &state); p.PressureLevel != 0 {
		t.Fatalf("untouched candidate should be 0, got %d", p.PressureLevel)
	}
}

func TestCalculatePressure_ContradictionsCarried(t *testing.T) {
	state := InitialState(testRoster())
	state = Reduce(state, UpdatePressure{State: PressureState{
		CandidateID: "candidate_1",
		Triggers:    PressureTriggers{ContradictionsExposed: 2},
		HasSlippedUp: true,
	}})

	p := CalculatePressure("candidate_1", &state)
	if p.PressureLevel != 30 {
		t.Fatalf("two contradictions should score 30, got %d", p.PressureLevel)
	}
	if !p.HasSlippedUp {
		t.Fatal("slipped-up flag must carry forward")
	}
}

func TestCalculatePressure_DeterministicAndClamped(t *testing.T) {
	state := InitialState(testRoster())
	for i := 0; i < 10; i++ {
		state = Reduce(state, AddEntry{Entry: ConversationEntry{
			Type: EntryQuestion, Speaker: SpeakerPlayer, Content: "q", TargetedCandidate: "candidate_5",
		}})
	}

	first := CalculatePressure("candidate_5", &state)
	second := CalculatePressure("candidate_5", &state)
	if first != second {
		t.Fatalf("same state produced different pressure: %+v vs %+v", first, second)
	}
	if first.PressureLevel != 100 {
		t.Fatalf("pressure must clamp at 100, got %d", first.PressureLevel)
	}
}

func TestCalculateAllPressures_SkipsEliminated(t *testing.T) {
	state := InitialState(testRoster())
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_1", At: time.Now()})

	pressures := CalculateAllPressures(&state)
	if _, ok := pressures["candidate_1"]; ok {
		t.Fatal("eliminated candidate should not get a pressure state")
	}
	if len(pressures) != 4 {
		t.Fatalf("expected 4 active pressure states, got %d", len(pressures))
	}
}

func TestCalculatePressure_UnknownCandidate(t *testing.T) {
	state := InitialState(testRoster())
	p := CalculatePressure("candidate_99", &state)
	if p.PressureLevel != 0 || p.CandidateID != "candidate_99" {
		t.Fatalf("unknown candidate should yield zero state, got %+v", p)
	}
}
