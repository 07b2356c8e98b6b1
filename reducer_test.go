package lastvote

import (
	"testing"
	"time"
)

func testRoster() []Candidate {
	return DefaultTable{}.Candidates()
}

func TestReduce_QuestionsMonotonic(t *testing.T) {
	state := InitialState(testRoster())
	if state.QuestionsRemaining != TotalQuestions {
		t.Fatalf("expected %d questions, got %d", TotalQuestions, state.QuestionsRemaining)
	}

	prev := state.QuestionsRemaining
	for i := 0; i < 10; i++ {
		state = Reduce(state, DecrementQuestions{})
		if state.QuestionsRemaining > prev {
			t.Fatalf("questions increased: %d -> %d", prev, state.QuestionsRemaining)
		}
		if state.QuestionsRemaining < 0 {
			t.Fatalf("questions went negative: %d", state.QuestionsRemaining)
		}
		prev = state.QuestionsRemaining
	}
	if state.QuestionsRemaining != 0 {
		t.Fatalf("expected 0 after exhausting budget, got %d", state.QuestionsRemaining)
	}
}

func TestReduce_EliminationIdempotent(t *testing.T) {
	state := InitialState(testRoster())
	at := time.Now()

	once := Reduce(state, EliminateCandidate{CandidateID: "candidate_5", At: at})
	twice := Reduce(once, EliminateCandidate{CandidateID: "candidate_5", At: at.Add(time.Minute)})

	if len(once.EliminatedCandidateIDs) != 1 || len(twice.EliminatedCandidateIDs) != 1 {
		t.Fatalf("expected single elimination record, got %d then %d",
			len(once.EliminatedCandidateIDs), len(twice.EliminatedCandidateIDs))
	}
	if len(twice.EliminationHistory) != 1 {
		t.Fatalf("expected 1 elimination event, got %d", len(twice.EliminationHistory))
	}
	if !twice.IsEliminated("candidate_5") {
		t.Fatal("candidate_5 should be eliminated")
	}
}

func TestReduce_EliminationRecordsRemaining(t *testing.T) {
	state := InitialState(testRoster())
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_2", At: time.Now()})

	ev := state.EliminationHistory[0]
	if ev.EliminatedCandidateID != "candidate_2" {
		t.Fatalf("wrong id in event: %s", ev.EliminatedCandidateID)
	}
	if len(ev.RemainingCandidates) != 4 {
		t.Fatalf("expected 4 remaining, got %d", len(ev.RemainingCandidates))
	}
	for _, id := range ev.RemainingCandidates {
		if id == "candidate_2" {
			t.Fatal("eliminated candidate listed as remaining")
		}
	}
}

func TestReduce_UnknownCandidateEliminationIsNoop(t *testing.T) {
	state := InitialState(testRoster())
	next := Reduce(state, EliminateCandidate{CandidateID: "candidate_99", At: time.Now()})
	if len(next.EliminatedCandidateIDs) != 0 {
		t.Fatal("unknown id must not eliminate anyone")
	}
}

func TestReduce_HistoryAppendOnly(t *testing.T) {
	state := InitialState(testRoster())

	first := ConversationEntry{ID: "e1", Type: EntryQuestion, Speaker: SpeakerPlayer, Content: "first"}
	state = Reduce(state, AddEntry{Entry: first})
	snapshot := state.ConversationHistory

	state = Reduce(state, AddEntry{Entry: ConversationEntry{ID: "e2", Type: EntrySystem, Speaker: SpeakerSystem, Content: "second"}})

	if len(snapshot) != 1 || snapshot[0].Content != "first" {
		t.Fatal("prior history snapshot was mutated by a later append")
	}
	if len(state.ConversationHistory) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(state.ConversationHistory))
	}
	if state.ConversationHistory[0].ID != "e1" || state.ConversationHistory[1].ID != "e2" {
		t.Fatal("entries out of order")
	}
}

func TestReduce_ResponseMarksSpoken(t *testing.T) {
	state := InitialState(testRoster())
	state = Reduce(state, AddEntry{Entry: ConversationEntry{
		ID: "r1", Type: EntryResponse, Speaker: "candidate_3", Content: "answer",
	}})
	c := state.CandidateByID("candidate_3")
	if c == nil || !c.HasSpoken {
		t.Fatal("responding candidate should be marked as having spoken")
	}
}

func TestReduce_ResetCompleteness(t *testing.T) {
	state := InitialState(testRoster())
	state = Reduce(state, SetPhase{Phase: PhaseQuestioning})
	state = Reduce(state, DecrementQuestions{})
	state = Reduce(state, AddEntry{Entry: ConversationEntry{ID: "q", Type: EntryQuestion, Speaker: SpeakerPlayer, Content: "hi"}})
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_1", At: time.Now()})
	state = Reduce(state, SetVote{CandidateID: "candidate_2"})

	state = Reduce(state, ResetGame{Candidates: testRoster()})

	if state.QuestionsRemaining != TotalQuestions {
		t.Fatalf("questions not reset: %d", state.QuestionsRemaining)
	}
	if len(state.ConversationHistory) != 0 {
		t.Fatal("history not cleared")
	}
	if len(state.EliminatedCandidateIDs) != 0 {
		t.Fatal("eliminations not cleared")
	}
	if state.PlayerVote != "" {
		t.Fatal("vote not cleared")
	}
	if state.Phase != PhaseIntroduction {
		t.Fatalf("phase not reset: %s", state.Phase)
	}
	for _, c := range state.Candidates {
		if c.IsEliminated {
			t.Fatalf("%s still eliminated after reset", c.ID)
		}
	}
}

func TestReduce_CompleteGameRuthlessExtremes(t *testing.T) {
	// Voting for candidate_4: losing best friend candidate_3 and
	// secret friend candidate_2 makes both eliminations ally-class.
	state := InitialState(testRoster())
	at := time.Now()
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_3", At: at})
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_2", At: at})
	state = Reduce(state, SetVote{CandidateID: "candidate_4"})
	state = Reduce(state, CompleteGame{At: at})

	if got := state.PlayerStats.RuthlessScore; got != 100 {
		t.Fatalf("two ally eliminations should score 100, got %d", got)
	}
	if len(state.PlayerStats.EliminatedAllies) != 2 {
		t.Fatalf("expected 2 ally eliminations, got %v", state.PlayerStats.EliminatedAllies)
	}

	// Voting for candidate_1: rival candidate_2 and enemy candidate_5
	// are both rival-class losses.
	state = InitialState(testRoster())
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_2", At: at})
	state = Reduce(state, EliminateCandidate{CandidateID: "candidate_5", At: at})
	state = Reduce(state, SetVote{CandidateID: "candidate_1"})
	state = Reduce(state, CompleteGame{At: at})

	if got := state.PlayerStats.RuthlessScore; got != 0 {
		t.Fatalf("two rival eliminations should score 0, got %d", got)
	}
	if len(state.PlayerStats.EliminatedRivals) != 2 {
		t.Fatalf("expected 2 rival eliminations, got %v", state.PlayerStats.EliminatedRivals)
	}
}

func TestReduce_TrackQuestionDerivations(t *testing.T) {
	state := InitialState(testRoster())
	at := time.Now()

	state = Reduce(state, TrackQuestion{Question: "about money", CandidateID: "candidate_1", Topics: []string{"economy"}, At: at})
	state = Reduce(state, TrackQuestion{Question: "admit the lie", CandidateID: "candidate_1", Topics: []string{"corruption"}, Aggressive: true, At: at})

	stats := state.PlayerStats
	if stats.FavoriteCandidate != "candidate_1" {
		t.Fatalf("expected favorite candidate_1, got %q", stats.FavoriteCandidate)
	}
	if stats.AggressionCount != 1 {
		t.Fatalf("expected 1 aggressive question, got %d", stats.AggressionCount)
	}
	if stats.TopicTally["economy"] != 1 || stats.TopicTally["corruption"] != 1 {
		t.Fatalf("topic tally wrong: %v", stats.TopicTally)
	}
	if len(stats.IgnoredCandidates) != 4 {
		t.Fatalf("expected 4 ignored candidates, got %v", stats.IgnoredCandidates)
	}
	if len(stats.TopicLog) != 2 {
		t.Fatalf("expected 2 topic log entries, got %d", len(stats.TopicLog))
	}

	// A tie between two candidates yields no favorite.
	state = Reduce(state, TrackQuestion{Question: "q", CandidateID: "candidate_2", At: at})
	state = Reduce(state, TrackQuestion{Question: "q", CandidateID: "candidate_2", At: at})
	if state.PlayerStats.FavoriteCandidate != "" {
		t.Fatalf("tie should yield no favorite, got %q", state.PlayerStats.FavoriteCandidate)
	}
}

func TestReduce_TrackQuestionMetaSticky(t *testing.T) {
	state := InitialState(testRoster())
	state = Reduce(state, TrackQuestion{
		Question:  "who controls this game",
		Suspicion: SuspicionAnalysis{AskedAboutGameMaster: true},
	})
	state = Reduce(state, TrackQuestion{Question: "normal question"})

	if !state.PlayerStats.Meta.AskedAboutGameMaster {
		t.Fatal("meta flag must stay set once triggered")
	}
}

func TestReduce_TrackDecisionRushed(t *testing.T) {
	state := InitialState(testRoster())
	base := time.Now()

	state = Reduce(state, TrackDecision{At: base})
	state = Reduce(state, TrackDecision{At: base.Add(2 * time.Second)})
	state = Reduce(state, TrackDecision{At: base.Add(12 * time.Second)})

	stats := state.PlayerStats
	if stats.RushedDecisions != 1 {
		t.Fatalf("expected 1 rushed decision, got %d", stats.RushedDecisions)
	}
	if stats.AverageDecisionMs != 6*time.Second {
		t.Fatalf("expected 6s average gap, got %s", stats.AverageDecisionMs)
	}
}

func TestReduce_RevealSecretDeduplicates(t *testing.T) {
	state := InitialState(testRoster())
	reveal := SecretReveal{
		Knowers:    []string{"candidate_2"},
		TargetID:   "candidate_1",
		SecretType: "statue",
		Timestamp:  time.Now(),
	}
	state = Reduce(state, RevealSecret{Reveal: reveal})
	state = Reduce(state, RevealSecret{Reveal: reveal})

	if len(state.SecretReveals) != 1 {
		t.Fatalf("expected 1 reveal, got %d", len(state.SecretReveals))
	}
	if !state.SecretReveals[0].Revealed {
		t.Fatal("stored reveal should be marked revealed")
	}
}

func TestReduce_UnknownActionIsNoop(t *testing.T) {
	state := InitialState(testRoster())
	next := Reduce(state, nil)
	if next.Phase != state.Phase || next.QuestionsRemaining != state.QuestionsRemaining {
		t.Fatal("nil action must not change state")
	}
}
