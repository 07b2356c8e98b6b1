package lastvote

import (
	"testing"
	"time"
)

func TestConsequenceTiming_Levels(t *testing.T) {
	cases := []struct {
		impact ImpactLevel
		delay  time.Duration
		anim   Animation
	}{
		{ImpactLow, time.Second, AnimFade},
		{ImpactMedium, 2 * time.Second, AnimSlide},
		{ImpactHigh, 3500 * time.Millisecond, AnimDramaticPause},
		{ImpactDevastating, 5 * time.Second, AnimDramaticPause},
	}
	for _, c := range cases {
		got := ConsequenceTiming(c.impact)
		if got.Delay != c.delay || got.Animation != c.anim {
			t.Fatalf("%s: got %+v", c.impact, got)
		}
	}

	// Unknown levels pace like medium rather than panicking.
	if got := ConsequenceTiming(ImpactLevel("??")); got.Animation != AnimSlide {
		t.Fatalf("unknown impact: got %+v", got)
	}
}

func TestAnalyzeConsequenceImpact_Composition(t *testing.T) {
	c := &ConsequenceData{}
	// One bad outcome, clean secret, no alternatives: 10 points.
	c.LongTermConsequences.BadOutcomes = []string{"one"}
	if got := AnalyzeConsequenceImpact(c); got != ImpactLow {
		t.Fatalf("minimal record: got %s", got)
	}

	// A damaging secret alone moves the floor to medium.
	c.HiddenTruths.ChosenCandidateSecret = "They betrayed their closest ally."
	if got := AnalyzeConsequenceImpact(c); got != ImpactMedium {
		t.Fatalf("damaging secret: got %s", got)
	}

	// Pile on outcomes and roads not taken until it devastates.
	c.LongTermConsequences.BadOutcomes = []string{"a", "b", "c", "d", "e", "f"}
	c.AlternativePaths = []AlternativePath{{}, {}, {}}
	if got := AnalyzeConsequenceImpact(c); got != ImpactDevastating {
		t.Fatalf("stacked record: got %s", got)
	}
}

func TestAnalyzeConsequenceImpact_DefaultTableNeverPanics(t *testing.T) {
	table := DefaultTable{}
	for _, cand := range table.Candidates() {
		set, ok := table.ConsequenceSet(cand.ID)
		if !ok {
			t.Fatalf("no consequence set for %s", cand.ID)
		}
		impact := AnalyzeConsequenceImpact(&set)
		switch impact {
		case ImpactLow, ImpactMedium, ImpactHigh, ImpactDevastating:
		default:
			t.Fatalf("%s: unexpected impact %q", cand.ID, impact)
		}
	}
}

func TestPhaseTiming_Sequence(t *testing.T) {
	c := &ConsequenceData{}
	c.LongTermConsequences.BadOutcomes = []string{"a", "b"}

	truths := PhaseTiming(c, PhaseHiddenTruths)
	if truths.Animation != AnimDramaticPause {
		t.Fatalf("hidden truths should pause dramatically, got %s", truths.Animation)
	}

	longTerm := PhaseTiming(c, PhaseLongTerm)
	if longTerm.PauseAfter != 1500*time.Millisecond {
		t.Fatalf("long term should hold after the reveal, got %v", longTerm.PauseAfter)
	}

	alts := PhaseTiming(c, PhaseAlternatives)
	if alts.Animation != AnimSlide || alts.Delay != 1500*time.Millisecond {
		t.Fatalf("alternatives should move fast, got %+v", alts)
	}
}
