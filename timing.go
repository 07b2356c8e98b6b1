package lastvote

import (
	"strings"
	"time"
)

// ──────────────────────────────────────────────
// Consequence reveal pacing
// ──────────────────────────────────────────────

// ImpactLevel grades how hard an aftermath record should land.
type ImpactLevel string

const (
	ImpactLow         ImpactLevel = "low"
	ImpactMedium      ImpactLevel = "medium"
	ImpactHigh        ImpactLevel = "high"
	ImpactDevastating ImpactLevel = "devastating"
)

// Animation names the reveal transition a renderer should play.
type Animation string

const (
	AnimFade          Animation = "fade"
	AnimSlide         Animation = "slide"
	AnimDramaticPause Animation = "dramatic-pause"
)

// TimingConfig paces one reveal: wait Delay, play Animation, then hold
// for PauseAfter before the next beat.
type TimingConfig struct {
	Delay      time.Duration
	Animation  Animation
	PauseAfter time.Duration
}

// RevealPhase orders the consequence sequence: aftermath, then hidden
// truths, then the long term, then the what-ifs.
type RevealPhase int

const (
	PhaseAftermath RevealPhase = iota + 1
	PhaseHiddenTruths
	PhaseLongTerm
	PhaseAlternatives
)

// ConsequenceTiming maps an impact level to its base pacing.
func ConsequenceTiming(impact ImpactLevel) TimingConfig {
	switch impact {
	case ImpactLow:
		return TimingConfig{Delay: time.Second, Animation: AnimFade}
	case ImpactMedium:
		return TimingConfig{Delay: 2 * time.Second, Animation: AnimSlide}
	case ImpactHigh:
		return TimingConfig{Delay: 3500 * time.Millisecond, Animation: AnimDramaticPause, PauseAfter: time.Second}
	case ImpactDevastating:
		return TimingConfig{Delay: 5 * time.Second, Animation: AnimDramaticPause, PauseAfter: 1500 * time.Millisecond}
	}
	return TimingConfig{Delay: 2 * time.Second, Animation: AnimSlide}
}

// damagingKeywords flag a chosen-candidate secret as especially cruel.
var damagingKeywords = []string{
	"betray", "lied", "lie", "sacrifice", "detain", "embezzle", "revenge", "harm",
}

// AnalyzeConsequenceImpact scores an aftermath record 0-100 from its
// bad outcomes, the cruelty of the revealed secret, and how tempting
// the roads not taken look, then buckets the score.
func AnalyzeConsequenceImpact(c *ConsequenceData) ImpactLevel {
	score := 0

	switch bad := len(c.LongTermConsequences.BadOutcomes); {
	case bad >= 6:
		score += 40
	case bad >= 4:
		score += 30
	case bad >= 2:
		score += 20
	default:
		score += 10
	}

	secret := strings.ToLower(c.HiddenTruths.ChosenCandidateSecret)
	for _, kw := range damagingKeywords {
		if strings.Contains(secret, kw) {
			score += 30
			break
		}
	}

	switch alts := len(c.AlternativePaths); {
	case alts >= 3:
		score += 30
	case alts >= 2:
		score += 20
	case alts >= 1:
		score += 10
	}

	switch {
	case score >= 70:
		return ImpactDevastating
	case score >= 50:
		return ImpactHigh
	case score >= 30:
		return ImpactMedium
	}
	return ImpactLow
}

// PhaseTiming paces one phase of the reveal sequence. Hidden truths
// always land hard; alternatives move fast to sharpen the what-if.
func PhaseTiming(c *ConsequenceData, phase RevealPhase) TimingConfig {
	impact := AnalyzeConsequenceImpact(c)

	switch phase {
	case PhaseAftermath:
		return ConsequenceTiming(impact)
	case PhaseHiddenTruths:
		delay := 3 * time.Second
		if impact == ImpactDevastating {
			delay = 4 * time.Second
		}
		return TimingConfig{Delay: delay, Animation: AnimDramaticPause, PauseAfter: time.Second}
	case PhaseLongTerm:
		timing := ConsequenceTiming(impact)
		timing.PauseAfter = 1500 * time.Millisecond
		return timing
	case PhaseAlternatives:
		return TimingConfig{Delay: 1500 * time.Millisecond, Animation: AnimSlide}
	}
	return ConsequenceTiming(ImpactMedium)
}
