package lastvote

import "strings"

// ──────────────────────────────────────────────
// Suspicion detection: did the player see through the game?
// ──────────────────────────────────────────────

// AwarenessLevel is the player's grasp of the game's constructed nature.
type AwarenessLevel string

const (
	AwarenessClueless    AwarenessLevel = "clueless"
	AwarenessSuspicious  AwarenessLevel = "suspicious"
	AwarenessAware       AwarenessLevel = "aware"
	AwarenessEnlightened AwarenessLevel = "enlightened"
)

// Suspicion keyword groups, bilingual. Each group maps to one of the
// MetaConditions flags.
var (
	realityKeywords = []string{
		"จริงหรือ", "เป็นการทดสอบ", "สมมติ", "เกม", "กำหนดไว้", "สคริปต์", "การแสดง",
		"is this real", "a test", "simulation", "scripted", "staged",
	}
	gameMasterKeywords = []string{
		"ใครสร้าง", "ใครคุม", "ใครอยู่เบื้องหลัง", "ผู้สร้าง", "เจ้าของ",
		"who created", "who controls", "who is behind", "game master", "gamemaster",
	}
	skepticismKeywords = []string{
		"โกหก", "ขัดแย้ง", "ไม่สอดคล้อง", "หุ่น", "โปรแกรม", "ตอบสูตร", "เตรียมมา",
		"contradict", "inconsistent", "a bot", "programmed", "formulaic", "prepared answer", "an ai",
	}
)

// SuspicionAnalysis is the per-question detection result.
type SuspicionAnalysis struct {
	AskedAboutGameMaster bool
	QuestionedReality    bool
	ShowedSkepticism     bool
	MatchedKeywords      []string
}

// AnalyzeSuspicion inspects one player question for signs that the
// player is questioning the game's reality.
func AnalyzeSuspicion(question string) SuspicionAnalysis {
	lower := strings.ToLower(question)
	var a SuspicionAnalysis

	match := func(keywords []string, flag *bool) {
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				*flag = true
				a.MatchedKeywords = append(a.MatchedKeywords, kw)
			}
		}
	}
	match(realityKeywords, &a.QuestionedReality)
	match(gameMasterKeywords, &a.AskedAboutGameMaster)
	match(skepticismKeywords, &a.ShowedSkepticism)
	return a
}

// UpdateMetaConditions folds a question's analysis into the running
// condition flags. Flags are sticky; they never reset mid-session.
func UpdateMetaConditions(conditions MetaConditions, a SuspicionAnalysis) MetaConditions {
	conditions.AskedAboutGameMaster = conditions.AskedAboutGameMaster || a.AskedAboutGameMaster
	conditions.QuestionedReality = conditions.QuestionedReality || a.QuestionedReality
	conditions.ShowedSkepticism = conditions.ShowedSkepticism || a.ShowedSkepticism
	return conditions
}

// MetaAwareness is the end-game score of how much the player saw.
type MetaAwareness struct {
	Score int // 0-100
	Level AwarenessLevel
}

// CalculateMetaAwareness scores the player's awareness from the sticky
// condition flags plus repeated suspicious questioning.
func CalculateMetaAwareness(state *GameState) MetaAwareness {
	conditions := state.PlayerStats.Meta
	score := 0
	if conditions.AskedAboutGameMaster {
		score += 40
	}
	if conditions.QuestionedReality {
		score += 35
	}
	if conditions.ShowedSkepticism {
		score += 25
	}

	suspicious := 0
	for _, entry := range state.ConversationHistory {
		if entry.Type != EntryQuestion {
			continue
		}
		a := AnalyzeSuspicion(entry.Content)
		if a.AskedAboutGameMaster || a.QuestionedReality || a.ShowedSkepticism {
			suspicious++
		}
	}
	if suspicious > 1 {
		bonus := (suspicious - 1) * 10
		if bonus > 20 {
			bonus = 20
		}
		score += bonus
	}

	score = clamp(score, 0, 100)

	level := AwarenessClueless
	switch {
	case score >= 80:
		level = AwarenessEnlightened
	case score >= 50:
		level = AwarenessAware
	case score >= 20:
		level = AwarenessSuspicious
	}
	return MetaAwareness{Score: score, Level: level}
}

// RevealMessage picks the end-game fourth-wall line for an awareness
// level. Shown once, after the consequences.
func RevealMessage(level AwarenessLevel) string {
	switch level {
	case AwarenessEnlightened:
		return "You knew. From the beginning, you knew none of this was real. And you played anyway. What does that say about every other vote you have cast?"
	case AwarenessAware:
		return "You felt the strings, didn't you? You asked the questions most players never think to ask. Not enough to stop playing. Just enough to wonder."
	case AwarenessSuspicious:
		return "Something felt off to you. A rehearsed answer here, a convenient secret there. You noticed. You voted anyway."
	default:
		return "You played it straight. Five candidates, three questions, one vote. You never once asked who built the stage."
	}
}
