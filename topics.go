package lastvote

import "strings"

// ──────────────────────────────────────────────
// Topic detection: lightweight keyword matching over questions
// ──────────────────────────────────────────────

// topicKeywords maps topic labels to bilingual (Thai + English)
// keyword lists. A question matches a topic when any keyword appears.
var topicKeywords = map[string][]string{
	"economy": {
		"เศรษฐกิจ", "เงิน", "รายได้", "ความจน", "งบประมาณ", "ภาษี", "เงินเฟ้อ", "ว่างงาน",
		"economy", "money", "income", "poverty", "budget", "tax", "jobs",
	},
	"education": {
		"การศึกษา", "โรงเรียน", "มหาวิทยาลัย", "เรียน", "ครู", "นักเรียน",
		"education", "school", "university", "teacher", "student",
	},
	"safety": {
		"ความปลอดภัย", "อาชญากรรม", "ตำรวจ", "อาวุธ", "ป้องกัน",
		"safety", "crime", "police", "security",
	},
	"corruption": {
		"โกหก", "โปร่งใส", "ทุจริต", "คอร์รัปชัน", "ซื้อเสียง", "ความซื่อสัตย์",
		"corruption", "bribe", "transparent", "honest", "lie",
	},
	"rights": {
		"สิทธิ", "ความเสมอภาค", "เสรีภาพ", "เลือกตั้ง", "ประชาธิปไตย",
		"rights", "freedom", "equality", "democracy", "vote",
	},
	"environment": {
		"สิ่งแวดล้อม", "มลพิษ", "ขยะ", "น้ำ", "อากาศ", "พลังงาน",
		"environment", "pollution", "waste", "water", "energy",
	},
	"health": {
		"สุขภาพ", "โรงพยาบาล", "แพทย์", "ยา", "รักษา", "วัคซีน",
		"health", "hospital", "doctor", "medicine", "vaccine",
	},
	"infrastructure": {
		"โครงสร้างพื้นฐาน", "ถนน", "สะพาน", "รถไฟ", "คมนาคม", "ไฟฟ้า",
		"infrastructure", "road", "bridge", "transit", "electricity",
	},
}

// aggressionKeywords flag confrontational question phrasing.
var aggressionKeywords = []string{
	"โกหก", "ทุจริต", "ซ่อน", "ปกปิด", "ยอมรับ", "สารภาพ",
	"lie", "lying", "liar", "corrupt", "hiding", "admit", "confess", "expose",
}

// AnalyzeQuestionTopics detects the topics a question touches.
// Detection is case-insensitive substring matching, in the same spirit
// as the emotional-tone keyword scoring elsewhere in this codebase.
func AnalyzeQuestionTopics(question string) []string {
	lower := strings.ToLower(question)
	topics := make([]string, 0, 2)
	for _, topic := range topicOrder {
		for _, kw := range topicKeywords[topic] {
			if strings.Contains(lower, strings.ToLower(kw)) {
				topics = append(topics, topic)
				break
			}
		}
	}
	return topics
}

// topicOrder keeps detection output stable across runs (map iteration
// order would otherwise leak into TopicEntry contents).
var topicOrder = []string{
	"economy", "education", "safety", "corruption",
	"rights", "environment", "health", "infrastructure",
}

// IsAggressiveQuestion reports whether the phrasing is confrontational.
func IsAggressiveQuestion(question string) bool {
	lower := strings.ToLower(question)
	for _, kw := range aggressionKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
