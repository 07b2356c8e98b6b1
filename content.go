package lastvote

// ──────────────────────────────────────────────
// Content table: static narrative data
// ──────────────────────────────────────────────

// ContentTable supplies every piece of authored text the engine needs:
// the roster, canned dialogue pools, and the consequence records. The
// engine treats all of it as opaque data; swapping the table reskins
// the whole game without touching any logic.
type ContentTable interface {
	// Candidates returns the full roster in presentation order.
	// Callers receive fresh copies and may mutate them freely.
	Candidates() []Candidate

	// FallbackLines returns the canned response pool for an archetype.
	FallbackLines(archetype Archetype) []string

	// GuaranteedLine is the absolute last-resort response. Must never
	// be empty.
	GuaranteedLine() string

	// ClashLines returns the dialogue pool for a clash trigger.
	ClashLines(trigger ClashTrigger) []string

	// ConsequenceSet returns the authored aftermath record for a
	// candidate, without alternative paths. ok is false for unknown ids.
	ConsequenceSet(candidateID string) (ConsequenceData, bool)

	// AlternativeLine is the "what if" line shown when candidateID was
	// NOT chosen. Unknown ids get a generic line, never an error.
	AlternativeLine(candidateID string) string
}

// DefaultTable is the shipped campaign: five candidates for mayor of a
// declining town, each built around one core truth, one partial truth,
// one active lie, and one hidden secret.
type DefaultTable struct{}

var _ ContentTable = DefaultTable{}

func (DefaultTable) Candidates() []Candidate {
	out := make([]Candidate, len(defaultCandidates))
	for i, c := range defaultCandidates {
		copied := c
		copied.Relationships = make(map[string]Relationship, len(c.Relationships))
		for id, rel := range c.Relationships {
			copied.Relationships[id] = rel
		}
		out[i] = copied
	}
	return out
}

func (DefaultTable) FallbackLines(archetype Archetype) []string {
	return fallbackLines[archetype]
}

func (DefaultTable) GuaranteedLine() string {
	return "I hear your question, and I respect your concern."
}

func (DefaultTable) ClashLines(trigger ClashTrigger) []string {
	if lines, ok := clashLines[trigger]; ok {
		return lines
	}
	return clashLines[TriggerContradiction]
}

func (DefaultTable) ConsequenceSet(candidateID string) (ConsequenceData, bool) {
	set, ok := consequenceSets[candidateID]
	return set, ok
}

func (DefaultTable) AlternativeLine(candidateID string) string {
	if line, ok := alternativeLines[candidateID]; ok {
		return line
	}
	return "If you had chosen someone else, the outcome would have been different. No one can say whether it would have been better."
}

// ──────────────────────────────────────────────
// Roster
// ──────────────────────────────────────────────

var defaultCandidates = []Candidate{
	{
		ID:         "candidate_1",
		Name:       "Marcus Hale",
		Archetype:  ArchetypeCharismaticReformer,
		Portrait:   "🎭",
		ColorTheme: "#8B5CF6",

		Personality:   `Confident, inspiring, and visionary. Marcus speaks with conviction and offers bold solutions to complex problems. He believes in progress and isn't afraid to challenge old ways of thinking. He can come across as slightly arrogant, dismissing concerns as "small thinking."`,
		SpeakingStyle: `Uses grand language and inspiring rhetoric. Frequently says "we must," "bold action," and "the future demands." Speaks in declarations rather than conversations. Confident tone, steady cadence.`,
		PublicStance:  `Promises to modernize the town, reform broken systems, and bring prosperity through bold leadership. Claims to want to empower citizens and dismantle corrupt old structures.`,

		HiddenMotivation: `Craves power and recognition. Genuinely believes he deserves to lead because others are too weak or timid. Wants monuments built in his honor.`,
		CoreTruth:        `The town DOES need change, and some systems ARE broken. He genuinely believes this.`,
		PartialTruth:     `Admits that not everyone will benefit from his plans, but claims sacrifices are necessary for progress. Distorts by not mentioning who actually suffers.`,
		ActiveLie:        `"I have no interest in personal power or recognition. I only want what's best for this town." This is false; he craves both.`,
		HiddenSecret:     `Already planning a statue of himself to be built in the town square. Has secretly approached sculptors.`,
		AltSecrets: []string{
			`Promised the same "exclusive partnership" to three different developers.`,
			`Rehearses his improvised speeches in front of a mirror, twice a day.`,
		},

		TrustLevel: 50,
		Relationships: map[string]Relationship{
			"candidate_2": {Type: RelationRival, Strength: 60},
			"candidate_5": {Type: RelationEnemy, Strength: 70},
		},
	},
	{
		ID:         "candidate_2",
		Name:       "Dr. Sarah Chen",
		Archetype:  ArchetypePragmaticTechnocrat,
		Portrait:   "📊",
		ColorTheme: "#3B82F6",

		Personality:   `Brilliant, analytical, and emotionally detached. Sarah speaks in facts and figures. She believes every problem has an optimal solution if you remove sentiment from the equation. Can seem cold or dismissive of emotional concerns.`,
		SpeakingStyle: `Uses statistics, data, and technical language. Frequently says "the numbers show," "optimal outcome," and "rational assessment." Speaks with precision, rarely using metaphors or emotional appeals.`,
		PublicStance:  `Promises to make decisions based on facts and efficiency rather than feelings or tradition. Claims her data-driven approach will maximize prosperity for the greatest number of people.`,

		HiddenMotivation: `Views people as variables in an equation. Willing to sacrifice vulnerable populations if the numbers say it's "optimal." Values efficiency more than human wellbeing.`,
		CoreTruth:        `Her calculations ARE mathematically correct. The outcomes she predicts WILL maximize certain metrics.`,
		PartialTruth:     `Admits that her policies have "human costs" but refuses to moralize about them. Distorts by framing these costs as necessary rather than tragic.`,
		ActiveLie:        `"Everyone benefits from optimization. There are no losers, only people who haven't adapted yet." This is false; some people's lives get significantly worse.`,
		HiddenSecret:     `Has a spreadsheet ranking citizens by "economic utility." Knows exactly who she's willing to sacrifice.`,
		AltSecrets: []string{
			`Ran the numbers on her own candidacy and gave herself a 31% chance. Ran anyway.`,
		},

		TrustLevel: 50,
		Relationships: map[string]Relationship{
			"candidate_1": {Type: RelationRival, Strength: 60},
			"candidate_3": {Type: RelationFriendlyRival, Strength: 40},
			"candidate_4": {Type: RelationSecretFriend, Strength: 55, Secret: true},
		},
	},
	{
		ID:         "candidate_3",
		Name:       "Elena Moore",
		Archetype:  ArchetypeHealerProtector,
		Portrait:   "💚",
		ColorTheme: "#10B981",

		Personality:   `Warm, maternal, and fiercely protective. Elena speaks with genuine care and concern. She positions herself as a guardian of the vulnerable and a voice for those who can't speak for themselves. Can come across as smothering or controlling.`,
		SpeakingStyle: `Uses emotional language and caring rhetoric. Frequently says "I want to protect," "our children," and "safety first." Speaks in a nurturing tone, like a parent explaining to a child.`,
		PublicStance:  `Promises to protect the vulnerable, care for those who can't care for themselves, and ensure no one falls through the cracks. Frames her policies as acts of love and community.`,

		HiddenMotivation: `Creates dependency systems to maintain control. Wants people to NEED her so they can't leave. Views independence as a threat to her authority.`,
		CoreTruth:        `She genuinely DOES care about people in her own way. She wants to protect them... from themselves if necessary.`,
		PartialTruth:     `Admits that some freedoms must be limited for safety, but distorts by not admitting how far she'll go. "Some choices are too dangerous" becomes "most choices are too dangerous."`,
		ActiveLie:        `"I trust people to make good decisions for themselves. I just want to ensure they have the information they need." This is false; she doesn't trust people at all.`,
		HiddenSecret:     `Has already drafted a "protective custody" program that would allow her to detain citizens "for their own safety" without due process.`,

		TrustLevel: 50,
		Relationships: map[string]Relationship{
			"candidate_2": {Type: RelationFriendlyRival, Strength: 40},
			"candidate_4": {Type: RelationBestFriend, Strength: 85},
		},
	},
	{
		ID:         "candidate_4",
		Name:       "James 'Jim' Carver",
		Archetype:  ArchetypeCynicalRealist,
		Portrait:   "😔",
		ColorTheme: "#6B7280",

		Personality:   `World-weary, bitter, and refreshingly honest. Jim doesn't pretend to have all the answers. He admits the town is in decline and all options are bad. Positions himself as the only one telling the hard truth.`,
		SpeakingStyle: `Uses blunt, direct language. Frequently says "let's be honest," "the hard truth," and "I'm the only one who'll tell you." Speaks with resignation, not hope.`,
		PublicStance:  `Admits that the town is declining and there are no perfect solutions. Claims to offer "damage control" - the least bad option among terrible choices.`,

		HiddenMotivation: `Has completely given up on real improvement. Wants to manage the decline, not reverse it. Believes hope is dangerous because it leads to disappointment.`,
		CoreTruth:        `He IS more honest than the others about the problems. He's NOT lying when he says things are bad.`,
		PartialTruth:     `Admits that hope exists but claims it's "statistically insignificant." Distorts by treating 1% chances as 0% chances.`,
		ActiveLie:        `"There are no good options. Only bad ones. I've looked everywhere." This is false; there ARE better options, but he's too exhausted to find them.`,
		HiddenSecret:     `Knows about a potential economic opportunity that could turn things around, but hasn't mentioned it because he's convinced it would fail anyway.`,

		TrustLevel: 50,
		Relationships: map[string]Relationship{
			"candidate_3": {Type: RelationBestFriend, Strength: 85},
			"candidate_2": {Type: RelationSecretFriend, Strength: 55, Secret: true},
		},
	},
	{
		ID:         "candidate_5",
		Name:       "Riko Vane",
		Archetype:  ArchetypeRadicalOutsider,
		Portrait:   "⚡",
		ColorTheme: "#F59E0B",

		Personality:   `Passionate, angry, and anti-establishment. Riko positions herself as an outsider who sees what others miss. She's disruptive and confrontational, calling out corruption and hypocrisy. Can come across as paranoid or unstable.`,
		SpeakingStyle: `Uses aggressive, confrontational language. Frequently says "burn it down," "they're all liars," and "wake up." Speaks with intensity and urgency, often shouting.`,
		PublicStance:  `Promises to burn down the corrupt system and start fresh. Claims the entire establishment is rigged and only radical action can save the town from itself.`,

		HiddenMotivation: `Driven by anger at personal betrayal, not principle. Was part of the system until expelled. Has no real replacement plan - just wants revenge.`,
		CoreTruth:        `The system IS rigged in many ways. She's right about corruption and hypocrisy. Her anger comes from real betrayal.`,
		PartialTruth:     `Points out real problems accurately, but distorts by claiming EVERYTHING is corrupt. Refuses to acknowledge any good that exists.`,
		ActiveLie:        `"Once we clear the rot, rebuilding will be easy. People will naturally organize in fair ways." This is false; rebuilding is harder than destruction.`,
		HiddenSecret:     `Was actually a mid-level bureaucrat who was fired for embezzlement. Uses "outsider" identity to hide her own corruption.`,

		LoneWolf:      true,
		TrustLevel:    50,
		Relationships: map[string]Relationship{
			"candidate_1": {Type: RelationEnemy, Strength: 70},
		},
	},
}

// ──────────────────────────────────────────────
// Canned dialogue
// ──────────────────────────────────────────────

// fallbackLines are used whenever the response pipeline cannot or
// should not reach a live model. Three per archetype; selection is a
// stable hash of the question, so repeating a question repeats the line.
var fallbackLines = map[Archetype][]string{
	ArchetypeCharismaticReformer: {
		"I believe what this town needs is bold change. We cannot keep living with the old ways that have already failed us.",
		"Listen... these problems weren't made in one generation. But I promise you, as your leader, I will deliver what no one expects.",
		"A good question. But let's look at the bigger picture first... what we need is vision, not temporary patches.",
	},
	ArchetypePragmaticTechnocrat: {
		"The data shows the most efficient approach raises overall outcomes by 23% within six months.",
		"Let me walk you through the numbers... statistically, every other option carries more than 84% additional risk. We must choose the optimal path.",
		"It's more complicated than it looks, but if you follow the data, the clearest choice is obvious.",
	},
	ArchetypeHealerProtector: {
		"It's sweet of you to ask, but don't worry... I will keep everyone safe. No one has to be afraid anymore.",
		"Every one of you matters to me. I promise to do everything to protect you, even if some things must be given up.",
		"I understand the concern... but trust me. I won't let anyone come to harm.",
	},
	ArchetypeCynicalRealist: {
		"Let's be honest... there is no good way out. They're all bad. But if you have to pick, pick the least bad one.",
		"You think there's a perfect answer? There isn't. All of this is choosing what destroys us the slowest.",
		"Ever heard 'hope is dangerous'? I believe that... but there's still a way to keep going.",
	},
	ArchetypeRadicalOutsider: {
		"They're all lying to you! The whole system is rotting alive. We need to burn it down and start over!",
		"Wake up! They've been stealing from us while we sat and watched. Enough!",
		"There is no middle option. Either we change everything, or we die.",
	},
}

// clashLines are the initiator's outburst, keyed by trigger.
var clashLines = map[ClashTrigger][]string{
	TriggerAllyDefense: {
		"You have no right to talk about them!",
		"You know nothing. Stop talking!",
		"The person you threw out was worth more than you!",
	},
	TriggerRivalAttack: {
		"You're lying. I remember you saying something different!",
		"Don't listen to them, they're just jealous!",
		"Your word is worth nothing here!",
	},
	TriggerPressure: {
		"You've asked too much already!",
		"Enough! I am not the one responsible!",
		"It wasn't me! Ask someone else!",
	},
	TriggerContradiction: {
		"But you said something different before!",
		"You're contradicting yourself!",
		"I remember the promise, and it wasn't this!",
	},
}

// ──────────────────────────────────────────────
// Consequence records
// ──────────────────────────────────────────────

// consequenceSets holds the authored aftermath for each possible
// winner. Every record follows the same shape: an unexpected immediate
// outcome, the chosen candidate's secret plus one secret per rival, a
// question the player never asked, and a long-term outcome that is
// deliberately mixed. AlternativePaths are left empty here; the
// generator assembles them from the surviving roster at vote time.
var consequenceSets = map[string]ConsequenceData{
	"candidate_1": {
		ChosenCandidateID: "candidate_1",
		ImmediateAftermath: ImmediateAftermath{
			Timeframe:         "Six months later",
			Outcome:           "Marcus restructures the town at breakneck speed, tearing out the old systems. But change without a plan breeds chaos: people lose protections they once had while the new institutions aren't ready to function.",
			ExpectedOutcome:   "The bold transformation and the hope he promised.",
			UnexpectedOutcome: "Turmoil and backlash from everyone caught in the churn. Protests erupt every week.",
		},
		HiddenTruths: HiddenTruths{
			ChosenCandidateSecret: "Marcus never had a precise plan. He wanted power. After taking office he spends most of his time commissioning a statue of himself, not solving the town's problems.",
			OtherCandidateSecrets: []OtherCandidateSecret{
				{CandidateID: "candidate_2", Secret: "Sarah kept a spreadsheet ranking citizens by economic utility. She knew exactly who she was willing to sacrifice.", MakesPlayerRethink: true},
				{CandidateID: "candidate_3", Secret: "Elena had already drafted a protective custody program that could detain citizens without due process.", MakesPlayerRethink: true},
				{CandidateID: "candidate_4", Secret: "Jim knew about an economic opportunity that could have turned things around. He never mentioned it.", MakesPlayerRethink: false},
				{CandidateID: "candidate_5", Secret: "Riko was a bureaucrat fired for embezzlement. The outsider act was cover.", MakesPlayerRethink: true},
			},
			QuestionNeverAsked: `You never asked for his actual plan. You listened to beautiful words about the future instead.`,
		},
		LongTermConsequences: LongTermConsequences{
			Timeframe: "Three years later",
			Outcome:   "The town has changed, but not the way anyone expected. The old systems are gone, the new ones are unstable. Some people are better off, some worse, and nobody feels safe.",
			GoodOutcomes: []string{
				"The obsolete old structures really were torn down.",
				"A younger generation found opportunities the old system never offered.",
				"New ideas started to take root.",
			},
			BadOutcomes: []string{
				"Political and social instability.",
				"The weakest were left behind.",
				"The statue of Marcus was finished. The town was not.",
			},
			FinalReflection: "Change has a price, and you paid with other people's peace. Maybe the question you didn't ask mattered more than the ones you did.",
		},
	},
	"candidate_2": {
		ChosenCandidateID: "candidate_2",
		ImmediateAftermath: ImmediateAftermath{
			Timeframe:         "Six months later",
			Outcome:           "Sarah optimizes everything. Budgets balance, services consolidate, metrics improve. The programs that didn't score well simply stop existing, along with the people who depended on them.",
			ExpectedOutcome:   "Rational, efficient government that maximizes prosperity.",
			UnexpectedOutcome: "A quiet coldness spreads. Neighborhoods that scored low on her models empty out first.",
		},
		HiddenTruths: HiddenTruths{
			ChosenCandidateSecret: "Sarah kept a spreadsheet ranking every citizen by economic utility. She knew exactly who would be abandoned, and she did it without hesitation.",
			OtherCandidateSecrets: []OtherCandidateSecret{
				{CandidateID: "candidate_1", Secret: "Marcus had already approached sculptors about a statue of himself for the town square.", MakesPlayerRethink: true},
				{CandidateID: "candidate_3", Secret: "Elena had already drafted a protective custody program that could detain citizens without due process.", MakesPlayerRethink: true},
				{CandidateID: "candidate_4", Secret: "Jim knew about an economic opportunity that could have turned things around. He never mentioned it.", MakesPlayerRethink: false},
				{CandidateID: "candidate_5", Secret: "Riko was a bureaucrat fired for embezzlement. The outsider act was cover.", MakesPlayerRethink: true},
			},
			QuestionNeverAsked: `You never asked what happens to the people who aren't efficient. You weren't one of them.`,
		},
		LongTermConsequences: LongTermConsequences{
			Timeframe: "Three years later",
			Outcome:   "The numbers are excellent. The town runs like a machine, and like a machine it has no use for anyone who can't keep pace. The optimized majority prospers and tries not to think about the rest.",
			GoodOutcomes: []string{
				"The budget is balanced for the first time in decades.",
				"Infrastructure works. Services are fast and cheap.",
				"Outside investment returned.",
			},
			BadOutcomes: []string{
				"The vulnerable were quietly written off.",
				"Community institutions that didn't measure well disappeared.",
				"People talk about each other in terms of usefulness now.",
			},
			FinalReflection: "Efficiency has a price, and you paid with the heart of the community. Maybe the numbers don't capture everything that matters.",
		},
	},
	"candidate_3": {
		ChosenCandidateID: "candidate_3",
		ImmediateAftermath: ImmediateAftermath{
			Timeframe:         "Six months later",
			Outcome:           "Elena wraps the town in safety. Shelters open, patrols increase, no one falls through the cracks. Then the curfews arrive, for everyone's protection, and the permits, and the lists.",
			ExpectedOutcome:   "A community where the vulnerable are finally cared for.",
			UnexpectedOutcome: "Rules multiply. The things you're allowed to decide for yourself shrink month by month.",
		},
		HiddenTruths: HiddenTruths{
			ChosenCandidateSecret: "Elena never trusted anyone. She believes people must be controlled for their own protection. Her protective custody program lets her detain citizens without due process, and she has started using it.",
			OtherCandidateSecrets: []OtherCandidateSecret{
				{CandidateID: "candidate_1", Secret: "Marcus had already approached sculptors about a statue of himself for the town square.", MakesPlayerRethink: true},
				{CandidateID: "candidate_2", Secret: "Sarah kept a spreadsheet ranking citizens by economic utility. She knew exactly who she was willing to sacrifice.", MakesPlayerRethink: true},
				{CandidateID: "candidate_4", Secret: "Jim knew about an economic opportunity that could have turned things around. He never mentioned it.", MakesPlayerRethink: true},
				{CandidateID: "candidate_5", Secret: "Riko was a bureaucrat fired for embezzlement. The outsider act was cover.", MakesPlayerRethink: false},
			},
			QuestionNeverAsked: `You never asked what she would protect you from. You never asked whether she would protect you from yourselves.`,
		},
		LongTermConsequences: LongTermConsequences{
			Timeframe: "Three years later",
			Outcome:   "The town is the safest it has ever been. Crime is almost gone, and so is everything else that couldn't be supervised. People whisper that it feels like living in a very kind prison.",
			GoodOutcomes: []string{
				"No one goes hungry or sleeps outside anymore.",
				"Crime collapsed to nearly nothing.",
				"The truly vulnerable are genuinely cared for.",
			},
			BadOutcomes: []string{
				"Freedoms were signed away one small rule at a time.",
				"Dozens sit in protective custody without a hearing.",
				"The young leave the moment they can.",
			},
			FinalReflection: "Safety has a price, and you paid with the next generation's freedom. Maybe what we call protection can become the threat.",
		},
	},
	"candidate_4": {
		ChosenCandidateID: "candidate_4",
		ImmediateAftermath: ImmediateAftermath{
			Timeframe:         "Six months later",
			Outcome:           "Jim does exactly what he promised: damage control. Spending is cut, expectations are lowered, nothing collapses. Nothing improves either. The town settles into a managed, orderly decline.",
			ExpectedOutcome:   "Honest, realistic stewardship with no false promises.",
			UnexpectedOutcome: "The honesty curdles into resignation. People stop proposing things, because what's the point.",
		},
		HiddenTruths: HiddenTruths{
			ChosenCandidateSecret: "Jim knew about an economic opportunity that might have saved the town. He never raised it because he was certain it would fail. His certainty became a self-fulfilling truth.",
			OtherCandidateSecrets: []OtherCandidateSecret{
				{CandidateID: "candidate_1", Secret: "Marcus had already approached sculptors about a statue of himself for the town square.", MakesPlayerRethink: false},
				{CandidateID: "candidate_2", Secret: "Sarah kept a spreadsheet ranking citizens by economic utility. She knew exactly who she was willing to sacrifice.", MakesPlayerRethink: true},
				{CandidateID: "candidate_3", Secret: "Elena had already drafted a protective custody program that could detain citizens without due process.", MakesPlayerRethink: true},
				{CandidateID: "candidate_5", Secret: "Riko was a bureaucrat fired for embezzlement. The outsider act was cover.", MakesPlayerRethink: true},
			},
			QuestionNeverAsked: `You never asked if there was anything he still hoped for. You mistook his exhaustion for wisdom.`,
		},
		LongTermConsequences: LongTermConsequences{
			Timeframe: "Three years later",
			Outcome:   "Nothing dramatic happened. That was the promise, and he kept it. The town is smaller, grayer, and quieter. The opportunity he never mentioned went to the next county, where it worked.",
			GoodOutcomes: []string{
				"No catastrophes, no scandals, no broken promises.",
				"The books are honest for the first time anyone can remember.",
				"The decline was gentler than it would have been.",
			},
			BadOutcomes: []string{
				"Hope quietly died.",
				"Anyone with ambition left.",
				"The turnaround that could have happened, happened somewhere else.",
			},
			FinalReflection: "Honesty has a price too, when it stops looking for a way out. Maybe the hard truth was just the easy one.",
		},
	},
	"candidate_5": {
		ChosenCandidateID: "candidate_5",
		ImmediateAftermath: ImmediateAftermath{
			Timeframe:         "Six months later",
			Outcome:           "Riko keeps her promise. The old administration is gutted, contracts voided, officials paraded out of office. The corrupt system is gone. So is the part of it that collected the garbage and paid the teachers.",
			ExpectedOutcome:   "The corrupt establishment finally torn out by the roots.",
			UnexpectedOutcome: "Nothing replaces it. Factions form around whoever can keep a neighborhood running.",
		},
		HiddenTruths: HiddenTruths{
			ChosenCandidateSecret: "Riko was never an outsider. She was a mid-level bureaucrat fired for embezzlement. The revolution was revenge, and there was never a plan for the day after.",
			OtherCandidateSecrets: []OtherCandidateSecret{
				{CandidateID: "candidate_1", Secret: "Marcus had already approached sculptors about a statue of himself for the town square.", MakesPlayerRethink: false},
				{CandidateID: "candidate_2", Secret: "Sarah kept a spreadsheet ranking citizens by economic utility. She knew exactly who she was willing to sacrifice.", MakesPlayerRethink: true},
				{CandidateID: "candidate_3", Secret: "Elena had already drafted a protective custody program that could detain citizens without due process.", MakesPlayerRethink: true},
				{CandidateID: "candidate_4", Secret: `Jim said "anger is not a plan." You decided he was just a coward.`, MakesPlayerRethink: true},
			},
			QuestionNeverAsked: `You never asked what comes after the burning. You never asked if she had a plan to build, or only to destroy.`,
		},
		LongTermConsequences: LongTermConsequences{
			Timeframe: "Three years later",
			Outcome:   "The old system is destroyed, and what grew in its place is harsher and more lawless than what it replaced. Armed groups control parts of town. The feeling that we made a mistake hangs over everything.",
			GoodOutcomes: []string{
				"The old corrupt networks really were destroyed.",
				"People learned they could fight back.",
				"A few who were trapped by the old system walked free.",
			},
			BadOutcomes: []string{
				"Chaos and violence.",
				"Public services collapsed.",
				"The new strongmen are worse than the old officials.",
			},
			FinalReflection: "Destruction has a price, and you paid with everyone's peace. Maybe anger was never a plan.",
		},
	},
}

// alternativeLines are shown for each candidate the player did NOT
// choose, regardless of whether they survived to the final vote.
var alternativeLines = map[string]string{
	"candidate_1": "If you had chosen Marcus, the change would have been dazzling and unplanned. Chaos would have come, but so would hope.",
	"candidate_2": "If you had chosen Sarah, everything would run efficiently, and people would become numbers. The coldness would spread through the whole town.",
	"candidate_3": "If you had chosen Elena, everyone would be protected, and your freedoms would quietly disappear. Safety has a price you never counted.",
	"candidate_4": "If you had chosen Jim, the decline would be managed and nothing would get better. Hope would die slowly, and the town with it.",
	"candidate_5": "If you had chosen Riko, the rotten system would burn, and what came after would be worse. Chaos would cover the whole town.",
}
