package patterns

var bridgeTables = map[Language]*BridgeSet{
	English: {
		Transitions: Regex(`(?:to\s+ensure|building\s+on|in\s+addition\s+to|beyond|once\s+you|alongside|for\s+those|besides|related\s+to|with\s+this|after\s+(?:understanding|choosing|learning)|` +
			stems("benefit", "consider", "explor", "complement", "extend") + `)`),
	},
	Dutch: {
		Transitions: Regex(`(?:om\s+ervoor\s+te\s+zorgen|voortbouwend\s+op|naast|daarnaast|bovendien|verder|aanvullend|in\s+aanvulling\s+op|` +
			stems("profite", "overweeg", "ontdek", "verken", "aanvul") + `)`),
	},
	German: {
		Transitions: Regex(`(?:um\s+sicherzustellen|aufbauend\s+auf|darüber\s+hinaus|neben|zusätzlich|ergänzend|außerdem|` +
			stems("profitier", "erwäg", "entdeck", "erkund", "berücksichtig") + `)`),
	},
	French: {
		Transitions: Regex(`(?:pour\s+garantir|pour\s+s['’]assurer|en\s+s['’]appuyant\s+sur|au-delà|en\s+plus\s+de|par\s+ailleurs|de\s+plus|` +
			stems("bénéfici", "envisag", "explor", "découvr", "compléte") + `)`),
	},
	Spanish: {
		Transitions: Regex(`(?:para\s+garantizar|para\s+asegurar|basándose\s+en|además\s+de|más\s+allá|por\s+otra\s+parte|` +
			stems("benefici", "consider", "explor", "descubr", "complement") + `)`),
	},
}

// crossSectionStopwords is deliberately small and English only; it filters
// previous-heading words that carry no topical signal.
var crossSectionStopwords = wordSet(
	"what", "when", "where", "which", "with", "your", "about", "from", "this",
	"that", "these", "those", "their", "there", "have", "does", "into", "than",
	"then", "they", "will", "should", "would", "could", "best", "guide",
)

// IsCrossSectionStopword reports whether a lower-cased heading word is ignored by the transition check
func IsCrossSectionStopword(word string) bool {
	return crossSectionStopwords[word]
}
