package patterns

// possibilityTerms are heading terms under which uncertain modality is legitimate.
// The English terms apply to every language.
var possibilityTerms = []string{
	"risk", "danger", "warning", "caution", "side effect",
	"potential", "possible", "exception", "condition",
}

func withPossibilityTerms(terms ...string) []string {
	out := make([]string, 0, len(possibilityTerms)+len(terms))
	out = append(out, possibilityTerms...)
	return append(out, terms...)
}

var modalityTables = map[Language]*ModalitySet{
	English: {
		Uncertainty: Regex(
			`(?:might\s+be|may\s+(?:be|cause|help|lead|result|affect|improve|reduce|increase)|could\s+(?:be|possibly|potentially)|might|possibly|perhaps|maybe)`,
		),
		PossibilityContext: withPossibilityTerms(),
	},
	Dutch: {
		Uncertainty: Regex(
			`(?:zou(?:den)?\s+kunnen|zou(?:den)?\s+mogelijk|kan\s+mogelijk|kunnen\s+mogelijk|misschien|wellicht|mogelijkerwijs|eventueel)`,
		),
		PossibilityContext: withPossibilityTerms(
			"risico", "gevaar", "waarschuwing", "voorzichtig", "bijwerking",
			"potentieel", "mogelijk", "uitzondering", "voorwaarde",
		),
	},
	German: {
		Uncertainty: Regex(
			`(?:könnte(?:n)?(?:\s+sein)?|möglicherweise|vielleicht|eventuell|dürfte(?:n)?|kann\s+sein)`,
		),
		PossibilityContext: withPossibilityTerms(
			"risiko", "gefahr", "warnung", "vorsicht", "nebenwirkung",
			"potenzial", "möglich", "ausnahme", "bedingung",
		),
	},
	French: {
		Uncertainty: Regex(
			`(?:pourrai(?:en)?t(?:\s+être)?|peut-être|il\s+se\s+peut|éventuellement|probablement)`,
		),
		PossibilityContext: withPossibilityTerms(
			"risque", "danger", "avertissement", "précaution", "effet secondaire",
			"potentiel", "possible", "exception", "condition",
		),
	},
	Spanish: {
		Uncertainty: Regex(
			`(?:podría(?:n)?(?:\s+ser)?|quizás|quizá|tal\s+vez|puede\s+que|posiblemente|probablemente)`,
		),
		PossibilityContext: withPossibilityTerms(
			"riesgo", "peligro", "advertencia", "precaución", "efecto secundario",
			"potencial", "posible", "excepción", "condición",
		),
	},
}
