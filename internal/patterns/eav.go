package patterns

// measurement matches a number followed by a unit; it is shared by every language
const measurement = `\d+(?:[.,]\d+)?\s*(?:%|°\s*[cf]|\$|€|£|(?:kg|g|mg|lbs?|km/h|km|m|cm|mm|mi|ft|mph|kcal|calories|cal|ml|l|gb|mb|tb|kw|w|v|usd|eur|euros?|dollars?|` +
	`hours?|minutes?|seconds?|days?|weeks?|months?|years?|uur|minuten|seconden|dagen|weken|maanden|jaar|jaren|` +
	`stunden?|minuten|sekunden|tage?n?|wochen?|monate?n?|jahre?n?|heures?|secondes?|jours?|semaines?|mois|ans?|années?|` +
	`horas?|minutos?|segundos?|días?|semanas?|meses|mes|años?|percent|procent|prozent|pour\s+cent|por\s+ciento)\b)`

func eavSet(weak []string, verbs, attributeOf string) *EAVSet {
	set := &EAVSet{
		EntityVerb:  Unbounded(`^(?-i:\p{Lu})[\p{L}\p{N}'’-]*(?:\s+[\p{L}\p{N}'’-]+){0,4}?\s+(?:` + verbs + `)(?:\s|[,.;:!?]|$)`),
		AttributeOf: Unbounded(attributeOf),
		Measurement: Unbounded(measurement),
	}
	for _, w := range weak {
		set.Weak = append(set.Weak, Unbounded(w))
	}
	return set
}

var eavTables = map[Language]*EAVSet{
	English: eavSet(
		[]string{
			`^(?:it|this|that|there)\s+(?:is|was|are|were)\s+\p{L}+(?:\s+\p{L}+)?\s*[.!?]*$`,
			`^(?:things|stuff|something|everything)\s+(?:happens?|changes?|varies|vary|works?)\b`,
		},
		`is|are|has|have|requires?|weighs?|measures?|contains?|costs?|lasts?|reaches?|includes?|provides?|needs?|produces?|consists|offers?|uses?|holds?|runs?`,
		`\bthe\s+\p{L}+\s+of\s+[\p{L}\p{N}\s'’-]+?\s+(?:is|are|measures|equals|reaches|ranges|averages|totals)\b`,
	),
	Dutch: eavSet(
		[]string{
			`^(?:het|dit|dat|er)\s+(?:is|was|zijn|waren)\s+\p{L}+(?:\s+\p{L}+)?\s*[.!?]*$`,
			`^(?:dingen|alles|iets)\s+(?:gebeuren|gebeurt|veranderen|verandert|werkt|werken)(?:\s|[.!?]|$)`,
		},
		`is|zijn|heeft|hebben|vereist|weegt|meet|bevat|kost|duurt|bereikt|omvat|biedt|levert|gebruikt|verbruikt`,
		`\b(?:de|het)\s+\p{L}+\s+van\s+[\p{L}\p{N}\s'’-]+?\s+(?:is|zijn|bedraagt|meet|ligt)(?:\s|[.,;:!?]|$)`,
	),
	German: eavSet(
		[]string{
			`^(?:es|dies|das)\s+(?:ist|war|sind|waren)\s+\p{L}+(?:\s+\p{L}+)?\s*[.!?]*$`,
			`^(?:dinge|alles|etwas)\s+(?:passieren|passiert|ändern|ändert|funktioniert)(?:\s|[.!?]|$)`,
		},
		`ist|sind|hat|haben|benötigt|erfordert|wiegt|misst|enthält|kostet|dauert|erreicht|umfasst|bietet|liefert|verbraucht`,
		`\b(?:der|die|das)\s+\p{L}+\s+(?:des|der|von)\s+[\p{L}\p{N}\s'’-]+?\s+(?:ist|beträgt|liegt|misst)(?:\s|[.,;:!?]|$)`,
	),
	French: eavSet(
		[]string{
			`^(?:c['’]est|cela\s+est|ce\s+fut|il\s+est)\s+\p{L}+(?:\s+\p{L}+)?\s*[.!?]*$`,
			`^(?:les\s+choses|tout|quelque\s+chose)\s+(?:arrivent|arrive|changent|change|fonctionne)(?:\s|[.!?]|$)`,
		},
		`est|sont|a|ont|nécessite|pèse|mesure|contient|coûte|dure|atteint|comprend|offre|fournit|consomme`,
		`(?:^|\s)(?:le|la|les)\s+\p{L}+\s+(?:de|du|des)\s+[\p{L}\p{N}\s'’-]+?\s+(?:est|mesure|atteint|s['’]élève)(?:\s|[.,;:!?]|$)`,
	),
	Spanish: eavSet(
		[]string{
			`^(?:esto|eso)\s+(?:es|fue|era)\s+\p{L}+(?:\s+\p{L}+)?\s*[.!?]*$`,
			`^(?:las\s+cosas|todo|algo)\s+(?:pasan|pasa|cambian|cambia|funciona)(?:\s|[.!?]|$)`,
		},
		`es|son|tiene|tienen|requiere|necesita|pesa|mide|contiene|cuesta|dura|alcanza|incluye|ofrece|proporciona|consume`,
		`(?:^|\s)(?:el|la|los|las)\s+\p{L}+\s+(?:de|del)\s+[\p{L}\p{N}\s'’-]+?\s+(?:es|mide|alcanza|asciende)(?:\s|[.,;:!?]|$)`,
	),
}
