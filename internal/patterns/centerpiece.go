package patterns

var englishHeadingStopwords = []string{
	"what", "why", "how", "when", "where", "which", "who", "whom", "whose",
	"does", "did", "the", "and", "for", "are", "can", "you", "your", "with",
	"about", "from", "this", "that", "into", "its", "their", "should", "would",
	"could", "will", "there", "than", "then", "some", "any", "our",
}

func headingStopwords(words ...string) map[string]bool {
	return wordSet(append(append([]string{}, englishHeadingStopwords...), words...)...)
}

var centerpieceTables = map[Language]*CenterpieceSet{
	English: {
		IntroHeadings: Words("introduction", "intro", "overview", "what is", "what are", "definition"),
		DefinitiveVerbs: Words(
			"is", "are", "was", "were", "means", "represents", "refers to", "describes",
			"defines", "consists of", "includes", "contains", "provides", "has", "have",
			"requires", "remains", "serves", "forms", "covers", "equals", "measures",
		),
		Definitions: []*Matcher{
			definition(`(?:is|are)\s+(?:a|an|the)\s`),
			definition(`(?:refers\s+to|means|defines|is\s+defined\s+as|describes|represents)\s`),
		},
		HeadingStopwords: headingStopwords(),
	},
	Dutch: {
		IntroHeadings: Words("inleiding", "introductie", "intro", "overzicht", "wat is", "wat zijn", "definitie"),
		DefinitiveVerbs: Words(
			"is", "zijn", "was", "waren", "betekent", "vertegenwoordigt", "verwijst naar",
			"beschrijft", "definieert", "bestaat uit", "omvat", "bevat", "biedt", "heeft",
			"hebben", "vereist", "vormt", "staat voor",
		),
		Definitions: []*Matcher{
			definition(`(?:is|zijn)\s+(?:een|de|het)\s`),
			definition(`(?:verwijst\s+naar|betekent|definieert|staat\s+voor|wordt\s+gedefinieerd\s+als)\s`),
		},
		HeadingStopwords: headingStopwords(
			"wat", "waarom", "hoe", "wanneer", "waar", "welke", "wie", "het", "een", "van",
			"voor", "met", "zijn", "kan", "over", "jouw", "bij", "naar", "deze", "die",
		),
	},
	German: {
		IntroHeadings: Words("einleitung", "einführung", "überblick", "was ist", "was sind", "definition"),
		DefinitiveVerbs: Words(
			"ist", "sind", "war", "waren", "bedeutet", "bezeichnet", "beschreibt", "definiert",
			"besteht aus", "umfasst", "enthält", "bietet", "hat", "haben", "erfordert",
			"stellt", "bildet",
		),
		Definitions: []*Matcher{
			definition(`(?:ist|sind)\s+(?:ein|eine|einer|der|die|das)\s`),
			definition(`(?:bezeichnet|bedeutet|definiert|beschreibt|versteht\s+man)\s`),
		},
		HeadingStopwords: headingStopwords(
			"was", "warum", "wie", "wann", "welche", "welcher", "wer", "der", "die", "das",
			"und", "für", "mit", "ist", "sind", "kann", "über", "ihr", "ihre", "eine", "einen",
		),
	},
	French: {
		IntroHeadings: Words("introduction", "présentation", "qu'est-ce que", "qu'est-ce qu'", "aperçu", "définition"),
		DefinitiveVerbs: Words(
			"est", "sont", "était", "étaient", "signifie", "désigne", "représente", "décrit",
			"définit", "consiste", "comprend", "contient", "offre", "a", "ont", "nécessite",
			"constitue",
		),
		Definitions: []*Matcher{
			definition(`(?:est|sont)\s+(?:(?:un|une|le|la|les)\s|l['’])`),
			definition(`(?:désigne|signifie|définit|fait\s+référence\s+à|se\s+définit\s+comme)\s`),
		},
		HeadingStopwords: headingStopwords(
			"que", "quoi", "pourquoi", "comment", "quand", "quel", "quelle", "quels",
			"qui", "les", "des", "une", "pour", "avec", "est", "sont", "dans", "sur", "votre", "vos",
		),
	},
	Spanish: {
		IntroHeadings: Words("introducción", "qué es", "que es", "qué son", "resumen", "definición"),
		DefinitiveVerbs: Words(
			"es", "son", "era", "eran", "fue", "significa", "representa", "describe",
			"define", "consiste", "incluye", "contiene", "ofrece", "tiene", "tienen",
			"requiere", "constituye", "se refiere",
		),
		Definitions: []*Matcher{
			definition(`(?:es|son)\s+(?:un|una|el|la|los|las)\s`),
			definition(`(?:se\s+refiere\s+a|significa|define|designa|se\s+define\s+como)\s`),
		},
		HeadingStopwords: headingStopwords(
			"qué", "que", "por", "cómo", "como", "cuándo", "dónde", "cuál", "quién",
			"los", "las", "una", "para", "con", "del", "son", "sobre", "sus", "tus",
		),
	},
}

var structureTables = map[Language]*StructureSet{
	English: {ArticlePrefixes: []string{"the", "a", "an"}},
	Dutch:   {ArticlePrefixes: []string{"de", "het", "een"}},
	German:  {ArticlePrefixes: []string{"der", "die", "das", "ein", "eine"}},
	French:  {ArticlePrefixes: []string{"le", "la", "les", "l'", "un", "une"}},
	Spanish: {ArticlePrefixes: []string{"el", "la", "los", "las", "un", "una"}},
}
