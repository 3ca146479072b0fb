package patterns

var prohibitedTables = map[Language]*ProhibitedSet{
	English: {
		StopWords: Words(
			"actually", "basically", "really", "very", "just", "quite", "literally",
			"totally", "simply", "extremely", "definitely", "honestly", "essentially",
			"kind of", "sort of", "pretty much", "somewhat",
		),
		Opinions: Words(
			"i think", "i believe", "i feel", "in my opinion", "in our opinion",
			"we think", "we believe", "we feel", "personally", "i would say",
			"amazing", "incredible", "fantastic", "awesome", "wonderful", "terrible",
		),
		Analogies: Words(
			"like a", "like an", "as if", "as though", "just like", "similar to",
			"akin to", "comparable to", "imagine", "think of it as", "it's like",
		),
		PassiveVoice: Regex(
			`(?:is|are|was|were|be|been|being)\s+(?:\p{L}+ed|made|done|given|taken|seen|known|shown|written|built|found|held|kept|told|sold|paid|sent|brought|thought|caught|taught|bought|chosen|driven|grown)`,
		),
		FutureForFacts: Regex(
			`(?:will\s+(?:always\s+|usually\s+|typically\s+|generally\s+)?\p{L}+|(?:is|are)\s+going\s+to\s+\p{L}+)`,
		),
		AmbiguousPronouns: Regex(
			`(?:it|this|that|they|these|those)\s+(?:is|are|was|were|has|have|can|will|does|do|makes?|helps?|means|allows?)`,
		),
		FluffOpeners: Words(
			"in today's world", "in today's fast-paced", "in this article", "in this guide",
			"in this post", "welcome to", "have you ever wondered", "are you looking for",
			"when it comes to", "it is no secret", "it's no secret", "let's dive",
			"in the modern era", "look no further", "whether you're", "whether you are",
		),
	},
	Dutch: {
		StopWords: Words(
			"eigenlijk", "gewoon", "echt", "heel erg", "zeer", "best wel", "een beetje",
			"enigszins", "letterlijk", "absoluut", "simpelweg", "werkelijk", "nogal",
		),
		Opinions: Words(
			"ik denk", "ik vind", "ik geloof", "naar mijn mening", "wij denken",
			"wij vinden", "we denken", "we vinden", "persoonlijk", "volgens mij",
			"geweldig", "fantastisch", "prachtig", "verschrikkelijk",
		),
		Analogies: Words(
			"zoals een", "alsof", "net als", "vergelijkbaar met", "stel je voor",
			"het is als", "te vergelijken met",
		),
		PassiveVoice: Regex(
			`(?:wordt|worden|werd|werden)\s+(?:\p{L}+\s+){0,3}?ge\p{L}{2,}`,
		),
		FutureForFacts: Regex(
			`(?:zal|zullen)\s+\p{L}+`,
		),
		AmbiguousPronouns: Regex(
			`(?:het|dit|dat|zij|ze|deze|die)\s+(?:is|zijn|was|waren|heeft|hebben|kan|kunnen|zal|zorgt|helpt|betekent)`,
		),
		FluffOpeners: Words(
			"in de wereld van vandaag", "in dit artikel", "in deze gids", "welkom bij",
			"heb je je ooit afgevraagd", "ben je op zoek naar", "wanneer het aankomt op",
			"het is geen geheim", "laten we", "in de huidige tijd", "tegenwoordig",
		),
	},
	German: {
		StopWords: Words(
			"eigentlich", "einfach", "wirklich", "sehr", "ziemlich", "irgendwie",
			"buchstäblich", "halt", "quasi", "sozusagen", "total",
		),
		Opinions: Words(
			"ich denke", "ich finde", "ich glaube", "meiner meinung nach", "wir denken",
			"wir finden", "wir glauben", "persönlich", "meines erachtens",
			"großartig", "fantastisch", "wunderbar", "schrecklich",
		),
		Analogies: Words(
			"wie ein", "wie eine", "als ob", "genau wie", "vergleichbar mit",
			"stellen sie sich vor", "stell dir vor", "ähnlich wie",
		),
		PassiveVoice: Regex(
			`(?:wird|werden|wurde|wurden)\s+(?:\p{L}+\s+){0,3}?ge\p{L}{2,}`,
		),
		FutureForFacts: Regex(
			`(?:wird|werden)\s+(?:\p{L}+\s+){0,3}?(?:sein|haben|bleiben|helfen|machen|geben)`,
		),
		AmbiguousPronouns: Regex(
			`(?:es|dies|das|sie|diese|dieses)\s+(?:ist|sind|war|waren|hat|haben|kann|können|wird|hilft|bedeutet)`,
		),
		FluffOpeners: Words(
			"in der heutigen welt", "in diesem artikel", "in diesem ratgeber", "willkommen bei",
			"haben sie sich jemals gefragt", "sind sie auf der suche", "wenn es um",
			"es ist kein geheimnis", "lassen sie uns", "heutzutage",
		),
	},
	French: {
		StopWords: Words(
			"vraiment", "très", "juste", "assez", "en fait", "littéralement",
			"carrément", "simplement", "tout à fait", "plutôt",
		),
		Opinions: Words(
			"je pense", "je crois", "à mon avis", "selon moi", "nous pensons",
			"nous croyons", "personnellement", "incroyable", "fantastique",
			"merveilleux", "génial", "horrible",
		),
		Analogies: Words(
			"comme un", "comme une", "comme si", "tel un", "telle une", "semblable à",
			"imaginez", "pareil à", "à l'image de",
		),
		PassiveVoice: Regex(
			`(?:(?:a|ont|avait|avaient)\s+été\s+\p{L}{2,}|(?:est|sont|était|étaient)\s+\p{L}{2,}(?:é|ée|és|ées))`,
		),
		FutureForFacts: Regex(
			`(?:sera|seront|aura|auront|va\s+être|vont\s+être|va\s+avoir|vont\s+avoir)`,
		),
		AmbiguousPronouns: Regex(
			`(?:c['’]est|(?:il|elle|cela|ça|ceci|ils|elles)\s+(?:est|sont|était|a|ont|peut|peuvent|va|permet|aide))`,
		),
		FluffOpeners: Words(
			"dans le monde d'aujourd'hui", "dans cet article", "dans ce guide", "bienvenue",
			"vous êtes-vous déjà demandé", "vous cherchez", "quand il s'agit de",
			"ce n'est un secret pour personne", "de nos jours", "plongeons",
		),
	},
	Spanish: {
		StopWords: Words(
			"realmente", "muy", "simplemente", "bastante", "literalmente", "básicamente",
			"en realidad", "totalmente", "verdaderamente", "un poco",
		),
		Opinions: Words(
			"creo que", "pienso que", "en mi opinión", "a mi juicio", "personalmente",
			"creemos que", "pensamos que", "increíble", "fantástico", "maravilloso",
			"genial", "terrible",
		),
		Analogies: Words(
			"como un", "como una", "como si", "igual que", "similar a", "imagina",
			"imagine", "al igual que", "parecido a",
		),
		PassiveVoice: Regex(
			`(?:es|son|fue|fueron|ha\s+sido|han\s+sido)\s+\p{L}{2,}(?:ado|ada|ados|adas|ido|ida|idos|idas)`,
		),
		FutureForFacts: Regex(
			`(?:será|serán|tendrá|tendrán|va\s+a\s+ser|van\s+a\s+ser)`,
		),
		AmbiguousPronouns: Regex(
			`(?:esto|eso|esta|este|ello|ellos|ellas)\s+(?:es|son|era|fue|tiene|tienen|puede|pueden|ayuda|permite)`,
		),
		FluffOpeners: Words(
			"en el mundo actual", "en este artículo", "en esta guía", "bienvenido",
			"bienvenidos", "te has preguntado alguna vez", "¿alguna vez te has preguntado",
			"estás buscando", "cuando se trata de", "no es ningún secreto", "hoy en día",
			"en la actualidad",
		),
	},
}
