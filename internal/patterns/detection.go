package patterns

var detectionTables = map[Language]*DetectionSet{
	English: {
		Markers: wordSet(
			"the", "and", "is", "are", "of", "to", "in", "that", "it", "for", "with",
			"as", "was", "on", "this", "by", "be", "have", "from", "or", "which", "not",
			"can", "you",
		),
	},
	Dutch: {
		Markers: wordSet(
			"de", "het", "een", "en", "van", "is", "dat", "op", "te", "zijn", "met",
			"voor", "niet", "aan", "er", "om", "ook", "als", "bij", "door", "maar",
			"dit", "je", "wordt", "kunnen", "naar", "heeft", "zou",
		),
	},
	German: {
		Markers: wordSet(
			"der", "die", "das", "und", "ist", "nicht", "ein", "eine", "zu", "mit",
			"sich", "auf", "für", "von", "dem", "den", "des", "sind", "auch", "es",
			"werden", "wird", "kann", "oder",
		),
		Diacritics: Unbounded(`[äöüß]`),
	},
	French: {
		Markers: wordSet(
			"le", "la", "les", "et", "est", "des", "un", "une", "du", "en", "que",
			"qui", "dans", "pour", "pas", "sur", "au", "avec", "ce", "sont", "par",
			"plus", "ou", "peut",
		),
		Diacritics: Unbounded(`[éèêëàâçîïôûùœ]`),
	},
	Spanish: {
		Markers: wordSet(
			"el", "la", "los", "las", "es", "de", "que", "en", "un", "una", "del",
			"por", "con", "para", "se", "no", "son", "al", "lo", "como", "más",
			"pero", "puede", "está",
		),
		Diacritics: Unbounded(`[ñáíóú¿¡]`),
	},
	Italian: {
		Markers: wordSet(
			"il", "lo", "la", "gli", "le", "di", "che", "un", "una", "per",
			"con", "non", "sono", "del", "della", "nel", "anche", "più", "come",
			"questo", "ma", "alla", "essere",
		),
		Diacritics: Unbounded(`[àèéìòù]`),
	},
	Portuguese: {
		Markers: wordSet(
			"os", "as", "de", "que", "um", "uma", "do", "da", "em", "para",
			"com", "não", "são", "no", "na", "mais", "como", "por", "mas", "ao",
			"dos", "das", "também",
		),
		Diacritics: Unbounded(`[ãõçâêô]`),
	},
}
