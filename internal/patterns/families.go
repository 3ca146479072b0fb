package patterns

import (
	"strings"
)

// Family names a group of rule tables that one validator draws on
type Family string

// Rule families held by the repository
const (
	FamilyProhibited  Family = "prohibited"
	FamilyModality    Family = "modality"
	FamilyCenterpiece Family = "centerpiece"
	FamilyStructure   Family = "structure"
	FamilyBridge      Family = "bridge"
	FamilyEAV         Family = "eav"
	FamilyDetection   Family = "detection"
)

// Families returns every rule family in a stable order
func Families() []Family {
	return []Family{
		FamilyProhibited,
		FamilyModality,
		FamilyCenterpiece,
		FamilyStructure,
		FamilyBridge,
		FamilyEAV,
		FamilyDetection,
	}
}

// Supported returns the languages that carry their own table for family f.
// Any other language resolves to the English table.
func Supported(f Family) []Language {
	switch f {
	case FamilyProhibited:
		return supported(prohibitedTables)
	case FamilyModality:
		return supported(modalityTables)
	case FamilyCenterpiece:
		return supported(centerpieceTables)
	case FamilyStructure:
		return supported(structureTables)
	case FamilyBridge:
		return supported(bridgeTables)
	case FamilyEAV:
		return supported(eavTables)
	case FamilyDetection:
		return supported(detectionTables)
	default:
		return nil
	}
}

// Has reports whether family f carries its own table for the given language
func Has(f Family, codeOrName string) bool {
	lang, ok := Lookup(codeOrName)
	if !ok {
		return false
	}
	for _, l := range Supported(f) {
		if l == lang {
			return true
		}
	}
	return false
}

// ProhibitedSet holds the phrase families the prohibited-language check scans for
type ProhibitedSet struct {
	StopWords         *Matcher
	Opinions          *Matcher
	Analogies         *Matcher
	PassiveVoice      *Matcher
	FutureForFacts    *Matcher
	AmbiguousPronouns *Matcher
	FluffOpeners      *Matcher
}

// ModalitySet holds uncertainty markers and the heading terms that legitimise them
type ModalitySet struct {
	Uncertainty        *Matcher
	PossibilityContext []string
}

// IsPossibilityContext reports whether a heading talks about genuine possibilities
func (m *ModalitySet) IsPossibilityContext(heading string) bool {
	h := strings.ToLower(heading)
	if strings.TrimSpace(h) == "" {
		return false
	}
	for _, term := range m.PossibilityContext {
		if strings.Contains(h, term) {
			return true
		}
	}
	return false
}

// CenterpieceSet holds the tables behind the central-entity definition check
type CenterpieceSet struct {
	IntroHeadings    *Matcher
	DefinitiveVerbs  *Matcher
	Definitions      []*Matcher
	HeadingStopwords map[string]bool
}

// StructureSet holds the article prefixes that may precede the entity as subject
type StructureSet struct {
	ArticlePrefixes []string
}

// BridgeSet holds the phrases that connect a supplementary section back to the main topic
type BridgeSet struct {
	Transitions *Matcher
}

// EAVSet holds the entity-attribute-value sentence patterns
type EAVSet struct {
	Weak        []*Matcher
	EntityVerb  *Matcher
	AttributeOf *Matcher
	Measurement *Matcher
}

// DetectionSet holds the frequency markers used to identify a language
type DetectionSet struct {
	Markers    map[string]bool
	Diacritics *Matcher
}

// Prohibited resolves the prohibited-language tables for a language code or name
func Prohibited(codeOrName string) *ProhibitedSet {
	return resolve(prohibitedTables, codeOrName)
}

// Modality resolves the modality tables for a language code or name
func Modality(codeOrName string) *ModalitySet {
	return resolve(modalityTables, codeOrName)
}

// Centerpiece resolves the centerpiece tables for a language code or name
func Centerpiece(codeOrName string) *CenterpieceSet {
	return resolve(centerpieceTables, codeOrName)
}

// Structure resolves the structure tables for a language code or name
func Structure(codeOrName string) *StructureSet {
	return resolve(structureTables, codeOrName)
}

// Bridge resolves the bridge tables for a language code or name
func Bridge(codeOrName string) *BridgeSet {
	return resolve(bridgeTables, codeOrName)
}

// EAV resolves the entity-attribute-value tables for a language code or name
func EAV(codeOrName string) *EAVSet {
	return resolve(eavTables, codeOrName)
}

// Detection returns the detection markers of every language that has them, in stable order
func Detection() []LanguageMarkers {
	out := make([]LanguageMarkers, 0, len(detectionTables))
	for _, lang := range supported(detectionTables) {
		out = append(out, LanguageMarkers{Language: lang, Set: detectionTables[lang]})
	}
	return out
}

// LanguageMarkers pairs a language with its detection set
type LanguageMarkers struct {
	Language Language
	Set      *DetectionSet
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// stems builds an alternation where each stem may be followed by more letters
func stems(words ...string) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w+`\p{L}*`)
	}
	return "(?:" + strings.Join(parts, "|") + ")"
}

// definition builds a definition pattern whose match spans the subject words before the verb phrase
func definition(verbPhrase string) *Matcher {
	return Unbounded(`[\p{L}\p{N}][\p{L}\p{N}'’\- ]{0,100}?\s+` + verbPhrase)
}
