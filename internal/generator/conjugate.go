package generator

// VerbClass is a regular conjugation class, keyed by infinitive ending.
type VerbClass string

const (
	ClassAR VerbClass = "ar"
	ClassER VerbClass = "er"
	ClassIR VerbClass = "ir"
)

// Tenses covered by the generated conjugation tables.
const (
	TensePresent   = "present"
	TensePreterite = "preterite"
	TenseImperfect = "imperfect"
)

// persons in paradigm order.
var persons = [6]string{"yo", "tú", "él", "nosotros", "vosotros", "ellos"}

// endings per class and tense, in paradigm order.
var endings = map[VerbClass]map[string][6]string{
	ClassAR: {
		TensePresent:   {"o", "as", "a", "amos", "áis", "an"},
		TensePreterite: {"é", "aste", "ó", "amos", "asteis", "aron"},
		TenseImperfect: {"aba", "abas", "aba", "ábamos", "abais", "aban"},
	},
	ClassER: {
		TensePresent:   {"o", "es", "e", "emos", "éis", "en"},
		TensePreterite: {"í", "iste", "ió", "imos", "isteis", "ieron"},
		TenseImperfect: {"ía", "ías", "ía", "íamos", "íais", "ían"},
	},
	ClassIR: {
		TensePresent:   {"o", "es", "e", "imos", "ís", "en"},
		TensePreterite: {"í", "iste", "ió", "imos", "isteis", "ieron"},
		TenseImperfect: {"ía", "ías", "ía", "íamos", "íais", "ían"},
	},
}

// conjugate joins a stem with one tense's endings.
func conjugate(stem string, tense [6]string) map[string]string {
	forms := make(map[string]string, len(persons))
	for i, person := range persons {
		forms[person] = stem + tense[i]
	}
	return forms
}

// Conjugations builds the full regular paradigm for a stem:
// tense -> person -> form.
func Conjugations(class VerbClass, stem string) map[string]map[string]string {
	tenses := endings[class]
	paradigm := make(map[string]map[string]string, len(tenses))
	for tense, suffixes := range tenses {
		paradigm[tense] = conjugate(stem, suffixes)
	}
	return paradigm
}
