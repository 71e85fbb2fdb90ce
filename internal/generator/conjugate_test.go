package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjugationsAR(t *testing.T) {
	got := Conjugations(ClassAR, "habl")
	require.Len(t, got, 3)

	assert.Equal(t, map[string]string{
		"yo": "hablo", "tú": "hablas", "él": "habla",
		"nosotros": "hablamos", "vosotros": "habláis", "ellos": "hablan",
	}, got[TensePresent])
	assert.Equal(t, map[string]string{
		"yo": "hablé", "tú": "hablaste", "él": "habló",
		"nosotros": "hablamos", "vosotros": "hablasteis", "ellos": "hablaron",
	}, got[TensePreterite])
	assert.Equal(t, map[string]string{
		"yo": "hablaba", "tú": "hablabas", "él": "hablaba",
		"nosotros": "hablábamos", "vosotros": "hablabais", "ellos": "hablaban",
	}, got[TenseImperfect])
}

func TestConjugationsER(t *testing.T) {
	got := Conjugations(ClassER, "com")
	require.Len(t, got, 3)

	assert.Equal(t, map[string]string{
		"yo": "como", "tú": "comes", "él": "come",
		"nosotros": "comemos", "vosotros": "coméis", "ellos": "comen",
	}, got[TensePresent])
	assert.Equal(t, map[string]string{
		"yo": "comí", "tú": "comiste", "él": "comió",
		"nosotros": "comimos", "vosotros": "comisteis", "ellos": "comieron",
	}, got[TensePreterite])
	assert.Equal(t, map[string]string{
		"yo": "comía", "tú": "comías", "él": "comía",
		"nosotros": "comíamos", "vosotros": "comíais", "ellos": "comían",
	}, got[TenseImperfect])
}

func TestConjugationsIR(t *testing.T) {
	got := Conjugations(ClassIR, "viv")
	require.Len(t, got, 3)

	assert.Equal(t, map[string]string{
		"yo": "vivo", "tú": "vives", "él": "vive",
		"nosotros": "vivimos", "vosotros": "vivís", "ellos": "viven",
	}, got[TensePresent])
	assert.Equal(t, map[string]string{
		"yo": "viví", "tú": "viviste", "él": "vivió",
		"nosotros": "vivimos", "vosotros": "vivisteis", "ellos": "vivieron",
	}, got[TensePreterite])
	assert.Equal(t, map[string]string{
		"yo": "vivía", "tú": "vivías", "él": "vivía",
		"nosotros": "vivíamos", "vosotros": "vivíais", "ellos": "vivían",
	}, got[TenseImperfect])
}

// The -er and -ir paradigms only diverge in present nosotros/vosotros.
func TestClassERAndIRDifferOnlyInPresent(t *testing.T) {
	er := Conjugations(ClassER, "beb")
	ir := Conjugations(ClassIR, "beb")

	assert.Equal(t, er[TensePreterite], ir[TensePreterite])
	assert.Equal(t, er[TenseImperfect], ir[TenseImperfect])
	assert.NotEqual(t, er[TensePresent]["nosotros"], ir[TensePresent]["nosotros"])
	assert.NotEqual(t, er[TensePresent]["vosotros"], ir[TensePresent]["vosotros"])
}
