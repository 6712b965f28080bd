package i18n

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbeddedCatalogs(t *testing.T) {
	b, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "hi"}, b.Languages())
	assert.Equal(t, "Stores", b.Translate("en", "nav.stores"))
	assert.Equal(t, "स्टोर", b.Translate("hi", "nav.stores"))
}

func TestTranslate_Fallbacks(t *testing.T) {
	b := NewBundle(zerolog.Nop())
	require.NoError(t, b.LoadMessages("en", []byte(`{"greeting":"Hello","only.en":"English only"}`)))
	require.NoError(t, b.LoadMessages("hi", []byte(`{"greeting":"नमस्ते"}`)))

	assert.Equal(t, "नमस्ते", b.Translate("hi", "greeting"))
	assert.Equal(t, "English only", b.Translate("hi", "only.en"))
	assert.Equal(t, "missing.key", b.Translate("hi", "missing.key"))
	assert.Equal(t, "Hello", b.Translate("fr", "greeting"))
}

func TestLoadMessages_BadJSON(t *testing.T) {
	b := NewBundle(zerolog.Nop())
	assert.Error(t, b.LoadMessages("en", []byte(`{`)))
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{"en": "en", "en-GB": "en", "hi": "hi", "hi-IN": "hi"}
	for in, want := range cases {
		got, ok := Normalize(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "fr", "de-DE", "!!"} {
		_, ok := Normalize(in)
		assert.False(t, ok, in)
	}
}

func TestMatchLanguage(t *testing.T) {
	assert.Equal(t, "hi", MatchLanguage("hi-IN,hi;q=0.9,en;q=0.8"))
	assert.Equal(t, "en", MatchLanguage("en-US,en;q=0.9"))
	assert.Equal(t, "en", MatchLanguage("fr-FR"))
	assert.Equal(t, "en", MatchLanguage(""))
}
