package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryLanguageHasEveryKey(t *testing.T) {
	keys := Keys()
	require.NotEmpty(t, keys)

	for _, lang := range All {
		tr := NewTranslator(lang.Code)
		for _, k := range keys {
			assert.NotEqual(t, k, tr.T(k), "%s is missing %q", lang.Code, k)
		}
	}
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Kod bulunamadı", NewTranslator("tr").T("codeNotFound"))
	assert.Equal(t, "Code not found", NewTranslator("en").T("codeNotFound"))
	assert.Equal(t, "Code introuvable", NewTranslator("fr").T("codeNotFound"))
	assert.Equal(t, "Código bloqueado", NewTranslator("es").T("status.BLOCKED.label"))
}

func TestMissingKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "no.such.key", NewTranslator("de").T("no.such.key"))
}

func TestDir(t *testing.T) {
	assert.Equal(t, "rtl", Dir("ar"))
	assert.Equal(t, "rtl", NewTranslator("ar").Dir())
	for _, code := range []string{"tr", "es", "de", "en", "fr"} {
		assert.Equal(t, "ltr", Dir(code))
	}
}

func TestMessagesCoversKeys(t *testing.T) {
	msgs := NewTranslator("en").Messages()
	assert.Len(t, msgs, len(Keys()))
	assert.Equal(t, "Verify", msgs["verify"])
}

func TestNewBundleValidation(t *testing.T) {
	_, err := NewBundle(nil, "tr")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = NewBundle([]string{"tr", "xx"}, "tr")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = NewBundle([]string{"en"}, "tr")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestBundleResolve(t *testing.T) {
	b, err := NewBundle([]string{"tr", "es", "ar", "de", "en", "fr"}, "tr")
	require.NoError(t, err)

	cases := []struct {
		name, cookie, accept, want string
	}{
		{"cookie wins", "de", "fr-FR,fr;q=0.9", "de"},
		{"cookie is case insensitive", "EN", "", "en"},
		{"unsupported cookie ignored", "pt", "es-EC,es;q=0.9", "es"},
		{"accept region", "", "en-US,en;q=0.8", "en"},
		{"accept arabic", "", "ar-AE", "ar"},
		{"nothing", "", "", "tr"},
		{"garbage accept", "", ";;;", "tr"},
		{"only primary entry counts", "", "pt-BR,es;q=0.9", "tr"},
		{"primary by quality", "", "pt;q=0.5,fr-CA;q=0.9", "fr"},
		{"no close matches", "", "gsw-CH", "tr"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, b.Resolve(tc.cookie, tc.accept))
		})
	}
}

func TestBundleRestrictedLanguages(t *testing.T) {
	b, err := NewBundle([]string{"tr"}, "tr")
	require.NoError(t, err)

	assert.Equal(t, "tr", b.Default())
	assert.Equal(t, "tr", b.Resolve("en", "en-US"))
	assert.False(t, b.Supported("en"))

	langs := b.Languages()
	require.Len(t, langs, 1)
	assert.Equal(t, "Türkçe", langs[0].Label)
}

func TestBundleLanguagesKeepSwitcherOrder(t *testing.T) {
	b, err := NewBundle([]string{"fr", "tr", "ar"}, "fr")
	require.NoError(t, err)

	var codes []string
	for _, l := range b.Languages() {
		codes = append(codes, l.Code)
	}
	assert.Equal(t, []string{"tr", "ar", "fr"}, codes)
}
