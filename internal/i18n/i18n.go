// Package i18n holds the portal's message catalogs and language negotiation.
package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CookieName is the cookie that remembers the chosen language.
const CookieName = "svd_lang"

// ErrUnsupported is returned for a language the portal has no messages for.
var ErrUnsupported = errors.New("unsupported language")

// Language describes an entry of the language switcher.
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Flag  string `json:"flag"`
	Dir   string `json:"dir"`
}

// All lists every language in switcher order.
var All = []Language{
	{Code: "tr", Label: "Türkçe", Flag: "🇹🇷", Dir: "ltr"},
	{Code: "es", Label: "Español", Flag: "🇪🇸", Dir: "ltr"},
	{Code: "ar", Label: "العربية", Flag: "🇦🇪", Dir: "rtl"},
	{Code: "de", Label: "Deutsch", Flag: "🇩🇪", Dir: "ltr"},
	{Code: "en", Label: "English", Flag: "🇺🇸", Dir: "ltr"},
	{Code: "fr", Label: "Français", Flag: "🇫🇷", Dir: "ltr"},
}

var (
	keysMu sync.RWMutex
	keys   = map[string]bool{}
)

// register adds a language's messages to the default x/text catalog.
func register(tag language.Tag, msgs map[string]string) {
	keysMu.Lock()
	defer keysMu.Unlock()
	for k, v := range msgs {
		if err := message.SetString(tag, k, v); err != nil {
			panic(fmt.Sprintf("i18n: register %s/%s: %v", tag, k, err))
		}
		keys[k] = true
	}
}

// Keys returns every message key known to any language, sorted.
func Keys() []string {
	keysMu.RLock()
	defer keysMu.RUnlock()
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Dir returns the text direction for lang.
func Dir(lang string) string {
	if lang == "ar" {
		return "rtl"
	}
	return "ltr"
}

// Lookup returns the metadata for a language code.
func Lookup(code string) (Language, bool) {
	for _, l := range All {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// Translator renders messages in a single language. A missing key renders as
// the key itself.
type Translator struct {
	Lang    string
	printer *message.Printer
}

// NewTranslator returns a translator for lang.
func NewTranslator(lang string) *Translator {
	return &Translator{Lang: lang, printer: message.NewPrinter(language.Make(lang))}
}

// T looks up key.
func (t *Translator) T(key string) string {
	return t.printer.Sprintf(key)
}

// Dir returns the text direction of the translator's language.
func (t *Translator) Dir() string { return Dir(t.Lang) }

// Messages renders every known key.
func (t *Translator) Messages() map[string]string {
	all := Keys()
	out := make(map[string]string, len(all))
	for _, k := range all {
		out[k] = t.T(k)
	}
	return out
}

// Bundle is the set of languages a portal instance serves.
type Bundle struct {
	codes []string
	def   string
}

// NewBundle restricts the portal to codes with def as fallback.
func NewBundle(codes []string, def string) (*Bundle, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty language list", ErrUnsupported)
	}
	ordered := []string{def}
	for _, c := range codes {
		if _, ok := Lookup(c); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupported, c)
		}
		if c != def {
			ordered = append(ordered, c)
		}
	}
	if _, ok := Lookup(def); !ok || !contains(codes, def) {
		return nil, fmt.Errorf("%w: default %q", ErrUnsupported, def)
	}
	return &Bundle{codes: ordered, def: def}, nil
}

// Default returns the fallback language.
func (b *Bundle) Default() string { return b.def }

// Supported reports whether code is served by this bundle.
func (b *Bundle) Supported(code string) bool { return contains(b.codes, code) }

// Languages returns the switcher entries served by this bundle, in switcher order.
func (b *Bundle) Languages() []Language {
	var out []Language
	for _, l := range All {
		if b.Supported(l.Code) {
			out = append(out, l)
		}
	}
	return out
}

// Resolve picks the language for a request: the cookie value when it is
// supported, then the base language of the most preferred Accept-Language
// entry when it is supported, then the default. Lower ranked entries are not
// consulted.
func (b *Bundle) Resolve(cookie, acceptLanguage string) string {
	if c := strings.ToLower(strings.TrimSpace(cookie)); b.Supported(c) {
		return c
	}
	if acceptLanguage == "" {
		return b.def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return b.def
	}
	base, _ := tags[0].Base()
	if c := base.String(); b.Supported(c) {
		return c
	}
	return b.def
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
