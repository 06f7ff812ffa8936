package api

import (
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/crypto"
	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/models"
	"github.com/harrylevesque/qrverify/internal/portal"
	"github.com/harrylevesque/qrverify/internal/session"
)

type testEnv struct {
	srv    *httptest.Server
	client *http.Client
}

func newTestEnv(t *testing.T, langs []string, opts portal.Options) *testEnv {
	t.Helper()
	bundle, err := i18n.NewBundle(langs, langs[0])
	require.NoError(t, err)
	keys, err := crypto.DeriveCookieKeys(bytes.Repeat([]byte{9}, 32))
	require.NoError(t, err)

	store := session.NewStore(time.Minute, portal.NewState)
	sessions := session.NewManager(store, session.NewCookieStore(keys, false), "qrv_session")
	p := portal.New(catalog.MustSample(), opts, zap.NewNop())

	srv := httptest.NewServer(NewRouter(NewHandler(p, bundle, sessions, zap.NewNop())))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &testEnv{srv: srv, client: client}
}

func (e *testEnv) postJSON(t *testing.T, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(http.MethodPost, e.srv.URL+path, r)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return e.do(t, req)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, e.srv.URL+path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.do(t, req)
}

func (e *testEnv) get(t *testing.T, path string, header http.Header) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, e.srv.URL+path, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	return e.do(t, req)
}

func (e *testEnv) do(t *testing.T, req *http.Request) (*http.Response, []byte) {
	t.Helper()
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decodeView(t *testing.T, body []byte) portal.View {
	t.Helper()
	var v portal.View
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, []string{"tr"}, portal.Options{})
	resp, body := env.get(t, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK\n", string(body))
}

func TestVerifyJSON(t *testing.T) {
	env := newTestEnv(t, []string{"en", "tr"}, portal.Options{})

	resp, body := env.postJSON(t, "/api/verify", map[string]string{"serial": "tr-plk-777", "category": "Seramik plaka"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	v := decodeView(t, body)
	require.NotNil(t, v.Result)
	assert.Equal(t, "en", v.Lang)
	assert.Equal(t, models.StatusActivated, v.Result.Status)
	require.NotNil(t, v.Result.Owner)
	assert.Equal(t, "Ah****", v.Result.Owner.FirstName)

	// The result sticks to the session cookie.
	resp, body = env.get(t, "/api/state", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decodeView(t, body)
	require.NotNil(t, v.Result)
	assert.Equal(t, "TR-PLK-777", v.Result.Code)
}

func TestVerifyRejectsUnknownFields(t *testing.T) {
	env := newTestEnv(t, []string{"en"}, portal.Options{})
	resp, body := env.postJSON(t, "/api/verify", map[string]string{"code": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e ErrorBody
	require.NoError(t, json.Unmarshal(body, &e))
	assert.Equal(t, "errBadRequest", e.Error)
	assert.Equal(t, "Invalid request", e.Message)
}

func TestActivationFlowJSON(t *testing.T) {
	env := newTestEnv(t, []string{"en"}, portal.Options{})

	resp, _ := env.postJSON(t, "/api/activation/open", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "nothing verified yet")

	resp, _ = env.postJSON(t, "/api/verify", map[string]string{"serial": "TR-KSK-003", "category": "Balistik kask"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := env.postJSON(t, "/api/activation/open", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	v := decodeView(t, body)
	require.NotNil(t, v.Activation)
	assert.Equal(t, "TR-KSK-003", v.Activation.Code)

	form := portal.Form{FirstName: "Elif", LastName: "Şahin", Phone: "05321112233"}
	resp, body = env.postJSON(t, "/api/activation/next", map[string]interface{}{"form": form})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decodeView(t, body)
	assert.Equal(t, "errChecks", v.Activation.ErrorKey)
	assert.Equal(t, "Please tick the required confirmation boxes", v.Activation.Error)

	form.AgreePolicy, form.ConfirmAccuracy = true, true
	resp, _ = env.postJSON(t, "/api/activation/form", form)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, body = env.postJSON(t, "/api/activation/next", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decodeView(t, body)
	assert.True(t, v.Activation.ConfirmStep)

	resp, body = env.postJSON(t, "/api/activation/confirm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	v = decodeView(t, body)
	assert.Nil(t, v.Activation)
	assert.Nil(t, v.Result)
	assert.Equal(t, "Product activated successfully!", v.Flash)

	resp, body = env.postJSON(t, "/api/verify", map[string]string{"serial": "TR-KSK-003", "category": "Balistik kask"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decodeView(t, body)
	assert.Equal(t, models.StatusActivated, v.Result.Status)
	require.NotNil(t, v.Result.Owner)
	assert.Equal(t, models.MaskedOwner{FirstName: "El****", LastName: "Şa****", Phone: "******33"}, *v.Result.Owner)

	resp, _ = env.postJSON(t, "/api/activation/confirm", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestActivationFlowForms(t *testing.T) {
	env := newTestEnv(t, []string{"tr"}, portal.Options{})

	resp, _ := env.postForm(t, "/api/verify", url.Values{"serial": {"TR-BAL-001"}, "category": {"Balistik yelek"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	resp, _ = env.postForm(t, "/api/activation/open", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, _ = env.postForm(t, "/api/activation/next", url.Values{
		"first_name":       {"Ali"},
		"last_name":        {"Veli"},
		"phone":            {"+90 5321112233"},
		"agree_policy":     {"on"},
		"confirm_accuracy": {"on"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp, page := env.get(t, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	html := string(page)
	assert.Contains(t, html, `action="/api/activation/confirm"`)
	assert.Contains(t, html, "Ali Veli")

	resp, _ = env.postForm(t, "/api/activation/confirm", nil)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	_, page = env.get(t, "/", nil)
	assert.Contains(t, string(page), i18n.NewTranslator("tr").T("activatedSuccess"))
	assert.NotContains(t, string(page), `role="dialog"`)
}

func TestPageLanguage(t *testing.T) {
	env := newTestEnv(t, []string{"tr", "es", "ar", "de", "en", "fr"}, portal.Options{})

	_, page := env.get(t, "/", http.Header{"Accept-Language": {"ar-AE,ar;q=0.9"}})
	html := string(page)
	assert.Contains(t, html, `<html lang="ar" dir="rtl">`)
	assert.Contains(t, html, i18n.NewTranslator("ar").T("title"))

	resp, _ := env.postForm(t, "/api/lang", url.Values{"lang": {"de"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	var langCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == i18n.CookieName {
			langCookie = c
		}
	}
	require.NotNil(t, langCookie)
	assert.Equal(t, "de", langCookie.Value)
	assert.Equal(t, 365*24*3600, langCookie.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, langCookie.SameSite)

	_, page = env.get(t, "/", http.Header{"Accept-Language": {"ar"}})
	assert.Contains(t, string(page), `<html lang="de" dir="ltr">`, "the cookie wins over the header")
}

func TestPageUnknownCodeAndPIN(t *testing.T) {
	env := newTestEnv(t, []string{"en"}, portal.Options{RequirePIN: true})

	_, page := env.get(t, "/", nil)
	assert.Contains(t, string(page), `name="pin"`)

	env.postForm(t, "/api/verify", url.Values{"serial": {"<b>NOPE</b>"}})
	_, page = env.get(t, "/", nil)
	html := string(page)
	assert.Contains(t, html, "Code not found")
	assert.Contains(t, html, "&lt;B&gt;NOPE&lt;/B&gt;", "user input is escaped")
}

func TestSetLanguageRejectsUnsupported(t *testing.T) {
	env := newTestEnv(t, []string{"tr"}, portal.Options{})
	resp, body := env.postJSON(t, "/api/lang", map[string]string{"lang": "en"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))
}

func TestI18nAndCategories(t *testing.T) {
	env := newTestEnv(t, []string{"fr", "en"}, portal.Options{})

	resp, body := env.get(t, "/api/i18n", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var payload I18nPayload
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "fr", payload.Lang)
	assert.Equal(t, "ltr", payload.Dir)
	assert.Len(t, payload.Languages, 2)
	assert.Equal(t, i18n.NewTranslator("fr").T("verify"), payload.Messages["verify"])

	resp, body = env.get(t, "/api/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var cats map[string][]string
	require.NoError(t, json.Unmarshal(body, &cats))
	assert.Equal(t, catalog.SampleCategories, cats["categories"])
}

func TestQRHandler(t *testing.T) {
	env := newTestEnv(t, []string{"en"}, portal.Options{})
	resp, body := env.get(t, "/api/codes/TR-BAL-001/qr.png?size=128", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	img, err := png.Decode(bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())

	resp, body = env.get(t, "/api/codes/TR-BAL-001/qr.png?size=big", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var eb ErrorBody
	require.NoError(t, json.Unmarshal(body, &eb))
	assert.Equal(t, "errBadRequest", eb.Error)
	assert.Equal(t, i18n.NewTranslator("en").T("errBadRequest"), eb.Message)
}

func TestVerifySamplePIN(t *testing.T) {
	env := newTestEnv(t, []string{"en"}, portal.Options{RequirePIN: true})

	resp, body := env.postJSON(t, "/api/verify", map[string]string{"serial": "TR-BAL-001", "category": "Balistik yelek"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decodeView(t, body)
	require.NotNil(t, v.Result)
	assert.False(t, v.Result.Found, "a sample code needs its PIN")

	resp, _ = env.postJSON(t, "/api/activation/open", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = env.postJSON(t, "/api/verify", map[string]string{"serial": "tr-bal-001", "category": "Balistik yelek", "pin": "4821"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v = decodeView(t, body)
	assert.True(t, v.Result.Found)
	assert.True(t, v.Result.CanActivate)
}

func TestMethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, []string{"en"}, portal.Options{})
	resp, _ := env.get(t, "/api/verify", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, _ = env.get(t, "/api/activation/confirm", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, _ = env.postJSON(t, "/api/state", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp, _ = env.get(t, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
