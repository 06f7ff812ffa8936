package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrylevesque/qrverify/internal/api"
	"github.com/harrylevesque/qrverify/internal/catalog"
	"github.com/harrylevesque/qrverify/internal/crypto"
	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/models"
	"github.com/harrylevesque/qrverify/internal/portal"
	"github.com/harrylevesque/qrverify/internal/session"
)

func startPortal(t *testing.T) string {
	t.Helper()
	bundle, err := i18n.NewBundle([]string{"en", "tr"}, "en")
	require.NoError(t, err)
	keys, err := crypto.DeriveCookieKeys(bytes.Repeat([]byte{1}, 32))
	require.NoError(t, err)
	sessions := session.NewManager(session.NewStore(time.Minute, portal.NewState), session.NewCookieStore(keys, false), "qrv_session")
	h := api.NewHandler(portal.New(catalog.MustSample(), portal.Options{}, nil), bundle, sessions, nil)
	srv := httptest.NewServer(api.NewRouter(h))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestClientActivateKeepsSession(t *testing.T) {
	c, err := newPortalClient(startPortal(t)+"/", "", 5*time.Second)
	require.NoError(t, err)

	v, err := c.Verify("tr-ptc-005", "Plaka taşıyıcı", "")
	require.NoError(t, err)
	require.True(t, v.Result.CanActivate)

	_, err = c.Open()
	require.NoError(t, err)
	v, err = c.Next(&portal.Form{FirstName: "Can", LastName: "Öz", Phone: "+905551234567", AgreePolicy: true, ConfirmAccuracy: true})
	require.NoError(t, err)
	require.True(t, v.Activation.ConfirmStep)

	v, err = c.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "Product activated successfully!", v.Flash)

	v, err = c.Verify("TR-PTC-005", "Plaka taşıyıcı", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusActivated, v.Result.Status)
}

func TestClientErrors(t *testing.T) {
	c, err := newPortalClient(startPortal(t), "tr", 5*time.Second)
	require.NoError(t, err)

	_, err = c.Confirm()
	var ae *apiError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, http.StatusConflict, ae.Status)
	assert.Equal(t, "errNoActivation", ae.Body.Error)
	assert.Equal(t, i18n.NewTranslator("tr").T("errNoActivation"), ae.Body.Message)
}

func TestClientQR(t *testing.T) {
	c, err := newPortalClient(startPortal(t), "", 5*time.Second)
	require.NoError(t, err)
	png, err := c.QR("TR-BAL-001", 64)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
