package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/portal"
)

//go:embed templates/index.gohtml
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.gohtml"))

// ExampleSerial is shown in the page hint.
const ExampleSerial = "TR-BAL-001"

type pageData struct {
	portal.View
	tr         *i18n.Translator
	Languages  []i18n.Language
	Categories []string
	RequirePIN bool
	Example    string
}

// T translates key in the page language.
func (d pageData) T(key string) string { return d.tr.T(key) }

// PageHandler renders the portal page in the request language.
func (h *Handler) PageHandler(w http.ResponseWriter, r *http.Request) {
	tr := translatorFrom(r)
	data := pageData{
		View:       h.portal.View(stateFrom(r), tr),
		tr:         tr,
		Languages:  h.bundle.Languages(),
		Categories: h.portal.Categories(),
		RequirePIN: h.portal.RequirePIN(),
		Example:    ExampleSerial,
	}
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		h.logger.Error("render page failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", tr.Lang)
	w.Header().Set("Cache-Control", "no-store")
	buf.WriteTo(w)
}
