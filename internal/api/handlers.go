package api

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/portal"
	"github.com/harrylevesque/qrverify/internal/qr"
	"github.com/harrylevesque/qrverify/internal/session"
	"github.com/harrylevesque/qrverify/internal/utils"
)

// LangCookieMaxAge is how long the chosen language is remembered.
const LangCookieMaxAge = 365 * 24 * time.Hour

// Handler serves the portal over HTTP.
type Handler struct {
	portal   *portal.Portal
	bundle   *i18n.Bundle
	sessions *session.Manager[portal.State]
	logger   *zap.Logger
}

// NewHandler creates the HTTP handlers.
func NewHandler(p *portal.Portal, bundle *i18n.Bundle, sessions *session.Manager[portal.State], logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{portal: p, bundle: bundle, sessions: sessions, logger: logger}
}

// I18nPayload is returned by GET /api/i18n and POST /api/lang.
type I18nPayload struct {
	Lang      string            `json:"lang"`
	Dir       string            `json:"dir"`
	Messages  map[string]string `json:"messages"`
	Languages []i18n.Language   `json:"languages"`
}

func (h *Handler) i18nPayload(tr *i18n.Translator) I18nPayload {
	return I18nPayload{
		Lang:      tr.Lang,
		Dir:       tr.Dir(),
		Messages:  tr.Messages(),
		Languages: h.bundle.Languages(),
	}
}

// I18nHandler returns the messages of the current language.
func (h *Handler) I18nHandler(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, h.i18nPayload(translatorFrom(r)))
}

type langRequest struct {
	Lang string `json:"lang"`
}

// SetLanguageHandler remembers the chosen language in the svd_lang cookie.
func (h *Handler) SetLanguageHandler(w http.ResponseWriter, r *http.Request) {
	var req langRequest
	if err := decode(w, r, &req, func(v url.Values) { req.Lang = v.Get("lang") }); err != nil {
		respondError(w, r, err)
		return
	}
	if !h.bundle.Supported(req.Lang) {
		respondError(w, r, i18n.ErrUnsupported)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     i18n.CookieName,
		Value:    req.Lang,
		Path:     "/",
		MaxAge:   int(LangCookieMaxAge / time.Second),
		SameSite: http.SameSiteLaxMode,
	})
	if !isJSON(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	JSONResponse(w, http.StatusOK, h.i18nPayload(i18n.NewTranslator(req.Lang)))
}

// CategoriesHandler lists the selectable categories.
func (h *Handler) CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, map[string][]string{"categories": h.portal.Categories()})
}

// StateHandler returns the caller's session view.
func (h *Handler) StateHandler(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, http.StatusOK, h.portal.View(stateFrom(r), translatorFrom(r)))
}

type verifyRequest struct {
	Serial   string `json:"serial"`
	Category string `json:"category"`
	PIN      string `json:"pin"`
}

// VerifyHandler checks a serial code.
func (h *Handler) VerifyHandler(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	err := decode(w, r, &req, func(v url.Values) {
		req.Serial = v.Get("serial")
		req.Category = v.Get("category")
		req.PIN = v.Get("pin")
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	v, err := h.portal.Verify(stateFrom(r), req.Serial, req.Category, req.PIN, translatorFrom(r))
	respond(w, r, v, err)
}

type categoryRequest struct {
	Category string `json:"category"`
}

// CategoryHandler changes the category selection of the current result.
func (h *Handler) CategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decode(w, r, &req, func(v url.Values) { req.Category = v.Get("category") }); err != nil {
		respondError(w, r, err)
		return
	}
	v, err := h.portal.SetCategory(stateFrom(r), req.Category, translatorFrom(r))
	respond(w, r, v, err)
}

// OpenActivationHandler opens the activation wizard.
func (h *Handler) OpenActivationHandler(w http.ResponseWriter, r *http.Request) {
	v, err := h.portal.OpenActivation(stateFrom(r), translatorFrom(r))
	respond(w, r, v, err)
}

func formFromValues(v url.Values) portal.Form {
	return portal.Form{
		FirstName:       v.Get("first_name"),
		LastName:        v.Get("last_name"),
		Phone:           v.Get("phone"),
		AgreePolicy:     formBool(v, "agree_policy"),
		ConfirmAccuracy: formBool(v, "confirm_accuracy"),
	}
}

func hasFormFields(v url.Values) bool {
	for _, k := range []string{"first_name", "last_name", "phone", "agree_policy", "confirm_accuracy"} {
		if _, ok := v[k]; ok {
			return true
		}
	}
	return false
}

// UpdateFormHandler stores the activation form fields.
func (h *Handler) UpdateFormHandler(w http.ResponseWriter, r *http.Request) {
	var f portal.Form
	if err := decode(w, r, &f, func(v url.Values) { f = formFromValues(v) }); err != nil {
		respondError(w, r, err)
		return
	}
	v, err := h.portal.UpdateForm(stateFrom(r), f, translatorFrom(r))
	respond(w, r, v, err)
}

type nextRequest struct {
	Form *portal.Form `json:"form"`
}

// NextHandler moves the wizard between the edit and confirm steps. Fields
// sent along are stored first, so a plain HTML form needs one submit.
func (h *Handler) NextHandler(w http.ResponseWriter, r *http.Request) {
	var req nextRequest
	err := decode(w, r, &req, func(v url.Values) {
		if hasFormFields(v) {
			f := formFromValues(v)
			req.Form = &f
		}
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	st, tr := stateFrom(r), translatorFrom(r)
	if req.Form != nil {
		if _, err := h.portal.UpdateForm(st, *req.Form, tr); err != nil {
			respond(w, r, portal.View{}, err)
			return
		}
	}
	v, err := h.portal.Next(st, tr)
	respond(w, r, v, err)
}

// ConfirmHandler activates the code. It blocks for the simulated round trip.
func (h *Handler) ConfirmHandler(w http.ResponseWriter, r *http.Request) {
	v, err := h.portal.Confirm(r.Context(), stateFrom(r), translatorFrom(r))
	respond(w, r, v, err)
}

// CloseActivationHandler dismisses the wizard.
func (h *Handler) CloseActivationHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.portal.CloseActivation(stateFrom(r), translatorFrom(r)), nil)
}

// QRHandler renders a QR PNG for a serial code. The optional size query
// parameter sets the image edge in pixels.
func (h *Handler) QRHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			ErrorResponse(w, translatorFrom(r), utils.New(http.StatusBadRequest, "errBadRequest"))
			return
		}
		size = n
	}
	png, err := qr.Encode(code, size)
	if err != nil {
		ErrorResponse(w, translatorFrom(r), err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	http.ServeContent(w, r, "qr.png", time.Time{}, bytes.NewReader(png))
}

// respondError reports a request that failed before reaching the portal.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if isJSON(r) {
		ErrorResponse(w, translatorFrom(r), err)
		return
	}
	status, key := classify(err)
	http.Error(w, translatorFrom(r).T(key), status)
}
