package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/portal"
	"github.com/harrylevesque/qrverify/internal/qr"
	"github.com/harrylevesque/qrverify/internal/utils"
)

const maxBodyBytes = 64 << 10

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSONResponse writes a JSON response.
func JSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// ErrorResponse writes an error response with a message key and its
// translation.
func ErrorResponse(w http.ResponseWriter, tr *i18n.Translator, err error) {
	status, key := classify(err)
	msg := tr.T(key)
	if msg == key {
		msg = http.StatusText(status)
	}
	JSONResponse(w, status, ErrorBody{Error: key, Message: msg})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, portal.ErrNotActivatable):
		return http.StatusConflict, "errNotActivatable"
	case errors.Is(err, portal.ErrNoActivation):
		return http.StatusConflict, "errNoActivation"
	case errors.Is(err, portal.ErrBusy):
		return http.StatusConflict, "errBusy"
	case errors.Is(err, i18n.ErrUnsupported), errors.Is(err, qr.ErrEmptyCode):
		return http.StatusBadRequest, "errBadRequest"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable, "errUnavailable"
	}
	var ce *utils.CustomError
	if errors.As(err, &ce) {
		return ce.Code, ce.Message
	}
	return http.StatusInternalServerError, "errInternal"
}

// isJSON reports whether the request body is JSON. Anything else is treated
// as an HTML form post.
func isJSON(r *http.Request) bool {
	ct, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && ct == "application/json"
}

// decode reads the request into dst. JSON bodies are decoded directly; form
// posts are handed to fromForm. An empty JSON body leaves dst untouched.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}, fromForm func(url.Values)) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if isJSON(r) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
			return utils.Wrap(http.StatusBadRequest, "errBadRequest", err)
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return utils.Wrap(http.StatusBadRequest, "errBadRequest", err)
	}
	if fromForm != nil {
		fromForm(r.PostForm)
	}
	return nil
}

// respond finishes a state-changing request: form posts are redirected back
// to the page, JSON callers get the new view.
func respond(w http.ResponseWriter, r *http.Request, v portal.View, err error) {
	if isJSON(r) {
		if err != nil {
			ErrorResponse(w, translatorFrom(r), err)
			return
		}
		JSONResponse(w, http.StatusOK, v)
		return
	}
	if err != nil && utils.StatusCode(err) == http.StatusBadRequest {
		_, key := classify(err)
		http.Error(w, translatorFrom(r).T(key), http.StatusBadRequest)
		return
	}
	// Wizard state errors are visible on the page itself.
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func formBool(v url.Values, key string) bool {
	switch strings.ToLower(v.Get(key)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
