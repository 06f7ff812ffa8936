package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every portal route. Liveness and QR images are served
// without a session; everything else gets a language and a session.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.recoverPanics, h.logRequests)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			h.logger.Debug("health write failed")
		}
	}).Methods(http.MethodGet)
	r.Handle("/api/codes/{code}/qr.png", h.withLanguage(http.HandlerFunc(h.QRHandler))).Methods(http.MethodGet)

	// Routes stay on r so a method mismatch is answered with 405.
	app := func(path string, fn http.HandlerFunc, method string) {
		r.Handle(path, h.withLanguage(h.withSession(fn))).Methods(method)
	}

	app("/", h.PageHandler, http.MethodGet)
	app("/index.html", h.PageHandler, http.MethodGet)

	app("/api/i18n", h.I18nHandler, http.MethodGet)
	app("/api/lang", h.SetLanguageHandler, http.MethodPost)
	app("/api/categories", h.CategoriesHandler, http.MethodGet)
	app("/api/state", h.StateHandler, http.MethodGet)

	app("/api/verify", h.VerifyHandler, http.MethodPost)
	app("/api/result/category", h.CategoryHandler, http.MethodPost)

	app("/api/activation/open", h.OpenActivationHandler, http.MethodPost)
	app("/api/activation/form", h.UpdateFormHandler, http.MethodPost)
	app("/api/activation/next", h.NextHandler, http.MethodPost)
	app("/api/activation/confirm", h.ConfirmHandler, http.MethodPost)
	app("/api/activation/close", h.CloseActivationHandler, http.MethodPost)

	return r
}
