package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/harrylevesque/qrverify/internal/i18n"
	"github.com/harrylevesque/qrverify/internal/portal"
)

type ctxKey int

const (
	translatorKey ctxKey = iota
	stateKey
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// logRequests logs one line per request.
func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		h.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Int("bytes", rec.bytes),
			zap.Duration("duration", time.Since(start)))
	})
}

func (h *Handler) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				h.logger.Error("panic serving request", zap.Any("panic", v), zap.String("path", r.URL.Path), zap.Stack("stack"))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withLanguage resolves the request language from the svd_lang cookie and
// Accept-Language.
func (h *Handler) withLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cookie string
		if c, err := r.Cookie(i18n.CookieName); err == nil {
			cookie = c.Value
		}
		lang := h.bundle.Resolve(cookie, r.Header.Get("Accept-Language"))
		ctx := context.WithValue(r.Context(), translatorKey, i18n.NewTranslator(lang))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withSession attaches the caller's portal state, starting a session if needed.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, st, err := h.sessions.Load(w, r)
		if err != nil {
			h.logger.Error("session load failed", zap.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		ctx := context.WithValue(r.Context(), stateKey, st)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func translatorFrom(r *http.Request) *i18n.Translator {
	if tr, ok := r.Context().Value(translatorKey).(*i18n.Translator); ok {
		return tr
	}
	return i18n.NewTranslator("tr")
}

func stateFrom(r *http.Request) *portal.State {
	st, _ := r.Context().Value(stateKey).(*portal.State)
	return st
}
