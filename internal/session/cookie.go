package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/harrylevesque/qrverify/internal/crypto"
)

const idKey = "sid"

// CookieStore is the subset of gorilla/sessions used to carry the session ID.
type CookieStore interface {
	Get(r *http.Request, name string) (*sessions.Session, error)
	Save(r *http.Request, w http.ResponseWriter, s *sessions.Session) error
}

// NewCookieStore returns a signed and encrypted cookie store. The cookie has
// no Max-Age so it lives for the browser session.
func NewCookieStore(keys crypto.CookieKeys, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore(keys.Hash, keys.Block)
	cs.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return cs
}

// Manager binds Store entries to requests through a cookie.
type Manager[T any] struct {
	store   *Store[T]
	cookies CookieStore
	name    string
}

// NewManager creates a manager using the named cookie.
func NewManager[T any](store *Store[T], cookies CookieStore, name string) *Manager[T] {
	return &Manager[T]{store: store, cookies: cookies, name: name}
}

// Store returns the underlying cache.
func (m *Manager[T]) Store() *Store[T] { return m.store }

// Load returns the session for r, starting a new one (and setting the cookie
// on w) when the cookie is missing, tampered with, or points at an expired
// session. It must run before anything is written to w.
func (m *Manager[T]) Load(w http.ResponseWriter, r *http.Request) (string, *T, error) {
	// A decode error still yields a usable empty session.
	sess, err := m.cookies.Get(r, m.name)
	if sess == nil {
		return "", nil, err
	}
	if id, ok := sess.Values[idKey].(string); ok && id != "" {
		if v, err := m.store.Get(id); err == nil {
			return id, v, nil
		}
	}
	id, v := m.store.Create()
	sess.Values[idKey] = id
	if err := m.cookies.Save(r, w, sess); err != nil {
		m.store.Delete(id)
		return "", nil, err
	}
	return id, v, nil
}
