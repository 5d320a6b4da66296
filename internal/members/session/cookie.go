package session

import (
	"net/http"
	"time"
)

// CookieName carries the signed session token.
const CookieName = "memberpay_session"

// CookieSession is an HTTP-backed Context. It tracks whether it was modified
// so unchanged sessions don't re-issue cookies on every response.
type CookieSession struct {
	values map[string]string
	dirty  bool
}

func (s *CookieSession) Get(key string) (string, bool) {
	val, ok := s.values[key]
	return val, ok
}

func (s *CookieSession) Set(key, value string) {
	s.values[key] = value
	s.dirty = true
}

func (s *CookieSession) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	s.dirty = true
}

// FromRequest loads the session from the request cookie. A missing, expired
// or tampered cookie yields a fresh empty session rather than an error.
func (m *Manager) FromRequest(r *http.Request) *CookieSession {
	sess := &CookieSession{values: map[string]string{}}

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return sess
	}

	values, err := m.Decode(cookie.Value)
	if err != nil {
		return sess
	}

	sess.values = values
	return sess
}

// Save writes the session back to the response if it was modified. An empty
// modified session clears the cookie.
func (m *Manager) Save(w http.ResponseWriter, sess *CookieSession) error {
	if !sess.dirty {
		return nil
	}

	if len(sess.values) == 0 {
		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return nil
	}

	token, err := m.Encode(sess.values)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
