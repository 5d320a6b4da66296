// Package session provides the per-request session context and its cookie
// transport. Handlers read and write plain string keys; the cookie itself is
// a signed JWT so clients cannot forge a user id.
package session

// KeyUser is the session key holding the authenticated user's id.
const KeyUser = "user"

// Context is a mutable per-request session. Implementations are not safe for
// concurrent use; each request owns its own Context.
type Context interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Bind marks the session as belonging to the given user. It has no failure
// mode; persisting the session is the transport's concern.
func Bind(sc Context, userID string) {
	sc.Set(KeyUser, userID)
}

// UserID returns the bound user id, if any.
func UserID(sc Context) (string, bool) {
	return sc.Get(KeyUser)
}

// Clear removes the user binding, signing the caller out.
func Clear(sc Context) {
	sc.Delete(KeyUser)
}

// Values is a map-backed Context for tests and non-HTTP callers.
type Values map[string]string

func (v Values) Get(key string) (string, bool) {
	val, ok := v[key]
	return val, ok
}

func (v Values) Set(key, value string) { v[key] = value }

func (v Values) Delete(key string) { delete(v, key) }
