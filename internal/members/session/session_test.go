package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBindAndClear(t *testing.T) {
	t.Parallel()

	sc := Values{}
	_, ok := UserID(sc)
	require.False(t, ok)

	Bind(sc, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	id, ok := UserID(sc)
	require.True(t, ok)
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", id)

	Clear(sc)
	_, ok = UserID(sc)
	require.False(t, ok)
}

func TestManagerRoundTrip(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	token, err := m.Encode(map[string]string{KeyUser: "user-1"})
	require.NoError(t, err)

	values, err := m.Decode(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", values[KeyUser])
}

func TestManagerRejectsTamperedToken(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	token, err := m.Encode(map[string]string{KeyUser: "user-1"})
	require.NoError(t, err)

	_, err = m.Decode(token + "x")
	require.ErrorIs(t, err, ErrInvalidToken)

	other := NewManager("other-secret", time.Hour)
	_, err = other.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestManagerRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", -time.Minute)
	token, err := m.Encode(map[string]string{KeyUser: "user-1"})
	require.NoError(t, err)

	_, err = m.Decode(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestCookieSessionLifecycle(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)

	// No cookie: fresh empty session, nothing written back when untouched.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := m.FromRequest(req)
	_, ok := UserID(sess)
	require.False(t, ok)

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, sess))
	require.Empty(t, rec.Result().Cookies())

	// Bind a user: cookie is written and survives a round trip.
	Bind(sess, "user-1")
	rec = httptest.NewRecorder()
	require.NoError(t, m.Save(rec, sess))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	sess = m.FromRequest(req)
	id, ok := UserID(sess)
	require.True(t, ok)
	require.Equal(t, "user-1", id)

	// Clearing the user expires the cookie.
	Clear(sess)
	rec = httptest.NewRecorder()
	require.NoError(t, m.Save(rec, sess))
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Less(t, cookies[0].MaxAge, 0)
}

func TestCookieSessionIgnoresGarbageCookie(t *testing.T) {
	t.Parallel()

	m := NewManager("test-secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-a-jwt"})

	sess := m.FromRequest(req)
	_, ok := UserID(sess)
	require.False(t, ok)
}
