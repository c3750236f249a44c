package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens("test-secret", zerolog.Nop())
	userID := uuid.New()

	token, err := tokens.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, verified)
}

func TestTokens_Verify_Invalid(t *testing.T) {
	tokens := NewTokens("test-secret", zerolog.Nop())
	userID := uuid.New()

	validToken, err := tokens.Issue(userID)
	require.NoError(t, err)

	expired := func() string {
		claims := &Claims{
			UserID: userID,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
			},
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)
		return signed
	}()

	otherSecret := func() string {
		other := NewTokens("other-secret", zerolog.Nop())
		signed, err := other.Issue(userID)
		require.NoError(t, err)
		return signed
	}()

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbled token", token: "not.a.jwt"},
		{name: "Empty token", token: ""},
		{name: "Expired token", token: expired},
		{name: "Wrong signing secret", token: otherSecret},
		{name: "Truncated signature", token: validToken[:len(validToken)-5]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSessionCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetSessionCookie(w, "sometoken")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Equal(t, "sometoken", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.WithinDuration(t, time.Now().Add(SessionDuration), cookie.Expires, time.Minute)
}

func TestClearSessionCookie(t *testing.T) {
	w := httptest.NewRecorder()
	ClearSessionCookie(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, SessionCookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}

func TestSessionToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SessionToken(r)
	assert.False(t, ok)

	r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "abc"})
	token, ok := SessionToken(r)
	assert.True(t, ok)
	assert.Equal(t, "abc", token)
}
