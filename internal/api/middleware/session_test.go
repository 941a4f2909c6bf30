package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret, sub string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runSession(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Session("secret")
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, c, handler(c)
}

func TestSession_ValidToken(t *testing.T) {
	signed := signToken(t, "secret", "user-1", time.Hour)
	rec, c, err := runSession(t, &http.Cookie{Name: CookieName, Value: signed})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get(UserIDKey) != "user-1" {
		t.Fatalf("user id not set, got %v", c.Get(UserIDKey))
	}
}

func TestSession_MissingCookie(t *testing.T) {
	_, _, err := runSession(t, nil)
	assertHTTPError(t, err, http.StatusUnauthorized)
}

func TestSession_GarbageToken(t *testing.T) {
	_, _, err := runSession(t, &http.Cookie{Name: CookieName, Value: "not-a-jwt"})
	assertHTTPError(t, err, http.StatusForbidden)
}

func TestSession_ExpiredToken(t *testing.T) {
	signed := signToken(t, "secret", "user-1", -time.Minute)
	_, _, err := runSession(t, &http.Cookie{Name: CookieName, Value: signed})
	assertHTTPError(t, err, http.StatusForbidden)
}

func TestSession_WrongSecret(t *testing.T) {
	signed := signToken(t, "other-secret", "user-1", time.Hour)
	_, _, err := runSession(t, &http.Cookie{Name: CookieName, Value: signed})
	assertHTTPError(t, err, http.StatusForbidden)
}

func TestSession_MissingSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	_, _, herr := runSession(t, &http.Cookie{Name: CookieName, Value: signed})
	assertHTTPError(t, herr, http.StatusForbidden)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}
