package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/studytrack/task-api/internal/api/metrics"
)

const (
	// CookieName is the HTTP-only cookie carrying the session token.
	CookieName = "session"
	// SessionTTL bounds both the JWT expiry and the cookie lifetime.
	SessionTTL = 7 * 24 * time.Hour
	// UserIDKey is the echo context key holding the verified user id.
	UserIDKey = "user_id"
)

// Session verifies the signed session cookie and injects the user id into
// the request context. A missing cookie is 401; a present but invalid or
// expired token is 403. Token validity is purely signature plus expiry —
// there is no server-side session state.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				metrics.SessionRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.SessionRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				metrics.SessionRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}

			c.Set(UserIDKey, sub)
			return next(c)
		}
	}
}
