package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/adotanatal/adopet/internal/core/domain"
)

// CookieName is the session cookie the browser holds.
const CookieName = "session"

// SessionKey is the echo context key the parsed identity is stored under.
const SessionKey = "sessao"

// Session reads the signed session cookie and, when valid and unexpired,
// injects the identity into the request context. Absent, tampered or expired
// cookies leave the request anonymous; they never fail the request.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			sess, ok := sessaoFromClaims(claims)
			if !ok {
				return next(c)
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// RequireONG guards owner-scoped pet routes: without an authenticated
// organization session the request is redirected to the login page before
// any data is read or written.
func RequireONG() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := c.Get(SessionKey).(domain.Sessao)
			if !ok || !sess.IsONG() {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

func sessaoFromClaims(claims jwt.MapClaims) (domain.Sessao, bool) {
	tipo, _ := claims["tipo"].(string)
	nome, _ := claims["nome"].(string)
	id, ok := claims["id"].(float64)
	if !ok || tipo == "" {
		return domain.Sessao{}, false
	}
	return domain.Sessao{Tipo: tipo, ID: int64(id), Nome: nome}, true
}
