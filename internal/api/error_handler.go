package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/adotanatal/adopet/internal/api/middleware"
	"github.com/adotanatal/adopet/internal/core/domain"
)

// errorView is the payload the error page receives; the session identity is
// preserved even on failure so the page chrome stays consistent.
type errorView struct {
	Usuario *domain.Sessao
	Erro    string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the error page, falling back to plain text if rendering fails.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		data := errorView{Erro: msg}
		if sess, ok := c.Get(middleware.SessionKey).(domain.Sessao); ok {
			data.Usuario = &sess
		}

		if rerr := c.Render(code, "erro", data); rerr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "Acesso negado!"
	case errors.Is(err, domain.ErrPetNotFound):
		return http.StatusNotFound, "Pet não encontrado!"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "Usuário não encontrado!"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Senha incorreta!"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict, "Este email já está sendo utilizado!"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Ocorreu um erro!"
}
