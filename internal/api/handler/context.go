package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adotanatal/adopet/internal/api/middleware"
	"github.com/adotanatal/adopet/internal/core/domain"
)

// sessaoFrom extracts the identity injected by the Session middleware. The
// zero value with ok=false means the request is anonymous; every view
// receives the result so pages can adjust what they show.
func sessaoFrom(c echo.Context) (domain.Sessao, bool) {
	sess, ok := c.Get(middleware.SessionKey).(domain.Sessao)
	return sess, ok
}

// viewData is the payload every rendered page receives.
type viewData struct {
	Usuario *domain.Sessao
	Erro    string
	Erros   []FieldError
	Data    any
}

// view builds the render payload, carrying the session identity when present.
func view(c echo.Context, data any) viewData {
	vd := viewData{Data: data}
	if sess, ok := sessaoFrom(c); ok {
		vd.Usuario = &sess
	}
	return vd
}

func (vd viewData) withErro(msg string) viewData {
	vd.Erro = msg
	return vd
}

func (vd viewData) withErros(errs []FieldError) viewData {
	vd.Erros = errs
	return vd
}
