package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adotanatal/adopet/internal/api/metrics"
	"github.com/adotanatal/adopet/internal/api/middleware"
	"github.com/adotanatal/adopet/internal/core/domain"
	"github.com/adotanatal/adopet/internal/core/ports"
)

const (
	msgEmailTaken    = "Este email já está sendo utilizado!"
	msgGenericError  = "Ocorreu um erro!"
	msgUserNotFound  = "Usuário não encontrado!"
	msgWrongPassword = "Senha incorreta!"
)

// AuthHandler serves registration, login and logout for both account kinds.
type AuthHandler struct {
	auth  ports.AuthService
	forms *formValidator
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth, forms: NewFormValidator()}
}

// CadastroPage renders the Usuario registration form.
func (h *AuthHandler) CadastroPage(c echo.Context) error {
	return c.Render(http.StatusOK, "cadastro", view(c, nil))
}

// Cadastro handles POST /cadastro.
func (h *AuthHandler) Cadastro(c echo.Context) error {
	var form cadastroForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "cadastro", view(c, nil).withErro(msgGenericError))
	}

	if errs := h.forms.Check(form); errs != nil {
		return c.Render(http.StatusBadRequest, "cadastro", view(c, nil).withErros(errs))
	}

	_, err := h.auth.RegisterUsuario(c.Request().Context(), ports.RegisterUsuarioInput{
		Nome:  form.Nome,
		Email: form.Email,
		Senha: form.Senha,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.Render(http.StatusConflict, "cadastro", view(c, nil).withErro(msgEmailTaken))
		}
		return c.Render(http.StatusInternalServerError, "cadastro", view(c, nil).withErro(msgGenericError))
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.TipoUsuario).Inc()
	return c.Redirect(http.StatusFound, "/login")
}

// CadastroONGPage renders the organization registration form.
func (h *AuthHandler) CadastroONGPage(c echo.Context) error {
	return c.Render(http.StatusOK, "cadastro_ong", view(c, nil))
}

// CadastroONG handles POST /cadastro_ong.
func (h *AuthHandler) CadastroONG(c echo.Context) error {
	var form cadastroONGForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "cadastro_ong", view(c, nil).withErro(msgGenericError))
	}

	if errs := h.forms.Check(form); errs != nil {
		return c.Render(http.StatusBadRequest, "cadastro_ong", view(c, nil).withErros(errs))
	}

	_, err := h.auth.RegisterONG(c.Request().Context(), ports.RegisterONGInput{
		Nome:              form.Nome,
		CNPJ:              form.CNPJ,
		Email:             form.Email,
		Telefone:          form.Telefone,
		Instagram:         form.Instagram,
		CEP:               form.CEP,
		AtuaEmGrandeNatal: checkboxOn(form.AtuaEmGrandeNatal),
		TrabalhaComCaes:   checkboxOn(form.TrabalhaComCaes),
		TrabalhaComGatos:  checkboxOn(form.TrabalhaComGatos),
		TrabalhaComOutros: checkboxOn(form.TrabalhaComOutros),
		Senha:             form.Senha,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.Render(http.StatusConflict, "cadastro_ong", view(c, nil).withErro(msgEmailTaken))
		}
		return c.Render(http.StatusInternalServerError, "cadastro_ong", view(c, nil).withErro(msgGenericError))
	}

	metrics.RegistrationsTotal.WithLabelValues(domain.TipoONG).Inc()
	return c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", view(c, nil))
}

// Login handles POST /login. The tipo field selects the account kind;
// usuarios land on the home page, organizations on their pet list.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "login", view(c, nil).withErro(msgGenericError))
	}

	kind := domain.TipoONG
	if form.Tipo == domain.TipoUsuario {
		kind = domain.TipoUsuario
	}

	token, sess, err := h.auth.Login(c.Request().Context(), form.Tipo, form.Email, form.Senha)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues(kind, "not_found").Inc()
			return c.Render(http.StatusUnauthorized, "login", view(c, nil).withErro(msgUserNotFound))
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues(kind, "wrong_password").Inc()
			return c.Render(http.StatusUnauthorized, "login", view(c, nil).withErro(msgWrongPassword))
		default:
			return c.Render(http.StatusInternalServerError, "login", view(c, nil).withErro(msgGenericError))
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(domain.SessionTTL.Seconds()),
		HttpOnly: false,
	})

	metrics.LoginsTotal.WithLabelValues(kind, "success").Inc()

	if sess.IsONG() {
		return c.Redirect(http.StatusFound, "/meus_pets")
	}
	return c.Redirect(http.StatusFound, "/")
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:   middleware.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	return c.Redirect(http.StatusFound, "/login")
}
