package ports

import (
	"context"

	"github.com/adotanatal/adopet/internal/core/domain"
)

// RegisterUsuarioInput carries a validated individual registration.
type RegisterUsuarioInput struct {
	Nome  string
	Email string
	Senha string
}

// RegisterONGInput carries a validated organization registration.
type RegisterONGInput struct {
	Nome              string
	CNPJ              string
	Email             string
	Telefone          string
	Instagram         string
	CEP               string
	AtuaEmGrandeNatal bool
	TrabalhaComCaes   bool
	TrabalhaComGatos  bool
	TrabalhaComOutros bool
	Senha             string
}

// AuthService implements registration and session-cookie login for both
// account kinds.
type AuthService interface {
	RegisterUsuario(ctx context.Context, in RegisterUsuarioInput) (*domain.Usuario, error)
	RegisterONG(ctx context.Context, in RegisterONGInput) (*domain.ONG, error)
	// Login authenticates email/senha within the account kind selected by
	// tipo and returns the signed session token alongside its payload.
	Login(ctx context.Context, tipo, email, senha string) (string, *domain.Sessao, error)
}
