package ports

import (
	"context"

	"github.com/adotanatal/adopet/internal/core/domain"
)

// UsuarioRepository defines the persistence interface for individual accounts.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*domain.Usuario, error)
}
