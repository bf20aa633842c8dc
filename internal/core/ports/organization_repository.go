package ports

import (
	"context"

	"github.com/adotanatal/adopet/internal/core/domain"
)

// ONGRepository defines the persistence interface for organization accounts.
type ONGRepository interface {
	Create(ctx context.Context, ong *domain.ONG) (*domain.ONG, error)
	FindByEmail(ctx context.Context, email string) (*domain.ONG, error)
}
