package ports

import (
	"context"

	"github.com/adotanatal/adopet/internal/core/domain"
)

// PetRepository defines the persistence interface for pet listings.
//
// UpdateOwned and DeleteOwned are scoped by (id, ongID) so a mutation touches
// a row only when it exists and belongs to the given organization; both return
// the number of rows affected, which is zero for unknown or foreign ids.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error)
	FindOwned(ctx context.Context, id, ongID int64) (*domain.Pet, error)

	List(ctx context.Context, offset, limit int) ([]domain.Pet, error)
	Count(ctx context.Context) (int64, error)

	ListByONG(ctx context.Context, ongID int64, offset, limit int) ([]domain.Pet, error)
	ListByONGAfter(ctx context.Context, ongID, cursor int64, limit int) ([]domain.Pet, error)
	CountByONG(ctx context.Context, ongID int64) (int64, error)

	UpdateOwned(ctx context.Context, id, ongID int64, upd domain.PetUpdate) (int64, error)
	DeleteOwned(ctx context.Context, id, ongID int64) (int64, error)
}
