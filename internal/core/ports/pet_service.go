package ports

import (
	"context"
	"io"

	"github.com/adotanatal/adopet/internal/core/domain"
)

// CreatePetInput carries a validated pet listing plus its photo upload.
type CreatePetInput struct {
	Nome     string
	Especie  string
	Raca     string
	Sexo     string
	FotoNome string
	Foto     io.Reader
}

// PetPage is one page of the public pet listing.
type PetPage struct {
	Pets      []domain.Pet
	Page      int
	PageSize  int
	PageCount int
}

// OwnedPetsQuery selects either offset mode (Page) or cursor mode
// (Cursor > 0, resume after the last-seen id).
type OwnedPetsQuery struct {
	Page     int
	PageSize int
	Cursor   int64
}

// OwnedPetPage is one page of an organization's own listing. NextCursor is
// the id of the last pet on the page, or zero when the page is empty.
type OwnedPetPage struct {
	Pets       []domain.Pet
	Page       int
	PageSize   int
	PageCount  int
	NextCursor int64
}

// PetService implements public browsing and owner-scoped management of pets.
type PetService interface {
	// HomePets returns the first pets grouped in display rows.
	HomePets(ctx context.Context) ([][]domain.Pet, error)
	ListPublic(ctx context.Context, page, pageSize int) (*PetPage, error)

	Create(ctx context.Context, sess domain.Sessao, in CreatePetInput) (*domain.Pet, error)
	GetOwned(ctx context.Context, sess domain.Sessao, petID int64) (*domain.Pet, error)
	Update(ctx context.Context, sess domain.Sessao, petID int64, upd domain.PetUpdate) error
	// Delete is idempotent: deleting an unknown or foreign pet id is a no-op.
	Delete(ctx context.Context, sess domain.Sessao, petID int64) error
	ListOwned(ctx context.Context, sess domain.Sessao, q OwnedPetsQuery) (*OwnedPetPage, error)
}
