package service

import (
	"context"
	"time"

	"github.com/adotanatal/adopet/internal/core/domain"
	"github.com/adotanatal/adopet/internal/core/ports"
)

const (
	defaultPageSize = 10
	homePetCount    = 12
	homeRowSize     = 3
)

// PetService implements public browsing and owner-scoped pet management.
type PetService struct {
	pets   ports.PetRepository
	photos ports.PhotoStore
}

func NewPetService(pets ports.PetRepository, photos ports.PhotoStore) *PetService {
	return &PetService{pets: pets, photos: photos}
}

// HomePets returns the first 12 pets grouped in rows of 3 for the home grid.
func (s *PetService) HomePets(ctx context.Context) ([][]domain.Pet, error) {
	pets, err := s.pets.List(ctx, 0, homePetCount)
	if err != nil {
		return nil, err
	}
	return domain.ChunkPets(pets, homeRowSize), nil
}

func (s *PetService) ListPublic(ctx context.Context, page, pageSize int) (*ports.PetPage, error) {
	page, pageSize = normalizePage(page, pageSize)

	total, err := s.pets.Count(ctx)
	if err != nil {
		return nil, err
	}

	pets, err := s.pets.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return &ports.PetPage{
		Pets:      pets,
		Page:      page,
		PageSize:  pageSize,
		PageCount: domain.PageCount(total, pageSize),
	}, nil
}

func (s *PetService) Create(ctx context.Context, sess domain.Sessao, in ports.CreatePetInput) (*domain.Pet, error) {
	if !sess.IsONG() {
		return nil, domain.ErrForbidden
	}

	foto, err := s.photos.Save(in.FotoNome, in.Foto)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pet := &domain.Pet{
		Nome:      in.Nome,
		Especie:   in.Especie,
		Raca:      in.Raca,
		Sexo:      in.Sexo,
		Foto:      foto,
		OngID:     sess.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.pets.Create(ctx, pet)
}

func (s *PetService) GetOwned(ctx context.Context, sess domain.Sessao, petID int64) (*domain.Pet, error) {
	if !sess.IsONG() {
		return nil, domain.ErrForbidden
	}
	return s.pets.FindOwned(ctx, petID, sess.ID)
}

// Update edits a pet scoped by (id, session id). A zero-row update means the
// pet does not exist or belongs to another organization; like the underlying
// updateMany, that is not an error.
func (s *PetService) Update(ctx context.Context, sess domain.Sessao, petID int64, upd domain.PetUpdate) error {
	if !sess.IsONG() {
		return domain.ErrForbidden
	}
	_, err := s.pets.UpdateOwned(ctx, petID, sess.ID, upd)
	return err
}

// Delete removes a pet scoped by (id, session id). Repeating a delete, or
// deleting a pet owned by someone else, affects zero rows and succeeds.
func (s *PetService) Delete(ctx context.Context, sess domain.Sessao, petID int64) error {
	if !sess.IsONG() {
		return domain.ErrForbidden
	}
	_, err := s.pets.DeleteOwned(ctx, petID, sess.ID)
	return err
}

func (s *PetService) ListOwned(ctx context.Context, sess domain.Sessao, q ports.OwnedPetsQuery) (*ports.OwnedPetPage, error) {
	if !sess.IsONG() {
		return nil, domain.ErrForbidden
	}

	page, pageSize := normalizePage(q.Page, q.PageSize)

	total, err := s.pets.CountByONG(ctx, sess.ID)
	if err != nil {
		return nil, err
	}

	var pets []domain.Pet
	if q.Cursor > 0 {
		pets, err = s.pets.ListByONGAfter(ctx, sess.ID, q.Cursor, pageSize)
	} else {
		pets, err = s.pets.ListByONG(ctx, sess.ID, (page-1)*pageSize, pageSize)
	}
	if err != nil {
		return nil, err
	}

	var next int64
	if len(pets) > 0 {
		next = pets[len(pets)-1].ID
	}

	return &ports.OwnedPetPage{
		Pets:       pets,
		Page:       page,
		PageSize:   pageSize,
		PageCount:  domain.PageCount(total, pageSize),
		NextCursor: next,
	}, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
