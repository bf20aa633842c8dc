package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adotanatal/adopet/internal/core/domain"
)

type petModel struct {
	ID        int64  `gorm:"primaryKey"`
	Nome      string `gorm:"size:200;not null"`
	Especie   string `gorm:"size:100;not null"`
	Raca      string `gorm:"size:100;not null"`
	Sexo      string `gorm:"size:20;not null"`
	Foto      string `gorm:"size:255"`
	OngID     int64  `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (petModel) TableName() string { return "pets" }

// PetRepository persists pet listings in MySQL. All mutations are scoped by
// (id, ong_id) so cross-tenant writes affect zero rows.
type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

func (r *PetRepository) Create(ctx context.Context, pet *domain.Pet) (*domain.Pet, error) {
	m := petModel{
		Nome:      pet.Nome,
		Especie:   pet.Especie,
		Raca:      pet.Raca,
		Sexo:      pet.Sexo,
		Foto:      pet.Foto,
		OngID:     pet.OngID,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("insert pet: %w", err)
	}
	return m.toDomain(), nil
}

func (r *PetRepository) FindOwned(ctx context.Context, id, ongID int64) (*domain.Pet, error) {
	var m petModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND ong_id = ?", id, ongID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPetNotFound
		}
		return nil, fmt.Errorf("find pet: %w", err)
	}
	return m.toDomain(), nil
}

func (r *PetRepository) List(ctx context.Context, offset, limit int) ([]domain.Pet, error) {
	var models []petModel
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return toDomainPets(models), nil
}

func (r *PetRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&petModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	return total, nil
}

func (r *PetRepository) ListByONG(ctx context.Context, ongID int64, offset, limit int) ([]domain.Pet, error) {
	var models []petModel
	err := r.db.WithContext(ctx).
		Where("ong_id = ?", ongID).
		Order("id").
		Offset(offset).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list pets by ong: %w", err)
	}
	return toDomainPets(models), nil
}

// ListByONGAfter resumes after the last-seen id, the cursor row excluded.
func (r *PetRepository) ListByONGAfter(ctx context.Context, ongID, cursor int64, limit int) ([]domain.Pet, error) {
	var models []petModel
	err := r.db.WithContext(ctx).
		Where("ong_id = ? AND id > ?", ongID, cursor).
		Order("id").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list pets after cursor: %w", err)
	}
	return toDomainPets(models), nil
}

func (r *PetRepository) CountByONG(ctx context.Context, ongID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&petModel{}).
		Where("ong_id = ?", ongID).
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count pets by ong: %w", err)
	}
	return total, nil
}

func (r *PetRepository) UpdateOwned(ctx context.Context, id, ongID int64, upd domain.PetUpdate) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&petModel{}).
		Where("id = ? AND ong_id = ?", id, ongID).
		Updates(map[string]any{
			"nome":       upd.Nome,
			"especie":    upd.Especie,
			"raca":       upd.Raca,
			"sexo":       upd.Sexo,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return 0, fmt.Errorf("update pet: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *PetRepository) DeleteOwned(ctx context.Context, id, ongID int64) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND ong_id = ?", id, ongID).
		Delete(&petModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete pet: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (m petModel) toDomain() *domain.Pet {
	return &domain.Pet{
		ID:        m.ID,
		Nome:      m.Nome,
		Especie:   m.Especie,
		Raca:      m.Raca,
		Sexo:      m.Sexo,
		Foto:      m.Foto,
		OngID:     m.OngID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainPets(models []petModel) []domain.Pet {
	pets := make([]domain.Pet, 0, len(models))
	for _, m := range models {
		pets = append(pets, *m.toDomain())
	}
	return pets
}
