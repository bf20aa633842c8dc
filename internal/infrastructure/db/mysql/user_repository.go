package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adotanatal/adopet/internal/core/domain"
)

type usuarioModel struct {
	ID        int64  `gorm:"primaryKey"`
	Nome      string `gorm:"size:200;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Senha     string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (usuarioModel) TableName() string { return "usuarios" }

// UsuarioRepository persists individual accounts in MySQL.
type UsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	m := usuarioModel{
		Nome:      usuario.Nome,
		Email:     usuario.Email,
		Senha:     usuario.Senha,
		CreatedAt: usuario.CreatedAt,
		UpdatedAt: usuario.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}

	return m.toDomain(), nil
}

func (r *UsuarioRepository) FindByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	var m usuarioModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find usuario: %w", err)
	}
	return m.toDomain(), nil
}

func (m usuarioModel) toDomain() *domain.Usuario {
	return &domain.Usuario{
		ID:        m.ID,
		Nome:      m.Nome,
		Email:     m.Email,
		Senha:     m.Senha,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
