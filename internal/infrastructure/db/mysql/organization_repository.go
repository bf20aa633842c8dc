package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adotanatal/adopet/internal/core/domain"
)

type ongModel struct {
	ID                int64  `gorm:"primaryKey"`
	Nome              string `gorm:"size:200;not null"`
	CNPJ              string `gorm:"column:cnpj;uniqueIndex;size:32;not null"`
	Email             string `gorm:"uniqueIndex;size:255;not null"`
	Telefone          string `gorm:"size:32"`
	Instagram         string `gorm:"size:100"`
	CEP               string `gorm:"column:cep;size:16"`
	AtuaEmGrandeNatal bool
	TrabalhaComCaes   bool
	TrabalhaComGatos  bool
	TrabalhaComOutros bool
	Senha             string `gorm:"size:255;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ongModel) TableName() string { return "ongs" }

// ONGRepository persists organization accounts in MySQL.
type ONGRepository struct {
	db *gorm.DB
}

func NewONGRepository(db *gorm.DB) *ONGRepository {
	return &ONGRepository{db: db}
}

func (r *ONGRepository) Create(ctx context.Context, ong *domain.ONG) (*domain.ONG, error) {
	m := ongModel{
		Nome:              ong.Nome,
		CNPJ:              ong.CNPJ,
		Email:             ong.Email,
		Telefone:          ong.Telefone,
		Instagram:         ong.Instagram,
		CEP:               ong.CEP,
		AtuaEmGrandeNatal: ong.AtuaEmGrandeNatal,
		TrabalhaComCaes:   ong.TrabalhaComCaes,
		TrabalhaComGatos:  ong.TrabalhaComGatos,
		TrabalhaComOutros: ong.TrabalhaComOutros,
		Senha:             ong.Senha,
		CreatedAt:         ong.CreatedAt,
		UpdatedAt:         ong.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert ong: %w", err)
	}

	return m.toDomain(), nil
}

func (r *ONGRepository) FindByEmail(ctx context.Context, email string) (*domain.ONG, error) {
	var m ongModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find ong: %w", err)
	}
	return m.toDomain(), nil
}

func (m ongModel) toDomain() *domain.ONG {
	return &domain.ONG{
		ID:                m.ID,
		Nome:              m.Nome,
		CNPJ:              m.CNPJ,
		Email:             m.Email,
		Telefone:          m.Telefone,
		Instagram:         m.Instagram,
		CEP:               m.CEP,
		AtuaEmGrandeNatal: m.AtuaEmGrandeNatal,
		TrabalhaComCaes:   m.TrabalhaComCaes,
		TrabalhaComGatos:  m.TrabalhaComGatos,
		TrabalhaComOutros: m.TrabalhaComOutros,
		Senha:             m.Senha,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
