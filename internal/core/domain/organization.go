package domain

import "time"

// ONG models a shelter/rescue organization that lists pets for adoption.
type ONG struct {
	ID                int64     `json:"id"`
	Nome              string    `json:"nome"`
	CNPJ              string    `json:"cnpj"`
	Email             string    `json:"email"`
	Telefone          string    `json:"telefone"`
	Instagram         string    `json:"instagram"`
	CEP               string    `json:"cep"`
	AtuaEmGrandeNatal bool      `json:"atuaEmGrandeNatal"`
	TrabalhaComCaes   bool      `json:"trabalhaComCaes"`
	TrabalhaComGatos  bool      `json:"trabalhaComGatos"`
	TrabalhaComOutros bool      `json:"trabalhaComOutros"`
	Senha             string    `json:"-"` // bcrypt digest, never exposed
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
