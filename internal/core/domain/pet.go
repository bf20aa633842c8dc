package domain

import (
	"errors"
	"time"
)

var ErrPetNotFound = errors.New("pet not found")
var ErrForbidden = errors.New("access forbidden")

// Pet is the core aggregate: an animal listed for adoption by an ONG.
type Pet struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Especie   string    `json:"especie"`
	Raca      string    `json:"raca"`
	Sexo      string    `json:"sexo"`
	Foto      string    `json:"foto"` // leading-slash path to the uploaded photo
	OngID     int64     `json:"ongId"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PetUpdate carries the editable fields of a pet.
type PetUpdate struct {
	Nome    string
	Especie string
	Raca    string
	Sexo    string
}

// PageCount returns how many pages a listing of total rows spans at the given
// page size. Datasets smaller than one page still count as a single page.
func PageCount(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		return 1
	}
	return pages
}

// ChunkPets splits pets into consecutive rows of at most size n, preserving
// order. Used by the home page to lay the first pets out in a grid.
func ChunkPets(pets []Pet, n int) [][]Pet {
	if n <= 0 || len(pets) == 0 {
		return nil
	}
	rows := make([][]Pet, 0, (len(pets)+n-1)/n)
	for len(pets) > 0 {
		if len(pets) < n {
			n = len(pets)
		}
		rows = append(rows, pets[:n])
		pets = pets[n:]
	}
	return rows
}
