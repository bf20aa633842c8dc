package handler

import "strconv"

// petForm covers both pet creation and editing; the photo travels as a
// separate multipart file on creation.
type petForm struct {
	Nome    string `form:"nome" validate:"required"`
	Especie string `form:"especie" validate:"required"`
	Raca    string `form:"raca" validate:"required"`
	Sexo    string `form:"sexo" validate:"required"`
}

// pageQuery reads the shared pagination query parameters. Missing or
// malformed values fall back to the defaults.
func pageQuery(pagina, resultados string) (page, pageSize int) {
	page, _ = strconv.Atoi(pagina)
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(resultados)
	if pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}
