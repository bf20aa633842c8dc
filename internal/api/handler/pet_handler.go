package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adotanatal/adopet/internal/api/metrics"
	"github.com/adotanatal/adopet/internal/core/domain"
	"github.com/adotanatal/adopet/internal/core/ports"
)

// PetHandler serves public browsing and owner-scoped pet management.
type PetHandler struct {
	pets  ports.PetService
	forms *formValidator
}

func NewPetHandler(pets ports.PetService) *PetHandler {
	return &PetHandler{pets: pets, forms: NewFormValidator()}
}

// Home renders the landing page with the first pets grouped in rows.
func (h *PetHandler) Home(c echo.Context) error {
	rows, err := h.pets.HomePets(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index", view(c, rows))
}

// ListPublic handles GET /pets with offset pagination.
func (h *PetHandler) ListPublic(c echo.Context) error {
	page, pageSize := pageQuery(c.QueryParam("pagina"), c.QueryParam("resultadosPorPagina"))

	listing, err := h.pets.ListPublic(c.Request().Context(), page, pageSize)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pets", view(c, listing))
}

// CadastroPetPage renders the pet creation form.
func (h *PetHandler) CadastroPetPage(c echo.Context) error {
	return c.Render(http.StatusOK, "cadastro_pet", view(c, nil))
}

// CadastroPet handles POST /cadastro_pet with a multipart photo upload. The
// route is guarded by RequireONG, so a session is always present here.
func (h *PetHandler) CadastroPet(c echo.Context) error {
	sess, ok := sessaoFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	var form petForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "cadastro_pet", view(c, nil).withErro(msgGenericError))
	}

	errs := h.forms.Check(form)
	file, ferr := c.FormFile("foto")
	if ferr != nil {
		errs = append(errs, FieldError{Field: "foto", Message: "Este campo é obrigatório"})
	}
	if errs != nil {
		return c.Render(http.StatusBadRequest, "cadastro_pet", view(c, nil).withErros(errs))
	}

	src, err := file.Open()
	if err != nil {
		return c.Render(http.StatusInternalServerError, "cadastro_pet", view(c, nil).withErro(msgGenericError))
	}
	defer src.Close()

	_, err = h.pets.Create(c.Request().Context(), sess, ports.CreatePetInput{
		Nome:     form.Nome,
		Especie:  form.Especie,
		Raca:     form.Raca,
		Sexo:     form.Sexo,
		FotoNome: file.Filename,
		Foto:     src,
	})
	if err != nil {
		return c.Render(http.StatusInternalServerError, "cadastro_pet", view(c, nil).withErro(msgGenericError))
	}

	metrics.PetsCreatedTotal.WithLabelValues(form.Especie).Inc()
	return c.Redirect(http.StatusFound, "/meus_pets")
}

// MeusPets handles GET /meus_pets in offset or cursor mode.
func (h *PetHandler) MeusPets(c echo.Context) error {
	sess, ok := sessaoFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	page, pageSize := pageQuery(c.QueryParam("pagina"), c.QueryParam("resultadosPorPagina"))
	cursor, _ := strconv.ParseInt(c.QueryParam("cursor"), 10, 64)

	listing, err := h.pets.ListOwned(c.Request().Context(), sess, ports.OwnedPetsQuery{
		Page:     page,
		PageSize: pageSize,
		Cursor:   cursor,
	})
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "pets_ong", view(c, listing))
}

// EditarPetPage renders the edit form for an owned pet. An unknown or
// foreign id renders the empty state rather than leaking existence.
func (h *PetHandler) EditarPetPage(c echo.Context) error {
	sess, ok := sessaoFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	pet, err := h.pets.GetOwned(c.Request().Context(), sess, petID(c))
	if err != nil {
		if errors.Is(err, domain.ErrPetNotFound) {
			return c.Render(http.StatusOK, "editar_pet", view(c, nil))
		}
		return err
	}
	return c.Render(http.StatusOK, "editar_pet", view(c, pet))
}

// EditarPet handles POST /pets/:petId/editar. The update is scoped by
// (id, session id); touching zero rows is not an error.
func (h *PetHandler) EditarPet(c echo.Context) error {
	sess, ok := sessaoFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	var form petForm
	if err := c.Bind(&form); err != nil {
		return c.Render(http.StatusBadRequest, "editar_pet", view(c, nil).withErro(msgGenericError))
	}
	if errs := h.forms.Check(form); errs != nil {
		return c.Render(http.StatusBadRequest, "editar_pet", view(c, nil).withErros(errs))
	}

	err := h.pets.Update(c.Request().Context(), sess, petID(c), domain.PetUpdate{
		Nome:    form.Nome,
		Especie: form.Especie,
		Raca:    form.Raca,
		Sexo:    form.Sexo,
	})
	if err != nil {
		return c.Render(http.StatusInternalServerError, "editar_pet", view(c, nil).withErro(msgGenericError))
	}

	return c.Redirect(http.StatusFound, "/meus_pets")
}

// DeletarPet handles GET /pets/:petId/deletar. Failures are swallowed: the
// response is the owner-list redirect whether or not a row was removed.
func (h *PetHandler) DeletarPet(c echo.Context) error {
	if sess, ok := sessaoFrom(c); ok {
		_ = h.pets.Delete(c.Request().Context(), sess, petID(c))
		metrics.PetsDeletedTotal.Inc()
	}
	return c.Redirect(http.StatusFound, "/meus_pets")
}

// petID parses the :petId route parameter. Malformed values yield zero,
// which matches no row and flows through the scoped no-op semantics.
func petID(c echo.Context) int64 {
	id, _ := strconv.ParseInt(c.Param("petId"), 10, 64)
	return id
}
