package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// QuemSomos renders the static "about" page.
func QuemSomos(c echo.Context) error {
	return c.Render(http.StatusOK, "quem_somos", view(c, nil))
}
