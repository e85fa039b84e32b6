package handler

import (
	"net/http"

	"urban/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /stores の公開API
type StoreHandler struct {
	uc *usecase.StoreUsecase
}

func NewStoreHandler(uc *usecase.StoreUsecase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

func (h *StoreHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/stores", h.listStores)
	e.GET("/stores/:slug", h.getStore)
}

func (h *StoreHandler) listStores(c echo.Context) error {
	out, err := h.uc.ListStores(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *StoreHandler) getStore(c echo.Context) error {
	out, err := h.uc.GetStore(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
