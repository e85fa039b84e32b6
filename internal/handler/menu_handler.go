package handler

import (
	"net/http"
	"strconv"
	"strings"

	"urban/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /menu, /categories の公開API
type MenuHandler struct {
	uc *usecase.MenuUsecase
}

func NewMenuHandler(uc *usecase.MenuUsecase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

func (h *MenuHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/menu", h.listMenu)
	e.GET("/menu/:id", h.getMenuItem)
	e.GET("/categories", h.listCategories)
}

func (h *MenuHandler) listMenu(c echo.Context) error {
	in := usecase.MenuListInput{
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 20),
		Search:       strings.TrimSpace(c.QueryParam("search")),
		CategorySlug: strings.TrimSpace(c.QueryParam("category")),
		Sort:         c.QueryParam("sort"),
	}
	if v, err := strconv.ParseInt(c.QueryParam("min_price"), 10, 64); err == nil {
		in.MinPrice = &v
	}
	if v, err := strconv.ParseInt(c.QueryParam("max_price"), 10, 64); err == nil {
		in.MaxPrice = &v
	}

	out, err := h.uc.ListMenu(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) getMenuItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetMenuItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *MenuHandler) listCategories(c echo.Context) error {
	out, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func queryInt(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
