package handler

import (
	"net/http"

	"urban/internal/config"
	"urban/internal/domain/model"
	"urban/internal/middleware"
	"urban/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /checkout のHTTP
type CheckoutHandler struct {
	checkoutUC *usecase.CheckoutUsecase
	paymentUC  *usecase.PaymentUsecase
}

func NewCheckoutHandler(checkoutUC *usecase.CheckoutUsecase, paymentUC *usecase.PaymentUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, paymentUC: paymentUC}
}

type checkoutResponse struct {
	Order   usecase.OrderOutput       `json:"order"`
	Payment *usecase.InitiationResult `json:"payment,omitempty"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/checkout")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.CheckoutInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, err := h.checkoutUC.Checkout(c.Request().Context(), userID, req)
	if err != nil {
		return writeError(c, err)
	}

	resp := checkoutResponse{Order: order}

	// The order is committed at this point. Payment initiation runs
	// after the fact and never fails the checkout.
	if order.PaymentMethod == string(model.PaymentMethodMpesa) {
		pay, err := h.paymentUC.InitiateForOrder(c.Request().Context(), userID, order.ID)
		if err == nil {
			resp.Payment = &pay
		}
	}

	return c.JSON(http.StatusCreated, resp)
}
