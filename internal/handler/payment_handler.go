package handler

import (
	"fmt"
	"net/http"

	"urban/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Daraja callback endpoint. Safaricom posts here, not the frontend.
type PaymentHandler struct {
	uc *usecase.PaymentUsecase
}

func NewPaymentHandler(uc *usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// stkCallbackBody mirrors the Daraja STK callback payload.
type stkCallbackBody struct {
	Body struct {
		StkCallback struct {
			MerchantRequestID string `json:"MerchantRequestID"`
			CheckoutRequestID string `json:"CheckoutRequestID"`
			ResultCode        int    `json:"ResultCode"`
			ResultDesc        string `json:"ResultDesc"`
			CallbackMetadata  struct {
				Item []struct {
					Name  string      `json:"Name"`
					Value interface{} `json:"Value"`
				} `json:"Item"`
			} `json:"CallbackMetadata"`
		} `json:"stkCallback"`
	} `json:"Body"`
}

type stkCallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/payments/mpesa/callback", h.stkCallback)
}

// Safaricom retries on non-200, so the endpoint acknowledges
// everything it can parse and logs the rest.
func (h *PaymentHandler) stkCallback(c echo.Context) error {
	var req stkCallbackBody
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, stkCallbackAck{ResultCode: 1, ResultDesc: "invalid payload"})
	}

	sc := req.Body.StkCallback
	cb := usecase.MpesaCallback{
		MerchantRequestID: sc.MerchantRequestID,
		CheckoutRequestID: sc.CheckoutRequestID,
		ResultCode:        sc.ResultCode,
		ResultDesc:        sc.ResultDesc,
	}

	for _, item := range sc.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			if v, ok := item.Value.(float64); ok {
				cb.Amount = int64(v)
			}
		case "MpesaReceiptNumber":
			if v, ok := item.Value.(string); ok {
				cb.MpesaReceipt = v
			}
		case "PhoneNumber":
			cb.PhoneNumber = fmt.Sprintf("%v", item.Value)
		}
	}

	if err := h.uc.HandleCallback(c.Request().Context(), cb); err != nil {
		// keep the transaction PENDING; Safaricom retries on non-200
		return c.JSON(http.StatusInternalServerError, stkCallbackAck{ResultCode: 1, ResultDesc: "processing failed"})
	}

	return c.JSON(http.StatusOK, stkCallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}
