package usecase

import (
	"context"
	"fmt"
	"net/http"

	"urban/internal/domain/model"
	repo "urban/internal/repository"

	"go.uber.org/zap"
)

// StkPushResult is what the provider answers when it accepts a prompt.
type StkPushResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	CustomerMessage   string
}

// PaymentGateway is the outbound payment boundary. The core never
// sees the provider's wire format, only this contract.
type PaymentGateway interface {
	STKPush(ctx context.Context, phone string, amount int64, accountRef string, description string) (StkPushResult, error)
}

// MpesaCallback is the provider-assigned outcome of a prompt,
// delivered asynchronously. ResultCode 0 means the customer paid.
type MpesaCallback struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResultCode        int
	ResultDesc        string
	Amount            int64
	MpesaReceipt      string
	PhoneNumber       string
}

type InitiationResult struct {
	Initiated       bool   `json:"initiated"`
	CustomerMessage string `json:"customer_message,omitempty"`
}

// PaymentUsecase sits between orders and M-Pesa. Initiation runs
// strictly after the checkout transaction committed and its failures
// are logged, never surfaced as checkout failures.
type PaymentUsecase struct {
	tx            repo.TransactionManager
	orders        repo.OrderRepository
	mpesaTxs      repo.MpesaTransactionRepository
	gateway       PaymentGateway
	accountPrefix string
	logger        *zap.Logger
}

func NewPaymentUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	mpesaTxs repo.MpesaTransactionRepository,
	gateway PaymentGateway,
	accountPrefix string,
	logger *zap.Logger,
) *PaymentUsecase {
	return &PaymentUsecase{
		tx:            tx,
		orders:        orders,
		mpesaTxs:      mpesaTxs,
		gateway:       gateway,
		accountPrefix: accountPrefix,
		logger:        logger,
	}
}

// InitiateForOrder fires the STK push for a committed order. Calling
// it again for the same order just sends the customer a fresh prompt;
// each prompt is tracked under its own CheckoutRequestID.
func (u *PaymentUsecase) InitiateForOrder(ctx context.Context, userID int64, orderID int64) (InitiationResult, error) {
	order, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return InitiationResult{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return InitiationResult{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if order.UserID == nil || *order.UserID != userID {
		return InitiationResult{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if order.PaymentMethod != string(model.PaymentMethodMpesa) {
		return InitiationResult{}, NewHTTPError(http.StatusBadRequest, "order is not an mpesa order")
	}
	if order.Status != model.OrderStatusPending {
		return InitiationResult{}, NewHTTPError(http.StatusConflict, "order is not awaiting payment")
	}

	accountRef := fmt.Sprintf("%s-%d", u.accountPrefix, order.ID)
	res, err := u.gateway.STKPush(ctx, order.CustomerPhone, order.TotalPrice, accountRef, "Order Payment")
	if err != nil {
		// The order stands either way; the customer just gets no
		// prompt and support or a retry picks it up.
		u.logger.Error("payment initiation failed",
			zap.Int64("order_id", order.ID),
			zap.Error(err))
		return InitiationResult{Initiated: false}, nil
	}

	if _, err := u.mpesaTxs.Create(ctx, model.MpesaTransaction{
		OrderID:           order.ID,
		MerchantRequestID: res.MerchantRequestID,
		CheckoutRequestID: res.CheckoutRequestID,
		PhoneNumber:       order.CustomerPhone,
		Amount:            order.TotalPrice,
		Status:            model.MpesaTransactionPending,
	}); err != nil {
		u.logger.Error("recording mpesa transaction failed",
			zap.Int64("order_id", order.ID),
			zap.String("checkout_request_id", res.CheckoutRequestID),
			zap.Error(err))
		return InitiationResult{Initiated: false}, nil
	}

	return InitiationResult{Initiated: true, CustomerMessage: res.CustomerMessage}, nil
}

// HandleCallback records the prompt outcome and moves the order:
// paid -> Processing, anything else -> Canceled. Both go through the
// status machine, so a replayed callback finds the order already
// moved and leaves it alone. Unknown prompts are logged and dropped;
// the provider still gets its acknowledgement.
func (u *PaymentUsecase) HandleCallback(ctx context.Context, cb MpesaCallback) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		mtx, err := r.MpesaTransactions().FindByCheckoutRequestID(ctx, cb.CheckoutRequestID)
		if err == repo.ErrNotFound {
			u.logger.Warn("callback for unknown checkout request",
				zap.String("checkout_request_id", cb.CheckoutRequestID))
			return nil
		}
		if err != nil {
			return err
		}

		txStatus := model.MpesaTransactionFailed
		nextOrderStatus := model.OrderStatusCanceled
		if cb.ResultCode == 0 {
			txStatus = model.MpesaTransactionSuccess
			nextOrderStatus = model.OrderStatusProcessing
		}

		if err := r.MpesaTransactions().UpdateResult(ctx, mtx.ID, txStatus, cb.ResultCode, cb.ResultDesc, cb.MpesaReceipt); err != nil {
			return err
		}

		order, err := r.Orders().FindByID(ctx, mtx.OrderID)
		if err != nil {
			return err
		}

		// replay or late callback after the order already moved on
		if !order.Status.CanTransitionTo(nextOrderStatus) {
			u.logger.Info("callback ignored for settled order",
				zap.Int64("order_id", order.ID),
				zap.String("order_status", string(order.Status)),
				zap.Int("result_code", cb.ResultCode))
			return nil
		}

		if err := r.Orders().UpdateStatus(ctx, order.ID, nextOrderStatus); err != nil {
			return err
		}
		if err := r.StatusEvents().Create(ctx, model.OrderStatusEvent{
			OrderID:    order.ID,
			FromStatus: order.Status,
			ToStatus:   nextOrderStatus,
			Note:       fmt.Sprintf("mpesa result %d: %s", cb.ResultCode, cb.ResultDesc),
		}); err != nil {
			return err
		}

		u.logger.Info("payment callback applied",
			zap.Int64("order_id", order.ID),
			zap.Int("result_code", cb.ResultCode),
			zap.String("order_status", string(nextOrderStatus)))
		return nil
	})
}
