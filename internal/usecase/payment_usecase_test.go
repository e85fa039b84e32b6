package usecase_test

import (
	"context"
	"errors"
	"testing"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
	"urban/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func pendingMpesaOrder() model.Order {
	return model.Order{
		ID:            77,
		UserID:        int64ptr(1),
		CustomerPhone: "0712345678",
		TotalPrice:    1500,
		PaymentMethod: string(model.PaymentMethodMpesa),
		Status:        model.OrderStatusPending,
	}
}

func TestPaymentUsecase_InitiateForOrder_Success(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	mpesaRepo := new(MpesaTxRepoMock)
	gateway := new(GatewayMock)

	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(pendingMpesaOrder(), nil)
	gateway.On("STKPush", mock.Anything, "0712345678", int64(1500), "URBAN-77", mock.Anything).Return(usecase.StkPushResult{
		MerchantRequestID: "mr-1",
		CheckoutRequestID: "ws_CO_123",
		CustomerMessage:   "Success. Request accepted for processing",
	}, nil)
	mpesaRepo.On("Create", mock.Anything, mock.MatchedBy(func(mt model.MpesaTransaction) bool {
		return mt.OrderID == 77 &&
			mt.CheckoutRequestID == "ws_CO_123" &&
			mt.Amount == 1500 &&
			mt.Status == model.MpesaTransactionPending
	})).Return(int64(1), nil)

	uc := usecase.NewPaymentUsecase(tx, ordersRepo, mpesaRepo, gateway, "URBAN", zap.NewNop())

	out, err := uc.InitiateForOrder(ctx, 1, 77)
	assert.NoError(t, err)
	assert.True(t, out.Initiated)
	assert.NotEmpty(t, out.CustomerMessage)

	gateway.AssertExpectations(t)
	mpesaRepo.AssertExpectations(t)
}

// ゲートウェイ障害は注文を壊さない：initiated=false で返るだけ
func TestPaymentUsecase_InitiateForOrder_GatewayFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	mpesaRepo := new(MpesaTxRepoMock)
	gateway := new(GatewayMock)

	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(pendingMpesaOrder(), nil)
	gateway.On("STKPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(usecase.StkPushResult{}, errors.New("daraja timeout"))

	uc := usecase.NewPaymentUsecase(tx, ordersRepo, mpesaRepo, gateway, "URBAN", zap.NewNop())

	out, err := uc.InitiateForOrder(ctx, 1, 77)
	assert.NoError(t, err)
	assert.False(t, out.Initiated)

	mpesaRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentUsecase_InitiateForOrder_OtherUsersOrder(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	mpesaRepo := new(MpesaTxRepoMock)
	gateway := new(GatewayMock)

	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(pendingMpesaOrder(), nil)

	uc := usecase.NewPaymentUsecase(tx, ordersRepo, mpesaRepo, gateway, "URBAN", zap.NewNop())

	_, err := uc.InitiateForOrder(ctx, 2, 77)
	assertErrContains(t, err, "not found")

	gateway.AssertNotCalled(t, "STKPush", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentUsecase_InitiateForOrder_NonMpesaOrder(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	mpesaRepo := new(MpesaTxRepoMock)
	gateway := new(GatewayMock)

	o := pendingMpesaOrder()
	o.PaymentMethod = string(model.PaymentMethodCashOnDelivery)
	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(o, nil)

	uc := usecase.NewPaymentUsecase(tx, ordersRepo, mpesaRepo, gateway, "URBAN", zap.NewNop())

	_, err := uc.InitiateForOrder(ctx, 1, 77)
	assertErrContains(t, err, "not an mpesa order")
}

func TestPaymentUsecase_InitiateForOrder_AlreadySettled(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	mpesaRepo := new(MpesaTxRepoMock)
	gateway := new(GatewayMock)

	o := pendingMpesaOrder()
	o.Status = model.OrderStatusProcessing
	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(o, nil)

	uc := usecase.NewPaymentUsecase(tx, ordersRepo, mpesaRepo, gateway, "URBAN", zap.NewNop())

	_, err := uc.InitiateForOrder(ctx, 1, 77)
	assertErrContains(t, err, "not awaiting payment")
}

func newCallbackMocks() (*TxManagerMock, *OrderRepoMock, *StatusEventRepoMock, *MpesaTxRepoMock, *usecase.PaymentUsecase) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	eventsRepo := new(StatusEventRepoMock)
	mpesaRepo := new(MpesaTxRepoMock)

	tx.Repos = &TxReposMock{
		orders:       ordersRepo,
		statusEvents: eventsRepo,
		mpesaTxs:     mpesaRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	gateway := new(GatewayMock)
	uc := usecase.NewPaymentUsecase(tx, ordersRepo, mpesaRepo, gateway, "URBAN", zap.NewNop())

	return tx, ordersRepo, eventsRepo, mpesaRepo, uc
}

// 支払い成功：取引SUCCESS、注文 Pending→Processing
func TestPaymentUsecase_HandleCallback_Success(t *testing.T) {
	ctx := context.Background()
	_, ordersRepo, eventsRepo, mpesaRepo, uc := newCallbackMocks()

	mpesaRepo.On("FindByCheckoutRequestID", mock.Anything, "ws_CO_123").Return(model.MpesaTransaction{
		ID: 1, OrderID: 77, CheckoutRequestID: "ws_CO_123", Status: model.MpesaTransactionPending,
	}, nil)
	mpesaRepo.On("UpdateResult", mock.Anything, int64(1), model.MpesaTransactionSuccess, 0, "Success", "QGR7TJM2XK").Return(nil)
	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(model.Order{
		ID: 77, Status: model.OrderStatusPending,
	}, nil)
	ordersRepo.On("UpdateStatus", mock.Anything, int64(77), model.OrderStatusProcessing).Return(nil)
	eventsRepo.On("Create", mock.Anything, mock.MatchedBy(func(ev model.OrderStatusEvent) bool {
		return ev.OrderID == 77 &&
			ev.FromStatus == model.OrderStatusPending &&
			ev.ToStatus == model.OrderStatusProcessing
	})).Return(nil)

	err := uc.HandleCallback(ctx, usecase.MpesaCallback{
		CheckoutRequestID: "ws_CO_123",
		ResultCode:        0,
		ResultDesc:        "Success",
		MpesaReceipt:      "QGR7TJM2XK",
		Amount:            1500,
	})
	assert.NoError(t, err)

	ordersRepo.AssertExpectations(t)
	eventsRepo.AssertExpectations(t)
	mpesaRepo.AssertExpectations(t)
}

// 支払い失敗（残高不足など）：取引FAILED、注文 Pending→Canceled
func TestPaymentUsecase_HandleCallback_Failure(t *testing.T) {
	ctx := context.Background()
	_, ordersRepo, eventsRepo, mpesaRepo, uc := newCallbackMocks()

	mpesaRepo.On("FindByCheckoutRequestID", mock.Anything, "ws_CO_123").Return(model.MpesaTransaction{
		ID: 1, OrderID: 77, Status: model.MpesaTransactionPending,
	}, nil)
	mpesaRepo.On("UpdateResult", mock.Anything, int64(1), model.MpesaTransactionFailed, 1032, "Request cancelled by user", "").Return(nil)
	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(model.Order{
		ID: 77, Status: model.OrderStatusPending,
	}, nil)
	ordersRepo.On("UpdateStatus", mock.Anything, int64(77), model.OrderStatusCanceled).Return(nil)
	eventsRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := uc.HandleCallback(ctx, usecase.MpesaCallback{
		CheckoutRequestID: "ws_CO_123",
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user",
	})
	assert.NoError(t, err)

	ordersRepo.AssertExpectations(t)
}

// 再送されたコールバックは注文を二度動かさない
func TestPaymentUsecase_HandleCallback_ReplayIsIdempotent(t *testing.T) {
	ctx := context.Background()
	_, ordersRepo, eventsRepo, mpesaRepo, uc := newCallbackMocks()

	mpesaRepo.On("FindByCheckoutRequestID", mock.Anything, "ws_CO_123").Return(model.MpesaTransaction{
		ID: 1, OrderID: 77, Status: model.MpesaTransactionSuccess,
	}, nil)
	mpesaRepo.On("UpdateResult", mock.Anything, int64(1), model.MpesaTransactionSuccess, 0, "Success", "QGR7TJM2XK").Return(nil)
	ordersRepo.On("FindByID", mock.Anything, int64(77)).Return(model.Order{
		ID: 77, Status: model.OrderStatusProcessing,
	}, nil)

	err := uc.HandleCallback(ctx, usecase.MpesaCallback{
		CheckoutRequestID: "ws_CO_123",
		ResultCode:        0,
		ResultDesc:        "Success",
		MpesaReceipt:      "QGR7TJM2XK",
	})
	assert.NoError(t, err)

	ordersRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	eventsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// 知らない CheckoutRequestID は記録だけしてACK
func TestPaymentUsecase_HandleCallback_UnknownCheckoutRequest(t *testing.T) {
	ctx := context.Background()
	_, ordersRepo, _, mpesaRepo, uc := newCallbackMocks()

	mpesaRepo.On("FindByCheckoutRequestID", mock.Anything, "ws_CO_999").Return(model.MpesaTransaction{}, repo.ErrNotFound)

	err := uc.HandleCallback(ctx, usecase.MpesaCallback{
		CheckoutRequestID: "ws_CO_999",
		ResultCode:        0,
	})
	assert.NoError(t, err)

	ordersRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
