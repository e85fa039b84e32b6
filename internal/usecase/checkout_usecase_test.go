package usecase_test

import (
	"context"
	"testing"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
	"urban/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validCheckoutInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		CustomerName:    "Jane Wanjiku",
		CustomerPhone:   "0712345678",
		DeliveryAddress: "Riverside Drive 12",
		DeliveryCity:    "Nairobi",
		PaymentMethod:   "cash_on_delivery",
	}
}

func newCheckoutMocks() (*TxManagerMock, *CartItemRepoMock, *MenuItemRepoMock, *OrderRepoMock, *OrderItemRepoMock) {
	tx := new(TxManagerMock)
	cartRepo := new(CartItemRepoMock)
	menuRepo := new(MenuItemRepoMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)

	tx.Repos = &TxReposMock{
		cartItems:  cartRepo,
		menuItems:  menuRepo,
		orders:     ordersRepo,
		orderItems: itemsRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	return tx, cartRepo, menuRepo, ordersRepo, itemsRepo
}

// 500×2 + 300×1 + 配達料200 → subtotal 1300 / total 1500
func TestCheckoutUsecase_Checkout_SnapshotsAndClearsCart(t *testing.T) {
	ctx := context.Background()
	tx, cartRepo, menuRepo, ordersRepo, itemsRepo := newCheckoutMocks()

	cartRepo.On("ListByUserIDForUpdate", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, MenuItemID: 10, Quantity: 2},
		{ID: 2, UserID: 1, MenuItemID: 11, Quantity: 1},
	}, nil)
	menuRepo.On("FindByID", mock.Anything, int64(10)).Return(model.MenuItem{
		ID: 10, Name: "Chicken Burger", Price: 500, IsAvailable: true,
	}, nil)
	menuRepo.On("FindByID", mock.Anything, int64(11)).Return(model.MenuItem{
		ID: 11, Name: "Milkshake", Price: 300, IsAvailable: true,
	}, nil)

	ordersRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Subtotal == 1300 &&
			o.DeliveryFee == 200 &&
			o.TotalPrice == 1500 &&
			o.Status == model.OrderStatusPending &&
			o.UserID != nil && *o.UserID == 1
	})).Return(int64(77), nil)

	itemsRepo.On("CreateBulk", mock.Anything, int64(77), mock.MatchedBy(func(items []model.OrderItem) bool {
		if len(items) != 2 {
			return false
		}
		// 価格は作成時点のカタログ価格で凍結される
		return items[0].ItemNameSnapshot == "Chicken Burger" &&
			items[0].PricePerUnit == 500 &&
			items[0].Quantity == 2 &&
			items[1].PricePerUnit == 300
	})).Return(nil)

	cartRepo.On("DeleteAllByUserID", mock.Anything, int64(1)).Return(nil)

	uc := usecase.NewCheckoutUsecase(tx, 200)

	out, err := uc.Checkout(ctx, 1, validCheckoutInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, "Pending", out.Status)
	assert.Equal(t, int64(1300), out.Subtotal)
	assert.Equal(t, int64(1500), out.TotalPrice)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, int64(1000), out.Items[0].LineTotal)

	cartRepo.AssertExpectations(t)
	ordersRepo.AssertExpectations(t)
	itemsRepo.AssertExpectations(t)
}

// 二重送信：二回目はロック獲得後に空のカートを見て失敗する
func TestCheckoutUsecase_Checkout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	tx, cartRepo, _, ordersRepo, _ := newCheckoutMocks()

	cartRepo.On("ListByUserIDForUpdate", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	uc := usecase.NewCheckoutUsecase(tx, 200)

	_, err := uc.Checkout(ctx, 1, validCheckoutInput())
	assertErrContains(t, err, "cart empty")

	ordersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ハード削除された商品はコンバージョン全体を中断する
func TestCheckoutUsecase_Checkout_CatalogItemMissing(t *testing.T) {
	ctx := context.Background()
	tx, cartRepo, menuRepo, ordersRepo, _ := newCheckoutMocks()

	cartRepo.On("ListByUserIDForUpdate", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, MenuItemID: 10, Quantity: 1},
		{ID: 2, UserID: 1, MenuItemID: 11, Quantity: 1},
	}, nil)
	menuRepo.On("FindByID", mock.Anything, int64(10)).Return(model.MenuItem{
		ID: 10, Name: "Chicken Burger", Price: 500, IsAvailable: true,
	}, nil)
	menuRepo.On("FindByID", mock.Anything, int64(11)).Return(model.MenuItem{}, repo.ErrNotFound)

	uc := usecase.NewCheckoutUsecase(tx, 200)

	_, err := uc.Checkout(ctx, 1, validCheckoutInput())
	assertErrContains(t, err, "catalog item missing")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)

	ordersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cartRepo.AssertNotCalled(t, "DeleteAllByUserID", mock.Anything, mock.Anything)
}

// 非公開になっただけの商品は現在価格でそのまま通る
func TestCheckoutUsecase_Checkout_UnavailableItemStillConverts(t *testing.T) {
	ctx := context.Background()
	tx, cartRepo, menuRepo, ordersRepo, itemsRepo := newCheckoutMocks()

	cartRepo.On("ListByUserIDForUpdate", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, MenuItemID: 10, Quantity: 1},
	}, nil)
	menuRepo.On("FindByID", mock.Anything, int64(10)).Return(model.MenuItem{
		ID: 10, Name: "Seasonal Special", Price: 900, IsAvailable: false,
	}, nil)

	ordersRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.Subtotal == 900 && o.TotalPrice == 1100
	})).Return(int64(5), nil)
	itemsRepo.On("CreateBulk", mock.Anything, int64(5), mock.Anything).Return(nil)
	cartRepo.On("DeleteAllByUserID", mock.Anything, int64(1)).Return(nil)

	uc := usecase.NewCheckoutUsecase(tx, 200)

	out, err := uc.Checkout(ctx, 1, validCheckoutInput())
	assert.NoError(t, err)
	assert.Equal(t, int64(900), out.Subtotal)
}

func TestCheckoutUsecase_Checkout_ValidationErrors(t *testing.T) {
	tx := new(TxManagerMock)
	uc := usecase.NewCheckoutUsecase(tx, 200)

	in := usecase.CheckoutInput{
		CustomerPhone: "12345",
		PaymentMethod: "barter",
	}

	_, err := uc.Checkout(context.Background(), 1, in)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, he.Status)
	assert.Contains(t, he.Fields, "customer_name")
	assert.Contains(t, he.Fields, "customer_phone")
	assert.Contains(t, he.Fields, "delivery_address")
	assert.Contains(t, he.Fields, "payment_method")

	// 検証で落ちたらトランザクションは開かない
	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestCheckoutUsecase_Checkout_AcceptsInternationalPhone(t *testing.T) {
	ctx := context.Background()
	tx, cartRepo, menuRepo, ordersRepo, itemsRepo := newCheckoutMocks()

	cartRepo.On("ListByUserIDForUpdate", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, MenuItemID: 10, Quantity: 1},
	}, nil)
	menuRepo.On("FindByID", mock.Anything, int64(10)).Return(model.MenuItem{
		ID: 10, Name: "Fries", Price: 150, IsAvailable: true,
	}, nil)
	ordersRepo.On("Create", mock.Anything, mock.Anything).Return(int64(3), nil)
	itemsRepo.On("CreateBulk", mock.Anything, int64(3), mock.Anything).Return(nil)
	cartRepo.On("DeleteAllByUserID", mock.Anything, int64(1)).Return(nil)

	in := validCheckoutInput()
	in.CustomerPhone = "+254712345678"

	uc := usecase.NewCheckoutUsecase(tx, 200)

	_, err := uc.Checkout(ctx, 1, in)
	assert.NoError(t, err)
}
