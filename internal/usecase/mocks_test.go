package usecase_test

import (
	"context"
	"strings"
	"testing"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
	"urban/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	cartItems    repo.CartItemRepository
	menuItems    repo.MenuItemRepository
	orders       repo.OrderRepository
	orderItems   repo.OrderItemRepository
	statusEvents repo.OrderStatusEventRepository
	mpesaTxs     repo.MpesaTransactionRepository
}

func (r *TxReposMock) CartItems() repo.CartItemRepository { return r.cartItems }
func (r *TxReposMock) MenuItems() repo.MenuItemRepository { return r.menuItems }
func (r *TxReposMock) Orders() repo.OrderRepository { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }
func (r *TxReposMock) StatusEvents() repo.OrderStatusEventRepository { return r.statusEvents }
func (r *TxReposMock) MpesaTransactions() repo.MpesaTransactionRepository { return r.mpesaTxs }

// =====================
// Repository mocks
// =====================

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]model.CartItem)
	return lines, args.Error(1)
}

func (m *CartItemRepoMock) ListByUserIDForUpdate(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]model.CartItem)
	return lines, args.Error(1)
}

func (m *CartItemRepoMock) AddQuantity(ctx context.Context, userID int64, menuItemID int64, qty int64) (model.CartItem, error) {
	args := m.Called(ctx, userID, menuItemID, qty)
	line, _ := args.Get(0).(model.CartItem)
	return line, args.Error(1)
}

func (m *CartItemRepoMock) SetQuantity(ctx context.Context, userID int64, menuItemID int64, qty int64) error {
	args := m.Called(ctx, userID, menuItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByUserAndItem(ctx context.Context, userID int64, menuItemID int64) error {
	args := m.Called(ctx, userID, menuItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByIDForUser(ctx context.Context, cartItemID int64, userID int64) error {
	args := m.Called(ctx, cartItemID, userID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteAllByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *CartItemRepoMock) TotalQuantityByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MenuItemRepoMock struct{ mock.Mock }

func (m *MenuItemRepoMock) ListAvailable(ctx context.Context, q repo.MenuListQuery) ([]model.MenuItem, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MenuItemRepoMock) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepoMock) ListRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]model.MenuItem, error) {
	args := m.Called(ctx, categoryID, excludeID, limit)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type StatusEventRepoMock struct{ mock.Mock }

func (m *StatusEventRepoMock) Create(ctx context.Context, event model.OrderStatusEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *StatusEventRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusEvent, error) {
	args := m.Called(ctx, orderID)
	events, _ := args.Get(0).([]model.OrderStatusEvent)
	return events, args.Error(1)
}

type MpesaTxRepoMock struct{ mock.Mock }

func (m *MpesaTxRepoMock) Create(ctx context.Context, tx model.MpesaTransaction) (int64, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MpesaTxRepoMock) FindByCheckoutRequestID(ctx context.Context, checkoutRequestID string) (model.MpesaTransaction, error) {
	args := m.Called(ctx, checkoutRequestID)
	tx, _ := args.Get(0).(model.MpesaTransaction)
	return tx, args.Error(1)
}

func (m *MpesaTxRepoMock) UpdateResult(ctx context.Context, id int64, status model.MpesaTransactionStatus, resultCode int, resultDesc string, receipt string) error {
	args := m.Called(ctx, id, status, resultCode, resultDesc, receipt)
	return args.Error(0)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) ListAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]model.Category)
	return cats, args.Error(1)
}

func (m *CategoryRepoMock) FindBySlug(ctx context.Context, slug string) (model.Category, error) {
	args := m.Called(ctx, slug)
	cat, _ := args.Get(0).(model.Category)
	return cat, args.Error(1)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, review model.Review) (int64, error) {
	args := m.Called(ctx, review)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReviewRepoMock) ListByMenuItemID(ctx context.Context, menuItemID int64) ([]repo.ReviewWithAuthor, error) {
	args := m.Called(ctx, menuItemID)
	rows, _ := args.Get(0).([]repo.ReviewWithAuthor)
	return rows, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type ProfileRepoMock struct{ mock.Mock }

func (m *ProfileRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Profile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(model.Profile)
	return p, args.Error(1)
}

func (m *ProfileRepoMock) Upsert(ctx context.Context, profile model.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// =====================
// Payment gateway mock
// =====================

type GatewayMock struct{ mock.Mock }

func (m *GatewayMock) STKPush(ctx context.Context, phone string, amount int64, accountRef string, description string) (usecase.StkPushResult, error) {
	args := m.Called(ctx, phone, amount, accountRef, description)
	res, _ := args.Get(0).(usecase.StkPushResult)
	return res, args.Error(1)
}

// =====================
// Helper: error contains（HTTPErrorの実装詳細に依存しない）
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}
