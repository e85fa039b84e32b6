package repository

import (
	"context"

	repo "urban/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	cartItems    repo.CartItemRepository
	menuItems    repo.MenuItemRepository
	orders       repo.OrderRepository
	orderItems   repo.OrderItemRepository
	statusEvents repo.OrderStatusEventRepository
	mpesaTxs     repo.MpesaTransactionRepository
}

func (r *txReposGorm) CartItems() repo.CartItemRepository               { return r.cartItems }
func (r *txReposGorm) MenuItems() repo.MenuItemRepository               { return r.menuItems }
func (r *txReposGorm) Orders() repo.OrderRepository                     { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository             { return r.orderItems }
func (r *txReposGorm) StatusEvents() repo.OrderStatusEventRepository    { return r.statusEvents }
func (r *txReposGorm) MpesaTransactions() repo.MpesaTransactionRepository { return r.mpesaTxs }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repos are rebuilt on the tx handle so every call shares it
		r := &txReposGorm{
			cartItems:    NewCartItemGormRepository(tx),
			menuItems:    NewMenuItemGormRepository(tx),
			orders:       NewOrderGormRepository(tx),
			orderItems:   NewOrderItemGormRepository(tx),
			statusEvents: NewOrderStatusEventGormRepository(tx),
			mpesaTxs:     NewMpesaTransactionGormRepository(tx),
		}
		return fn(r)
	})
}
