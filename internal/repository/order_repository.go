package repository

import (
	"context"

	"urban/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	// UpdateStatus only ever touches status and updated_at; the money
	// columns stay frozen.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}

type OrderStatusEventRepository interface {
	Create(ctx context.Context, event model.OrderStatusEvent) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderStatusEvent, error)
}
