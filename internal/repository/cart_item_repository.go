package repository

import (
	"context"

	"urban/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// ListByUserIDForUpdate locks the user's cart lines for the rest of
	// the surrounding transaction.
	ListByUserIDForUpdate(ctx context.Context, userID int64) ([]model.CartItem, error)
	// AddQuantity is an atomic upsert on the (user, item) unique key:
	// insert at qty, or increment the existing line by qty. Returns the
	// line as persisted.
	AddQuantity(ctx context.Context, userID int64, menuItemID int64, qty int64) (model.CartItem, error)
	// SetQuantity is a single conditional UPDATE keyed by (user, item).
	SetQuantity(ctx context.Context, userID int64, menuItemID int64, qty int64) error
	DeleteByUserAndItem(ctx context.Context, userID int64, menuItemID int64) error
	// DeleteByIDForUser deletes one line by row id, filtered by owner.
	DeleteByIDForUser(ctx context.Context, cartItemID int64, userID int64) error
	DeleteAllByUserID(ctx context.Context, userID int64) error
	TotalQuantityByUserID(ctx context.Context, userID int64) (int64, error)
}
