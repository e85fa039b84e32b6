package repository

import (
	"context"
	"errors"

	"urban/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ErrDuplicate maps a unique-constraint violation out of the driver.
var ErrDuplicate = errors.New("duplicate")

// 一覧検索
type MenuListQuery struct {
	Page        int
	Limit       int
	Search      string
	CategoryIDs []int64
	MinPrice    *int64
	MaxPrice    *int64
	Sort        string
}

// Catalog lookups. FindByID reads through soft deletion normally, so a
// hard/soft-deleted item surfaces as ErrNotFound.
type MenuItemRepository interface {
	ListAvailable(ctx context.Context, q MenuListQuery) ([]model.MenuItem, int64, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)
	ListRelated(ctx context.Context, categoryID int64, excludeID int64, limit int) ([]model.MenuItem, error)
}

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]model.Category, error)
	FindBySlug(ctx context.Context, slug string) (model.Category, error)
}
