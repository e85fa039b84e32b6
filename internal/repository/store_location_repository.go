package repository

import (
	"context"

	"urban/internal/domain/model"
)

type StoreLocationRepository interface {
	ListActive(ctx context.Context) ([]model.StoreLocation, error)
	FindBySlug(ctx context.Context, slug string) (model.StoreLocation, error)
}
