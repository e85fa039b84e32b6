package usecase

import (
	"context"
	"net/http"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
)

// StoreUsecase lists the branches that accept online orders. Which
// branch a client shops against is explicit per-request state on the
// client side; nothing here is session-scoped.
type StoreUsecase struct {
	stores repo.StoreLocationRepository
}

func NewStoreUsecase(stores repo.StoreLocationRepository) *StoreUsecase {
	return &StoreUsecase{stores: stores}
}

func (u *StoreUsecase) ListStores(ctx context.Context) ([]model.StoreLocation, error) {
	stores, err := u.stores.ListActive(ctx)
	if err != nil {
		return []model.StoreLocation{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return stores, nil
}

func (u *StoreUsecase) GetStore(ctx context.Context, slug string) (model.StoreLocation, error) {
	if slug == "" {
		return model.StoreLocation{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	s, err := u.stores.FindBySlug(ctx, slug)
	if err == repo.ErrNotFound {
		return model.StoreLocation{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.StoreLocation{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}
