package repository

import (
	"context"
	"errors"

	"urban/internal/domain/model"
	repo "urban/internal/repository"

	"gorm.io/gorm"
)

type StoreLocationGormRepository struct {
	db *gorm.DB
}

func NewStoreLocationGormRepository(db *gorm.DB) *StoreLocationGormRepository {
	return &StoreLocationGormRepository{db: db}
}

func (r *StoreLocationGormRepository) ListActive(ctx context.Context) ([]model.StoreLocation, error) {
	var stores []model.StoreLocation

	err := r.db.WithContext(ctx).
		Where("is_active_online = ?", true).
		Order("name asc").
		Find(&stores).Error
	if err != nil {
		return []model.StoreLocation{}, err
	}
	return stores, nil
}

func (r *StoreLocationGormRepository) FindBySlug(ctx context.Context, slug string) (model.StoreLocation, error) {
	var s model.StoreLocation

	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.StoreLocation{}, repo.ErrNotFound
	}
	if err != nil {
		return model.StoreLocation{}, err
	}
	return s, nil
}
