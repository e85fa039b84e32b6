package repository

import (
	"context"
	"errors"

	"urban/internal/domain/model"
	repo "urban/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// postgres unique_violation
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(ctx context.Context, review model.Review) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		if isUniqueViolation(err) {
			return 0, repo.ErrDuplicate
		}
		return 0, err
	}
	return review.ID, nil
}

func (r *ReviewGormRepository) ListByMenuItemID(ctx context.Context, menuItemID int64) ([]repo.ReviewWithAuthor, error) {
	var rows []repo.ReviewWithAuthor

	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id, reviews.rating, reviews.comment, reviews.created_at, users.email AS author_email").
		Joins("join users on users.id = reviews.user_id").
		Where("reviews.menu_item_id = ?", menuItemID).
		Order("reviews.id desc").
		Scan(&rows).Error
	if err != nil {
		return []repo.ReviewWithAuthor{}, err
	}

	return rows, nil
}
