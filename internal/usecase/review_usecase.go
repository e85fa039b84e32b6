package usecase

import (
	"context"
	"net/http"
	"strings"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
)

type ReviewUsecase struct {
	reviews   repo.ReviewRepository
	menuItems repo.MenuItemRepository
}

func NewReviewUsecase(reviews repo.ReviewRepository, menuItems repo.MenuItemRepository) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, menuItems: menuItems}
}

type CreateReviewInput struct {
	Rating  int
	Comment string
}

type CreateReviewOutput struct {
	ID         int64  `json:"id"`
	MenuItemID int64  `json:"menu_item_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// 1ユーザー1商品1レビュー
func (u *ReviewUsecase) CreateReview(ctx context.Context, userID int64, menuItemID int64, in CreateReviewInput) (CreateReviewOutput, error) {
	if userID <= 0 {
		return CreateReviewOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if menuItemID <= 0 {
		return CreateReviewOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return CreateReviewOutput{}, NewHTTPError(http.StatusBadRequest, "rating must be between 1 and 5")
	}

	if _, err := u.menuItems.FindByID(ctx, menuItemID); err != nil {
		if err == repo.ErrNotFound {
			return CreateReviewOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CreateReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	id, err := u.reviews.Create(ctx, model.Review{
		UserID:     userID,
		MenuItemID: menuItemID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	})
	if err == repo.ErrDuplicate {
		return CreateReviewOutput{}, NewHTTPError(http.StatusConflict, "already reviewed")
	}
	if err != nil {
		return CreateReviewOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CreateReviewOutput{
		ID:         id,
		MenuItemID: menuItemID,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	}, nil
}

func (u *ReviewUsecase) ListByMenuItem(ctx context.Context, menuItemID int64) ([]repo.ReviewWithAuthor, error) {
	if menuItemID <= 0 {
		return []repo.ReviewWithAuthor{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if _, err := u.menuItems.FindByID(ctx, menuItemID); err != nil {
		if err == repo.ErrNotFound {
			return []repo.ReviewWithAuthor{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return []repo.ReviewWithAuthor{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rows, err := u.reviews.ListByMenuItemID(ctx, menuItemID)
	if err != nil {
		return []repo.ReviewWithAuthor{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}
