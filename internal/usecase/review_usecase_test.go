package usecase_test

import (
	"context"
	"testing"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
	"urban/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewUsecase_CreateReview(t *testing.T) {
	ctx := context.Background()

	reviews := new(ReviewRepoMock)
	menuRepo := new(MenuItemRepoMock)

	menuRepo.On("FindByID", mock.Anything, int64(10)).Return(model.MenuItem{ID: 10}, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r model.Review) bool {
		return r.UserID == 1 && r.MenuItemID == 10 && r.Rating == 4 && r.Comment == "great burger"
	})).Return(int64(3), nil)

	uc := usecase.NewReviewUsecase(reviews, menuRepo)

	out, err := uc.CreateReview(ctx, 1, 10, usecase.CreateReviewInput{Rating: 4, Comment: "  great burger  "})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, 4, out.Rating)

	reviews.AssertExpectations(t)
}

func TestReviewUsecase_CreateReview_RatingOutOfRange(t *testing.T) {
	reviews := new(ReviewRepoMock)
	menuRepo := new(MenuItemRepoMock)

	uc := usecase.NewReviewUsecase(reviews, menuRepo)

	_, err := uc.CreateReview(context.Background(), 1, 10, usecase.CreateReviewInput{Rating: 0})
	assertErrContains(t, err, "rating must be between 1 and 5")

	_, err = uc.CreateReview(context.Background(), 1, 10, usecase.CreateReviewInput{Rating: 6})
	assertErrContains(t, err, "rating must be between 1 and 5")

	reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReviewUsecase_CreateReview_Duplicate(t *testing.T) {
	ctx := context.Background()

	reviews := new(ReviewRepoMock)
	menuRepo := new(MenuItemRepoMock)

	menuRepo.On("FindByID", mock.Anything, int64(10)).Return(model.MenuItem{ID: 10}, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(int64(0), repo.ErrDuplicate)

	uc := usecase.NewReviewUsecase(reviews, menuRepo)

	_, err := uc.CreateReview(ctx, 1, 10, usecase.CreateReviewInput{Rating: 5})
	assertErrContains(t, err, "already reviewed")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)
}

func TestReviewUsecase_CreateReview_ItemMissing(t *testing.T) {
	ctx := context.Background()

	reviews := new(ReviewRepoMock)
	menuRepo := new(MenuItemRepoMock)

	menuRepo.On("FindByID", mock.Anything, int64(99)).Return(model.MenuItem{}, repo.ErrNotFound)

	uc := usecase.NewReviewUsecase(reviews, menuRepo)

	_, err := uc.CreateReview(ctx, 1, 99, usecase.CreateReviewInput{Rating: 5})
	assertErrContains(t, err, "not found")
}

func TestReviewUsecase_ListByMenuItem(t *testing.T) {
	ctx := context.Background()

	reviews := new(ReviewRepoMock)
	menuRepo := new(MenuItemRepoMock)

	menuRepo.On("FindByID", mock.Anything, int64(10)).Return(model.MenuItem{ID: 10}, nil)
	reviews.On("ListByMenuItemID", mock.Anything, int64(10)).Return([]repo.ReviewWithAuthor{
		{ID: 1, Rating: 5, Comment: "good", AuthorEmail: "a@example.com"},
	}, nil)

	uc := usecase.NewReviewUsecase(reviews, menuRepo)

	rows, err := uc.ListByMenuItem(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(rows))
	assert.Equal(t, "a@example.com", rows[0].AuthorEmail)
}
