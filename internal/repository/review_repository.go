package repository

import (
	"context"
	"time"

	"urban/internal/domain/model"
)

// ReviewWithAuthor joins the reviewer's email onto the review row for
// listings.
type ReviewWithAuthor struct {
	ID          int64     `json:"id"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}

type ReviewRepository interface {
	// Create returns ErrDuplicate when the user already reviewed the item.
	Create(ctx context.Context, review model.Review) (int64, error)
	ListByMenuItemID(ctx context.Context, menuItemID int64) ([]ReviewWithAuthor, error)
}
