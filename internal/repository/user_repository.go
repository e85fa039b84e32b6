package repository

import (
	"context"

	"urban/internal/domain/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// FindByEmail returns (nil, nil) when no user exists.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID int64) (model.Profile, error)
	// Upsert returns ErrDuplicate when the phone number belongs to
	// another user.
	Upsert(ctx context.Context, profile model.Profile) error
}
