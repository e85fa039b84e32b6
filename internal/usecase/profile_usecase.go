package usecase

import (
	"context"
	"net/http"
	"strings"

	"urban/internal/domain/model"
	repo "urban/internal/repository"
)

type ProfileUsecase struct {
	profiles repo.ProfileRepository
}

func NewProfileUsecase(profiles repo.ProfileRepository) *ProfileUsecase {
	return &ProfileUsecase{profiles: profiles}
}

type ProfileInput struct {
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
}

// GetProfile returns an empty profile when none has been saved yet.
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	p, err := u.profiles.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.Profile{UserID: userID}, nil
	}
	if err != nil {
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProfileUsecase) UpdateProfile(ctx context.Context, userID int64, in ProfileInput) (model.Profile, error) {
	if userID <= 0 {
		return model.Profile{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	phone := strings.TrimSpace(in.Phone)
	if phone == "" || !kenyanPhonePattern.MatchString(phone) {
		return model.Profile{}, NewHTTPError(http.StatusBadRequest, "enter a valid Kenyan phone number (07… or +254…)")
	}

	p := model.Profile{
		UserID:     userID,
		Phone:      phone,
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		PostalCode: strings.TrimSpace(in.PostalCode),
	}

	err := u.profiles.Upsert(ctx, p)
	if err == repo.ErrDuplicate {
		return model.Profile{}, NewHTTPError(http.StatusConflict, "phone number already in use")
	}
	if err != nil {
		return model.Profile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return p, nil
}
