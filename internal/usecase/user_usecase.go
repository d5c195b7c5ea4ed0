package usecase

import (
	"context"
	"time"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
)

type UserUseCase struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
}

func NewUserUseCase(userRepo repository.UserRepository, listingRepo repository.ListingRepository) *UserUseCase {
	return &UserUseCase{
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

// Claims is the identity carried by a verified ID token.
type Claims struct {
	UID     string
	Name    string
	Email   string
	Picture string
}

type PublicProfile struct {
	User     *entity.User      `json:"user"`
	Services []*entity.Listing `json:"services"`
}

// EnsureProfile creates users/{uid} on first sight and returns the stored profile.
func (uc *UserUseCase) EnsureProfile(ctx context.Context, claims Claims) (*entity.User, error) {
	return uc.userRepo.CreateIfMissing(ctx, &entity.User{
		ID:               claims.UID,
		DisplayName:      claims.Name,
		Email:            claims.Email,
		PhotoURL:         claims.Picture,
		Role:             entity.RoleUser,
		FavoriteServices: []string{},
		CreatedAt:        time.Now(),
	})
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, uid)
}

func (uc *UserUseCase) GetPublicProfile(ctx context.Context, uid string) (*PublicProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	services, err := uc.listingRepo.ListByOwner(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &PublicProfile{User: user.PublicProfile(), Services: services}, nil
}

func (uc *UserUseCase) AddFavorite(ctx context.Context, uid, listingID string) error {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return err
	}
	return uc.userRepo.AddFavorite(ctx, uid, listingID)
}

func (uc *UserUseCase) RemoveFavorite(ctx context.Context, uid, listingID string) error {
	return uc.userRepo.RemoveFavorite(ctx, uid, listingID)
}

func (uc *UserUseCase) ListFavorites(ctx context.Context, uid string) ([]*entity.Listing, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return uc.listingRepo.GetMany(ctx, user.FavoriteServices)
}
