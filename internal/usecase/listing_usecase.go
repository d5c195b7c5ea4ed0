package usecase

import (
	"context"
	"strings"
	"time"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/internal/domain/service"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
	files       service.FileUploadService
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
	files service.FileUploadService,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
		files:       files,
	}
}

type CreateListingInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Price       float64 `json:"price" validate:"gt=0"`
	City        string  `json:"city" validate:"required"`
	Zone        string  `json:"zone"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,url"`
}

type UpdateListingInput struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	City        *string  `json:"city"`
	Zone        *string  `json:"zone"`
	ImageURL    *string  `json:"imageUrl"`
}

func (in UpdateListingInput) patch() entity.ListingPatch {
	return entity.ListingPatch{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		City:        in.City,
		Zone:        in.Zone,
		ImageURL:    in.ImageURL,
	}
}

func validateListing(l *entity.Listing) error {
	switch {
	case strings.TrimSpace(l.Title) == "":
		return errors.BadRequest("title is required", nil)
	case strings.TrimSpace(l.Description) == "":
		return errors.BadRequest("description is required", nil)
	case strings.TrimSpace(l.Category) == "":
		return errors.BadRequest("category is required", nil)
	case strings.TrimSpace(l.City) == "":
		return errors.BadRequest("city is required", nil)
	case l.Price <= 0:
		return errors.BadRequest("price must be greater than 0", nil)
	}
	return nil
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, ownerID string, input CreateListingInput) (*entity.Listing, error) {
	listing := &entity.Listing{
		UserID:      ownerID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Price:       input.Price,
		City:        strings.TrimSpace(input.City),
		Zone:        strings.TrimSpace(input.Zone),
		ImageURL:    input.ImageURL,
	}
	if err := validateListing(listing); err != nil {
		return nil, err
	}

	owner, err := lookupUser(ctx, uc.userRepo, ownerID)
	if err != nil {
		return nil, err
	}
	listing.ProviderName = owner.Name(fallbackProviderName)
	if owner != nil {
		listing.ProviderImage = owner.PhotoURL
		listing.ProviderVerified = owner.Verified
	}

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	logger.Info("Service %s created by %s", listing.ID, ownerID)
	return listing, nil
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) UpdateListing(ctx context.Context, id, ownerID string, input UpdateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !listing.IsOwnedBy(ownerID) {
		return nil, errors.Forbidden("You can only edit your own services", nil)
	}

	previousImage := listing.ImageURL
	input.patch().Apply(listing)
	if err := validateListing(listing); err != nil {
		return nil, err
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	if previousImage != "" && previousImage != listing.ImageURL {
		uc.deleteImage(ctx, previousImage)
	}
	return listing, nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, id, ownerID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !listing.IsOwnedBy(ownerID) {
		return errors.Forbidden("You can only delete your own services", nil)
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return err
	}

	if listing.ImageURL != "" {
		uc.deleteImage(ctx, listing.ImageURL)
	}
	logger.Info("Service %s deleted by %s", id, ownerID)
	return nil
}

func (uc *ListingUseCase) ListListings(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	if filter.Category == "all" {
		filter.Category = ""
	}
	return uc.listingRepo.List(ctx, filter)
}

func (uc *ListingUseCase) ListCategories(ctx context.Context) ([]string, error) {
	return uc.listingRepo.Categories(ctx)
}

func (uc *ListingUseCase) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByOwner(ctx, ownerID)
}

func (uc *ListingUseCase) deleteImage(ctx context.Context, url string) {
	if uc.files == nil {
		return
	}
	logger.BestEffort("delete image", url, uc.files.DeleteFile(ctx, url))
}
