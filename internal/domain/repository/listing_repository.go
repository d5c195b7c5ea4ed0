package repository

import (
	"context"

	"serviya/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	GetMany(ctx context.Context, ids []string) ([]*entity.Listing, error)
	// Update writes the editable fields only. Aggregates are owned by ReviewRepository.
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error)
	Categories(ctx context.Context) ([]string, error)
}
