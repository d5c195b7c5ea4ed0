package repository

import (
	"context"

	"serviya/internal/domain/entity"
)

// ApplyReviewFunc runs inside the review transaction after the listing has
// been read and the author checked for an earlier review. It mutates the
// listing aggregates in place and returns the notification to write with them.
type ApplyReviewFunc func(listing *entity.Listing) (*entity.Notification, error)

type ReviewRepository interface {
	// Submit atomically writes the review, the updated listing aggregates and
	// the owner notification. Returns NOT_FOUND when the listing is missing and
	// CONFLICT when the author already reviewed it; nothing is written then.
	Submit(ctx context.Context, listingID string, review *entity.Review, apply ApplyReviewFunc) (*entity.Listing, error)
	ListByListing(ctx context.Context, listingID string, limit int) ([]*entity.Review, error)
	Exists(ctx context.Context, listingID, userID string) (bool, error)
}
