package usecase

import (
	"context"
	"strings"
	"time"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
)

const maxCommentLength = 2000

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type SubmitReviewInput struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type ReviewPage struct {
	Reviews []*entity.Review     `json:"reviews"`
	Summary entity.ReviewSummary `json:"summary"`
}

// SubmitReview records a rating and folds it into the listing aggregates,
// notifying the owner, all in one transaction.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, listingID, userID string, input SubmitReviewInput) (*entity.Review, *entity.Listing, error) {
	if !entity.ValidRating(input.Rating) {
		return nil, nil, errors.BadRequest("rating must be between 1 and 5", nil)
	}
	comment := strings.TrimSpace(input.Comment)
	if len(comment) > maxCommentLength {
		return nil, nil, errors.BadRequest("comment is too long", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, nil, err
	}
	if listing.IsOwnedBy(userID) {
		return nil, nil, errors.Forbidden("You cannot review your own service", nil)
	}

	author, err := lookupUser(ctx, uc.userRepo, userID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	review := &entity.Review{
		UserID:    userID,
		UserName:  author.Name(fallbackReviewerName),
		Rating:    input.Rating,
		Comment:   comment,
		CreatedAt: now,
	}
	if author != nil {
		review.UserAvatar = author.PhotoURL
	}

	updated, err := uc.reviewRepo.Submit(ctx, listingID, review, func(l *entity.Listing) (*entity.Notification, error) {
		// Ownership cannot change, but the pre-check above ran outside the transaction.
		if l.IsOwnedBy(userID) {
			return nil, errors.Forbidden("You cannot review your own service", nil)
		}
		l.ApplyRating(review.Rating)
		return entity.NewReviewNotification(l, review.UserName, review.Rating, now), nil
	})
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Review by %s on service %s: rating=%d, count=%d, average=%.2f",
		userID, listingID, review.Rating, updated.ReviewCount, updated.AverageRating)
	return review, updated, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, listingID string, limit int) (*ReviewPage, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByListing(ctx, listingID, limit)
	if err != nil {
		return nil, err
	}

	return &ReviewPage{
		Reviews: reviews,
		Summary: entity.Summarize(listing, reviews),
	}, nil
}

func (uc *ReviewUseCase) HasReviewed(ctx context.Context, listingID, userID string) (bool, error) {
	return uc.reviewRepo.Exists(ctx, listingID, userID)
}
