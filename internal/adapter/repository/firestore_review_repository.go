package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) reviews(listingID string) *firestore.CollectionRef {
	return r.client.Collection(colServices).Doc(listingID).Collection(colReviews)
}

func (r *firestoreReviewRepository) Submit(ctx context.Context, listingID string, review *entity.Review, apply repository.ApplyReviewFunc) (*entity.Listing, error) {
	listingRef := r.client.Collection(colServices).Doc(listingID)
	reviewRef := r.reviews(listingID).Doc(review.UserID)
	notificationRef := r.client.Collection(colNotifications).NewDoc()

	var (
		updated      *entity.Listing
		notification *entity.Notification
	)

	// The body may run more than once under contention; it only reads and
	// derives from what it read, so retries are safe.
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		listingDoc, err := tx.Get(listingRef)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Service", err)
			}
			return err
		}

		if _, err := tx.Get(reviewRef); err == nil {
			return errors.Conflict("You have already reviewed this service")
		} else if !isNotFound(err) {
			return err
		}

		listing, err := listingFromDoc(listingDoc)
		if err != nil {
			return err
		}

		notification, err = apply(listing)
		if err != nil {
			return err
		}

		if err := tx.Update(listingRef, []firestore.Update{
			{Path: "reviewCount", Value: listing.ReviewCount},
			{Path: "averageRating", Value: listing.AverageRating},
		}); err != nil {
			return err
		}
		if err := tx.Create(reviewRef, review); err != nil {
			return err
		}
		if notification != nil {
			if err := tx.Create(notificationRef, notification); err != nil {
				return err
			}
		}

		updated = listing
		return nil
	})
	if err != nil {
		return nil, txError("Failed to submit review", err)
	}

	review.ID = reviewRef.ID
	review.ListingID = listingID
	if notification != nil {
		notification.ID = notificationRef.ID
	}
	return updated, nil
}

func (r *firestoreReviewRepository) ListByListing(ctx context.Context, listingID string, limit int) ([]*entity.Review, error) {
	query := r.reviews(listingID).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	reviews := []*entity.Review{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		review.ID = doc.Ref.ID
		review.ListingID = listingID
		reviews = append(reviews, &review)
	}
	return reviews, nil
}

func (r *firestoreReviewRepository) Exists(ctx context.Context, listingID, userID string) (bool, error) {
	_, err := r.reviews(listingID).Doc(userID).Get(ctx)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, errors.Internal("Failed to get review", err)
}
