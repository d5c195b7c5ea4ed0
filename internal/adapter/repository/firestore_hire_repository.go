package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

type firestoreHireRepository struct {
	client *firestore.Client
}

func NewFirestoreHireRepository(client *firestore.Client) repository.HireRepository {
	return &firestoreHireRepository{
		client: client,
	}
}

func (r *firestoreHireRepository) Create(ctx context.Context, hire *entity.Hire, notification *entity.Notification) error {
	hireRef := r.client.Collection(colHires).NewDoc()

	batch := r.client.Batch()
	batch.Create(hireRef, hire)

	var notificationRef *firestore.DocumentRef
	if notification != nil {
		notificationRef = r.client.Collection(colNotifications).NewDoc()
		batch.Create(notificationRef, notification)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Internal("Failed to create hire", err)
	}

	hire.ID = hireRef.ID
	if notificationRef != nil {
		notification.ID = notificationRef.ID
	}
	return nil
}

func (r *firestoreHireRepository) GetByID(ctx context.Context, id string) (*entity.Hire, error) {
	doc, err := r.client.Collection(colHires).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Hire", err)
		}
		return nil, errors.Internal("Failed to get hire", err)
	}
	return hireFromDoc(doc)
}

func (r *firestoreHireRepository) UpdateStatus(ctx context.Context, id string, fn repository.TransitionFunc) (*entity.Hire, error) {
	hireRef := r.client.Collection(colHires).Doc(id)
	notificationRef := r.client.Collection(colNotifications).NewDoc()

	var (
		updated      *entity.Hire
		notification *entity.Notification
	)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(hireRef)
		if err != nil {
			if isNotFound(err) {
				return errors.NotFound("Hire", err)
			}
			return err
		}

		hire, err := hireFromDoc(doc)
		if err != nil {
			return err
		}

		notification, err = fn(hire)
		if err != nil {
			return err
		}

		if err := tx.Update(hireRef, []firestore.Update{
			{Path: "status", Value: string(hire.Status)},
			{Path: "updatedAt", Value: hire.UpdatedAt},
		}); err != nil {
			return err
		}
		if notification != nil {
			if err := tx.Create(notificationRef, notification); err != nil {
				return err
			}
		}

		updated = hire
		return nil
	})
	if err != nil {
		return nil, txError("Failed to update hire status", err)
	}

	if notification != nil {
		notification.ID = notificationRef.ID
	}
	return updated, nil
}

func (r *firestoreHireRepository) ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.Hire, error) {
	return r.listBy(ctx, "clientId", clientID, limit)
}

func (r *firestoreHireRepository) ListByProvider(ctx context.Context, providerID string, limit int) ([]*entity.Hire, error) {
	return r.listBy(ctx, "providerId", providerID, limit)
}

func (r *firestoreHireRepository) listBy(ctx context.Context, field, uid string, limit int) ([]*entity.Hire, error) {
	query := r.client.Collection(colHires).
		Where(field, "==", uid).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	hires := []*entity.Hire{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate hires", err)
		}
		hire, err := hireFromDoc(doc)
		if err != nil {
			return nil, err
		}
		hires = append(hires, hire)
	}
	return hires, nil
}

func hireFromDoc(doc *firestore.DocumentSnapshot) (*entity.Hire, error) {
	var hire entity.Hire
	if err := doc.DataTo(&hire); err != nil {
		return nil, errors.Internal("Failed to parse hire data", err)
	}
	hire.ID = doc.Ref.ID
	return &hire, nil
}
