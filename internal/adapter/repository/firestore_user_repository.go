package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection(colUsers).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}
	return userFromDoc(doc)
}

func (r *firestoreUserRepository) CreateIfMissing(ctx context.Context, user *entity.User) (*entity.User, error) {
	ref := r.client.Collection(colUsers).Doc(user.ID)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.FavoriteServices == nil {
		user.FavoriteServices = []string{}
	}

	var stored *entity.User
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err == nil {
			stored, err = userFromDoc(doc)
			return err
		}
		if !isNotFound(err) {
			return err
		}

		stored = user
		return tx.Create(ref, user)
	})
	if err != nil {
		return nil, txError("Failed to create user profile", err)
	}
	return stored, nil
}

func (r *firestoreUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	res, err := r.client.Collection(colUsers).NewAggregationQuery().WithCount(countAlias).Get(ctx)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}
	total, err := countResult(res)
	if err != nil {
		return nil, 0, errors.Internal("Failed to count users", err)
	}

	query := r.client.Collection(colUsers).OrderBy("createdAt", firestore.Desc)
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	users := []*entity.User{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate users", err)
		}
		user, err := userFromDoc(doc)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	return users, total, nil
}

func (r *firestoreUserRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.update(ctx, id, "Failed to update user", firestore.Update{Path: "verified", Value: verified})
}

func (r *firestoreUserRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colUsers).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete user", err)
	}
	return nil
}

func (r *firestoreUserRepository) AddFavorite(ctx context.Context, userID, listingID string) error {
	return r.update(ctx, userID, "Failed to add favorite",
		firestore.Update{Path: "favoriteServices", Value: firestore.ArrayUnion(listingID)})
}

func (r *firestoreUserRepository) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	return r.update(ctx, userID, "Failed to remove favorite",
		firestore.Update{Path: "favoriteServices", Value: firestore.ArrayRemove(listingID)})
}

func (r *firestoreUserRepository) update(ctx context.Context, id, message string, updates ...firestore.Update) error {
	if _, err := r.client.Collection(colUsers).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return errors.NotFound("User", err)
		}
		return errors.Internal(message, err)
	}
	return nil
}

func userFromDoc(doc *firestore.DocumentSnapshot) (*entity.User, error) {
	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
