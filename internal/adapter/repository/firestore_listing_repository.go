package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	ref := r.client.Collection(colServices).NewDoc()
	if listing.ID != "" {
		ref = r.client.Collection(colServices).Doc(listing.ID)
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	if _, err := ref.Create(ctx, listing); err != nil {
		return errors.Internal("Failed to create service", err)
	}
	listing.ID = ref.ID
	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection(colServices).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("Service", err)
		}
		return nil, errors.Internal("Failed to get service", err)
	}
	return listingFromDoc(doc)
}

func (r *firestoreListingRepository) GetMany(ctx context.Context, ids []string) ([]*entity.Listing, error) {
	if len(ids) == 0 {
		return []*entity.Listing{}, nil
	}

	refs := make([]*firestore.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, r.client.Collection(colServices).Doc(id))
	}

	docs, err := r.client.GetAll(ctx, refs)
	if err != nil {
		return nil, errors.Internal("Failed to get services", err)
	}

	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		// Favorites may point at services deleted since.
		if !doc.Exists() {
			continue
		}
		listing, err := listingFromDoc(doc)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection(colServices).Doc(listing.ID).Update(ctx, []firestore.Update{
		{Path: "title", Value: listing.Title},
		{Path: "description", Value: listing.Description},
		{Path: "category", Value: listing.Category},
		{Path: "price", Value: listing.Price},
		{Path: "city", Value: listing.City},
		{Path: "zone", Value: listing.Zone},
		{Path: "imageUrl", Value: listing.ImageURL},
		{Path: "updatedAt", Value: listing.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return errors.NotFound("Service", err)
		}
		return errors.Internal("Failed to update service", err)
	}
	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(colServices).Doc(id).Delete(ctx); err != nil {
		return errors.Internal("Failed to delete service", err)
	}
	return nil
}

// List applies the category filter in Firestore and the text search in
// memory, since Firestore has no full-text search.
func (r *firestoreListingRepository) List(ctx context.Context, filter entity.ListingFilter) ([]*entity.Listing, error) {
	query := r.client.Collection(colServices).Query
	if filter.Category != "" {
		query = query.Where("category", "==", filter.Category)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	// Without a search term the limit can go to Firestore directly.
	if filter.Search == "" && filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	all, err := r.collect(query.Documents(ctx))
	if err != nil {
		return nil, err
	}

	listings := make([]*entity.Listing, 0, len(all))
	for _, l := range all {
		if !l.Matches(filter.Search) {
			continue
		}
		listings = append(listings, l)
		if filter.Limit > 0 && len(listings) == filter.Limit {
			break
		}
	}
	return listings, nil
}

func (r *firestoreListingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	query := r.client.Collection(colServices).
		Where("userId", "==", ownerID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreListingRepository) Categories(ctx context.Context) ([]string, error) {
	iter := r.client.Collection(colServices).Select("category").Documents(ctx)
	defer iter.Stop()

	seen := make(map[string]struct{})
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate services", err)
		}
		if cat, ok := doc.Data()["category"].(string); ok && cat != "" {
			seen[cat] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for cat := range seen {
		categories = append(categories, cat)
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *firestoreListingRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Listing, error) {
	defer iter.Stop()

	listings := []*entity.Listing{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate services", err)
		}
		listing, err := listingFromDoc(doc)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

func listingFromDoc(doc *firestore.DocumentSnapshot) (*entity.Listing, error) {
	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse service data", err)
	}
	listing.ID = doc.Ref.ID
	return &listing, nil
}
