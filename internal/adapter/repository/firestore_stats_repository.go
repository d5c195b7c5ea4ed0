package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

type firestoreStatsRepository struct {
	client *firestore.Client
}

func NewFirestoreStatsRepository(client *firestore.Client) repository.StatsRepository {
	return &firestoreStatsRepository{
		client: client,
	}
}

func (r *firestoreStatsRepository) Count(ctx context.Context) (*entity.PlatformStats, error) {
	stats := &entity.PlatformStats{GeneratedAt: time.Now()}

	for _, c := range []struct {
		collection string
		dst        *int64
	}{
		{colUsers, &stats.Users},
		{colServices, &stats.Services},
		{colHires, &stats.Hires},
	} {
		res, err := r.client.Collection(c.collection).NewAggregationQuery().WithCount(countAlias).Get(ctx)
		if err != nil {
			return nil, errors.Internal("Failed to count "+c.collection, err)
		}
		n, err := countResult(res)
		if err != nil {
			return nil, errors.Internal("Failed to count "+c.collection, err)
		}
		*c.dst = n
	}

	return stats, nil
}
