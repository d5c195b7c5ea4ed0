package repository

import (
	"context"

	"serviya/internal/domain/entity"
)

type StatsRepository interface {
	Count(ctx context.Context) (*entity.PlatformStats, error)
}
