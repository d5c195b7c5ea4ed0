package service

import (
	"context"

	"serviya/internal/domain/entity"
)

// StatsCache holds the last computed platform stats. A miss is (nil, nil).
type StatsCache interface {
	Get(ctx context.Context) (*entity.PlatformStats, error)
	Set(ctx context.Context, stats *entity.PlatformStats) error
}
