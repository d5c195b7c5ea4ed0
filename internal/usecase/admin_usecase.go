package usecase

import (
	"context"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/internal/domain/service"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
	"serviya/pkg/utils"
)

// AccountDeleter removes the sign-in account behind a profile.
type AccountDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}

type AdminUseCase struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	cache     service.StatsCache
	accounts  AccountDeleter
}

// NewAdminUseCase wires the admin operations. cache and accounts may be nil.
func NewAdminUseCase(
	userRepo repository.UserRepository,
	statsRepo repository.StatsRepository,
	cache service.StatsCache,
	accounts AccountDeleter,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		cache:     cache,
		accounts:  accounts,
	}
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, page utils.PaginationParams) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, page.PageSize, page.Offset)
}

func (uc *AdminUseCase) SetVerified(ctx context.Context, adminID, uid string, verified bool) error {
	if err := uc.userRepo.SetVerified(ctx, uid, verified); err != nil {
		return err
	}
	logger.Info("Admin %s set verified=%t on user %s", adminID, verified, uid)
	return nil
}

func (uc *AdminUseCase) DeleteUser(ctx context.Context, adminID, uid string) error {
	if adminID == uid {
		return errors.BadRequest("You cannot delete your own account", nil)
	}
	if _, err := uc.userRepo.GetByID(ctx, uid); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, uid); err != nil {
		return err
	}
	if uc.accounts != nil {
		logger.BestEffort("delete auth account", uid, uc.accounts.DeleteUser(ctx, uid))
	}
	logger.Info("Admin %s deleted user %s", adminID, uid)
	return nil
}

// PlatformStats serves from the cache when one is configured and warm.
func (uc *AdminUseCase) PlatformStats(ctx context.Context) (*entity.PlatformStats, error) {
	if uc.cache != nil {
		stats, err := uc.cache.Get(ctx)
		if err != nil {
			logger.Warn("Stats cache read failed: %v", err)
		} else if stats != nil {
			return stats, nil
		}
	}
	return uc.RefreshStats(ctx)
}

// RefreshStats recounts the collections and refreshes the cache.
func (uc *AdminUseCase) RefreshStats(ctx context.Context) (*entity.PlatformStats, error) {
	stats, err := uc.statsRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if uc.cache != nil {
		logger.BestEffort("cache platform stats", "stats", uc.cache.Set(ctx, stats))
	}
	return stats, nil
}
