package usecase

import (
	"context"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
	"serviya/pkg/logger"
)

const DefaultNotificationLimit = 50

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
	}
}

// List returns the newest notifications plus the user's total unread count,
// which may exceed the unread items in the page.
func (uc *NotificationUseCase) List(ctx context.Context, userID string, limit int) (entity.NotificationFeed, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}

	items, err := uc.notificationRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return entity.NotificationFeed{}, err
	}
	unread, err := uc.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return entity.NotificationFeed{}, err
	}

	feed := entity.NewNotificationFeed(items)
	feed.Unread = int(unread)
	return feed, nil
}

// Subscribe opens a live feed. The caller owns the subscription and must Close it.
func (uc *NotificationUseCase) Subscribe(ctx context.Context, userID string, limit int) (repository.NotificationSubscription, error) {
	if limit <= 0 {
		limit = DefaultNotificationLimit
	}
	sub, err := uc.notificationRepo.Subscribe(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	logger.Debug("Notification subscription opened for %s", userID)
	return sub, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := uc.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.UserID != userID {
		return errors.Forbidden("This notification belongs to another user", nil)
	}
	if n.Read {
		return nil
	}
	return uc.notificationRepo.MarkRead(ctx, notificationID)
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	n, err := uc.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return n, err
	}
	if n > 0 {
		logger.Debug("Marked %d notifications as read for %s", n, userID)
	}
	return n, nil
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return uc.notificationRepo.CountUnread(ctx, userID)
}
