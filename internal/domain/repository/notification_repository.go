package repository

import (
	"context"

	"serviya/internal/domain/entity"
)

// NotificationSubscription is a live view of one user's notifications. The
// first feed is the full current list; later feeds follow every change.
// Updates is closed after Close or when the underlying listener fails, in
// which case Err reports why.
type NotificationSubscription interface {
	Updates() <-chan entity.NotificationFeed
	Err() error
	Close()
}

type NotificationRepository interface {
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead flips every unread notification of the user and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	Subscribe(ctx context.Context, userID string, limit int) (NotificationSubscription, error)
}
