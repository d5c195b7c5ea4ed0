package repository

import (
	"context"

	"serviya/internal/domain/entity"
)

// TransitionFunc validates and applies a status change to the freshly read
// hire. A non-nil notification is written in the same transaction.
type TransitionFunc func(hire *entity.Hire) (*entity.Notification, error)

type HireRepository interface {
	// Create writes the hire and its provider notification in one batch.
	Create(ctx context.Context, hire *entity.Hire, notification *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Hire, error)
	UpdateStatus(ctx context.Context, id string, fn TransitionFunc) (*entity.Hire, error)
	ListByClient(ctx context.Context, clientID string, limit int) ([]*entity.Hire, error)
	ListByProvider(ctx context.Context, providerID string, limit int) ([]*entity.Hire, error)
}
