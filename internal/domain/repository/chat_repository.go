package repository

import (
	"context"

	"serviya/internal/domain/entity"
)

type ChatRepository interface {
	GetOrCreate(ctx context.Context, chat *entity.Chat) (*entity.Chat, error)
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Chat, error)
	AddMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, chatID string, limit int) ([]*entity.Message, error)
}
