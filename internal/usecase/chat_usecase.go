package usecase

import (
	"context"
	"strings"
	"time"

	"serviya/internal/domain/entity"
	"serviya/internal/domain/repository"
	"serviya/pkg/errors"
)

const maxMessageLength = 2000

type ChatUseCase struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewChatUseCase(chatRepo repository.ChatRepository, userRepo repository.UserRepository) *ChatUseCase {
	return &ChatUseCase{
		chatRepo: chatRepo,
		userRepo: userRepo,
	}
}

type StartChatInput struct {
	ContactID string `json:"contactId" validate:"required"`
	ServiceID string `json:"serviceId"`
}

// StartChat returns the conversation between uid and the contact, creating it
// on first use.
func (uc *ChatUseCase) StartChat(ctx context.Context, uid string, input StartChatInput) (*entity.Chat, error) {
	if input.ContactID == uid {
		return nil, errors.BadRequest("You cannot start a chat with yourself", nil)
	}
	if _, err := uc.userRepo.GetByID(ctx, input.ContactID); err != nil {
		return nil, err
	}

	now := time.Now()
	return uc.chatRepo.GetOrCreate(ctx, &entity.Chat{
		ID:            entity.ChatID(uid, input.ContactID),
		Participants:  []string{uid, input.ContactID},
		ServiceID:     input.ServiceID,
		LastMessageAt: now,
		CreatedAt:     now,
	})
}

func (uc *ChatUseCase) ListChats(ctx context.Context, uid string) ([]*entity.Chat, error) {
	return uc.chatRepo.ListByUser(ctx, uid)
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, chatID, uid, content string) (*entity.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.BadRequest("content is required", nil)
	}
	if len(content) > maxMessageLength {
		return nil, errors.BadRequest("content is too long", nil)
	}

	if _, err := uc.participantChat(ctx, chatID, uid); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ChatID:    chatID,
		SenderID:  uid,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := uc.chatRepo.AddMessage(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, chatID, uid string, limit int) ([]*entity.Message, error) {
	if _, err := uc.participantChat(ctx, chatID, uid); err != nil {
		return nil, err
	}
	return uc.chatRepo.ListMessages(ctx, chatID, limit)
}

func (uc *ChatUseCase) participantChat(ctx context.Context, chatID, uid string) (*entity.Chat, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !chat.HasParticipant(uid) {
		return nil, errors.Forbidden("You are not part of this chat", nil)
	}
	return chat, nil
}
