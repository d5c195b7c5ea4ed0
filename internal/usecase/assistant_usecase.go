package usecase

import (
	"context"
	"fmt"
	"strings"

	"serviya/internal/domain/service"
	"serviya/pkg/errors"
)

const (
	maxTitleLength    = 200
	maxQuestionLength = 1000
)

type AssistantUseCase struct {
	generator service.TextGenerator
}

func NewAssistantUseCase(generator service.TextGenerator) *AssistantUseCase {
	return &AssistantUseCase{
		generator: generator,
	}
}

func (uc *AssistantUseCase) SuggestDescription(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.BadRequest("title is required", nil)
	}
	if len(title) > maxTitleLength {
		return "", errors.BadRequest("title is too long", nil)
	}
	return uc.generate(ctx, fmt.Sprintf(descriptionPrompt, title))
}

func (uc *AssistantUseCase) SupportChat(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.BadRequest("question is required", nil)
	}
	if len(question) > maxQuestionLength {
		return "", errors.BadRequest("question is too long", nil)
	}
	return uc.generate(ctx, fmt.Sprintf(supportPrompt, supportFAQ, question))
}

// generate surfaces collaborator failures as UPSTREAM_ERROR without retrying.
func (uc *AssistantUseCase) generate(ctx context.Context, prompt string) (string, error) {
	if uc.generator == nil {
		return "", errors.Upstream("Text generation is not configured", nil)
	}

	text, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		return "", errors.Upstream("Text generation failed", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.Upstream("Text generation returned no content", nil)
	}
	return text, nil
}
