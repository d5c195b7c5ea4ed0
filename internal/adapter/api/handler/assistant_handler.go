package handler

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/usecase"
	"serviya/pkg/errors"
	"serviya/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

type describeRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

type supportRequest struct {
	Question string `json:"question" validate:"required,max=1000"`
}

type assistantResponse struct {
	Text string `json:"text"`
}

func (h *AssistantHandler) SuggestDescription(c echo.Context) error {
	var req describeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	text, err := h.assistantUseCase.SuggestDescription(c.Request().Context(), req.Title)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, assistantResponse{Text: text})
}

func (h *AssistantHandler) Support(c echo.Context) error {
	var req supportRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	text, err := h.assistantUseCase.SupportChat(c.Request().Context(), req.Question)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, assistantResponse{Text: text})
}
