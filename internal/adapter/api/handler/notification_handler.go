package handler

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/middleware"
	"serviya/internal/usecase"
	"serviya/pkg/response"
	"serviya/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	limit := utils.QueryInt(c, "limit", usecase.DefaultNotificationLimit)
	feed, err := h.notificationUseCase.List(c.Request().Context(), middleware.UID(c), limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, feed)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	n, err := h.notificationUseCase.UnreadCount(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int64{"unread": n})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUseCase.MarkRead(c.Request().Context(), middleware.UID(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	n, err := h.notificationUseCase.MarkAllRead(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"updated": n})
}
