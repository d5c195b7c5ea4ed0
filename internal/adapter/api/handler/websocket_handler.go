package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/middleware"
	"serviya/internal/domain/entity"
	ws "serviya/internal/infrastructure/websocket"
	"serviya/internal/usecase"
	"serviya/pkg/logger"
	"serviya/pkg/response"
	"serviya/pkg/utils"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const notificationsFrame = "notifications"

type streamFrame struct {
	Type string                  `json:"type"`
	Data entity.NotificationFeed `json:"data"`
}

// WebSocketHandler pushes a user's notification feed over a socket each time it changes.
type WebSocketHandler struct {
	wsManager           *ws.Manager
	notificationUseCase *usecase.NotificationUseCase
}

func NewWebSocketHandler(wsManager *ws.Manager, notificationUseCase *usecase.NotificationUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:           wsManager,
		notificationUseCase: notificationUseCase,
	}
}

func (h *WebSocketHandler) HandleNotifications(c echo.Context) error {
	userID := middleware.UID(c)
	limit := utils.QueryInt(c, "limit", usecase.DefaultNotificationLimit)

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	sub, err := h.notificationUseCase.Subscribe(ctx, userID, limit)
	if err != nil {
		return response.Error(c, err)
	}
	defer sub.Close()

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("websocket upgrade for %s: %v", userID, err)
		return nil
	}

	client := ws.NewClient(userID, conn)
	h.wsManager.Register(client)
	defer h.wsManager.Unregister(client)
	defer client.Close()

	go client.WritePump()
	go client.ReadPump()

	for {
		select {
		case feed, ok := <-sub.Updates():
			if !ok {
				if err := sub.Err(); err != nil {
					logger.Error("notification stream for %s ended: %v", userID, err)
				}
				return nil
			}
			// The snapshot is capped at limit; unread must cover the whole inbox.
			if n, err := h.notificationUseCase.UnreadCount(ctx, userID); err == nil {
				feed.Unread = int(n)
			}
			frame, err := json.Marshal(streamFrame{Type: notificationsFrame, Data: feed})
			if err != nil {
				logger.Error("encode notification frame: %v", err)
				continue
			}
			if !client.Send(frame) {
				logger.Warn("dropping slow notification stream for %s", userID)
				return nil
			}
		case <-client.Done():
			return nil
		}
	}
}
