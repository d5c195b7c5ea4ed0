package handler

import (
	"serviya/internal/usecase"
)

var (
	listingHandler      *ListingHandler
	reviewHandler       *ReviewHandler
	hireHandler         *HireHandler
	notificationHandler *NotificationHandler
	userHandler         *UserHandler
	adminHandler        *AdminHandler
	assistantHandler    *AssistantHandler
	chatHandler         *ChatHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	hireUseCase *usecase.HireUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	userUseCase *usecase.UserUseCase,
	adminUseCase *usecase.AdminUseCase,
	assistantUseCase *usecase.AssistantUseCase,
	chatUseCase *usecase.ChatUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	hireHandler = NewHireHandler(hireUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	userHandler = NewUserHandler(userUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	assistantHandler = NewAssistantHandler(assistantUseCase)
	chatHandler = NewChatHandler(chatUseCase)
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetHireHandler() *HireHandler {
	return hireHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}
