package handler

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/middleware"
	"serviya/internal/usecase"
	"serviya/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetMe returns the caller's profile, creating it from the token claims on first call.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userUseCase.EnsureProfile(c.Request().Context(), middleware.Claims(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) GetPublicProfile(c echo.Context) error {
	profile, err := h.userUseCase.GetPublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

func (h *UserHandler) ListFavorites(c echo.Context) error {
	listings, err := h.userUseCase.ListFavorites(c.Request().Context(), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, listings)
}

func (h *UserHandler) AddFavorite(c echo.Context) error {
	if err := h.userUseCase.AddFavorite(c.Request().Context(), middleware.UID(c), c.Param("serviceId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Added to favorites"})
}

func (h *UserHandler) RemoveFavorite(c echo.Context) error {
	if err := h.userUseCase.RemoveFavorite(c.Request().Context(), middleware.UID(c), c.Param("serviceId")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Removed from favorites"})
}
