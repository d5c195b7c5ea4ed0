package handler

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/middleware"
	"serviya/internal/usecase"
	"serviya/pkg/errors"
	"serviya/pkg/response"
	"serviya/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type setVerifiedRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	page := utils.GetPaginationParams(c)

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), page)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, users, total, page.Page, page.PageSize)
}

func (h *AdminHandler) SetVerified(c echo.Context) error {
	var req setVerifiedRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.SetVerified(c.Request().Context(), middleware.UID(c), c.Param("id"), *req.Verified); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"verified": *req.Verified})
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminUseCase.DeleteUser(c.Request().Context(), middleware.UID(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "User deleted"})
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUseCase.PlatformStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}
