package handler

import (
	"github.com/labstack/echo/v4"

	"serviya/internal/adapter/api/middleware"
	"serviya/internal/domain/entity"
	"serviya/internal/usecase"
	"serviya/pkg/errors"
	"serviya/pkg/response"
	"serviya/pkg/utils"
)

type HireHandler struct {
	hireUseCase *usecase.HireUseCase
}

func NewHireHandler(hireUseCase *usecase.HireUseCase) *HireHandler {
	return &HireHandler{
		hireUseCase: hireUseCase,
	}
}

type updateHireStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *HireHandler) CreateHire(c echo.Context) error {
	var req usecase.CreateHireInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	hire, err := h.hireUseCase.CreateHire(c.Request().Context(), c.Param("id"), middleware.UID(c), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, hire)
}

func (h *HireHandler) UpdateStatus(c echo.Context) error {
	var req updateHireStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	status, err := entity.ParseHireStatus(req.Status)
	if err != nil {
		return response.Error(c, errors.BadRequest(err.Error(), err))
	}

	hire, err := h.hireUseCase.UpdateHireStatus(c.Request().Context(), c.Param("id"), middleware.UID(c), status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, hire)
}

func (h *HireHandler) GetHire(c echo.Context) error {
	hire, err := h.hireUseCase.GetHire(c.Request().Context(), c.Param("id"), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, hire)
}

// ListMine is the client view: hires the caller has requested.
func (h *HireHandler) ListMine(c echo.Context) error {
	hires, err := h.hireUseCase.ListClientHires(c.Request().Context(), middleware.UID(c), utils.QueryInt(c, "limit", utils.MaxPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, hires)
}

// ListRequests is the provider view: hires against the caller's listings.
func (h *HireHandler) ListRequests(c echo.Context) error {
	hires, err := h.hireUseCase.ListProviderRequests(c.Request().Context(), middleware.UID(c), utils.QueryInt(c, "limit", utils.MaxPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, hires)
}
