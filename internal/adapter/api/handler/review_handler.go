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

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type submitReviewResponse struct {
	Review  *entity.Review  `json:"review"`
	Service *entity.Listing `json:"service"`
}

func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var req usecase.SubmitReviewInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, listing, err := h.reviewUseCase.SubmitReview(c.Request().Context(), c.Param("id"), middleware.UID(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, submitReviewResponse{Review: review, Service: listing})
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	page, err := h.reviewUseCase.ListReviews(c.Request().Context(), c.Param("id"), utils.QueryInt(c, "limit", utils.MaxPageSize))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, page)
}

func (h *ReviewHandler) HasReviewed(c echo.Context) error {
	reviewed, err := h.reviewUseCase.HasReviewed(c.Request().Context(), c.Param("id"), middleware.UID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"reviewed": reviewed})
}
