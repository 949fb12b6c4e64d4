package http

import (
	"errors"
	"net/http"

	"itinera/pkg/logger"
	"itinera/services/review/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
	logger        *logger.Logger
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
		logger:        logger,
	}
}

func (h *ReviewHandler) respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// SubmitReview godoc
// @Summary      Rate an itinerary
// @Description  Create or replace the caller's review. Rating must be 1 to 5.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        itinerary_id path string true "Itinerary ID"
// @Param        request body usecase.ReviewInput true "Review"
// @Success      200  {object}  entity.Review
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{itinerary_id} [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req usecase.ReviewInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := h.reviewUseCase.Submit(c.Request.Context(), c.GetString("user_id"), c.Param("itinerary_id"), req)
	if err != nil {
		h.respondError(c, "submit review", err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// ListReviews godoc
// @Summary      List reviews
// @Description  Reviews for an itinerary, newest first
// @Tags         reviews
// @Produce      json
// @Param        itinerary_id path string true "Itinerary ID"
// @Success      200  {object}  entity.ReviewList
// @Router       /reviews/{itinerary_id} [get]
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	list, err := h.reviewUseCase.List(c.Param("itinerary_id"))
	if err != nil {
		h.respondError(c, "list reviews", err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// MyReview godoc
// @Summary      My review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        itinerary_id path string true "Itinerary ID"
// @Success      200  {object}  entity.Review
// @Failure      404  {object}  map[string]string
// @Router       /reviews/{itinerary_id}/mine [get]
func (h *ReviewHandler) MyReview(c *gin.Context) {
	review, err := h.reviewUseCase.Mine(c.Param("itinerary_id"), c.GetString("user_id"))
	if err != nil {
		h.respondError(c, "get review", err)
		return
	}

	c.JSON(http.StatusOK, review)
}
