package http

import (
	"errors"
	"net/http"

	"itinera/pkg/logger"
	"itinera/services/moderation/internal/entity"
	"itinera/services/moderation/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewModerationHandler(moderationUseCase usecase.ModerationUseCase, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

type ApproveRequest struct {
	ItineraryID string `json:"itineraryId" binding:"required"`
	Approved    *bool  `json:"approved" binding:"required"`
}

// ListItineraries godoc
// @Summary      List itineraries for review
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "all, pending or approved"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /moderation/itineraries [get]
func (h *ModerationHandler) ListItineraries(c *gin.Context) {
	status := entity.StatusFilter(c.DefaultQuery("status", string(entity.StatusAll)))

	list, err := h.moderationUseCase.List(status)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("Failed to list itineraries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"itineraries": list, "count": len(list), "status": status})
}

// Approve godoc
// @Summary      Approve or revoke itinerary
// @Description  Sets is_approved on a single itinerary and returns the updated row
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ApproveRequest true "Approval"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /moderation/approve [post]
func (h *ModerationHandler) Approve(c *gin.Context) {
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.moderationUseCase.SetApproval(c.Request.Context(), req.ItineraryID, *req.Approved)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
			return
		}
		h.logger.Error("Failed to update approval: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "itinerary": sub})
}
