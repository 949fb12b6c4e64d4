package http

import (
	"errors"
	"net/http"

	"itinera/pkg/logger"
	"itinera/services/analytics/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		logger:           logger,
	}
}

// GetCreatorStats godoc
// @Summary      Get creator statistics
// @Description  Totals across the caller's itineraries. The rating is weighted by review count.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.CreatorStats
// @Failure      403  {object}  map[string]string
// @Router       /analytics/creator/stats [get]
func (h *AnalyticsHandler) GetCreatorStats(c *gin.Context) {
	stats, err := h.analyticsUseCase.GetCreatorStats(c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to get creator stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetItineraryStats godoc
// @Summary      Get itinerary statistics
// @Description  Sales, revenue, rating and views for one of the caller's itineraries
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Itinerary ID"
// @Success      200  {object}  entity.ItineraryStats
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /analytics/creator/itineraries/{id} [get]
func (h *AnalyticsHandler) GetItineraryStats(c *gin.Context) {
	stats, err := h.analyticsUseCase.GetItineraryStats(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Failed to get itinerary stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRevenue godoc
// @Summary      Get revenue
// @Description  Earnings from itinerary sales, highest first
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Revenue
// @Router       /analytics/creator/revenue [get]
func (h *AnalyticsHandler) GetRevenue(c *gin.Context) {
	rev, err := h.analyticsUseCase.GetRevenue(c.GetString("user_id"))
	if err != nil {
		h.logger.Error("Failed to get revenue: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rev)
}

// GetOverview godoc
// @Summary      Platform overview
// @Description  Marketplace totals for admins
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Overview
// @Failure      403  {object}  map[string]string
// @Router       /analytics/admin/overview [get]
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	o, err := h.analyticsUseCase.GetOverview()
	if err != nil {
		h.logger.Error("Failed to get overview: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, o)
}
