package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"itinera/pkg/logger"
	"itinera/services/itinerary/internal/entity"
	"itinera/services/itinerary/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ItineraryHandler struct {
	itineraryUseCase usecase.ItineraryUseCase
	logger           *logger.Logger
}

func NewItineraryHandler(itineraryUseCase usecase.ItineraryUseCase, logger *logger.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUseCase: itineraryUseCase,
		logger:           logger,
	}
}

func viewerOf(c *gin.Context) usecase.Viewer {
	return usecase.Viewer{UserID: c.GetString("user_id"), Role: c.GetString("user_role")}
}

// respondError maps use case errors onto the API's status codes. Anything
// unrecognised is a persistence failure and carries its message through.
func (h *ItineraryHandler) respondError(c *gin.Context, action string, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrNotReady):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
	default:
		h.logger.Error("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// CreateItinerary godoc
// @Summary      Create itinerary
// @Description  Create a draft itinerary from the builder. Title, price and description are taken from the cover when omitted.
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.SaveInput true "Itinerary"
// @Success      201  {object}  entity.Itinerary
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /itineraries [post]
func (h *ItineraryHandler) CreateItinerary(c *gin.Context) {
	userID := c.GetString("user_id")

	var req usecase.SaveInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.itineraryUseCase.CreateItinerary(userID, req)
	if err != nil {
		h.respondError(c, "create itinerary", err)
		return
	}

	c.JSON(http.StatusCreated, it)
}

// UpdateItinerary godoc
// @Summary      Save itinerary
// @Description  Replace the itinerary content wholesale. Only the creator can save.
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Itinerary ID"
// @Param        request body usecase.SaveInput true "Itinerary"
// @Success      200  {object}  entity.Itinerary
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /itineraries/{id} [put]
func (h *ItineraryHandler) UpdateItinerary(c *gin.Context) {
	var req usecase.SaveInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.itineraryUseCase.UpdateItinerary(c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		h.respondError(c, "save itinerary", err)
		return
	}

	c.JSON(http.StatusOK, it)
}

// GetItinerary godoc
// @Summary      Get itinerary
// @Description  Owners, admins and buyers get the full guide, everyone else the first two days.
// @Tags         itineraries
// @Produce      json
// @Param        id path string true "Itinerary ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /itineraries/{id} [get]
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	it, full, err := h.itineraryUseCase.GetItinerary(c.Param("id"), viewerOf(c))
	if err != nil {
		h.respondError(c, "get itinerary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"itinerary": it, "full_access": full})
}

// GetProgress godoc
// @Summary      Builder progress
// @Description  Completed builder steps and completion percentage
// @Tags         itineraries
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Itinerary ID"
// @Success      200  {object}  entity.Progress
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /itineraries/{id}/progress [get]
func (h *ItineraryHandler) GetProgress(c *gin.Context) {
	p, err := h.itineraryUseCase.GetProgress(c.Param("id"), c.GetString("user_id"))
	if err != nil {
		h.respondError(c, "get progress", err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetSteps godoc
// @Summary      Builder steps
// @Tags         itineraries
// @Produce      json
// @Success      200  {array}  entity.Step
// @Router       /itineraries/steps [get]
func (h *ItineraryHandler) GetSteps(c *gin.Context) {
	c.JSON(http.StatusOK, entity.Steps)
}

// ListMine godoc
// @Summary      List my itineraries
// @Tags         itineraries
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /itineraries/mine [get]
func (h *ItineraryHandler) ListMine(c *gin.Context) {
	items, err := h.itineraryUseCase.ListMine(c.GetString("user_id"))
	if err != nil {
		h.respondError(c, "list itineraries", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"itineraries": items, "count": len(items)})
}

// SetPublished godoc
// @Summary      Publish or unpublish
// @Description  Toggle is_published. Publishing needs a cover and at least one day.
// @Tags         itineraries
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Itinerary ID"
// @Param        request body object true "Publish flag" SchemaExample({"published":true})
// @Success      200  {object}  entity.Itinerary
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /itineraries/{id}/publish [put]
func (h *ItineraryHandler) SetPublished(c *gin.Context) {
	var req struct {
		Published *bool `json:"published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	it, err := h.itineraryUseCase.SetPublished(c.Param("id"), c.GetString("user_id"), *req.Published)
	if err != nil {
		h.respondError(c, "publish itinerary", err)
		return
	}

	c.JSON(http.StatusOK, it)
}

// DeleteItinerary godoc
// @Summary      Delete itinerary
// @Tags         itineraries
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Itinerary ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /itineraries/{id} [delete]
func (h *ItineraryHandler) DeleteItinerary(c *gin.Context) {
	if err := h.itineraryUseCase.DeleteItinerary(c.Param("id"), c.GetString("user_id")); err != nil {
		h.respondError(c, "delete itinerary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportPDF godoc
// @Summary      Export itinerary as PDF
// @Description  Buyers get every day. Others get a watermarked two-day preview.
// @Tags         itineraries
// @Produce      application/pdf
// @Param        id path string true "Itinerary ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /itineraries/{id}/export.pdf [get]
func (h *ItineraryHandler) ExportPDF(c *gin.Context) {
	id := c.Param("id")

	data, summary, err := h.itineraryUseCase.ExportPDF(id, viewerOf(c))
	if err != nil {
		h.respondError(c, "export itinerary", err)
		return
	}

	filename := fmt.Sprintf("itinerary-%s.pdf", id)
	if summary.Watermarked {
		filename = fmt.Sprintf("itinerary-%s-preview.pdf", id)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Days-Rendered", strconv.Itoa(summary.DaysRendered))
	c.Header("X-Days-Omitted", strconv.Itoa(summary.DaysOmitted))
	c.Data(http.StatusOK, "application/pdf", data)
}

// AddPhoto godoc
// @Summary      Add traveler photo
// @Description  Buyers can add photos from their trip to the itinerary gallery.
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Itinerary ID"
// @Param        image formData file true "Photo (jpg/png)"
// @Param        caption formData string false "Caption"
// @Success      201  {object}  entity.TravelerPhoto
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /itineraries/{id}/photos [post]
func (h *ItineraryHandler) AddPhoto(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	photo, err := h.itineraryUseCase.AddPhoto(c.Param("id"), c.GetString("user_id"), c.PostForm("caption"), file)
	if err != nil {
		h.respondError(c, "add photo", err)
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// ListPhotos godoc
// @Summary      List traveler photos
// @Tags         photos
// @Produce      json
// @Param        id path string true "Itinerary ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /itineraries/{id}/photos [get]
func (h *ItineraryHandler) ListPhotos(c *gin.Context) {
	photos, err := h.itineraryUseCase.ListPhotos(c.Param("id"))
	if err != nil {
		h.respondError(c, "list photos", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photos": photos, "count": len(photos)})
}
