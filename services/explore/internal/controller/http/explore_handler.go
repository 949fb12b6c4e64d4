package http

import (
	"net/http"
	"strconv"
	"strings"

	"itinera/pkg/logger"
	"itinera/services/explore/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ExploreHandler struct {
	exploreUseCase usecase.ExploreUseCase
	logger         *logger.Logger
}

func NewExploreHandler(exploreUseCase usecase.ExploreUseCase, logger *logger.Logger) *ExploreHandler {
	return &ExploreHandler{
		exploreUseCase: exploreUseCase,
		logger:         logger,
	}
}

// Search godoc
// @Summary      Search itineraries
// @Description  Published and approved itineraries filtered by text, tags and price, then sorted
// @Tags         explore
// @Produce      json
// @Param        q query string false "Matches title, location or creator"
// @Param        tags query string false "Comma separated tags, any match"
// @Param        min_price query number false "Inclusive lower bound"
// @Param        max_price query number false "Inclusive upper bound"
// @Param        sort query string false "rating, price-low, price-high or newest"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /explore [get]
func (h *ExploreHandler) Search(c *gin.Context) {
	f := usecase.Filter{
		Query: c.Query("q"),
		Tags:  splitTags(c.Query("tags")),
		Sort:  usecase.ParseSort(c.Query("sort")),
	}

	var ok bool
	if f.MinPrice, ok = priceParam(c, "min_price"); !ok {
		return
	}
	if f.MaxPrice, ok = priceParam(c, "max_price"); !ok {
		return
	}

	items, err := h.exploreUseCase.Search(c.Request.Context(), f)
	if err != nil {
		h.logger.Error("Failed to search itineraries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"itineraries": items, "count": len(items), "sort": f.Sort})
}

// Tags godoc
// @Summary      Tag cloud
// @Description  Every tag on a visible itinerary with how many itineraries use it
// @Tags         explore
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /explore/tags [get]
func (h *ExploreHandler) Tags(c *gin.Context) {
	tags, err := h.exploreUseCase.Tags(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list tags: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// priceParam writes a 400 and returns false when the value is not a number.
func priceParam(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &v, true
}
