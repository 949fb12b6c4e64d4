package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"itinera/pkg/logger"
	"itinera/services/review/internal/entity"
	"itinera/services/review/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockReviewUseCase struct {
	mock.Mock
}

var _ usecase.ReviewUseCase = (*MockReviewUseCase)(nil)

func (m *MockReviewUseCase) Submit(ctx context.Context, userID, itineraryID string, in usecase.ReviewInput) (*entity.Review, error) {
	args := m.Called(userID, itineraryID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewUseCase) List(itineraryID string) (*entity.ReviewList, error) {
	args := m.Called(itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewList), args.Error(1)
}

func (m *MockReviewUseCase) Mine(itineraryID, userID string) (*entity.Review, error) {
	args := m.Called(itineraryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "u1")
		c.Next()
	})
	return r
}

func TestSubmitReview_Success(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/reviews/:itinerary_id", handler.SubmitReview)

	in := usecase.ReviewInput{Rating: 5, Comment: "Loved it"}
	mockUseCase.On("Submit", "u1", "kyoto", in).Return(&entity.Review{ID: "r1", Rating: 5}, nil)

	body, _ := json.Marshal(in)
	req, _ := http.NewRequest("POST", "/reviews/kyoto", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestSubmitReview_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: rating must be between 1 and 5", usecase.ErrValidation), http.StatusBadRequest},
		{usecase.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("%w: itinerary not found", usecase.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("failed to save review: boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			mockUseCase := new(MockReviewUseCase)
			handler := NewReviewHandler(mockUseCase, logger.New())
			router := setupTestRouter()
			router.POST("/reviews/:itinerary_id", handler.SubmitReview)

			mockUseCase.On("Submit", "u1", "kyoto", mock.Anything).Return(nil, tt.err)

			req, _ := http.NewRequest("POST", "/reviews/kyoto", bytes.NewBufferString(`{"rating":9}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestSubmitReview_MalformedBody(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/reviews/:itinerary_id", handler.SubmitReview)

	req, _ := http.NewRequest("POST", "/reviews/kyoto", bytes.NewBufferString(`{"rating":"five"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything)
}

func TestListReviews(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.GET("/reviews/:itinerary_id", handler.ListReviews)

	mockUseCase.On("List", "kyoto").Return(&entity.ReviewList{
		Reviews:       []*entity.Review{{ID: "r2"}, {ID: "r1"}},
		Count:         2,
		AverageRating: 4.5,
	}, nil)

	req, _ := http.NewRequest("GET", "/reviews/kyoto", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, 4.5, body["average_rating"])
}

func TestMyReview_NotFound(t *testing.T) {
	mockUseCase := new(MockReviewUseCase)
	handler := NewReviewHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.GET("/reviews/:itinerary_id/mine", handler.MyReview)

	mockUseCase.On("Mine", "kyoto", "u1").Return(nil, fmt.Errorf("%w: no review yet", usecase.ErrNotFound))

	req, _ := http.NewRequest("GET", "/reviews/kyoto/mine", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
