package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"itinera/pkg/jwt"
	"itinera/pkg/logger"
	"itinera/pkg/queue"
	"itinera/services/notification/internal/entity"
	"itinera/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationUseCase struct {
	mock.Mock
}

var _ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)

func (m *MockNotificationUseCase) HandleTask(task queue.Task) error {
	return m.Called(task).Error(0)
}

func (m *MockNotificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationUseCase) QueueLength() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func setupNotificationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestGetNotifications_Unauthorized(t *testing.T) {
	handler := &NotificationHandler{
		logger: logger.New(),
	}

	router := setupNotificationTestRouter()
	router.GET("/notifications", handler.GetNotifications)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(t, response["error"], "Unauthorized")
}

func TestGetNotifications_Success(t *testing.T) {
	mockUseCase := new(MockNotificationUseCase)
	handler := NewNotificationHandler(mockUseCase, nil, logger.New(), jwt.NewService("secret"))

	router := setupNotificationTestRouter()
	router.GET("/notifications", asUser("c1"), handler.GetNotifications)

	mockUseCase.On("GetNotifications", "c1", 20, 5).
		Return([]entity.Notification{{ID: "n1", Type: queue.TaskNewReview}}, int64(12), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=20&offset=5", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, float64(1), response["count"])
	assert.Equal(t, float64(12), response["total"])
	assert.Equal(t, float64(5), response["offset"])
}

func TestGetNotifications_IgnoresBadPaging(t *testing.T) {
	mockUseCase := new(MockNotificationUseCase)
	handler := NewNotificationHandler(mockUseCase, nil, logger.New(), jwt.NewService("secret"))

	router := setupNotificationTestRouter()
	router.GET("/notifications", asUser("c1"), handler.GetNotifications)

	mockUseCase.On("GetNotifications", "c1", 50, 0).Return([]entity.Notification{}, int64(0), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/notifications?limit=500&offset=-3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestQueueStatus(t *testing.T) {
	tests := []struct {
		name   string
		length int
		err    error
		code   int
	}{
		{"ok", 3, nil, http.StatusOK},
		{"no broker", 0, usecase.ErrQueueUnavailable, http.StatusServiceUnavailable},
		{"inspect failed", 0, errors.New("channel closed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUseCase := new(MockNotificationUseCase)
			handler := NewNotificationHandler(mockUseCase, nil, logger.New(), jwt.NewService("secret"))

			router := setupNotificationTestRouter()
			router.GET("/notifications/queue", handler.QueueStatus)

			mockUseCase.On("QueueLength").Return(tt.length, tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/notifications/queue", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestHandleWebSocket_Auth(t *testing.T) {
	jwtService := jwt.NewService("secret")
	handler := NewNotificationHandler(new(MockNotificationUseCase), nil, logger.New(), jwtService)

	router := setupNotificationTestRouter()
	router.GET("/ws/notifications", handler.HandleWebSocket)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ws/notifications", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/ws/notifications?token=garbage", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := jwtService.GenerateToken("c1", "creator")
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/ws/notifications?token="+token, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
