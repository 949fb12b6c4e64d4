package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"itinera/pkg/logger"
	"itinera/services/auth/internal/entity"
	"itinera/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthUseCase struct {
	mock.Mock
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func (m *MockAuthUseCase) Register(in usecase.RegisterInput) (*entity.User, string, error) {
	args := m.Called(in)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) GetProfile(userID string) (*entity.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockAuthUseCase) UpdateProfile(userID string, in usecase.ProfileInput) (*entity.User, error) {
	args := m.Called(userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) VerifyCreator(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
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

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegister_Created(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/register", handler.Register)

	in := usecase.RegisterInput{Email: "ana@example.com", Username: "ana", Password: "secret1", Role: "creator"}
	mockUseCase.On("Register", in).Return(&entity.User{ID: "u9", Role: entity.RoleCreator, Password: "hash"}, "tok", nil)

	body, _ := json.Marshal(in)
	w := postJSON(router, "/register", string(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp["token"])
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "creator", user["role"])
	assert.NotContains(t, user, "password")
}

func TestRegister_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: role must be traveler or creator", usecase.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: username taken", usecase.ErrConflict), http.StatusConflict},
		{fmt.Errorf("failed to create user: disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			mockUseCase := new(MockAuthUseCase)
			handler := NewAuthHandler(mockUseCase, logger.New())
			router := setupTestRouter()
			router.POST("/register", handler.Register)

			mockUseCase.On("Register", mock.Anything).Return(nil, "", tt.err)

			w := postJSON(router, "/register", `{"email":"ana@example.com","username":"ana","password":"secret1","role":"admin"}`)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/register", handler.Register)

	w := postJSON(router, "/register", `{"email":"not-an-email","username":"a","password":"1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Register", mock.Anything)
}

func TestLogin_Statuses(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, http.StatusOK},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{usecase.ErrDeactivated, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			mockUseCase := new(MockAuthUseCase)
			handler := NewAuthHandler(mockUseCase, logger.New())
			router := setupTestRouter()
			router.POST("/login", handler.Login)

			if tt.err == nil {
				mockUseCase.On("Login", "ana@example.com", "secret1").Return(&entity.User{ID: "u1"}, "tok", nil)
			} else {
				mockUseCase.On("Login", "ana@example.com", "secret1").Return(nil, "", tt.err)
			}

			w := postJSON(router, "/login", `{"email":"ana@example.com","password":"secret1"}`)
			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestMe_Unauthorized(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", handler.Me)

	req, _ := http.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfile(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.GET("/profiles/:id", handler.GetProfile)

	mockUseCase.On("GetProfile", "c1").Return(&entity.Profile{ID: "c1", Username: "leo", IsVerified: true, VerificationStatus: entity.VerificationVerified}, nil)
	mockUseCase.On("GetProfile", "ghost").Return(nil, usecase.ErrNotFound)

	req, _ := http.NewRequest("GET", "/profiles/c1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verification_status":"verified"`)
	assert.NotContains(t, w.Body.String(), "email")

	req, _ = http.NewRequest("GET", "/profiles/ghost", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfile_UsesCaller(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.PUT("/profile", handler.UpdateProfile)

	in := usecase.ProfileInput{FullName: "Ana Lopez", Bio: "Slow travel"}
	mockUseCase.On("UpdateProfile", "u1", in).Return(&entity.User{ID: "u1", FullName: "Ana Lopez"}, nil)

	body, _ := json.Marshal(in)
	req, _ := http.NewRequest("PUT", "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestVerifyCreator(t *testing.T) {
	mockUseCase := new(MockAuthUseCase)
	handler := NewAuthHandler(mockUseCase, logger.New())
	router := setupTestRouter()
	router.POST("/internal/verify/:user_id", handler.VerifyCreator)

	mockUseCase.On("VerifyCreator", "c1").Return(&entity.User{ID: "c1", Email: "leo@example.com", IsVerified: true, VerificationStatus: entity.VerificationVerified}, nil)
	mockUseCase.On("VerifyCreator", "t1").Return(nil, usecase.ErrNotCreator)

	w := postJSON(router, "/internal/verify/c1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_verified":true`)
	assert.NotContains(t, w.Body.String(), "leo@example.com")

	w = postJSON(router, "/internal/verify/t1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
