package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"itinera/pkg/logger"
	"itinera/services/wallet/internal/entity"
	"itinera/services/wallet/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWalletUseCase struct {
	mock.Mock
}

var _ usecase.WalletUseCase = (*MockWalletUseCase)(nil)

func (m *MockWalletUseCase) GetWallet(userID string) (*entity.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletUseCase) TopUp(userID string, amount float64) (*entity.Wallet, error) {
	args := m.Called(userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletUseCase) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockWalletUseCase) PurchaseItinerary(userID, itineraryID string) (*entity.Purchase, *entity.Wallet, error) {
	args := m.Called(userID, itineraryID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.Purchase), args.Get(1).(*entity.Wallet), args.Error(2)
}

func (m *MockWalletUseCase) ListPurchases(userID string) ([]*entity.Purchase, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Purchase), args.Error(1)
}

func (m *MockWalletUseCase) HasPurchased(userID, itineraryID string) (bool, error) {
	args := m.Called(userID, itineraryID)
	return args.Bool(0), args.Error(1)
}

type MockVerificationUseCase struct {
	mock.Mock
}

var _ usecase.VerificationUseCase = (*MockVerificationUseCase)(nil)

func (m *MockVerificationUseCase) StartVerification(ctx context.Context, userID string) (*entity.Checkout, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Checkout), args.Error(1)
}

func (m *MockVerificationUseCase) ConfirmVerification(ctx context.Context, userID string, in usecase.ConfirmInput) (*entity.VerificationOrder, error) {
	args := m.Called(userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationOrder), args.Error(1)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	return r
}

func newHandler() (*WalletHandler, *MockWalletUseCase, *MockVerificationUseCase) {
	w := new(MockWalletUseCase)
	v := new(MockVerificationUseCase)
	return NewWalletHandler(w, v, logger.New()), w, v
}

func TestGetWallet(t *testing.T) {
	handler, mockUseCase, _ := newHandler()
	router := setupTestRouter()
	router.GET("/wallet", handler.GetWallet)

	mockUseCase.On("GetWallet", "user-1").Return(&entity.Wallet{UserID: "user-1", Balance: 120.5}, nil)

	req, _ := http.NewRequest("GET", "/wallet", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body entity.Wallet
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 120.5, body.Balance)
}

func TestTopUp_InvalidAmount(t *testing.T) {
	handler, mockUseCase, _ := newHandler()
	router := setupTestRouter()
	router.POST("/wallet/topup", handler.TopUp)

	req, _ := http.NewRequest("POST", "/wallet/topup", bytes.NewBufferString(`{"amount":-10}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "TopUp", mock.Anything, mock.Anything)
}

func TestGetTransactions_ClampsLimit(t *testing.T) {
	handler, mockUseCase, _ := newHandler()
	router := setupTestRouter()
	router.GET("/wallet/transactions", handler.GetTransactions)

	mockUseCase.On("GetTransactions", "user-1", 50, 0).Return([]*entity.Transaction{}, nil)

	req, _ := http.NewRequest("GET", "/wallet/transactions?limit=5000&offset=-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestPurchaseItinerary_Success(t *testing.T) {
	handler, mockUseCase, _ := newHandler()
	router := setupTestRouter()
	router.POST("/purchases/:itinerary_id", handler.PurchaseItinerary)

	mockUseCase.On("PurchaseItinerary", "user-1", "kyoto").
		Return(&entity.Purchase{ItineraryID: "kyoto", Amount: 1500}, &entity.Wallet{Balance: 500}, nil)

	req, _ := http.NewRequest("POST", "/purchases/kyoto", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 500.0, body["balance"])
}

func TestPurchaseItinerary_ErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrInsufficientBalance, http.StatusBadRequest},
		{usecase.ErrNotAvailable, http.StatusBadRequest},
		{usecase.ErrOwnItinerary, http.StatusForbidden},
		{usecase.ErrNotFound, http.StatusNotFound},
		{usecase.ErrAlreadyPurchased, http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			handler, mockUseCase, _ := newHandler()
			router := setupTestRouter()
			router.POST("/purchases/:itinerary_id", handler.PurchaseItinerary)

			mockUseCase.On("PurchaseItinerary", "user-1", "kyoto").Return(nil, nil, tt.err)

			req, _ := http.NewRequest("POST", "/purchases/kyoto", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
		})
	}
}

func TestPurchaseStatus(t *testing.T) {
	handler, mockUseCase, _ := newHandler()
	router := setupTestRouter()
	router.GET("/purchases/:itinerary_id/status", handler.PurchaseStatus)

	mockUseCase.On("HasPurchased", "user-1", "kyoto").Return(true, nil)

	req, _ := http.NewRequest("GET", "/purchases/kyoto/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"purchased":true}`, w.Body.String())
}

func TestStartVerification(t *testing.T) {
	handler, _, mockVerify := newHandler()
	router := setupTestRouter()
	router.POST("/verify", handler.StartVerification)

	mockVerify.On("StartVerification", "user-1").
		Return(&entity.Checkout{OrderID: "order_1", Key: "rzp_test", Amount: 49900, Currency: "INR"}, nil)

	req, _ := http.NewRequest("POST", "/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"order_1","key":"rzp_test","amount":49900,"currency":"INR"}`, w.Body.String())
}

func TestStartVerification_AlreadyVerified(t *testing.T) {
	handler, _, mockVerify := newHandler()
	router := setupTestRouter()
	router.POST("/verify", handler.StartVerification)

	mockVerify.On("StartVerification", "user-1").Return(nil, usecase.ErrAlreadyVerified)

	req, _ := http.NewRequest("POST", "/verify", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestConfirmVerification(t *testing.T) {
	handler, _, mockVerify := newHandler()
	router := setupTestRouter()
	router.POST("/verify/confirm", handler.ConfirmVerification)

	in := usecase.ConfirmInput{OrderID: "order_1", PaymentID: "pay_1", Signature: "bad"}
	mockVerify.On("ConfirmVerification", "user-1", in).Return(nil, usecase.ErrInvalidSignature)

	body, _ := json.Marshal(in)
	req, _ := http.NewRequest("POST", "/verify/confirm", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	req, _ = http.NewRequest("POST", "/verify/confirm", bytes.NewBufferString(`{"order_id":"order_1"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockVerify.AssertNumberOfCalls(t, "ConfirmVerification", 1)
}
