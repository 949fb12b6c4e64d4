package usecase

import (
	"context"
	"errors"
	"testing"

	"itinera/pkg/logger"
	"itinera/pkg/payment"
	"itinera/pkg/queue"
	"itinera/services/wallet/internal/entity"
	"itinera/services/wallet/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWalletRepository struct {
	mock.Mock
}

var _ persistent.WalletRepository = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) GetOrCreateWallet(userID string) (*entity.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) TopUp(userID string, amount float64) (*entity.Wallet, error) {
	args := m.Called(userID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Transaction), args.Error(1)
}

func (m *MockWalletRepository) GetListing(itineraryID string) (*entity.Listing, error) {
	args := m.Called(itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Listing), args.Error(1)
}

func (m *MockWalletRepository) HasPurchased(userID, itineraryID string) (bool, error) {
	args := m.Called(userID, itineraryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWalletRepository) Purchase(buyerID string, listing *entity.Listing) (*entity.Purchase, *entity.Wallet, error) {
	args := m.Called(buyerID, listing)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*entity.Purchase), args.Get(1).(*entity.Wallet), args.Error(2)
}

func (m *MockWalletRepository) ListPurchases(userID string) ([]*entity.Purchase, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Purchase), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

var _ queue.Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) PublishNotificationTask(task queue.Task) error {
	args := m.Called(task)
	return args.Error(0)
}

func kyoto() *entity.Listing {
	return &entity.Listing{
		ID:          "kyoto",
		CreatorID:   "creator-1",
		Title:       "Kyoto Secrets",
		Price:       1500,
		IsPublished: true,
		IsApproved:  true,
	}
}

func TestTopUp_RejectsNonPositive(t *testing.T) {
	repo := new(MockWalletRepository)
	uc := NewWalletUseCase(repo, nil, logger.New())

	_, err := uc.TopUp("user-1", 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = uc.TopUp("user-1", -5)
	assert.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "TopUp", mock.Anything, mock.Anything)
}

func TestTopUp_Success(t *testing.T) {
	repo := new(MockWalletRepository)
	uc := NewWalletUseCase(repo, nil, logger.New())

	repo.On("TopUp", "user-1", 250.0).Return(&entity.Wallet{UserID: "user-1", Balance: 250}, nil)

	wallet, err := uc.TopUp("user-1", 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, wallet.Balance)
	repo.AssertExpectations(t)
}

func TestPurchaseItinerary_Success(t *testing.T) {
	repo := new(MockWalletRepository)
	pub := new(MockPublisher)
	uc := NewWalletUseCase(repo, pub, logger.New())

	listing := kyoto()
	repo.On("GetListing", "kyoto").Return(listing, nil)
	repo.On("Purchase", "traveler-1", listing).
		Return(&entity.Purchase{ItineraryID: "kyoto", Amount: 1500}, &entity.Wallet{Balance: 500}, nil)
	pub.On("PublishNotificationTask", mock.MatchedBy(func(task queue.Task) bool {
		return task.Type == queue.TaskItineraryPurchased &&
			task.UserID == "creator-1" &&
			task.ActorID == "traveler-1" &&
			task.Amount == 1500
	})).Return(nil)

	purchase, wallet, err := uc.PurchaseItinerary("traveler-1", "kyoto")
	require.NoError(t, err)
	assert.Equal(t, "kyoto", purchase.ItineraryID)
	assert.Equal(t, 500.0, wallet.Balance)
	repo.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestPurchaseItinerary_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		listing *entity.Listing
		repoErr error
		buyErr  error
		buyer   string
		wantErr error
	}{
		{name: "missing", repoErr: persistent.ErrNotFound, buyer: "traveler-1", wantErr: ErrNotFound},
		{name: "own itinerary", listing: kyoto(), buyer: "creator-1", wantErr: ErrOwnItinerary},
		{
			name:    "not approved",
			listing: &entity.Listing{ID: "kyoto", CreatorID: "creator-1", IsPublished: true},
			buyer:   "traveler-1",
			wantErr: ErrNotAvailable,
		},
		{name: "already bought", listing: kyoto(), buyErr: persistent.ErrAlreadyPurchased, buyer: "traveler-1", wantErr: ErrAlreadyPurchased},
		{name: "broke", listing: kyoto(), buyErr: persistent.ErrInsufficientBalance, buyer: "traveler-1", wantErr: ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWalletRepository)
			pub := new(MockPublisher)
			uc := NewWalletUseCase(repo, pub, logger.New())

			if tt.repoErr != nil {
				repo.On("GetListing", "kyoto").Return(nil, tt.repoErr)
			} else {
				repo.On("GetListing", "kyoto").Return(tt.listing, nil)
			}
			if tt.buyErr != nil {
				repo.On("Purchase", tt.buyer, tt.listing).Return(nil, nil, tt.buyErr)
			}

			_, _, err := uc.PurchaseItinerary(tt.buyer, "kyoto")
			assert.ErrorIs(t, err, tt.wantErr)
			pub.AssertNotCalled(t, "PublishNotificationTask", mock.Anything)
		})
	}
}

func TestPurchaseItinerary_BrokerFailureIsNotFatal(t *testing.T) {
	repo := new(MockWalletRepository)
	pub := new(MockPublisher)
	uc := NewWalletUseCase(repo, pub, logger.New())

	listing := kyoto()
	repo.On("GetListing", "kyoto").Return(listing, nil)
	repo.On("Purchase", "traveler-1", listing).Return(&entity.Purchase{}, &entity.Wallet{}, nil)
	pub.On("PublishNotificationTask", mock.Anything).Return(errors.New("channel closed"))

	_, _, err := uc.PurchaseItinerary("traveler-1", "kyoto")
	assert.NoError(t, err)
}

type MockVerificationRepository struct {
	mock.Mock
}

var _ persistent.VerificationRepository = (*MockVerificationRepository)(nil)

func (m *MockVerificationRepository) GetAccount(userID string) (*entity.Account, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockVerificationRepository) CreateOrder(order *entity.VerificationOrder) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockVerificationRepository) GetOrder(orderID string) (*entity.VerificationOrder, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VerificationOrder), args.Error(1)
}

func (m *MockVerificationRepository) MarkPaid(orderID, paymentID string) error {
	args := m.Called(orderID, paymentID)
	return args.Error(0)
}

type MockGateway struct {
	mock.Mock
}

var _ PaymentGateway = (*MockGateway)(nil)

func (m *MockGateway) KeyID() string {
	return m.Called().String(0)
}

func (m *MockGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.Order, error) {
	args := m.Called(amount, currency, receipt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Order), args.Error(1)
}

func (m *MockGateway) VerifySignature(orderID, paymentID, signature string) error {
	args := m.Called(orderID, paymentID, signature)
	return args.Error(0)
}

func TestStartVerification_Success(t *testing.T) {
	repo := new(MockVerificationRepository)
	gw := new(MockGateway)
	uc := NewVerificationUseCase(repo, gw, nil, 49900, "INR", logger.New())

	repo.On("GetAccount", "creator-1").Return(&entity.Account{ID: "creator-1", Role: "creator"}, nil)
	gw.On("CreateOrder", int64(49900), "INR", mock.MatchedBy(func(r string) bool {
		return len(r) <= 40 && r[:7] == "verify_"
	})).Return(&payment.Order{ID: "order_1", Amount: 49900, Currency: "INR"}, nil)
	gw.On("KeyID").Return("rzp_test_key")
	repo.On("CreateOrder", mock.MatchedBy(func(o *entity.VerificationOrder) bool {
		return o.UserID == "creator-1" && o.OrderID == "order_1" && o.Amount == 49900
	})).Return(nil)

	checkout, err := uc.StartVerification(context.Background(), "creator-1")
	require.NoError(t, err)
	assert.Equal(t, "order_1", checkout.OrderID)
	assert.Equal(t, "rzp_test_key", checkout.Key)
	assert.Equal(t, int64(49900), checkout.Amount)
	assert.Equal(t, "INR", checkout.Currency)
	repo.AssertExpectations(t)
	gw.AssertExpectations(t)
}

func TestStartVerification_AlreadyVerified(t *testing.T) {
	repo := new(MockVerificationRepository)
	gw := new(MockGateway)
	uc := NewVerificationUseCase(repo, gw, nil, 49900, "INR", logger.New())

	repo.On("GetAccount", "creator-1").Return(&entity.Account{ID: "creator-1", IsVerified: true}, nil)

	_, err := uc.StartVerification(context.Background(), "creator-1")
	assert.ErrorIs(t, err, ErrAlreadyVerified)
	gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestStartVerification_ProviderDown(t *testing.T) {
	repo := new(MockVerificationRepository)
	gw := new(MockGateway)
	uc := NewVerificationUseCase(repo, gw, nil, 49900, "INR", logger.New())

	repo.On("GetAccount", "creator-1").Return(&entity.Account{ID: "creator-1"}, nil)
	gw.On("CreateOrder", int64(49900), "INR", mock.Anything).Return(nil, errors.New("provider returned 503"))

	_, err := uc.StartVerification(context.Background(), "creator-1")
	assert.EqualError(t, err, "provider returned 503")
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything)
}

func TestConfirmVerification(t *testing.T) {
	input := ConfirmInput{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	t.Run("valid signature", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		gw := new(MockGateway)
		pub := new(MockPublisher)
		uc := NewVerificationUseCase(repo, gw, pub, 49900, "INR", logger.New())

		repo.On("GetOrder", "order_1").Return(&entity.VerificationOrder{UserID: "creator-1", OrderID: "order_1", Status: entity.OrderStatusCreated}, nil)
		gw.On("VerifySignature", "order_1", "pay_1", "sig").Return(nil)
		repo.On("MarkPaid", "order_1", "pay_1").Return(nil)
		pub.On("PublishNotificationTask", mock.MatchedBy(func(task queue.Task) bool {
			return task.Type == queue.TaskCreatorVerified && task.UserID == "creator-1"
		})).Return(nil)

		order, err := uc.ConfirmVerification(context.Background(), "creator-1", input)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPaid, order.Status)
		assert.Equal(t, "pay_1", order.PaymentID)
		repo.AssertExpectations(t)
		pub.AssertExpectations(t)
	})

	t.Run("bad signature", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		gw := new(MockGateway)
		uc := NewVerificationUseCase(repo, gw, nil, 49900, "INR", logger.New())

		repo.On("GetOrder", "order_1").Return(&entity.VerificationOrder{UserID: "creator-1", Status: entity.OrderStatusCreated}, nil)
		gw.On("VerifySignature", "order_1", "pay_1", "sig").Return(payment.ErrInvalidSignature)

		_, err := uc.ConfirmVerification(context.Background(), "creator-1", input)
		assert.ErrorIs(t, err, ErrInvalidSignature)
		repo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything)
	})

	t.Run("someone else's order", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		gw := new(MockGateway)
		uc := NewVerificationUseCase(repo, gw, nil, 49900, "INR", logger.New())

		repo.On("GetOrder", "order_1").Return(&entity.VerificationOrder{UserID: "creator-2"}, nil)

		_, err := uc.ConfirmVerification(context.Background(), "creator-1", input)
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("already paid", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		gw := new(MockGateway)
		uc := NewVerificationUseCase(repo, gw, nil, 49900, "INR", logger.New())

		repo.On("GetOrder", "order_1").Return(&entity.VerificationOrder{UserID: "creator-1", Status: entity.OrderStatusPaid}, nil)

		order, err := uc.ConfirmVerification(context.Background(), "creator-1", input)
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPaid, order.Status)
		gw.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
	})
}
