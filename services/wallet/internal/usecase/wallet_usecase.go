package usecase

import (
	"errors"
	"fmt"
	"time"

	"itinera/pkg/logger"
	"itinera/pkg/queue"
	"itinera/services/wallet/internal/entity"
	"itinera/services/wallet/internal/repo/persistent"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("itinerary not found")
	ErrOwnItinerary        = errors.New("you cannot buy your own itinerary")
	ErrNotAvailable        = errors.New("itinerary is not available for purchase")
	ErrAlreadyPurchased    = errors.New("itinerary already purchased")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type WalletUseCase interface {
	GetWallet(userID string) (*entity.Wallet, error)
	TopUp(userID string, amount float64) (*entity.Wallet, error)
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)
	PurchaseItinerary(userID, itineraryID string) (*entity.Purchase, *entity.Wallet, error)
	ListPurchases(userID string) ([]*entity.Purchase, error)
	HasPurchased(userID, itineraryID string) (bool, error)
}

type walletUseCase struct {
	walletRepo persistent.WalletRepository
	publisher  queue.Publisher
	logger     *logger.Logger
}

func NewWalletUseCase(walletRepo persistent.WalletRepository, publisher queue.Publisher, logger *logger.Logger) WalletUseCase {
	return &walletUseCase{
		walletRepo: walletRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *walletUseCase) GetWallet(userID string) (*entity.Wallet, error) {
	wallet, err := uc.walletRepo.GetOrCreateWallet(userID)
	if err != nil {
		uc.logger.Error("Failed to get wallet: %v", err)
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

func (uc *walletUseCase) TopUp(userID string, amount float64) (*entity.Wallet, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	wallet, err := uc.walletRepo.TopUp(userID, amount)
	if err != nil {
		uc.logger.Error("Failed to top up wallet: %v", err)
		return nil, fmt.Errorf("failed to top up wallet: %w", err)
	}
	return wallet, nil
}

func (uc *walletUseCase) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	transactions, err := uc.walletRepo.GetTransactions(userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to get transactions: %v", err)
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

func (uc *walletUseCase) PurchaseItinerary(userID, itineraryID string) (*entity.Purchase, *entity.Wallet, error) {
	listing, err := uc.walletRepo.GetListing(itineraryID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to load itinerary: %w", err)
	}

	switch {
	case listing.CreatorID == userID:
		return nil, nil, ErrOwnItinerary
	case !listing.Purchasable():
		return nil, nil, ErrNotAvailable
	}

	purchase, wallet, err := uc.walletRepo.Purchase(userID, listing)
	switch {
	case errors.Is(err, persistent.ErrAlreadyPurchased):
		return nil, nil, ErrAlreadyPurchased
	case errors.Is(err, persistent.ErrInsufficientBalance):
		return nil, nil, ErrInsufficientBalance
	case err != nil:
		uc.logger.Error("Failed to purchase itinerary %s: %v", itineraryID, err)
		return nil, nil, fmt.Errorf("failed to purchase itinerary: %w", err)
	}

	uc.publish(queue.Task{
		Type:        queue.TaskItineraryPurchased,
		UserID:      listing.CreatorID,
		ActorID:     userID,
		ItineraryID: listing.ID,
		Title:       listing.Title,
		Message:     fmt.Sprintf("Someone bought %q", listing.Title),
		Amount:      listing.Price,
		Priority:    9,
		CreatedAt:   time.Now(),
	})

	return purchase, wallet, nil
}

func (uc *walletUseCase) ListPurchases(userID string) ([]*entity.Purchase, error) {
	purchases, err := uc.walletRepo.ListPurchases(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

func (uc *walletUseCase) HasPurchased(userID, itineraryID string) (bool, error) {
	ok, err := uc.walletRepo.HasPurchased(userID, itineraryID)
	if err != nil {
		return false, fmt.Errorf("failed to check purchase: %w", err)
	}
	return ok, nil
}

func (uc *walletUseCase) publish(task queue.Task) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishNotificationTask(task); err != nil {
		uc.logger.Warn("Failed to publish %s task: %v", task.Type, err)
	}
}
