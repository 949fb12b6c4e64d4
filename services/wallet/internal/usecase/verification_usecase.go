package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"itinera/pkg/logger"
	"itinera/pkg/payment"
	"itinera/pkg/queue"
	"itinera/services/wallet/internal/entity"
	"itinera/services/wallet/internal/repo/persistent"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrAlreadyVerified  = errors.New("account is already verified")
	ErrOrderNotFound    = errors.New("verification order not found")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

// PaymentGateway is satisfied by payment.Client.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*payment.Order, error)
	VerifySignature(orderID, paymentID, signature string) error
}

type ConfirmInput struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type VerificationUseCase interface {
	StartVerification(ctx context.Context, userID string) (*entity.Checkout, error)
	ConfirmVerification(ctx context.Context, userID string, in ConfirmInput) (*entity.VerificationOrder, error)
}

type verificationUseCase struct {
	repo      persistent.VerificationRepository
	gateway   PaymentGateway
	publisher queue.Publisher
	fee       int64
	currency  string
	logger    *logger.Logger
}

func NewVerificationUseCase(
	repo persistent.VerificationRepository,
	gateway PaymentGateway,
	publisher queue.Publisher,
	fee int64,
	currency string,
	logger *logger.Logger,
) VerificationUseCase {
	return &verificationUseCase{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		fee:       fee,
		currency:  currency,
		logger:    logger,
	}
}

// StartVerification opens a provider order for the verification fee.
func (uc *verificationUseCase) StartVerification(ctx context.Context, userID string) (*entity.Checkout, error) {
	acct, err := uc.repo.GetAccount(userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if acct.IsVerified {
		return nil, ErrAlreadyVerified
	}

	order, err := uc.gateway.CreateOrder(ctx, uc.fee, uc.currency, receiptFor(userID, time.Now()))
	if err != nil {
		uc.logger.Error("Failed to create verification order for %s: %v", userID, err)
		return nil, err
	}

	record := &entity.VerificationOrder{
		UserID:   userID,
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	}
	if err := uc.repo.CreateOrder(record); err != nil {
		return nil, fmt.Errorf("failed to record verification order: %w", err)
	}

	return &entity.Checkout{
		OrderID:  order.ID,
		Key:      uc.gateway.KeyID(),
		Amount:   order.Amount,
		Currency: order.Currency,
	}, nil
}

func (uc *verificationUseCase) ConfirmVerification(ctx context.Context, userID string, in ConfirmInput) (*entity.VerificationOrder, error) {
	order, err := uc.repo.GetOrder(in.OrderID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load verification order: %w", err)
	}
	if order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	if order.Status == entity.OrderStatusPaid {
		return order, nil
	}

	if err := uc.gateway.VerifySignature(in.OrderID, in.PaymentID, in.Signature); err != nil {
		uc.logger.Warn("Rejected verification payment for order %s: %v", in.OrderID, err)
		return nil, ErrInvalidSignature
	}

	if err := uc.repo.MarkPaid(in.OrderID, in.PaymentID); err != nil {
		return nil, fmt.Errorf("failed to complete verification: %w", err)
	}

	if uc.publisher != nil {
		task := queue.Task{
			Type:      queue.TaskCreatorVerified,
			UserID:    userID,
			Message:   "Your creator profile is now verified",
			Priority:  7,
			CreatedAt: time.Now(),
		}
		if err := uc.publisher.PublishNotificationTask(task); err != nil {
			uc.logger.Warn("Failed to publish %s task: %v", task.Type, err)
		}
	}

	order.Status = entity.OrderStatusPaid
	order.PaymentID = in.PaymentID
	return order, nil
}

// receiptFor builds a provider receipt id. Providers cap these at 40 chars.
func receiptFor(userID string, now time.Time) string {
	short := strings.ReplaceAll(userID, "-", "")
	if len(short) > 12 {
		short = short[:12]
	}
	return fmt.Sprintf("verify_%s_%d", short, now.Unix())
}
