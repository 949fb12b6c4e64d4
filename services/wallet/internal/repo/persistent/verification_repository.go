package persistent

import (
	"errors"

	"itinera/services/wallet/internal/entity"
	"itinera/services/wallet/internal/model"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	GetAccount(userID string) (*entity.Account, error)
	// CreateOrder stores the provider order and marks the account pending.
	CreateOrder(order *entity.VerificationOrder) error
	GetOrder(orderID string) (*entity.VerificationOrder, error)
	// MarkPaid settles the order and verifies its owner.
	MarkPaid(orderID, paymentID string) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) GetAccount(userID string) (*entity.Account, error) {
	var m model.UserModel
	if err := r.db.Where("id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToAccountEntity(&m), nil
}

func (r *verificationRepository) CreateOrder(order *entity.VerificationOrder) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		m := &model.VerificationOrderModel{
			UserID:   order.UserID,
			OrderID:  order.OrderID,
			Amount:   order.Amount,
			Currency: order.Currency,
			Status:   string(entity.OrderStatusCreated),
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.UserModel{}).
			Where("id = ? AND verification_status <> ?", order.UserID, string(entity.VerificationVerified)).
			Update("verification_status", string(entity.VerificationPending)).Error; err != nil {
			return err
		}

		*order = *ToVerificationOrderEntity(m)
		return nil
	})
}

func (r *verificationRepository) GetOrder(orderID string) (*entity.VerificationOrder, error) {
	var m model.VerificationOrderModel
	if err := r.db.Where("order_id = ?", orderID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToVerificationOrderEntity(&m), nil
}

func (r *verificationRepository) MarkPaid(orderID, paymentID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var m model.VerificationOrderModel
		if err := tx.Where("order_id = ?", orderID).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&m).Updates(map[string]interface{}{
			"payment_id": paymentID,
			"status":     string(entity.OrderStatusPaid),
		}).Error; err != nil {
			return err
		}

		return tx.Model(&model.UserModel{}).
			Where("id = ?", m.UserID).
			Updates(map[string]interface{}{
				"verification_status": string(entity.VerificationVerified),
				"is_verified":         true,
			}).Error
	})
}
