package persistent

import (
	"itinera/services/wallet/internal/entity"
	"itinera/services/wallet/internal/model"
)

func ToWalletEntity(m *model.WalletModel) *entity.Wallet {
	if m == nil {
		return nil
	}
	return &entity.Wallet{
		ID:        m.ID,
		UserID:    m.UserID,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToTransactionEntity(m *model.TransactionModel) *entity.Transaction {
	if m == nil {
		return nil
	}
	t := &entity.Transaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Type:          entity.TransactionType(m.Type),
		Amount:        m.Amount,
		BalanceBefore: m.BalanceBefore,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
	}
	if m.ItineraryID != nil {
		t.ItineraryID = *m.ItineraryID
	}
	return t
}

func ToTransactionModel(e *entity.Transaction) *model.TransactionModel {
	if e == nil {
		return nil
	}
	m := &model.TransactionModel{
		ID:            e.ID,
		UserID:        e.UserID,
		Type:          string(e.Type),
		Amount:        e.Amount,
		BalanceBefore: e.BalanceBefore,
		BalanceAfter:  e.BalanceAfter,
		CreatedAt:     e.CreatedAt,
	}
	if e.ItineraryID != "" {
		id := e.ItineraryID
		m.ItineraryID = &id
	}
	return m
}

func ToPurchaseEntity(m *model.PurchaseRow) *entity.Purchase {
	if m == nil {
		return nil
	}
	return &entity.Purchase{
		ID:             m.ID,
		UserID:         m.UserID,
		ItineraryID:    m.ItineraryID,
		ItineraryTitle: m.ItineraryTitle,
		Amount:         m.Amount,
		CreatedAt:      m.CreatedAt,
	}
}

func ToListingEntity(m *model.ItineraryModel) *entity.Listing {
	if m == nil {
		return nil
	}
	return &entity.Listing{
		ID:          m.ID,
		CreatorID:   m.CreatorID,
		Title:       m.Title,
		Price:       m.Price,
		IsPublished: m.IsPublished,
		IsApproved:  m.IsApproved,
	}
}

func ToVerificationOrderEntity(m *model.VerificationOrderModel) *entity.VerificationOrder {
	if m == nil {
		return nil
	}
	return &entity.VerificationOrder{
		ID:        m.ID,
		UserID:    m.UserID,
		OrderID:   m.OrderID,
		PaymentID: m.PaymentID,
		Amount:    m.Amount,
		Currency:  m.Currency,
		Status:    entity.OrderStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToAccountEntity(m *model.UserModel) *entity.Account {
	if m == nil {
		return nil
	}
	return &entity.Account{
		ID:                 m.ID,
		Username:           m.Username,
		Role:               m.Role,
		IsVerified:         m.IsVerified,
		VerificationStatus: entity.VerificationStatus(m.VerificationStatus),
	}
}
