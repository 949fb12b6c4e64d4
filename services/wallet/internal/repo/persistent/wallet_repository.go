package persistent

import (
	"errors"

	"itinera/services/wallet/internal/entity"
	"itinera/services/wallet/internal/model"

	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyPurchased    = errors.New("itinerary already purchased")
)

type WalletRepository interface {
	GetOrCreateWallet(userID string) (*entity.Wallet, error)
	TopUp(userID string, amount float64) (*entity.Wallet, error)
	GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error)

	GetListing(itineraryID string) (*entity.Listing, error)
	HasPurchased(userID, itineraryID string) (bool, error)
	Purchase(buyerID string, listing *entity.Listing) (*entity.Purchase, *entity.Wallet, error)
	ListPurchases(userID string) ([]*entity.Purchase, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func getOrCreateWallet(tx *gorm.DB, userID string) (*model.WalletModel, error) {
	var w model.WalletModel
	err := tx.Where("user_id = ?", userID).First(&w).Error
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	w = model.WalletModel{UserID: userID}
	if err := tx.Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// adjustBalance adds delta to the wallet. A debit only applies when the
// balance covers it, so concurrent purchases cannot overdraw.
func adjustBalance(tx *gorm.DB, walletID string, delta float64) error {
	q := tx.Model(&model.WalletModel{}).Where("id = ?", walletID)
	if delta < 0 {
		q = q.Where("balance >= ?", -delta)
	}
	res := q.Update("balance", gorm.Expr("balance + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}
	return nil
}

func (r *walletRepository) GetOrCreateWallet(userID string) (*entity.Wallet, error) {
	w, err := getOrCreateWallet(r.db, userID)
	if err != nil {
		return nil, err
	}
	return ToWalletEntity(w), nil
}

func (r *walletRepository) TopUp(userID string, amount float64) (*entity.Wallet, error) {
	var result *model.WalletModel
	err := r.db.Transaction(func(tx *gorm.DB) error {
		w, err := getOrCreateWallet(tx, userID)
		if err != nil {
			return err
		}
		before := w.Balance

		if err := adjustBalance(tx, w.ID, amount); err != nil {
			return err
		}
		if err := tx.First(w, "id = ?", w.ID).Error; err != nil {
			return err
		}

		t := ToTransactionModel(&entity.Transaction{
			UserID:        userID,
			Type:          entity.TransactionTypeTopUp,
			Amount:        amount,
			BalanceBefore: before,
			BalanceAfter:  w.Balance,
		})
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		result = w
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToWalletEntity(result), nil
}

func (r *walletRepository) GetTransactions(userID string, limit, offset int) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}

func (r *walletRepository) GetListing(itineraryID string) (*entity.Listing, error) {
	var m model.ItineraryModel
	if err := r.db.Where("id = ?", itineraryID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ToListingEntity(&m), nil
}

func (r *walletRepository) HasPurchased(userID, itineraryID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PurchaseModel{}).
		Where("user_id = ? AND itinerary_id = ?", userID, itineraryID).
		Count(&count).Error
	return count > 0, err
}

// Purchase moves the price from buyer to creator and records the sale in a
// single transaction.
func (r *walletRepository) Purchase(buyerID string, listing *entity.Listing) (*entity.Purchase, *entity.Wallet, error) {
	var (
		purchase *model.PurchaseModel
		buyer    *model.WalletModel
	)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.PurchaseModel{}).
			Where("user_id = ? AND itinerary_id = ?", buyerID, listing.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyPurchased
		}

		var err error
		buyer, err = getOrCreateWallet(tx, buyerID)
		if err != nil {
			return err
		}
		seller, err := getOrCreateWallet(tx, listing.CreatorID)
		if err != nil {
			return err
		}
		buyerBefore, sellerBefore := buyer.Balance, seller.Balance

		if err := adjustBalance(tx, buyer.ID, -listing.Price); err != nil {
			return err
		}
		if err := adjustBalance(tx, seller.ID, listing.Price); err != nil {
			return err
		}

		purchase = &model.PurchaseModel{UserID: buyerID, ItineraryID: listing.ID, Amount: listing.Price}
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		if err := tx.First(buyer, "id = ?", buyer.ID).Error; err != nil {
			return err
		}
		if err := tx.First(seller, "id = ?", seller.ID).Error; err != nil {
			return err
		}

		ledger := []*entity.Transaction{
			{
				UserID:        buyerID,
				ItineraryID:   listing.ID,
				Type:          entity.TransactionTypePurchase,
				Amount:        -listing.Price,
				BalanceBefore: buyerBefore,
				BalanceAfter:  buyer.Balance,
			},
			{
				UserID:        listing.CreatorID,
				ItineraryID:   listing.ID,
				Type:          entity.TransactionTypeEarn,
				Amount:        listing.Price,
				BalanceBefore: sellerBefore,
				BalanceAfter:  seller.Balance,
			},
		}
		for _, t := range ledger {
			if err := tx.Create(ToTransactionModel(t)).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.ItineraryModel{}).
			Where("id = ?", listing.ID).
			Update("sales_count", gorm.Expr("sales_count + 1")).Error
	})
	if err != nil {
		return nil, nil, err
	}

	return ToPurchaseEntity(&model.PurchaseRow{
		ID:             purchase.ID,
		UserID:         purchase.UserID,
		ItineraryID:    purchase.ItineraryID,
		ItineraryTitle: listing.Title,
		Amount:         purchase.Amount,
		CreatedAt:      purchase.CreatedAt,
	}), ToWalletEntity(buyer), nil
}

func (r *walletRepository) ListPurchases(userID string) ([]*entity.Purchase, error) {
	var rows []model.PurchaseRow
	err := r.db.Table("purchases").
		Select("purchases.id, purchases.user_id, purchases.itinerary_id, itineraries.title AS itinerary_title, purchases.amount, purchases.created_at").
		Joins("LEFT JOIN itineraries ON itineraries.id = purchases.itinerary_id").
		Where("purchases.user_id = ?", userID).
		Order("purchases.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Purchase, 0, len(rows))
	for i := range rows {
		out = append(out, ToPurchaseEntity(&rows[i]))
	}
	return out, nil
}
