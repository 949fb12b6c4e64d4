package persistent

import (
	"errors"
	"fmt"

	"itinera/services/expense/internal/entity"
	"itinera/services/expense/internal/model"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	ListByItinerary(userID, itineraryID string) ([]*entity.Expense, error)
	Delete(id, userID string) error
	GetBudgetSource(itineraryID string) (*entity.BudgetSource, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *entity.Expense) error {
	m := ToExpenseModel(expense)
	if err := r.db.Create(m).Error; err != nil {
		return err
	}
	*expense = *ToExpenseEntity(m)
	return nil
}

func (r *expenseRepository) ListByItinerary(userID, itineraryID string) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	err := r.db.Where("user_id = ? AND itinerary_id = ?", userID, itineraryID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Expense, 0, len(models))
	for i := range models {
		out = append(out, ToExpenseEntity(&models[i]))
	}
	return out, nil
}

// Delete only removes the row when it belongs to userID.
func (r *expenseRepository) Delete(id, userID string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.ExpenseModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *expenseRepository) GetBudgetSource(itineraryID string) (*entity.BudgetSource, error) {
	var m model.ItineraryBudgetModel
	if err := r.db.Where("id = ?", itineraryID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	src, err := ToBudgetSource(&m)
	if err != nil {
		return nil, fmt.Errorf("failed to decode itinerary content: %w", err)
	}
	return src, nil
}
