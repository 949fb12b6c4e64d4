package usecase

import (
	"errors"
	"fmt"
	"strings"

	"itinera/pkg/logger"
	"itinera/services/expense/internal/entity"
	"itinera/services/expense/internal/repo/persistent"
)

const defaultCategory = "other"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

type AddInput struct {
	ItineraryID string   `json:"itinerary_id"`
	DayNumber   *int     `json:"day_number"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

type ExpenseUseCase interface {
	AddExpense(userID string, in AddInput) (*entity.Expense, error)
	ListExpenses(userID, itineraryID string) ([]*entity.Expense, error)
	DeleteExpense(userID, id string) error
	GetSummary(userID, itineraryID string) (*entity.Summary, error)
}

type expenseUseCase struct {
	repo   persistent.ExpenseRepository
	logger *logger.Logger
}

func NewExpenseUseCase(repo persistent.ExpenseRepository, logger *logger.Logger) ExpenseUseCase {
	return &expenseUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *expenseUseCase) AddExpense(userID string, in AddInput) (*entity.Expense, error) {
	if strings.TrimSpace(in.ItineraryID) == "" || in.DayNumber == nil || in.Amount == nil {
		return nil, fmt.Errorf("%w: itinerary_id, day_number and amount are required", ErrValidation)
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = defaultCategory
	}

	expense := &entity.Expense{
		ItineraryID: in.ItineraryID,
		UserID:      userID,
		DayNumber:   *in.DayNumber,
		Amount:      *in.Amount,
		Category:    category,
		Description: in.Description,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

func (uc *expenseUseCase) ListExpenses(userID, itineraryID string) ([]*entity.Expense, error) {
	if itineraryID == "" {
		return nil, fmt.Errorf("%w: itinerary_id is required", ErrValidation)
	}

	expenses, err := uc.repo.ListByItinerary(userID, itineraryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (uc *expenseUseCase) DeleteExpense(userID, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}

	if err := uc.repo.Delete(id, userID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (uc *expenseUseCase) GetSummary(userID, itineraryID string) (*entity.Summary, error) {
	expenses, err := uc.ListExpenses(userID, itineraryID)
	if err != nil {
		return nil, err
	}

	src, err := uc.repo.GetBudgetSource(itineraryID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load itinerary: %w", err)
	}

	return Summarize(NewTracker(userID, uc.repo, expenses), src), nil
}

// Summarize compares what the tracker holds with the itinerary's budget.
func Summarize(t *Tracker, src *entity.BudgetSource) *entity.Summary {
	daily := ParseDailyBudget(src.DailyBudget)
	days := TripDays(src.DurationDays, src.DaysInContent)
	recommended := RecommendedTotal(daily, days)
	spent := t.TotalSpent()

	return &entity.Summary{
		TotalSpent:       spent,
		ByCategory:       t.ByCategory(),
		ByDay:            t.ByDay(),
		DailyBudget:      daily,
		DailyBudgetText:  src.DailyBudget,
		TripDays:         days,
		RecommendedTotal: recommended,
		Remaining:        recommended - spent,
		OverBudget:       recommended > 0 && spent > recommended,
	}
}
