package persistent

import (
	"encoding/json"

	"itinera/services/expense/internal/entity"
	"itinera/services/expense/internal/model"
)

func ToExpenseEntity(m *model.ExpenseModel) *entity.Expense {
	if m == nil {
		return nil
	}
	return &entity.Expense{
		ID:          m.ID,
		ItineraryID: m.ItineraryID,
		UserID:      m.UserID,
		DayNumber:   m.DayNumber,
		Amount:      m.Amount,
		Category:    m.Category,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToExpenseModel(e *entity.Expense) *model.ExpenseModel {
	if e == nil {
		return nil
	}
	return &model.ExpenseModel{
		ID:          e.ID,
		ItineraryID: e.ItineraryID,
		UserID:      e.UserID,
		DayNumber:   e.DayNumber,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// budgetContent is the slice of itinerary content the tracker reads.
type budgetContent struct {
	PreTrip struct {
		BudgetEstimate struct {
			Daily string `json:"daily"`
		} `json:"budgetEstimate"`
	} `json:"preTrip"`
	DailyItinerary []json.RawMessage `json:"dailyItinerary"`
}

func ToBudgetSource(m *model.ItineraryBudgetModel) (*entity.BudgetSource, error) {
	src := &entity.BudgetSource{DurationDays: m.DurationDays}
	if len(m.Content) == 0 {
		return src, nil
	}

	var c budgetContent
	if err := json.Unmarshal(m.Content, &c); err != nil {
		return nil, err
	}
	src.DailyBudget = c.PreTrip.BudgetEstimate.Daily
	src.DaysInContent = len(c.DailyItinerary)
	return src, nil
}
