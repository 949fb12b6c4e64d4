package usecase

import (
	"itinera/services/expense/internal/entity"
)

// ExpenseStore is the remote side of a Tracker.
type ExpenseStore interface {
	Create(expense *entity.Expense) error
	Delete(id, userID string) error
}

// Tracker is the expense list for one user and itinerary. The local list
// only changes after the store accepted the write.
type Tracker struct {
	userID string
	store  ExpenseStore
	items  []*entity.Expense
}

func NewTracker(userID string, store ExpenseStore, items []*entity.Expense) *Tracker {
	return &Tracker{
		userID: userID,
		store:  store,
		items:  append([]*entity.Expense(nil), items...),
	}
}

func (t *Tracker) Add(expense *entity.Expense) error {
	expense.UserID = t.userID
	if err := t.store.Create(expense); err != nil {
		return err
	}
	t.items = append(t.items, expense)
	return nil
}

func (t *Tracker) Delete(id string) error {
	if err := t.store.Delete(id, t.userID); err != nil {
		return err
	}
	for i, e := range t.items {
		if e.ID == id {
			t.items = append(t.items[:i:i], t.items[i+1:]...)
			break
		}
	}
	return nil
}

func (t *Tracker) Items() []*entity.Expense {
	return append([]*entity.Expense(nil), t.items...)
}

// TotalSpent is the plain sum of amounts.
func (t *Tracker) TotalSpent() float64 {
	var total float64
	for _, e := range t.items {
		total += e.Amount
	}
	return total
}

func (t *Tracker) ByCategory() map[string]float64 {
	out := make(map[string]float64)
	for _, e := range t.items {
		out[e.Category] += e.Amount
	}
	return out
}

func (t *Tracker) ByDay() map[int]float64 {
	out := make(map[int]float64)
	for _, e := range t.items {
		out[e.DayNumber] += e.Amount
	}
	return out
}
