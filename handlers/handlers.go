package handlers

import (
	"context"

	"github.com/WaleiChang/expense-tracker/mascot"
	"github.com/WaleiChang/expense-tracker/models"
)

// ExpenseStore is the persistence surface the handlers need. Implemented by
// mongodb.Store; tests substitute an in-memory fake.
type ExpenseStore interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	InsertExpense(ctx context.Context, expense models.Expense) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type Handler struct {
	store  ExpenseStore
	mascot *mascot.Picker
}

func New(store ExpenseStore, picker *mascot.Picker) *Handler {
	return &Handler{store: store, mascot: picker}
}
