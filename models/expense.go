package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Expense is a single recorded expense. Records are immutable after creation;
// the only mutation is deletion.
type Expense struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string        `json:"title" bson:"title"`
	Amount    float64       `json:"amount" bson:"amount"`
	Date      string        `json:"date" bson:"date"` // yyyy-MM-dd
	Category  string        `json:"category" bson:"category"`
	CreatedAt int64         `json:"createdAt" bson:"createdAt"` // epoch millis
}

// CreateExpenseRequest is the create payload. CreatedAt is optional; the
// server assigns it when zero.
type CreateExpenseRequest struct {
	Title     string  `json:"title" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Date      string  `json:"date" binding:"required"`
	Category  string  `json:"category" binding:"required"`
	CreatedAt int64   `json:"createdAt"`
}

// Expense builds the record to persist from the request.
func (r CreateExpenseRequest) Expense() Expense {
	return Expense{
		Title:     r.Title,
		Amount:    r.Amount,
		Date:      r.Date,
		Category:  r.Category,
		CreatedAt: r.CreatedAt,
	}
}
