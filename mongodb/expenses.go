package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/WaleiChang/expense-tracker/models"
)

// ErrInvalidID marks an expense id that is not a well-formed ObjectID hex.
var ErrInvalidID = fmt.Errorf("invalid expense id")

// Store wraps the expenses collection.
type Store struct {
	client   *mongo.Client
	database string
}

func NewStore(client *mongo.Client, database string) *Store {
	return &Store{client: client, database: database}
}

func (s *Store) collection() *mongo.Collection {
	return s.client.Database(s.database).Collection(ExpenseCollection)
}

// ListExpenses returns every expense, newest date first; same-day records are
// ordered by creation time, newest first.
func (s *Store) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := s.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching expenses: %v", err)
	}
	defer cursor.Close(ctx)

	expenses := []models.Expense{}
	for cursor.Next(ctx) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err != nil {
			return nil, fmt.Errorf("error decoding expense: %v", err)
		}
		expenses = append(expenses, expense)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return expenses, nil
}

// InsertExpense persists the expense and returns it with the assigned id.
func (s *Store) InsertExpense(ctx context.Context, expense models.Expense) (models.Expense, error) {
	result, err := s.collection().InsertOne(ctx, expense)
	if err != nil {
		return models.Expense{}, fmt.Errorf("error creating expense: %v", err)
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return models.Expense{}, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	expense.ID = id
	return expense, nil
}

// DeleteExpense removes the expense with the given id. Deleting an id that no
// longer exists is a no-op; a malformed id returns ErrInvalidID.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if _, err := s.collection().DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("error deleting expense: %v", err)
	}
	return nil
}
