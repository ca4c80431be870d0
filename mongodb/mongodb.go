package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/WaleiChang/expense-tracker/logger"
)

const ExpenseCollection = "expenses"

// Connect dials MongoDB and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		logger.Get().Error("failed to connect to MongoDB",
			zap.Error(err))
		return nil, fmt.Errorf("error connecting to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Get().Error("failed to ping MongoDB",
			zap.Error(err))
		return nil, fmt.Errorf("error pinging MongoDB: %v", err)
	}

	logger.Get().Info("successfully connected to MongoDB")
	return client, nil
}

// Disconnect closes the client, logging rather than returning failures.
func Disconnect(client *mongo.Client) {
	if client == nil {
		return
	}
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.Get().Error("failed to disconnect from MongoDB",
			zap.Error(err))
		return
	}
	logger.Get().Info("successfully disconnected from MongoDB")
}
