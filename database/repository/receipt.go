// database/repository/receipt.go
package repository

import (
	"context"
	"fmt"
	"time"

	"stayfront/database"
	"stayfront/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReceiptRepository defines the interface for booking receipt persistence.
type ReceiptRepository interface {
	Save(ctx context.Context, receipt *models.BookingReceipt) error
	GetByBookingID(ctx context.Context, bookingID string) (*models.BookingReceipt, error)
	ListByTenant(ctx context.Context, tenantDomain string, limit int64) ([]models.BookingReceipt, error)
}

// MongoReceiptRepo implements ReceiptRepository using MongoDB.
type MongoReceiptRepo struct {
	coll *mongo.Collection
}

func NewMongoReceiptRepo() *MongoReceiptRepo {
	return &MongoReceiptRepo{
		coll: database.MongoClient.Database("stayfront").Collection("receipts"),
	}
}

func (repo *MongoReceiptRepo) Save(ctx context.Context, receipt *models.BookingReceipt) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, receipt); err != nil {
		return fmt.Errorf("failed to insert booking receipt: %w", err)
	}
	return nil
}

func (repo *MongoReceiptRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.BookingReceipt, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var receipt models.BookingReceipt
	err := repo.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&receipt)
	if err != nil {
		return nil, fmt.Errorf("receipt for booking %s not found: %w", bookingID, err)
	}
	return &receipt, nil
}

func (repo *MongoReceiptRepo) ListByTenant(ctx context.Context, tenantDomain string, limit int64) ([]models.BookingReceipt, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, bson.M{"tenantDomain": tenantDomain}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	defer cursor.Close(ctx)

	var receipts []models.BookingReceipt
	if err := cursor.All(ctx, &receipts); err != nil {
		return nil, fmt.Errorf("failed to decode receipts: %w", err)
	}
	return receipts, nil
}
