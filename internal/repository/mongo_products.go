package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (m *mongoProductRepository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product

	filter := bson.M{"_id": id}
	err := m.collection.FindOne(ctx, filter).Decode(&product)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

// UpdateStock writes the three reconciled stock fields back in a single
// partial update. Other product fields are left untouched.
func (m *mongoProductRepository) UpdateStock(ctx context.Context, id string, stockQuantity, unitsSold int, inStock bool) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"stock_quantity": stockQuantity,
			"units_sold":     unitsSold,
			"in_stock":       inStock,
			"updated_at":     time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (m *mongoProductRepository) UpdateVariants(ctx context.Context, id string, variants []domain.ProductVariant) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"variants":   variants,
			"updated_at": time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update variants: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (m *mongoProductRepository) UpdateSizeVariants(ctx context.Context, id string, sizeVariants []domain.SizeVariant) error {
	filter := bson.M{"_id": id}
	update := bson.M{
		"$set": bson.M{
			"size_variants": sizeVariants,
			"updated_at":    time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update size variants: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
