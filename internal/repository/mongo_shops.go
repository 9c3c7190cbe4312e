package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoShopRepository struct {
	collection *mongo.Collection
}

func NewMongoShopRepository(db *mongo.Database) ShopRepository {
	return &mongoShopRepository{
		collection: db.Collection("shops"),
	}
}

func (m *mongoShopRepository) GetShopOwnerID(ctx context.Context, shopID string) (string, error) {
	var shop domain.Shop

	filter := bson.M{"_id": shopID}
	err := m.collection.FindOne(ctx, filter).Decode(&shop)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrShopNotFound
		}
		return "", fmt.Errorf("failed to get shop: %w", err)
	}

	return shop.OwnerID, nil
}
