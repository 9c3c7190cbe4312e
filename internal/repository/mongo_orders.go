package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (m *mongoOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	now := time.Now()
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	return order.ID, nil
}

type mongoBookingRepository struct {
	collection *mongo.Collection
}

func NewMongoBookingRepository(db *mongo.Database) BookingRepository {
	return &mongoBookingRepository{
		collection: db.Collection("bookings"),
	}
}

func (m *mongoBookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) (string, error) {
	now := time.Now()
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = now
	}
	booking.UpdatedAt = now

	_, err := m.collection.InsertOne(ctx, booking)
	if err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	return booking.ID, nil
}
