package repository

import (
	"context"
	"errors"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrProductNotFound = errors.New("product not found")
	ErrShopNotFound    = errors.New("shop not found")
)

// CartRepository defines the interface for cart data operations
// Consumers define this interface, not the MongoDB implementation
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, item domain.CartItem) error
	UpdateItemQuantity(ctx context.Context, userID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID string) error
	DeleteCart(ctx context.Context, userID string) error
}

// OrderRepository persists order aggregates. CreateOrder returns the
// store-generated order id.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (string, error)
}

// BookingRepository persists booking aggregates. CreateBooking returns the
// store-generated booking id.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) (string, error)
}

// ProductRepository reads product records and writes back the stock fields
// touched by inventory reconciliation. Each update method writes only its
// own fields; there is no compare-and-swap, so two concurrent reconciliations
// of the same product can lose updates (known limitation).
type ProductRepository interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	UpdateStock(ctx context.Context, id string, stockQuantity, unitsSold int, inStock bool) error
	UpdateVariants(ctx context.Context, id string, variants []domain.ProductVariant) error
	UpdateSizeVariants(ctx context.Context, id string, sizeVariants []domain.SizeVariant) error
}

// ShopRepository resolves the owner of a shop.
type ShopRepository interface {
	GetShopOwnerID(ctx context.Context, shopID string) (string, error)
}
