package domain

import "time"

// CartItemType distinguishes purchasable goods from bookable services.
type CartItemType string

const (
	CartItemTypeProduct CartItemType = "PRODUCT"
	CartItemTypeService CartItemType = "SERVICE"
)

// SelectedVariant is the color/style variant chosen for a product line.
type SelectedVariant struct {
	ID    string `bson:"id" json:"id"`
	Value string `bson:"value" json:"value"`
}

// SelectedSize is the size variant chosen for a product line.
type SelectedSize struct {
	ID string `bson:"id" json:"id"`
}

// CartItem is one line of a cart: either a PRODUCT line bound to a product
// or a SERVICE line bound to a bookable service. It is an immutable snapshot
// of what the customer picked, including the price at the time of adding.
type CartItem struct {
	ID              string           `bson:"id" json:"id"`
	Type            CartItemType     `bson:"type" json:"type"`
	ShopID          string           `bson:"shop_id" json:"shop_id"`
	ShopName        string           `bson:"shop_name" json:"shop_name"`
	ProductID       string           `bson:"product_id,omitempty" json:"product_id,omitempty"`
	ServiceID       string           `bson:"service_id,omitempty" json:"service_id,omitempty"`
	Name            string           `bson:"name" json:"name"`
	ImageURL        string           `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Price           float64          `bson:"price" json:"price"`
	Quantity        int              `bson:"quantity" json:"quantity"`
	SelectedVariant *SelectedVariant `bson:"selected_variant,omitempty" json:"selected_variant,omitempty"`
	SelectedSize    *SelectedSize    `bson:"selected_size,omitempty" json:"selected_size,omitempty"`
	Notes           string           `bson:"notes,omitempty" json:"notes,omitempty"`
	AddedAt         time.Time        `bson:"added_at" json:"added_at"`
}

// Cart holds all pending lines for one user.
type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}
