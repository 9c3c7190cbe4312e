package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type FulfillmentStatus string

const (
	FulfillmentStatusPending   FulfillmentStatus = "PENDING"
	FulfillmentStatusPreparing FulfillmentStatus = "PREPARING"
	FulfillmentStatusShipped   FulfillmentStatus = "SHIPPED"
	FulfillmentStatusDelivered FulfillmentStatus = "DELIVERED"
)

// OrderItem is a line snapshot inside an order. Price and quantity are copied
// verbatim from the cart line; there is no re-pricing at checkout.
type OrderItem struct {
	ProductID   string  `bson:"product_id" json:"product_id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Quantity    int     `bson:"quantity" json:"quantity"`
	ImageURL    string  `bson:"image_url,omitempty" json:"image_url,omitempty"`
	VariantID   string  `bson:"variant_id,omitempty" json:"variant_id,omitempty"`
	VariantName string  `bson:"variant_name,omitempty" json:"variant_name,omitempty"`
}

type CustomerInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type ShippingAddress struct {
	RecipientName string `bson:"recipient_name,omitempty" json:"recipient_name,omitempty"`
	Street        string `bson:"street,omitempty" json:"street,omitempty"`
	City          string `bson:"city,omitempty" json:"city,omitempty"`
	State         string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode       string `bson:"zip_code,omitempty" json:"zip_code,omitempty"`
	Country       string `bson:"country,omitempty" json:"country,omitempty"`
	Phone         string `bson:"phone,omitempty" json:"phone,omitempty"`
	Instructions  string `bson:"instructions,omitempty" json:"instructions,omitempty"`
}

// Order is the aggregate created from one shop's product lines during a
// single checkout. Total is always subtotal plus delivery fee; tax, shipping
// and discount are carried as fields but never computed here.
type Order struct {
	ID                string            `bson:"_id,omitempty" json:"id"`
	OrderNumber       string            `bson:"order_number" json:"order_number"`
	CustomerID        string            `bson:"customer_id" json:"customer_id"`
	ShopID            string            `bson:"shop_id" json:"shop_id"`
	OwnerID           string            `bson:"owner_id" json:"owner_id"`
	Items             []OrderItem       `bson:"items" json:"items"`
	Subtotal          float64           `bson:"subtotal" json:"subtotal"`
	Tax               float64           `bson:"tax" json:"tax"`
	ShippingFee       float64           `bson:"shipping_fee" json:"shipping_fee"`
	DeliveryFee       float64           `bson:"delivery_fee" json:"delivery_fee"`
	Discount          float64           `bson:"discount" json:"discount"`
	Total             float64           `bson:"total" json:"total"`
	Currency          string            `bson:"currency" json:"currency"`
	Status            OrderStatus       `bson:"status" json:"status"`
	PaymentStatus     PaymentStatus     `bson:"payment_status" json:"payment_status"`
	FulfillmentStatus FulfillmentStatus `bson:"fulfillment_status" json:"fulfillment_status"`
	CustomerInfo      CustomerInfo      `bson:"customer_info" json:"customer_info"`
	ShippingAddress   ShippingAddress   `bson:"shipping_address" json:"shipping_address"`
	CreatedAt         time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time         `bson:"updated_at" json:"updated_at"`
}
