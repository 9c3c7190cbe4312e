package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusAccepted  BookingStatus = "ACCEPTED"
	BookingStatusDenied    BookingStatus = "DENIED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is the aggregate created from one SERVICE cart line. Bookings are
// never grouped: one service line yields exactly one booking. Date and time
// are requested later through the booking management flow, so both start
// empty here.
type Booking struct {
	ID            string        `bson:"_id,omitempty" json:"id"`
	CustomerID    string        `bson:"customer_id" json:"customer_id"`
	ShopID        string        `bson:"shop_id" json:"shop_id"`
	ShopOwnerID   string        `bson:"shop_owner_id" json:"shop_owner_id"`
	ServiceID     string        `bson:"service_id" json:"service_id"`
	ServiceName   string        `bson:"service_name" json:"service_name"`
	ShopName      string        `bson:"shop_name" json:"shop_name"`
	CustomerName  string        `bson:"customer_name" json:"customer_name"`
	CustomerEmail string        `bson:"customer_email" json:"customer_email"`
	RequestedDate string        `bson:"requested_date" json:"requested_date"`
	RequestedTime string        `bson:"requested_time" json:"requested_time"`
	Status        BookingStatus `bson:"status" json:"status"`
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}
