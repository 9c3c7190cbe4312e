package domain

// InventoryUpdate is the ephemeral delta produced for each product cart line
// and consumed once by the inventory reconciler. It is never persisted.
// VariantID and SizeID are empty when the line had no variant selection.
type InventoryUpdate struct {
	ProductID    string
	QuantitySold int
	VariantID    string
	SizeID       string
}

// CheckoutResult is the only externally observable outcome of a checkout.
type CheckoutResult struct {
	Success    bool     `json:"success"`
	OrderIDs   []string `json:"order_ids"`
	BookingIDs []string `json:"booking_ids"`
	Message    string   `json:"message"`
}

// User is the current identity a checkout runs on behalf of.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
}
