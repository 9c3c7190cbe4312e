package service

import (
	"context"
	"log"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
)

// createBookingForService turns one SERVICE cart line into a single persisted
// booking. Date and time selection happens later in the booking flow, so both
// start empty. A persistence failure propagates to the caller.
func (s *CheckoutService) createBookingForService(ctx context.Context, user *domain.User, item domain.CartItem) (string, error) {
	booking := &domain.Booking{
		CustomerID:    user.ID,
		ShopID:        item.ShopID,
		ShopOwnerID:   s.shopOwnerID(ctx, item.ShopID),
		ServiceID:     item.ServiceID,
		ServiceName:   item.Name,
		ShopName:      item.ShopName,
		CustomerName:  user.DisplayName,
		CustomerEmail: user.Email,
		RequestedDate: "",
		RequestedTime: "",
		Status:        domain.BookingStatusPending,
		Notes:         item.Notes,
	}

	bookingID, err := s.bookings.CreateBooking(ctx, booking)
	if err != nil {
		return "", err
	}

	log.Printf("booking %s created for service %s", bookingID, item.ServiceID)
	return bookingID, nil
}
