package service

import (
	"context"
	"fmt"
	"log"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"github.com/Nullular/myHustle-WEB-sub004/internal/repository"
)

// IdentityProvider resolves the user a checkout runs on behalf of.
// A nil user with a nil error means nobody is signed in.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// CartProvider is the slice of the cart service the checkout needs: the
// current snapshot and a way to clear it once everything is persisted.
type CartProvider interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, userID string) error
}

// AccountingNotifier signals downstream accounting that new orders and
// bookings exist. Refresh failures never affect the checkout outcome.
type AccountingNotifier interface {
	Refresh(ctx context.Context, customerID string, result *domain.CheckoutResult) error
}

// CheckoutService converts a cart snapshot into persisted orders and
// bookings, deducts sold stock, clears the cart and pings accounting.
//
// Failure policy is deliberately uneven and matches the behavior the rest of
// the system depends on: validation errors and aggregate-creation errors are
// hard and abort the remaining steps (aggregates created before the failure
// stay committed), while inventory updates and the accounting refresh are
// soft and only logged.
type CheckoutService struct {
	identity   IdentityProvider
	carts      CartProvider
	orders     repository.OrderRepository
	bookings   repository.BookingRepository
	shops      repository.ShopRepository
	inventory  *InventoryReconciler
	accounting AccountingNotifier
}

func NewCheckoutService(
	identity IdentityProvider,
	carts CartProvider,
	orders repository.OrderRepository,
	bookings repository.BookingRepository,
	shops repository.ShopRepository,
	inventory *InventoryReconciler,
	accounting AccountingNotifier,
) *CheckoutService {
	return &CheckoutService{
		identity:   identity,
		carts:      carts,
		orders:     orders,
		bookings:   bookings,
		shops:      shops,
		inventory:  inventory,
		accounting: accounting,
	}
}

// Checkout runs the whole pipeline once: validate, group, create orders,
// create bookings, reconcile inventory, clear the cart, notify accounting.
// There are no retries and no way to cancel a run partway through.
func (s *CheckoutService) Checkout(ctx context.Context) (*domain.CheckoutResult, error) {
	user, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}
	if user == nil {
		return nil, ErrNotAuthenticated
	}

	cart, err := s.carts.GetCart(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	log.Printf("processing checkout for %d items", len(cart.Items))

	groups, serviceItems := partitionCart(cart.Items)

	var orderIDs []string
	var bookingIDs []string
	var updates []domain.InventoryUpdate

	for _, group := range groups {
		orderID, errOrder := s.createOrderForShop(ctx, user, group.ShopID, group.Items)
		if errOrder != nil {
			return nil, fmt.Errorf("failed to create order for shop %s: %w", group.ShopID, errOrder)
		}
		orderIDs = append(orderIDs, orderID)

		for _, item := range group.Items {
			if item.ProductID == "" {
				// Lines without a product id are not stock-tracked; they stay
				// on the order but produce no inventory update.
				continue
			}
			update := domain.InventoryUpdate{
				ProductID:    item.ProductID,
				QuantitySold: item.Quantity,
			}
			if item.SelectedVariant != nil {
				update.VariantID = item.SelectedVariant.ID
			}
			if item.SelectedSize != nil {
				update.SizeID = item.SelectedSize.ID
			}
			updates = append(updates, update)
		}
	}

	for _, item := range serviceItems {
		if item.ServiceID == "" {
			continue
		}
		bookingID, errBooking := s.createBookingForService(ctx, user, item)
		if errBooking != nil {
			return nil, fmt.Errorf("failed to create booking for service %s: %w", item.ServiceID, errBooking)
		}
		bookingIDs = append(bookingIDs, bookingID)
	}

	s.inventory.Apply(ctx, updates)

	if err := s.carts.ClearCart(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	result := &domain.CheckoutResult{
		Success:    true,
		OrderIDs:   orderIDs,
		BookingIDs: bookingIDs,
		Message:    "Checkout completed successfully",
	}

	if errRefresh := s.accounting.Refresh(ctx, user.ID, result); errRefresh != nil {
		log.Printf("failed to refresh accounting data, but checkout was successful: %v", errRefresh)
	}

	log.Printf("checkout successful - orders: %d, bookings: %d", len(orderIDs), len(bookingIDs))
	return result, nil
}
