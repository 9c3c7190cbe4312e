package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
)

// deliveryFee is the flat fee added to every order, matching the amount shown
// on the checkout screen.
const deliveryFee = 2.99

// createOrderForShop turns one shop's product lines into a single persisted
// order. Prices and quantities are copied from the cart lines as-is; no
// re-pricing or stock check happens here. A persistence failure propagates
// to the caller and aborts the rest of the checkout.
func (s *CheckoutService) createOrderForShop(ctx context.Context, user *domain.User, shopID string, items []domain.CartItem) (string, error) {
	orderNumber := fmt.Sprintf("ORD-%d", time.Now().UnixMilli())

	orderItems := make([]domain.OrderItem, len(items))
	for i, item := range items {
		orderItem := domain.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			ImageURL:  item.ImageURL,
		}
		if item.SelectedVariant != nil {
			orderItem.VariantID = item.SelectedVariant.ID
			orderItem.VariantName = item.SelectedVariant.Value
		}
		orderItems[i] = orderItem
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}

	order := &domain.Order{
		OrderNumber:       orderNumber,
		CustomerID:        user.ID,
		ShopID:            shopID,
		OwnerID:           s.shopOwnerID(ctx, shopID),
		Items:             orderItems,
		Subtotal:          subtotal,
		Tax:               0,
		ShippingFee:       0,
		DeliveryFee:       deliveryFee,
		Discount:          0,
		Total:             subtotal + deliveryFee,
		Currency:          "USD",
		Status:            domain.OrderStatusPending,
		PaymentStatus:     domain.PaymentStatusPending,
		FulfillmentStatus: domain.FulfillmentStatusPending,
		CustomerInfo: domain.CustomerInfo{
			Name:  user.DisplayName,
			Email: user.Email,
		},
		ShippingAddress: domain.ShippingAddress{},
	}

	orderID, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return "", err
	}

	log.Printf("order %s created for shop %s", orderID, shopID)
	return orderID, nil
}

// shopOwnerID resolves the owner of a shop on a best-effort basis. A failed
// lookup leaves the owner empty rather than failing the aggregate.
func (s *CheckoutService) shopOwnerID(ctx context.Context, shopID string) string {
	ownerID, err := s.shops.GetShopOwnerID(ctx, shopID)
	if err != nil {
		log.Printf("error getting shop owner for %s: %v", shopID, err)
		return ""
	}
	return ownerID
}
