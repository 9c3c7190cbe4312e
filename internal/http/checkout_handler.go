package http

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"github.com/Nullular/myHustle-WEB-sub004/internal/service"
)

// CheckoutRunner runs a checkout synchronously.
type CheckoutRunner interface {
	Checkout(ctx context.Context) (*domain.CheckoutResult, error)
}

// AsyncSubmitter queues a checkout that outlives the request.
type AsyncSubmitter interface {
	Submit(ctx context.Context, onSuccess func(*domain.CheckoutResult), onFailure func(error))
}

type CheckoutHandler struct {
	runner  CheckoutRunner
	async   AsyncSubmitter
	timeout time.Duration
}

func NewCheckoutHandler(runner CheckoutRunner, async AsyncSubmitter, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		runner:  runner,
		async:   async,
		timeout: timeout,
	}
}

// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if userFromContext(r.Context()) == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	result, err := h.runner.Checkout(ctx)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			respondError(w, http.StatusUnauthorized, "unauthorized", "user not authenticated")
		case errors.Is(err, service.ErrEmptyCart):
			respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty")
		default:
			log.Printf("checkout failed: %v", err)
			respondError(w, http.StatusInternalServerError, "checkout_failed", "checkout could not be completed")
		}
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// POST /api/v1/checkout/async
//
// Responds 202 as soon as the checkout is queued; the outcome only shows up
// in the created aggregates. The request's identity travels with the task
// through context values, so the checkout completes even if the client
// disconnects right away.
func (h *CheckoutHandler) CheckoutAsync(w http.ResponseWriter, r *http.Request) {
	if userFromContext(r.Context()) == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	requestID := getRequestID(r.Context())
	h.async.Submit(r.Context(),
		func(result *domain.CheckoutResult) {
			log.Printf("async checkout %s completed - orders: %d, bookings: %d",
				requestID, len(result.OrderIDs), len(result.BookingIDs))
		},
		func(err error) {
			log.Printf("async checkout %s failed: %v", requestID, err)
		},
	)

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}
