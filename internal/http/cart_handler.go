package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CartAccessor is the slice of the cart service the HTTP layer uses.
type CartAccessor interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, item domain.CartItem) error
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID string) error
	ClearCart(ctx context.Context, userID string) error
}

type CartHandler struct {
	carts   CartAccessor
	timeout time.Duration
}

func NewCartHandler(carts CartAccessor, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	Type            string                  `json:"type"`
	ShopID          string                  `json:"shop_id"`
	ShopName        string                  `json:"shop_name"`
	ProductID       string                  `json:"product_id,omitempty"`
	ServiceID       string                  `json:"service_id,omitempty"`
	Name            string                  `json:"name"`
	ImageURL        string                  `json:"image_url,omitempty"`
	Price           float64                 `json:"price"`
	Quantity        int                     `json:"quantity"`
	SelectedVariant *domain.SelectedVariant `json:"selected_variant,omitempty"`
	SelectedSize    *domain.SelectedSize    `json:"selected_size,omitempty"`
	Notes           string                  `json:"notes,omitempty"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	cart, err := h.carts.GetCart(ctx, user.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "cart_unavailable", "failed to load cart")
		return
	}

	respondJSON(w, http.StatusOK, cart)
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	itemType := domain.CartItemType(req.Type)
	if itemType != domain.CartItemTypeProduct && itemType != domain.CartItemTypeService {
		respondError(w, http.StatusBadRequest, "invalid_type", "type must be PRODUCT or SERVICE")
		return
	}
	if req.ShopID == "" {
		respondError(w, http.StatusBadRequest, "invalid_shop_id", "shop_id is required")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name is required")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	item := domain.CartItem{
		Type:            itemType,
		ShopID:          req.ShopID,
		ShopName:        req.ShopName,
		ProductID:       req.ProductID,
		ServiceID:       req.ServiceID,
		Name:            req.Name,
		ImageURL:        req.ImageURL,
		Price:           req.Price,
		Quantity:        req.Quantity,
		SelectedVariant: req.SelectedVariant,
		SelectedSize:    req.SelectedSize,
		Notes:           req.Notes,
	}

	if err := h.carts.AddItem(ctx, user.ID, item); err != nil {
		respondError(w, http.StatusInternalServerError, "add_item_failed", "failed to add item to cart")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"status": "added"})
}

// PUT /api/v1/cart/items/{item_id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	if err := h.carts.UpdateQuantity(ctx, user.ID, itemID, req.Quantity); err != nil {
		respondError(w, http.StatusNotFound, "item_not_found", "item not found in cart")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// DELETE /api/v1/cart/items/{item_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "item_id is required")
		return
	}

	if err := h.carts.RemoveItem(ctx, user.ID, itemID); err != nil {
		respondError(w, http.StatusNotFound, "item_not_found", "item not found in cart")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

// DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	user := userFromContext(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	if err := h.carts.ClearCart(ctx, user.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "clear_failed", "failed to clear cart")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
