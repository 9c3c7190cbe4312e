package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"github.com/go-chi/chi/v5"
)

type cartAccessorMock struct {
	cart *domain.Cart
	err  error

	added   []domain.CartItem
	updated map[string]int
	removed []string
	cleared int
}

func (m *cartAccessorMock) GetCart(_ context.Context, userID string) (*domain.Cart, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil {
		return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
	}
	return m.cart, nil
}

func (m *cartAccessorMock) AddItem(_ context.Context, _ string, item domain.CartItem) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, item)
	return nil
}

func (m *cartAccessorMock) UpdateQuantity(_ context.Context, _ string, itemID string, quantity int) error {
	if m.err != nil {
		return m.err
	}
	if m.updated == nil {
		m.updated = make(map[string]int)
	}
	m.updated[itemID] = quantity
	return nil
}

func (m *cartAccessorMock) RemoveItem(_ context.Context, _ string, itemID string) error {
	if m.err != nil {
		return m.err
	}
	m.removed = append(m.removed, itemID)
	return nil
}

func (m *cartAccessorMock) ClearCart(context.Context, string) error {
	if m.err != nil {
		return m.err
	}
	m.cleared++
	return nil
}

// withURLParam injects a chi route parameter into the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetCart_ReturnsCart(t *testing.T) {
	mock := &cartAccessorMock{cart: &domain.Cart{
		UserID: "user-1",
		Items: []domain.CartItem{
			{ID: "line-1", Type: domain.CartItemTypeProduct, ShopID: "shop-a", Name: "Mug", Price: 8, Quantity: 2},
		},
	}}
	handler := NewCartHandler(mock, 5*time.Second)
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("GET", "/api/v1/cart", nil))

	handler.GetCart(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}

	var cart domain.Cart
	if err := json.NewDecoder(recorder.Body).Decode(&cart); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Name != "Mug" {
		t.Errorf("unexpected cart items: %+v", cart.Items)
	}
}

func TestGetCart_Unauthenticated(t *testing.T) {
	handler := NewCartHandler(&cartAccessorMock{}, 5*time.Second)
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/v1/cart", nil)

	handler.GetCart(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestAddItem_Success(t *testing.T) {
	mock := &cartAccessorMock{}
	handler := NewCartHandler(mock, 5*time.Second)

	body, _ := json.Marshal(AddItemRequestDTO{
		Type:      "PRODUCT",
		ShopID:    "shop-a",
		ShopName:  "Corner Store",
		ProductID: "p1",
		Name:      "Mug",
		Price:     8.50,
		Quantity:  2,
	})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader(body)))

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusCreated {
		t.Errorf("expected %d, got %d: %s", http.StatusCreated, recorder.Code, recorder.Body.String())
	}
	if len(mock.added) != 1 {
		t.Fatalf("expected 1 added item, got %d", len(mock.added))
	}
	if mock.added[0].ProductID != "p1" || mock.added[0].Quantity != 2 {
		t.Errorf("unexpected added item: %+v", mock.added[0])
	}
}

func TestAddItem_Validation(t *testing.T) {
	tests := []struct {
		name     string
		req      AddItemRequestDTO
		wantCode string
	}{
		{
			name:     "unknown type",
			req:      AddItemRequestDTO{Type: "GIFT_CARD", ShopID: "shop-a", Name: "x", Quantity: 1},
			wantCode: "invalid_type",
		},
		{
			name:     "missing shop id",
			req:      AddItemRequestDTO{Type: "PRODUCT", Name: "x", Quantity: 1},
			wantCode: "invalid_shop_id",
		},
		{
			name:     "missing name",
			req:      AddItemRequestDTO{Type: "PRODUCT", ShopID: "shop-a", Quantity: 1},
			wantCode: "invalid_name",
		},
		{
			name:     "zero quantity",
			req:      AddItemRequestDTO{Type: "PRODUCT", ShopID: "shop-a", Name: "x", Quantity: 0},
			wantCode: "invalid_quantity",
		},
		{
			name:     "excessive quantity",
			req:      AddItemRequestDTO{Type: "PRODUCT", ShopID: "shop-a", Name: "x", Quantity: 100},
			wantCode: "invalid_quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &cartAccessorMock{}
			handler := NewCartHandler(mock, 5*time.Second)

			body, _ := json.Marshal(tt.req)
			recorder := httptest.NewRecorder()
			request := withUser(httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader(body)))

			handler.AddItem(recorder, request)

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var response ErrorResponse
			if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response.Code != tt.wantCode {
				t.Errorf("expected code '%s', got '%s'", tt.wantCode, response.Code)
			}
			if len(mock.added) != 0 {
				t.Errorf("invalid request must not reach the service, added %d", len(mock.added))
			}
		})
	}
}

func TestAddItem_InvalidJSON(t *testing.T) {
	handler := NewCartHandler(&cartAccessorMock{}, 5*time.Second)
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("POST", "/api/v1/cart/items", bytes.NewReader([]byte("{not json"))))

	handler.AddItem(recorder, request)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected %d, got %d", http.StatusBadRequest, recorder.Code)
	}
}

func TestUpdateQuantity_Success(t *testing.T) {
	mock := &cartAccessorMock{}
	handler := NewCartHandler(mock, 5*time.Second)

	body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 3})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("PUT", "/api/v1/cart/items/line-1", bytes.NewReader(body)))
	request = withURLParam(request, "item_id", "line-1")

	handler.UpdateQuantity(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d: %s", http.StatusOK, recorder.Code, recorder.Body.String())
	}
	if mock.updated["line-1"] != 3 {
		t.Errorf("expected quantity 3 for line-1, got %v", mock.updated)
	}
}

func TestUpdateQuantity_UnknownItem(t *testing.T) {
	mock := &cartAccessorMock{err: errors.New("item not found")}
	handler := NewCartHandler(mock, 5*time.Second)

	body, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 3})
	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("PUT", "/api/v1/cart/items/ghost", bytes.NewReader(body)))
	request = withURLParam(request, "item_id", "ghost")

	handler.UpdateQuantity(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, recorder.Code)
	}
}

func TestRemoveItem_Success(t *testing.T) {
	mock := &cartAccessorMock{}
	handler := NewCartHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("DELETE", "/api/v1/cart/items/line-1", nil))
	request = withURLParam(request, "item_id", "line-1")

	handler.RemoveItem(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if len(mock.removed) != 1 || mock.removed[0] != "line-1" {
		t.Errorf("unexpected removals: %v", mock.removed)
	}
}

func TestClearCart_Success(t *testing.T) {
	mock := &cartAccessorMock{}
	handler := NewCartHandler(mock, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := withUser(httptest.NewRequest("DELETE", "/api/v1/cart", nil))

	handler.ClearCart(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected %d, got %d", http.StatusOK, recorder.Code)
	}
	if mock.cleared != 1 {
		t.Errorf("expected 1 clear call, got %d", mock.cleared)
	}
}
