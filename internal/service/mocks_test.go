package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"github.com/Nullular/myHustle-WEB-sub004/internal/repository"
)

var errProductMissing = repository.ErrProductNotFound

// mockIdentity implements IdentityProvider for testing
type mockIdentity struct {
	user *domain.User
	err  error
}

func (m *mockIdentity) CurrentUser(context.Context) (*domain.User, error) {
	return m.user, m.err
}

// mockCartProvider implements CartProvider for testing. ClearCart empties
// the held cart unless clearMutates is false (simulates a crash between
// order creation and cart clear).
type mockCartProvider struct {
	cart        *domain.Cart
	getErr      error
	clearErr    error
	clearMutate bool

	GetCalls   int
	ClearCalls int
}

func newMockCartProvider(items ...domain.CartItem) *mockCartProvider {
	return &mockCartProvider{
		cart:        &domain.Cart{UserID: "user-1", Items: items},
		clearMutate: true,
	}
}

func (m *mockCartProvider) GetCart(_ context.Context, _ string) (*domain.Cart, error) {
	m.GetCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.cart, nil
}

func (m *mockCartProvider) ClearCart(_ context.Context, _ string) error {
	m.ClearCalls++
	if m.clearErr != nil {
		return m.clearErr
	}
	if m.clearMutate {
		m.cart.Items = nil
	}
	return nil
}

// mockOrderRepo captures every created order and hands out sequential ids.
// failForShop aborts creation for one specific shop.
type mockOrderRepo struct {
	Orders      []*domain.Order
	failForShop string
	err         error
}

func (m *mockOrderRepo) CreateOrder(_ context.Context, order *domain.Order) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if m.failForShop != "" && order.ShopID == m.failForShop {
		return "", fmt.Errorf("write failed for shop %s", order.ShopID)
	}
	m.Orders = append(m.Orders, order)
	id := fmt.Sprintf("order-%d", len(m.Orders))
	order.ID = id
	return id, nil
}

// mockBookingRepo captures every created booking.
type mockBookingRepo struct {
	Bookings []*domain.Booking
	err      error
}

func (m *mockBookingRepo) CreateBooking(_ context.Context, booking *domain.Booking) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.Bookings = append(m.Bookings, booking)
	id := fmt.Sprintf("booking-%d", len(m.Bookings))
	booking.ID = id
	return id, nil
}

// mockShopRepo resolves owners from a fixed map.
type mockShopRepo struct {
	owners map[string]string
	err    error
	Calls  int
}

func (m *mockShopRepo) GetShopOwnerID(_ context.Context, shopID string) (string, error) {
	m.Calls++
	if m.err != nil {
		return "", m.err
	}
	owner, ok := m.owners[shopID]
	if !ok {
		return "", fmt.Errorf("shop %s not found", shopID)
	}
	return owner, nil
}

// mockProductRepo is a stateful in-memory product store: updates are applied
// to the held products so later reads observe earlier writes, the way the
// reconciler's reload-then-rewrite passes do against the real store.
type mockProductRepo struct {
	m        sync.Mutex
	products map[string]*domain.Product

	getErr         error
	updateStockErr error
	GetCalls       int
	StockCalls     int
	VariantCalls   int
	SizeCalls      int
}

func newMockProductRepo(products ...*domain.Product) *mockProductRepo {
	repo := &mockProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (m *mockProductRepo) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.GetCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	product, ok := m.products[id]
	if !ok {
		return nil, errProductMissing
	}
	copied := *product
	return &copied, nil
}

func (m *mockProductRepo) UpdateStock(_ context.Context, id string, stockQuantity, unitsSold int, inStock bool) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.StockCalls++
	if m.updateStockErr != nil {
		return m.updateStockErr
	}
	product, ok := m.products[id]
	if !ok {
		return errProductMissing
	}
	product.StockQuantity = stockQuantity
	product.UnitsSold = unitsSold
	product.InStock = inStock
	return nil
}

func (m *mockProductRepo) UpdateVariants(_ context.Context, id string, variants []domain.ProductVariant) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.VariantCalls++
	product, ok := m.products[id]
	if !ok {
		return errProductMissing
	}
	product.Variants = variants
	return nil
}

func (m *mockProductRepo) UpdateSizeVariants(_ context.Context, id string, sizeVariants []domain.SizeVariant) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.SizeCalls++
	product, ok := m.products[id]
	if !ok {
		return errProductMissing
	}
	product.SizeVariants = sizeVariants
	return nil
}

func (m *mockProductRepo) product(id string) *domain.Product {
	m.m.Lock()
	defer m.m.Unlock()
	return m.products[id]
}

// mockNotifier records accounting refresh attempts.
type mockNotifier struct {
	err        error
	Calls      int
	LastResult *domain.CheckoutResult
}

func (m *mockNotifier) Refresh(_ context.Context, _ string, result *domain.CheckoutResult) error {
	m.Calls++
	m.LastResult = result
	return m.err
}

// newTestCheckoutService creates a fully wired CheckoutService for testing
func newTestCheckoutService(
	identity *mockIdentity,
	carts *mockCartProvider,
	orders *mockOrderRepo,
	bookings *mockBookingRepo,
	shops *mockShopRepo,
	products *mockProductRepo,
	notifier *mockNotifier,
) *CheckoutService {
	return NewCheckoutService(
		identity,
		carts,
		orders,
		bookings,
		shops,
		NewInventoryReconciler(products),
		notifier,
	)
}
