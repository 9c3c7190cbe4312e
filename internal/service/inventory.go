package service

import (
	"context"
	"errors"
	"log"

	"github.com/Nullular/myHustle-WEB-sub004/internal/domain"
	"github.com/Nullular/myHustle-WEB-sub004/internal/repository"
)

// InventoryReconciler applies sold quantities to persisted stock counters.
// Updates are applied strictly one at a time; a failed update is logged and
// skipped so the remaining updates still run. The read-modify-write here is
// not guarded against a concurrent checkout touching the same product, so
// overlapping checkouts can lose an update (known limitation).
type InventoryReconciler struct {
	products repository.ProductRepository
}

func NewInventoryReconciler(products repository.ProductRepository) *InventoryReconciler {
	return &InventoryReconciler{products: products}
}

// Apply processes every update regardless of individual failures. It never
// returns an error: inventory drift is logged, not surfaced to the checkout.
func (r *InventoryReconciler) Apply(ctx context.Context, updates []domain.InventoryUpdate) {
	for _, update := range updates {
		if err := r.applyOne(ctx, update); err != nil {
			log.Printf("error updating inventory for product %s: %v", update.ProductID, err)
		}
	}
}

func (r *InventoryReconciler) applyOne(ctx context.Context, update domain.InventoryUpdate) error {
	product, err := r.products.GetProduct(ctx, update.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			log.Printf("product %s not found, skipping inventory update", update.ProductID)
			return nil
		}
		return err
	}

	newStock := product.StockQuantity - update.QuantitySold
	if newStock < 0 {
		newStock = 0
	}
	newUnitsSold := product.UnitsSold + update.QuantitySold

	if err := r.products.UpdateStock(ctx, update.ProductID, newStock, newUnitsSold, newStock > 0); err != nil {
		return err
	}
	log.Printf("updated inventory for product %s: stock=%d, sold=%d", update.ProductID, newStock, newUnitsSold)

	// Variant counters are reconciled in separate passes against a fresh read
	// of the product. Their failures never undo the stock update above.
	if update.VariantID != "" {
		if err := r.applyVariant(ctx, update.ProductID, update.VariantID, update.QuantitySold); err != nil {
			log.Printf("error updating variant inventory for product %s: %v", update.ProductID, err)
		}
	}

	if update.SizeID != "" {
		if err := r.applySizeVariant(ctx, update.ProductID, update.SizeID, update.QuantitySold); err != nil {
			log.Printf("error updating size variant inventory for product %s: %v", update.ProductID, err)
		}
	}

	return nil
}

func (r *InventoryReconciler) applyVariant(ctx context.Context, productID, variantID string, quantitySold int) error {
	product, err := r.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	variants := make([]domain.ProductVariant, len(product.Variants))
	for i, variant := range product.Variants {
		if variant.ID == variantID {
			remaining := variant.StockQuantity - quantitySold
			// IsActive comes from the raw remainder, before the clamp, so a
			// variant can deactivate one sale before its counter hits zero.
			variant.IsActive = remaining > 0
			if remaining < 0 {
				remaining = 0
			}
			variant.StockQuantity = remaining
		}
		variants[i] = variant
	}

	return r.products.UpdateVariants(ctx, productID, variants)
}

func (r *InventoryReconciler) applySizeVariant(ctx context.Context, productID, sizeID string, quantitySold int) error {
	product, err := r.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	sizeVariants := make([]domain.SizeVariant, len(product.SizeVariants))
	for i, sizeVariant := range product.SizeVariants {
		if sizeVariant.ID == sizeID {
			remaining := sizeVariant.StockQuantity - quantitySold
			sizeVariant.IsActive = remaining > 0
			if remaining < 0 {
				remaining = 0
			}
			sizeVariant.StockQuantity = remaining
		}
		sizeVariants[i] = sizeVariant
	}

	return r.products.UpdateSizeVariants(ctx, productID, sizeVariants)
}
