package service

import "github.com/Nullular/myHustle-WEB-sub004/internal/domain"

// shopGroup is one shop's product lines within a single checkout.
type shopGroup struct {
	ShopID string
	Items  []domain.CartItem
}

// partitionCart splits a cart snapshot into product lines grouped by shop and
// the ungrouped service lines. Shop groups come out in first-seen line order,
// so the result is deterministic for a given snapshot. Lines with an unknown
// type are dropped.
func partitionCart(items []domain.CartItem) ([]shopGroup, []domain.CartItem) {
	var groups []shopGroup
	var services []domain.CartItem
	index := make(map[string]int)

	for _, item := range items {
		switch item.Type {
		case domain.CartItemTypeProduct:
			i, ok := index[item.ShopID]
			if !ok {
				groups = append(groups, shopGroup{ShopID: item.ShopID})
				i = len(groups) - 1
				index[item.ShopID] = i
			}
			groups[i].Items = append(groups[i].Items, item)
		case domain.CartItemTypeService:
			services = append(services, item)
		}
	}

	return groups, services
}
