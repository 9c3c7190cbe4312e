package service

import "errors"

var (
	// ErrNotAuthenticated is returned before anything is persisted when there
	// is no current user.
	ErrNotAuthenticated = errors.New("user not authenticated")

	// ErrEmptyCart is returned before anything is persisted when the cart has
	// no lines.
	ErrEmptyCart = errors.New("cart is empty")
)
