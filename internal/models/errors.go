package models

import "errors"

// Domain errors. Cart mutation errors leave the cart unchanged; submission
// errors return the checkout session to its previous state with the cart
// preserved so the customer can retry.
var (
	// ErrItemNotFound is returned when an item id does not exist in the catalog.
	ErrItemNotFound = errors.New("item not found in catalog")

	// ErrInvalidQuantity is returned when a caller supplies a negative quantity
	// where the API boundary enforces the strict policy.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrEmptyCart blocks submission of an order with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingAddress blocks submission without a delivery address.
	ErrMissingAddress = errors.New("delivery address is required")

	// ErrSubmissionInProgress rejects a second submit while one is in flight.
	ErrSubmissionInProgress = errors.New("order submission already in progress")

	// ErrCatalogUnavailable is returned when the catalog source cannot be read.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrSubmissionFailed wraps a failure reported by the order submission service.
	ErrSubmissionFailed = errors.New("order submission failed")

	// ErrSubmissionTimeout is returned when the caller's deadline expires
	// while a submission is in flight.
	ErrSubmissionTimeout = errors.New("order submission timed out")
)
