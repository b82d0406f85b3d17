package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods offered at checkout.
const (
	PaymentCreditCard     = "Credit Card"
	PaymentDebitCard      = "Debit Card"
	PaymentCashOnDelivery = "Cash on Delivery"
	PaymentDigitalWallet  = "Digital Wallet"
)

// PricedOrder holds every value derived from the current cart. It is always
// recomputed from the cart as a whole, never edited field by field, so no
// stale combination of subtotal and fees can be observed.
type PricedOrder struct {
	Subtotal        decimal.Decimal `json:"subtotal"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	Tax             decimal.Decimal `json:"tax"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"` // full precision
	EstimateMinutes int             `json:"estimate_minutes"`
}

// DisplayTotal rounds the final total to two decimal places. Only the
// displayed amount is rounded; Total keeps full precision internally.
func (p PricedOrder) DisplayTotal() decimal.Decimal {
	return p.Total.Round(2)
}

// SubmitRequest is the checkout payload supplied by the customer.
type SubmitRequest struct {
	Address       string `json:"address" validate:"required"`
	Instructions  string `json:"instructions" validate:"omitempty,max=500"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof='Credit Card' 'Debit Card' 'Cash on Delivery' 'Digital Wallet'"`
}

// OrderRequest is the immutable snapshot handed to the order submission
// service. Once constructed it is never modified; on success the cart that
// produced it is cleared.
type OrderRequest struct {
	OrderID       string      `json:"order_id"`
	SessionID     string      `json:"session_id"`
	Items         []CartLine  `json:"items"`
	Address       string      `json:"address"`
	Instructions  string      `json:"instructions,omitempty"`
	PaymentMethod string      `json:"payment_method"`
	Pricing       PricedOrder `json:"pricing"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderConfirmation is returned to the caller after a successful submission.
// State is always StateSubmitted; the session itself has already reset to
// empty by the time the confirmation is observed.
type OrderConfirmation struct {
	OrderID         string          `json:"order_id"`
	State           string          `json:"state"`
	Total           decimal.Decimal `json:"total"`
	EstimateMinutes int             `json:"estimate_minutes"`
	PlacedAt        time.Time       `json:"placed_at"`
}

// Checkout session states. ReadyToSubmit is a computed gate, not a stored
// flag: it holds whenever the cart is non-empty and an address is present.
const (
	StateEmpty      = "empty"
	StateFilling    = "filling"
	StateSubmitting = "submitting"
	StateSubmitted  = "submitted"
)
