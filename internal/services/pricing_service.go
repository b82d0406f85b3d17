package services

import (
	"github.com/shopspring/decimal"

	"warung/internal/models"
)

// PricingConfig holds the fee, tax and discount constants. The thresholds
// are independent of each other: an order can earn free delivery and the
// discount at the same time.
type PricingConfig struct {
	FreeDeliveryThreshold decimal.Decimal // free delivery strictly above this subtotal
	DeliveryFee           decimal.Decimal
	TaxRate               decimal.Decimal // applied to subtotal only
	DiscountThreshold     decimal.Decimal // discount at or above this subtotal
	DiscountRate          decimal.Decimal
	TransitMinutes        int // fixed delivery transit time added to prep
	EmptyEstimateMinutes  int // baseline estimate for an empty cart
}

// DefaultPricingConfig returns the standard pricing constants.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		FreeDeliveryThreshold: decimal.RequireFromString("25.00"),
		DeliveryFee:           decimal.RequireFromString("2.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
		DiscountThreshold:     decimal.RequireFromString("50.00"),
		DiscountRate:          decimal.RequireFromString("0.10"),
		TransitMinutes:        15,
		EmptyEstimateMinutes:  30,
	}
}

// PricingService derives order totals from cart lines. It is stateless:
// every value is a pure function of the lines and the config, cheap enough
// to recompute on every cart mutation.
type PricingService struct {
	cfg PricingConfig
}

// NewPricingService creates a new PricingService.
func NewPricingService(cfg PricingConfig) *PricingService {
	return &PricingService{
		cfg: cfg,
	}
}

// Subtotal sums unit price times quantity over all lines, exactly.
func (s *PricingService) Subtotal(lines []models.CartLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.LineTotal())
	}
	return subtotal
}

// DeliveryFee is waived when the subtotal is strictly above the free
// delivery threshold; a subtotal of exactly 25.00 still pays the fee.
func (s *PricingService) DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(s.cfg.FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return s.cfg.DeliveryFee
}

// Tax applies the flat rate to the subtotal only, never to the delivery fee
// and never after the discount.
func (s *PricingService) Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(s.cfg.TaxRate)
}

// Discount applies at or above the discount threshold: exactly 50.00 earns it.
func (s *PricingService) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(s.cfg.DiscountThreshold) {
		return subtotal.Mul(s.cfg.DiscountRate)
	}
	return decimal.Zero
}

// EstimateMinutes is the slowest line's prep time plus fixed transit time.
// Max rather than sum: the kitchen preps lines in parallel. An empty cart
// gets the baseline estimate.
func (s *PricingService) EstimateMinutes(lines []models.CartLine) int {
	if len(lines) == 0 {
		return s.cfg.EmptyEstimateMinutes
	}
	maxPrep := 0
	for _, line := range lines {
		if line.PrepMinutes > maxPrep {
			maxPrep = line.PrepMinutes
		}
	}
	return maxPrep + s.cfg.TransitMinutes
}

// Price computes every derived value in one shot. Each quantity is derived
// from the subtotal, then summed at full precision; only DisplayTotal rounds.
func (s *PricingService) Price(lines []models.CartLine) models.PricedOrder {
	subtotal := s.Subtotal(lines)
	fee := s.DeliveryFee(subtotal)
	tax := s.Tax(subtotal)
	discount := s.Discount(subtotal)

	return models.PricedOrder{
		Subtotal:        subtotal,
		DeliveryFee:     fee,
		Tax:             tax,
		Discount:        discount,
		Total:           subtotal.Add(fee).Add(tax).Sub(discount),
		EstimateMinutes: s.EstimateMinutes(lines),
	}
}
