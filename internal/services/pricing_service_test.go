package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"warung/internal/models"
	"warung/internal/services"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(id int, price string, qty, prep int) models.CartLine {
	return models.CartLine{
		ItemID:      id,
		Name:        "item",
		UnitPrice:   dec(price),
		PrepMinutes: prep,
		Quantity:    qty,
	}
}

func TestPricingService_Subtotal(t *testing.T) {
	pricing := services.NewPricingService(services.DefaultPricingConfig())

	lines := []models.CartLine{
		line(1, "12.99", 2, 20),
		line(3, "9.99", 1, 15),
	}

	assert.True(t, pricing.Subtotal(lines).Equal(dec("35.97")))
	assert.True(t, pricing.Subtotal(nil).Equal(decimal.Zero))

	// Subtotal is commutative over line order.
	reversed := []models.CartLine{lines[1], lines[0]}
	assert.True(t, pricing.Subtotal(reversed).Equal(pricing.Subtotal(lines)))
}

func TestPricingService_DeliveryFeeBoundary(t *testing.T) {
	pricing := services.NewPricingService(services.DefaultPricingConfig())

	// Free delivery is strictly above the threshold: exactly 25.00 still pays.
	assert.True(t, pricing.DeliveryFee(dec("25.00")).Equal(dec("2.99")))
	assert.True(t, pricing.DeliveryFee(dec("25.01")).Equal(decimal.Zero))
	assert.True(t, pricing.DeliveryFee(dec("0")).Equal(dec("2.99")))
}

func TestPricingService_DiscountBoundary(t *testing.T) {
	pricing := services.NewPricingService(services.DefaultPricingConfig())

	// Discount fires at or above the threshold: exactly 50.00 earns it.
	assert.True(t, pricing.Discount(dec("49.99")).Equal(decimal.Zero))
	assert.True(t, pricing.Discount(dec("50.00")).Equal(dec("5.00")), "got %s", pricing.Discount(dec("50.00")))
	assert.True(t, pricing.Discount(dec("60.00")).Equal(dec("6.00")))
}

func TestPricingService_Tax(t *testing.T) {
	pricing := services.NewPricingService(services.DefaultPricingConfig())

	assert.True(t, pricing.Tax(dec("35.97")).Equal(dec("2.8776")))
}

func TestPricingService_FullScenario(t *testing.T) {
	pricing := services.NewPricingService(services.DefaultPricingConfig())

	lines := []models.CartLine{
		line(1, "12.99", 2, 20),
		line(3, "9.99", 1, 15),
	}

	priced := pricing.Price(lines)

	assert.True(t, priced.Subtotal.Equal(dec("35.97")))
	assert.True(t, priced.DeliveryFee.Equal(decimal.Zero), "subtotal above 25 rides free")
	assert.True(t, priced.Tax.Equal(dec("2.8776")))
	assert.True(t, priced.Discount.Equal(decimal.Zero))
	assert.True(t, priced.Total.Equal(dec("38.8476")), "total keeps full precision, got %s", priced.Total)
	assert.True(t, priced.DisplayTotal().Equal(dec("38.85")), "only the displayed total is rounded")
}

func TestPricingService_DiscountAndFreeDeliveryTogether(t *testing.T) {
	pricing := services.NewPricingService(services.DefaultPricingConfig())

	// The two thresholds are independent; both apply at once.
	lines := []models.CartLine{line(9, "15.99", 4, 22)} // subtotal 63.96
	priced := pricing.Price(lines)

	assert.True(t, priced.Subtotal.Equal(dec("63.96")))
	assert.True(t, priced.DeliveryFee.Equal(decimal.Zero))
	assert.True(t, priced.Discount.Equal(dec("6.396")))
	assert.True(t, priced.Tax.Equal(dec("5.1168")))
	assert.True(t, priced.Total.Equal(dec("62.6808")), "got %s", priced.Total)
}

func TestPricingService_EstimateMinutes(t *testing.T) {
	pricing := services.NewPricingService(services.DefaultPricingConfig())

	// Empty cart gets the baseline estimate.
	assert.Equal(t, 30, pricing.EstimateMinutes(nil))

	// Max prep plus transit, not the sum: the kitchen works in parallel.
	lines := []models.CartLine{
		line(1, "12.99", 2, 20),
		line(7, "8.99", 3, 8),
	}
	assert.Equal(t, 35, pricing.EstimateMinutes(lines))
}
