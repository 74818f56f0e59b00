package handlers

import (
	"reflect"
	"testing"

	"github.com/musaver/homesadmin/internal/models"
)

func TestDiscountPercent(t *testing.T) {
	if got := discountPercent(100, 80); got != 0 {
		t.Fatalf("expected no discount when compare price is below price, got %d", got)
	}
	if got := discountPercent(80, 100); got != 20 {
		t.Fatalf("expected 20%% discount, got %d", got)
	}
	if got := discountPercent(80, 0); got != 0 {
		t.Fatalf("expected 0 for absent compare price, got %d", got)
	}
}

func TestProfitMarginPercent(t *testing.T) {
	if got := profitMarginPercent(100, 60); got != 40 {
		t.Fatalf("expected 40%% margin, got %d", got)
	}
	if got := profitMarginPercent(100, 0); got != 0 {
		t.Fatalf("expected 0 margin without cost price, got %d", got)
	}
	if got := profitMarginPercent(0, 10); got != 0 {
		t.Fatalf("expected 0 margin for zero price, got %d", got)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0.00"},
		{12.5, "12.50"},
		{1234.567, "1234.57"},
		{-3, "0.00"},
	}
	for _, tt := range tests {
		if got := formatPrice(tt.amount); got != tt.want {
			t.Fatalf("formatPrice(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestSanitizePrice(t *testing.T) {
	if got := sanitizePrice("abc"); got != 0 {
		t.Fatalf("expected 0 for unparsable string, got %v", got)
	}
	if got := sanitizePrice("12.5"); got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
	if got := sanitizePrice(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %v", got)
	}
	if got := sanitizePrice(-4.0); got != 0 {
		t.Fatalf("expected negative amounts to normalize to 0, got %v", got)
	}
	if got := sanitizePrice(models.Money(9.99)); got != 9.99 {
		t.Fatalf("expected 9.99, got %v", got)
	}
}

func TestBuildPriceDisplayOnSale(t *testing.T) {
	view := buildPriceDisplay(priceInput{Price: 80, ComparePrice: 100, CostPrice: 60})
	if view.Price != "80.00" || view.OriginalPrice != "100.00" {
		t.Fatalf("unexpected formatted prices: %+v", view)
	}
	if !view.IsOnSale || view.Savings != "20.00" {
		t.Fatalf("expected on-sale view with savings 20.00, got %+v", view)
	}
	if view.DiscountPercent != 20 || view.ProfitMargin != 25 {
		t.Fatalf("unexpected percentages: %+v", view)
	}
}

func TestBuildPriceDisplayNotOnSale(t *testing.T) {
	view := buildPriceDisplay(priceInput{Price: 100, ComparePrice: 0, CostPrice: 0})
	if view.IsOnSale || view.OriginalPrice != "" || view.Savings != "" {
		t.Fatalf("expected no sale fields, got %+v", view)
	}
}

func TestAttributeKeyRoundTrip(t *testing.T) {
	tests := []map[string]string{
		{},
		{"color": "red"},
		{"size": "m", "color": "red"},
		{"material": "oak", "finish": "matte", "width": "120"},
	}
	for _, attrs := range tests {
		parsed := parseAttributeKey(generateAttributeKey(attrs))
		if !reflect.DeepEqual(parsed, attrs) {
			t.Fatalf("round trip mismatch: %v -> %v", attrs, parsed)
		}
	}
}

func TestGenerateAttributeKeyIsSorted(t *testing.T) {
	key := generateAttributeKey(map[string]string{"size": "m", "color": "red"})
	if key != "color:red|size:m" {
		t.Fatalf("expected canonical sorted key, got %q", key)
	}
}

func TestVariantPriceRangeEmpty(t *testing.T) {
	view := variantPriceRange(nil)
	if view.Min != 0 || view.Max != 0 || view.HasRange {
		t.Fatalf("expected all-zero result, got %+v", view)
	}
}

func TestVariantPriceRangeSingleValue(t *testing.T) {
	view := variantPriceRange([]models.ProductVariant{
		{Price: models.Money(10)},
		{Price: models.Money(10)},
	})
	if view.HasRange {
		t.Fatalf("expected no range for equal prices, got %+v", view)
	}
	if view.Display != "10.00" {
		t.Fatalf("expected single value display, got %q", view.Display)
	}
}

func TestVariantPriceRangeSpread(t *testing.T) {
	view := variantPriceRange([]models.ProductVariant{
		{Price: models.Money(5)},
		{Price: models.Money(15)},
	})
	if view.Min != 5 || view.Max != 15 || !view.HasRange {
		t.Fatalf("unexpected range: %+v", view)
	}
	if view.Display != "5.00 - 15.00" {
		t.Fatalf("unexpected display: %q", view.Display)
	}
}

func TestBulkPricePicksLargestQualifyingTier(t *testing.T) {
	rules := []models.BulkRule{
		{MinQty: 10, DiscountPercent: 20},
		{MinQty: 3, DiscountPercent: 10},
	}
	if got := bulkPrice(100, 5, rules); got != 90 {
		t.Fatalf("expected minQty 3 tier to apply, got %v", got)
	}
	if got := bulkPrice(100, 12, rules); got != 80 {
		t.Fatalf("expected minQty 10 tier to apply, got %v", got)
	}
	if got := bulkPrice(100, 2, rules); got != 100 {
		t.Fatalf("expected no discount below every tier, got %v", got)
	}
}

func TestBulkPriceNoRules(t *testing.T) {
	if got := bulkPrice(50, 100, nil); got != 50 {
		t.Fatalf("expected base price without rules, got %v", got)
	}
}
