package handlers

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/musaver/homesadmin/internal/models"
)

// formatPrice renders an amount with exactly two decimal digits and no
// currency symbol.
func formatPrice(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		amount = 0
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// isValidPrice reports whether value is a finite non-negative number.
func isValidPrice(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0) && value >= 0
}

// sanitizePrice coerces a loosely typed amount into a valid price,
// falling back to 0 on anything unparsable.
func sanitizePrice(value interface{}) float64 {
	switch typed := value.(type) {
	case nil:
		return 0
	case float64:
		if !isValidPrice(typed) {
			return 0
		}
		return typed
	case float32:
		return sanitizePrice(float64(typed))
	case int:
		return sanitizePrice(float64(typed))
	case int32:
		return sanitizePrice(float64(typed))
	case int64:
		return sanitizePrice(float64(typed))
	case models.Money:
		return sanitizePrice(float64(typed))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil {
			return 0
		}
		return sanitizePrice(parsed)
	default:
		return 0
	}
}

// discountPercent returns the rounded percentage saved against the compare
// price, or 0 when there is no discount to show.
func discountPercent(price, comparePrice float64) int {
	if comparePrice <= 0 || comparePrice <= price {
		return 0
	}
	return int(math.Round(((comparePrice - price) / comparePrice) * 100))
}

// profitMarginPercent returns the rounded margin over cost, or 0 when the
// cost or price makes the figure meaningless.
func profitMarginPercent(price, costPrice float64) int {
	if costPrice <= 0 || price <= 0 {
		return 0
	}
	return int(math.Round(((price - costPrice) / price) * 100))
}

type priceInput struct {
	Price        float64
	ComparePrice float64
	CostPrice    float64
}

type priceView struct {
	Price           string `json:"price"`
	OriginalPrice   string `json:"originalPrice,omitempty"`
	DiscountPercent int    `json:"discountPercent"`
	ProfitMargin    int    `json:"profitMargin"`
	IsOnSale        bool   `json:"isOnSale"`
	Savings         string `json:"savings,omitempty"`
}

// buildPriceDisplay composes the formatted price bundle used by product
// listings. The original price and savings are only present on sale.
func buildPriceDisplay(in priceInput) priceView {
	price := sanitizePrice(in.Price)
	compare := sanitizePrice(in.ComparePrice)
	cost := sanitizePrice(in.CostPrice)

	view := priceView{
		Price:           formatPrice(price),
		DiscountPercent: discountPercent(price, compare),
		ProfitMargin:    profitMarginPercent(price, cost),
		IsOnSale:        compare > price,
	}
	if view.IsOnSale {
		view.OriginalPrice = formatPrice(compare)
		view.Savings = formatPrice(compare - price)
	}
	return view
}

// generateAttributeKey canonicalizes an attribute mapping into a sorted
// pipe-delimited key ("color:red|size:m") for variant matrix lookups.
func generateAttributeKey(attributes map[string]string) string {
	if len(attributes) == 0 {
		return ""
	}

	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+":"+attributes[name])
	}
	return strings.Join(pairs, "|")
}

// parseAttributeKey is the inverse of generateAttributeKey for keys whose
// names and values are free of ':' and '|'.
func parseAttributeKey(key string) map[string]string {
	attributes := map[string]string{}
	if strings.TrimSpace(key) == "" {
		return attributes
	}

	for _, pair := range strings.Split(key, "|") {
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ":", 2)
		if len(parts) != 2 {
			continue
		}
		attributes[parts[0]] = parts[1]
	}
	return attributes
}

type priceRangeView struct {
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	MinFormatted string  `json:"minFormatted"`
	MaxFormatted string  `json:"maxFormatted"`
	Display      string  `json:"display"`
	HasRange     bool    `json:"hasRange"`
}

// variantPriceRange computes the price spread across a product's variants.
// An empty variant set yields an all-zero result.
func variantPriceRange(variants []models.ProductVariant) priceRangeView {
	view := priceRangeView{
		MinFormatted: formatPrice(0),
		MaxFormatted: formatPrice(0),
		Display:      formatPrice(0),
	}
	if len(variants) == 0 {
		return view
	}

	min := sanitizePrice(variants[0].Price)
	max := min
	for _, variant := range variants[1:] {
		price := sanitizePrice(variant.Price)
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}

	view.Min = min
	view.Max = max
	view.MinFormatted = formatPrice(min)
	view.MaxFormatted = formatPrice(max)
	view.HasRange = min != max
	if view.HasRange {
		view.Display = view.MinFormatted + " - " + view.MaxFormatted
	} else {
		view.Display = view.MinFormatted
	}
	return view
}

// bulkPrice applies the quantity-tier rule with the largest minQty the
// given quantity satisfies. No qualifying rule means no discount.
func bulkPrice(basePrice float64, quantity int, rules []models.BulkRule) float64 {
	base := sanitizePrice(basePrice)
	if quantity <= 0 || len(rules) == 0 {
		return base
	}

	ordered := make([]models.BulkRule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MinQty > ordered[j].MinQty
	})

	for _, rule := range ordered {
		if rule.MinQty <= 0 || quantity < rule.MinQty {
			continue
		}
		discount := rule.DiscountPercent
		if discount < 0 {
			discount = 0
		}
		if discount > 100 {
			discount = 100
		}
		return base * (1 - discount/100)
	}
	return base
}
