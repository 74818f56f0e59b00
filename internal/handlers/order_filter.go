package handlers

import (
	"strings"
	"time"

	"github.com/musaver/homesadmin/internal/models"
)

// filterAll is the sentinel that disables a status filter.
const filterAll = "all"

// orderFilter describes the list filters applied on the admin orders page.
// Zero values leave the corresponding filter inactive.
type orderFilter struct {
	Query         string
	Status        string
	PaymentStatus string
	StartDate     *time.Time
	EndDate       *time.Time
}

func statusFilterActive(value string) bool {
	return value != "" && !strings.EqualFold(value, filterAll)
}

// matchesSearch reports whether the case-insensitive term occurs in the
// order number, email, shipping first/last name, or any line item's
// product name or SKU.
func matchesSearch(o models.Order, term string) bool {
	contains := func(field string) bool {
		return strings.Contains(strings.ToLower(field), term)
	}

	if contains(o.OrderNumber) || contains(o.Email) {
		return true
	}
	if o.Shipping != nil && (contains(o.Shipping.FirstName) || contains(o.Shipping.LastName)) {
		return true
	}
	for _, item := range o.Items {
		if contains(item.ProductName) || contains(item.SKU) {
			return true
		}
	}
	return false
}

func (f orderFilter) matches(o models.Order) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Query)); term != "" {
		if !matchesSearch(o, term) {
			return false
		}
	}
	if statusFilterActive(f.Status) && o.Status != f.Status {
		return false
	}
	if statusFilterActive(f.PaymentStatus) && o.PaymentStatus != f.PaymentStatus {
		return false
	}
	if f.StartDate != nil && o.CreatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && o.CreatedAt.After(*f.EndDate) {
		return false
	}
	return true
}

// filterOrders applies every active filter as an intersection over the
// given list, preserving input order.
func filterOrders(orders []models.Order, f orderFilter) []models.Order {
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if f.matches(o) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

type orderSummary struct {
	TotalOrders     int     `json:"totalOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingOrders   int     `json:"pendingOrders"`
	CompletedOrders int     `json:"completedOrders"`
}

// summarizeOrders aggregates the filtered list. TotalAmount is already
// normalized at decode time, so missing or malformed amounts count as 0.
func summarizeOrders(orders []models.Order) orderSummary {
	summary := orderSummary{TotalOrders: len(orders)}
	for _, o := range orders {
		summary.TotalRevenue += o.TotalAmount.Float64()
		switch o.Status {
		case models.OrderStatusPending:
			summary.PendingOrders++
		case models.OrderStatusCompleted:
			summary.CompletedOrders++
		}
	}
	return summary
}
