package handlers

import (
	"testing"
	"time"

	"github.com/musaver/homesadmin/internal/models"
)

func testOrders() []models.Order {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Order{
		{
			OrderNumber:   "ORD-1001",
			Email:         "alex@example.com",
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			TotalAmount:   models.Money(100),
			Shipping:      &models.ShippingAddress{FirstName: "Alex", LastName: "Morgan"},
			Items: []models.OrderItem{
				{ProductName: "Oak Shelf", SKU: "OAK-120", Quantity: 1},
			},
			CreatedAt: base,
		},
		{
			OrderNumber:   "ORD-1002",
			Email:         "sam@example.com",
			Status:        models.OrderStatusCompleted,
			PaymentStatus: models.PaymentStatusPaid,
			TotalAmount:   models.Money(250.5),
			Items: []models.OrderItem{
				{ProductName: "Walnut Desk", SKU: "WAL-200", Quantity: 2},
			},
			CreatedAt: base.AddDate(0, 0, 2),
		},
		{
			OrderNumber:   "ORD-1003",
			Email:         "kim@example.com",
			Status:        models.OrderStatusCompleted,
			PaymentStatus: models.PaymentStatusRefunded,
			TotalAmount:   models.Money(0),
			Items: []models.OrderItem{
				{ProductName: "Desk Lamp", SKU: "LAMP-10", Quantity: 1},
			},
			CreatedAt: base.AddDate(0, 0, 5),
		},
	}
}

func TestFilterOrdersByStatus(t *testing.T) {
	filtered := filterOrders(testOrders(), orderFilter{Status: models.OrderStatusCompleted})
	if len(filtered) != 2 {
		t.Fatalf("expected 2 completed orders, got %d", len(filtered))
	}
	for _, o := range filtered {
		if o.Status != models.OrderStatusCompleted {
			t.Fatalf("unexpected status %q in filtered set", o.Status)
		}
	}

	summary := summarizeOrders(filtered)
	if summary.CompletedOrders != 2 || summary.PendingOrders != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestFilterOrdersAllSentinel(t *testing.T) {
	orders := testOrders()
	for _, sentinel := range []string{"", "all", "ALL"} {
		filtered := filterOrders(orders, orderFilter{Status: sentinel, PaymentStatus: sentinel})
		if len(filtered) != len(orders) {
			t.Fatalf("sentinel %q should disable the filter, got %d orders", sentinel, len(filtered))
		}
	}
}

func TestFilterOrdersSearchFields(t *testing.T) {
	orders := testOrders()
	tests := []struct {
		query string
		want  string
	}{
		{"ord-1002", "ORD-1002"},
		{"kim@", "ORD-1003"},
		{"morgan", "ORD-1001"},
		{"walnut", "ORD-1002"},
		{"LAMP-10", "ORD-1003"},
	}
	for _, tt := range tests {
		filtered := filterOrders(orders, orderFilter{Query: tt.query})
		if len(filtered) != 1 || filtered[0].OrderNumber != tt.want {
			t.Fatalf("query %q: expected only %s, got %d results", tt.query, tt.want, len(filtered))
		}
	}

	if got := filterOrders(orders, orderFilter{Query: "no-such-term"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilterOrdersIntersection(t *testing.T) {
	filtered := filterOrders(testOrders(), orderFilter{
		Query:         "desk",
		Status:        models.OrderStatusCompleted,
		PaymentStatus: models.PaymentStatusPaid,
	})
	if len(filtered) != 1 || filtered[0].OrderNumber != "ORD-1002" {
		t.Fatalf("expected only ORD-1002 to satisfy every filter, got %d results", len(filtered))
	}
}

func TestFilterOrdersDateRange(t *testing.T) {
	orders := testOrders()
	start := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	filtered := filterOrders(orders, orderFilter{StartDate: &start, EndDate: &end})
	if len(filtered) != 1 || filtered[0].OrderNumber != "ORD-1002" {
		t.Fatalf("expected only ORD-1002 inside the range, got %d results", len(filtered))
	}

	// Boundary timestamps are inclusive.
	exact := orders[1].CreatedAt
	filtered = filterOrders(orders, orderFilter{StartDate: &exact, EndDate: &exact})
	if len(filtered) != 1 || filtered[0].OrderNumber != "ORD-1002" {
		t.Fatalf("expected inclusive boundary match, got %d results", len(filtered))
	}
}

func TestSummarizeOrders(t *testing.T) {
	summary := summarizeOrders(testOrders())
	if summary.TotalOrders != 3 {
		t.Fatalf("expected 3 orders, got %d", summary.TotalOrders)
	}
	if summary.TotalRevenue != 350.5 {
		t.Fatalf("expected revenue 350.5, got %v", summary.TotalRevenue)
	}
	if summary.PendingOrders != 1 || summary.CompletedOrders != 2 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
}

func TestSummarizeOrdersEmpty(t *testing.T) {
	summary := summarizeOrders(nil)
	if summary.TotalOrders != 0 || summary.TotalRevenue != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}
