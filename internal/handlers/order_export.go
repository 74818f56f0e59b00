package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/musaver/homesadmin/internal/models"
)

var orderExportHeader = []string{
	"Order Number",
	"Customer Name",
	"Email",
	"Phone",
	"Status",
	"Payment Status",
	"Subtotal",
	"Tax Amount",
	"Shipping Amount",
	"Discount Amount",
	"Total Amount",
	"Currency",
	"Shipping Address",
	"Order Date",
	"Items Count",
	"Items Detail",
}

func customerName(o models.Order) string {
	if o.Shipping == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(o.Shipping.FirstName) + " " + strings.TrimSpace(o.Shipping.LastName))
}

func formatShippingAddress(a *models.ShippingAddress) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 6)
	for _, part := range []string{a.Address1, a.Address2, a.City, a.State, a.PostalCode, a.Country} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, ", ")
}

// formatItemsDetail flattens an order's line items into the export summary,
// e.g. `Shelf (Oak) x2 (Addons: Assembly, Wax) | Lamp x1`.
func formatItemsDetail(items []models.OrderItem, catalog map[string]models.Addon) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		var b strings.Builder
		b.WriteString(item.ProductName)
		if variant := strings.TrimSpace(item.VariantTitle); variant != "" {
			b.WriteString(" (" + variant + ")")
		}
		fmt.Fprintf(&b, " x%d", item.Quantity)
		if len(item.Addons) > 0 {
			titles := addonTitles(item.Addons, catalog)
			b.WriteString(" (Addons: " + strings.Join(titles, ", ") + ")")
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, " | ")
}

func orderExportRow(o models.Order, catalog map[string]models.Addon) []string {
	return []string{
		o.OrderNumber,
		customerName(o),
		o.Email,
		o.Phone,
		o.Status,
		o.PaymentStatus,
		formatPrice(o.Subtotal.Float64()),
		formatPrice(o.TaxAmount.Float64()),
		formatPrice(o.ShippingAmount.Float64()),
		formatPrice(o.DiscountAmount.Float64()),
		formatPrice(o.TotalAmount.Float64()),
		o.Currency,
		formatShippingAddress(o.Shipping),
		o.CreatedAt.Format("2006-01-02 15:04:05"),
		strconv.Itoa(len(o.Items)),
		formatItemsDetail(o.Items, catalog),
	}
}

// writeOrdersCSV serializes the filtered order list: one fixed header row
// and one row per order. encoding/csv handles quote escaping.
func writeOrdersCSV(w io.Writer, orders []models.Order, catalog map[string]models.Addon) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(orderExportHeader); err != nil {
		return err
	}
	for _, o := range orders {
		if err := writer.Write(orderExportRow(o, catalog)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
