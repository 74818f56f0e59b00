package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses as stored on the order document.
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed,
		PaymentStatusRefunded:
		return true
	}
	return false
}

// ShippingAddress holds the optional delivery details captured at checkout.
type ShippingAddress struct {
	FirstName  string `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName   string `bson:"lastName,omitempty" json:"lastName,omitempty"`
	Address1   string `bson:"address1,omitempty" json:"address1,omitempty"`
	Address2   string `bson:"address2,omitempty" json:"address2,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	State      string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// OrderItem represents a single line within an order.
type OrderItem struct {
	ProductName  string    `bson:"productName" json:"productName"`
	VariantTitle string    `bson:"variantTitle,omitempty" json:"variantTitle,omitempty"`
	SKU          string    `bson:"sku,omitempty" json:"sku,omitempty"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	Price        Money     `bson:"price" json:"price"`
	TotalPrice   Money     `bson:"totalPrice" json:"totalPrice"`
	Addons       AddonList `bson:"addons,omitempty" json:"addons,omitempty"`
}

// Order defines the persisted order document. totalAmount is conceptually
// subtotal + tax + shipping - discount; the stored value is authoritative
// and is consumed as-is.
type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber    string             `bson:"orderNumber" json:"orderNumber"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status         string             `bson:"status" json:"status"`
	PaymentStatus  string             `bson:"paymentStatus" json:"paymentStatus"`
	Subtotal       Money              `bson:"subtotal" json:"subtotal"`
	TaxAmount      Money              `bson:"taxAmount" json:"taxAmount"`
	ShippingAmount Money              `bson:"shippingAmount" json:"shippingAmount"`
	DiscountAmount Money              `bson:"discountAmount" json:"discountAmount"`
	TotalAmount    Money              `bson:"totalAmount" json:"totalAmount"`
	Currency       string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Shipping       *ShippingAddress   `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	Items          []OrderItem        `bson:"items" json:"items"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
