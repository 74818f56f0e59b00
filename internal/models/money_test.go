package models

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestMoneyUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"number", `{"totalAmount": 49.99}`, 49.99},
		{"numeric string", `{"totalAmount": "49.99"}`, 49.99},
		{"integer string", `{"totalAmount": "120"}`, 120},
		{"garbage string", `{"totalAmount": "abc"}`, 0},
		{"null", `{"totalAmount": null}`, 0},
		{"missing", `{}`, 0},
		{"negative", `{"totalAmount": -5}`, 0},
	}
	for _, tt := range tests {
		var doc struct {
			TotalAmount Money `json:"totalAmount"`
		}
		if err := json.Unmarshal([]byte(tt.body), &doc); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", tt.name, err)
		}
		if doc.TotalAmount.Float64() != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, doc.TotalAmount.Float64(), tt.want)
		}
	}
}

func TestMoneyUnmarshalBSON(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
	}{
		{"double", 49.99, 49.99},
		{"int32", int32(30), 30},
		{"int64", int64(75), 75},
		{"numeric string", "19.90", 19.9},
		{"garbage string", "n/a", 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		raw, err := bson.Marshal(bson.M{"amount": tt.value})
		if err != nil {
			t.Fatalf("%s: marshal failed: %v", tt.name, err)
		}

		var doc struct {
			Amount Money `bson:"amount"`
		}
		if err := bson.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", tt.name, err)
		}
		if doc.Amount.Float64() != tt.want {
			t.Fatalf("%s: got %v, want %v", tt.name, doc.Amount.Float64(), tt.want)
		}
	}
}

func TestMoneyMarshalBSONWritesDouble(t *testing.T) {
	raw, err := bson.Marshal(struct {
		Amount Money `bson:"amount"`
	}{Amount: Money(12.5)})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc struct {
		Amount float64 `bson:"amount"`
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if doc.Amount != 12.5 {
		t.Fatalf("expected 12.5, got %v", doc.Amount)
	}
}

func TestOrderDecodeWithStringTotal(t *testing.T) {
	raw, err := bson.Marshal(bson.M{
		"orderNumber": "ORD-1",
		"status":      OrderStatusPending,
		"totalAmount": "49.99",
		"subtotal":    45,
		"items":       []bson.M{},
	})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var order Order
	if err := bson.Unmarshal(raw, &order); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if order.TotalAmount.Float64() != 49.99 {
		t.Fatalf("expected string total to coerce to 49.99, got %v", order.TotalAmount.Float64())
	}
	if order.Subtotal.Float64() != 45 {
		t.Fatalf("expected int subtotal to coerce to 45, got %v", order.Subtotal.Float64())
	}
}
