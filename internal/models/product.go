package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductVariant is one sellable combination of attribute values with its
// own price. Attributes map attribute name to value (e.g. color -> red).
type ProductVariant struct {
	Attributes   map[string]string `bson:"attributes" json:"attributes"`
	SKU          string            `bson:"sku,omitempty" json:"sku,omitempty"`
	Price        Money             `bson:"price" json:"price"`
	ComparePrice Money             `bson:"comparePrice,omitempty" json:"comparePrice,omitempty"`
	Stock        int               `bson:"stock" json:"stock"`
}

// BulkRule grants a percentage discount once the ordered quantity reaches
// MinQty. Rules with the largest qualifying MinQty win.
type BulkRule struct {
	MinQty          int     `bson:"minQty" json:"minQty"`
	DiscountPercent float64 `bson:"discountPercent" json:"discountPercent"`
}

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	SKU          string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Price        Money              `bson:"price" json:"price"`
	ComparePrice Money              `bson:"comparePrice,omitempty" json:"comparePrice,omitempty"`
	CostPrice    Money              `bson:"costPrice,omitempty" json:"costPrice,omitempty"`
	Category     StringList         `bson:"category" json:"category"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Variants     []ProductVariant   `bson:"variants,omitempty" json:"variants,omitempty"`
	BulkPricing  []BulkRule         `bson:"bulkPricing,omitempty" json:"bulkPricing,omitempty"`
	Stock        int                `bson:"stock" json:"stock"`
	InStock      bool               `bson:"-" json:"inStock"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	IsDeleted    bool               `bson:"isDeleted" json:"isDeleted,omitempty"`
	DeletedAt    *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
