package handlers

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musaver/homesadmin/internal/models"
)

/* =======================
   REQUEST MODELS
======================= */

type ProductCreateRequest struct {
	Name         string                  `json:"name" binding:"required"`
	Slug         *string                 `json:"slug"`
	SKU          string                  `json:"sku"`
	Price        float64                 `json:"price" binding:"required"`
	ComparePrice *float64                `json:"comparePrice"`
	CostPrice    *float64                `json:"costPrice"`
	Category     []string                `json:"category"`
	Description  string                  `json:"description"`
	Variants     []models.ProductVariant `json:"variants"`
	BulkPricing  []models.BulkRule       `json:"bulkPricing"`
	Stock        *int                    `json:"stock"`
	IsActive     *bool                   `json:"isActive"`
}

/* =======================
   HELPERS
======================= */

func normalizeCategories(values []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)

	for _, v := range values {
		name := strings.TrimSpace(v)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// validateComparePrice enforces that a compare-at price, when present, is
// strictly above the selling price.
func validateComparePrice(price, comparePrice float64) error {
	if comparePrice == 0 {
		return nil
	}
	if comparePrice <= price {
		return fmt.Errorf("comparePrice must be greater than price")
	}
	return nil
}

func validateBulkRules(rules []models.BulkRule) error {
	for _, rule := range rules {
		if rule.MinQty <= 0 {
			return fmt.Errorf("bulk rule minQty must be greater than 0")
		}
		if rule.DiscountPercent < 0 || rule.DiscountPercent > 100 {
			return fmt.Errorf("bulk rule discountPercent must be between 0 and 100")
		}
	}
	return nil
}

// productView decorates a product with the formatted price bundle and,
// when variants exist, their price range.
type productView struct {
	models.Product
	Pricing    priceView       `json:"pricing"`
	PriceRange *priceRangeView `json:"priceRange,omitempty"`
}

func buildProductView(p models.Product) productView {
	p.InStock = p.Stock > 0

	view := productView{
		Product: p,
		Pricing: buildPriceDisplay(priceInput{
			Price:        p.Price.Float64(),
			ComparePrice: p.ComparePrice.Float64(),
			CostPrice:    p.CostPrice.Float64(),
		}),
	}
	if len(p.Variants) > 0 {
		r := variantPriceRange(p.Variants)
		view.PriceRange = &r
	}
	return view
}

/* =======================
   GET – LIST
======================= */

func GetProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		page, limit, err := parsePaginationParams(
			c.Query("page"),
			c.Query("limit"),
		)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		filter := bson.M{
			"isDeleted": bson.M{"$ne": true},
		}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = bson.M{"$in": []string{category}}
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": search, "$options": "i"}},
				{"sku": bson.M{"$regex": search, "$options": "i"}},
				{"slug": bson.M{"$regex": search, "$options": "i"}},
				{"description": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		if isActive := strings.TrimSpace(c.Query("isActive")); isActive != "" {
			filter["isActive"] = strings.EqualFold(isActive, "true")
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("products").CountDocuments(ctx, filter)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		totalPages := int64(0)
		if total > 0 {
			totalPages = int64(math.Ceil(float64(total) / float64(limit)))
		}

		opts := options.Find().
			SetSkip((page - 1) * limit).
			SetLimit(limit).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		var products []models.Product
		if err := cursor.All(ctx, &products); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		views := make([]productView, 0, len(products))
		for _, p := range products {
			views = append(views, buildProductView(p))
		}

		c.JSON(http.StatusOK, gin.H{
			"data": views,
			"pagination": gin.H{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"totalPages": totalPages,
			},
		})
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			respondWithError(c, http.StatusBadRequest, route, "name required")
			return
		}

		if !isValidPrice(req.Price) || req.Price <= 0 {
			respondWithError(c, http.StatusBadRequest, route, "invalid price")
			return
		}

		comparePrice := 0.0
		if req.ComparePrice != nil {
			comparePrice = sanitizePrice(*req.ComparePrice)
		}
		if err := validateComparePrice(req.Price, comparePrice); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		costPrice := 0.0
		if req.CostPrice != nil {
			costPrice = sanitizePrice(*req.CostPrice)
		}

		if err := validateBulkRules(req.BulkPricing); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		slug := generateSlug(name)
		if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
			slug = strings.TrimSpace(*req.Slug)
		}
		if !isValidSlug(slug) {
			respondWithError(c, http.StatusBadRequest, route, fmt.Sprintf("invalid slug: %s", slug))
			return
		}

		stock := 0
		if req.Stock != nil {
			if *req.Stock < 0 {
				respondWithError(c, http.StatusBadRequest, route, "stock must be zero or greater")
				return
			}
			stock = *req.Stock
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("products").CountDocuments(ctx, bson.M{
			"slug":      slug,
			"isDeleted": bson.M{"$ne": true},
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if count > 0 {
			respondWithError(c, http.StatusConflict, route, "slug already exists")
			return
		}

		product := models.Product{
			Name:         name,
			Slug:         slug,
			SKU:          strings.TrimSpace(req.SKU),
			Price:        models.Money(req.Price),
			ComparePrice: models.Money(comparePrice),
			CostPrice:    models.Money(costPrice),
			Category:     models.StringList(normalizeCategories(req.Category)),
			Description:  strings.TrimSpace(req.Description),
			Variants:     req.Variants,
			BulkPricing:  req.BulkPricing,
			Stock:        stock,
			InStock:      stock > 0,
			IsActive:     isActive,
			IsDeleted:    false,
			CreatedAt:    time.Now(),
		}

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			log.Printf("[%s] insert failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		product.ID = res.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusCreated, buildProductView(product))
	}
}

/* =======================
   PRICE QUOTE
======================= */

// QuoteProductPrice serves GET /api/products/:id/price. The attributes
// query parameter is a pipe-delimited attribute key selecting a variant;
// quantity selects the bulk pricing tier.
func QuoteProductPrice(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:id/price"
		defer handlePanic(c, route)

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		quantity := 1
		if raw := strings.TrimSpace(c.Query("quantity")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				respondWithError(c, http.StatusBadRequest, route, "invalid quantity")
				return
			}
			quantity = parsed
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err = db.Collection("products").FindOne(ctx, bson.M{
			"_id":       id,
			"isDeleted": bson.M{"$ne": true},
		}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		unitPrice := product.Price.Float64()
		comparePrice := product.ComparePrice.Float64()
		attributeKey := ""

		if raw := strings.TrimSpace(c.Query("attributes")); raw != "" {
			// Re-generate from the parsed map so unordered keys still
			// match the canonical form.
			attributeKey = generateAttributeKey(parseAttributeKey(raw))

			matched := false
			for _, variant := range product.Variants {
				if generateAttributeKey(variant.Attributes) == attributeKey {
					unitPrice = variant.Price.Float64()
					comparePrice = variant.ComparePrice.Float64()
					matched = true
					break
				}
			}
			if !matched {
				respondWithError(c, http.StatusNotFound, route, fmt.Sprintf("no variant for attributes: %s", attributeKey))
				return
			}
		}

		discounted := bulkPrice(unitPrice, quantity, product.BulkPricing)

		c.JSON(http.StatusOK, gin.H{
			"productId":    product.ID.Hex(),
			"attributeKey": attributeKey,
			"quantity":     quantity,
			"unitPrice":    formatPrice(discounted),
			"lineTotal":    formatPrice(discounted * float64(quantity)),
			"bulkDiscount": discounted < unitPrice,
			"pricing": buildPriceDisplay(priceInput{
				Price:        discounted,
				ComparePrice: comparePrice,
				CostPrice:    product.CostPrice.Float64(),
			}),
		})
	}
}

/* =======================
   DELETE (SOFT)
======================= */

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		now := time.Now()
		res, err := db.Collection("products").UpdateOne(
			ctx,
			bson.M{
				"_id":       id,
				"isDeleted": bson.M{"$ne": true},
			},
			bson.M{"$set": bson.M{
				"isDeleted": true,
				"deletedAt": now,
				"isActive":  false,
			}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
