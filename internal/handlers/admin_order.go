package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musaver/homesadmin/internal/models"
)

// parseOrderFilter builds the order list filter from query parameters.
// Dates accept RFC 3339 or plain dates; a plain end date covers the whole
// day so the range stays inclusive.
func parseOrderFilter(c *gin.Context) (orderFilter, error) {
	filter := orderFilter{
		Query:         strings.TrimSpace(c.Query("search")),
		Status:        strings.TrimSpace(c.Query("status")),
		PaymentStatus: strings.TrimSpace(c.Query("paymentStatus")),
	}

	if statusFilterActive(filter.Status) && !models.IsValidOrderStatus(filter.Status) {
		return orderFilter{}, fmt.Errorf("invalid status: %s", filter.Status)
	}
	if statusFilterActive(filter.PaymentStatus) && !models.IsValidPaymentStatus(filter.PaymentStatus) {
		return orderFilter{}, fmt.Errorf("invalid paymentStatus: %s", filter.PaymentStatus)
	}

	if raw := strings.TrimSpace(c.Query("startDate")); raw != "" {
		start, _, err := parseFilterDate(raw)
		if err != nil {
			return orderFilter{}, fmt.Errorf("invalid startDate: %s", raw)
		}
		filter.StartDate = &start
	}

	if raw := strings.TrimSpace(c.Query("endDate")); raw != "" {
		end, dateOnly, err := parseFilterDate(raw)
		if err != nil {
			return orderFilter{}, fmt.Errorf("invalid endDate: %s", raw)
		}
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &end
	}

	return filter, nil
}

func parseFilterDate(raw string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	return t, false, err
}

func loadOrders(ctx context.Context, db *mongo.Database) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func loadAddonCatalog(ctx context.Context, db *mongo.Database) (map[string]models.Addon, error) {
	cursor, err := db.Collection("addons").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var addons []models.Addon
	if err := cursor.All(ctx, &addons); err != nil {
		return nil, err
	}

	catalog := make(map[string]models.Addon, len(addons))
	for _, addon := range addons {
		catalog[addon.ID.Hex()] = addon
	}
	return catalog, nil
}

// GetOrders serves GET /api/orders: the full list run through the active
// filters, plus summary statistics over the filtered set.
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		filter, err := parseOrderFilter(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		orders, err := loadOrders(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		filtered := filterOrders(orders, filter)

		c.JSON(http.StatusOK, gin.H{
			"data":    filtered,
			"summary": summarizeOrders(filtered),
		})
	}
}

// ExportOrders serves GET /api/orders/export: the filtered list as a CSV
// attachment named orders_export_<date>.csv.
func ExportOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/orders/export"
		defer handlePanic(c, route)

		filter, err := parseOrderFilter(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		orders, err := loadOrders(ctx, db)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		catalog, err := loadAddonCatalog(ctx, db)
		if err != nil {
			// Export still works without the catalog; titles fall back
			// to the positional label.
			log.Printf("[%s] addon catalog load failed: %v", route, err)
			catalog = map[string]models.Addon{}
		}

		filtered := filterOrders(orders, filter)

		filename := fmt.Sprintf("orders_export_%s.csv", time.Now().Format("2006-01-02"))
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if err := writeOrdersCSV(c.Writer, filtered, catalog); err != nil {
			log.Printf("[%s] csv write failed: %v", route, err)
		}
	}
}

// DeleteOrder serves DELETE /api/orders/:id.
func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": orderID})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
