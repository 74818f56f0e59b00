package handlers

import (
	"context"
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

type AddonCreateRequest struct {
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price"`
	IsActive *bool   `json:"isActive"`
}

// GetAddons serves GET /api/addons: the full addon catalog, used by the
// dashboard to resolve titles for stored addon selections.
func GetAddons(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := bson.M{}

		if v := strings.TrimSpace(c.Query("isActive")); v != "" {
			filter["isActive"] = strings.EqualFold(v, "true")
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("addons").Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		addons := make([]models.Addon, 0)
		if err := cursor.All(ctx, &addons); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"data": addons})
	}
}

// CreateAddon adds a catalog entry. Duplicate titles are rejected.
func CreateAddon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddonCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		title := strings.TrimSpace(req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		count, err := db.Collection("addons").CountDocuments(ctx, bson.M{"title": title})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "addon already exists"})
			return
		}

		isActive := true
		if req.IsActive != nil {
			isActive = *req.IsActive
		}

		addon := models.Addon{
			Title:     title,
			Price:     models.Money(sanitizePrice(req.Price)),
			IsActive:  isActive,
			CreatedAt: time.Now(),
		}

		result, err := db.Collection("addons").InsertOne(ctx, addon)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		addon.ID = result.InsertedID.(primitive.ObjectID)
		c.JSON(http.StatusCreated, addon)
	}
}

// DeleteAddon deactivates a catalog entry. Orders keep referencing the id,
// so entries are never removed outright.
func DeleteAddon(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("addons").UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": bson.M{"isActive": false}},
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "addon not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
