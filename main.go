package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/musaver/homesadmin/internal/config"
	"github.com/musaver/homesadmin/internal/database"
	"github.com/musaver/homesadmin/internal/handlers"
	"github.com/musaver/homesadmin/internal/middleware"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Printf("admin index warning: %v", err)
	}

	r := gin.Default()

	r.POST("/admin/login", handlers.AdminLogin(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

	r.GET("/api/orders", handlers.GetOrders(db))
	r.GET("/api/orders/export", handlers.ExportOrders(db))
	r.GET("/api/products", handlers.GetProducts(db))
	r.GET("/api/products/:id/price", handlers.QuoteProductPrice(db))
	r.GET("/api/addons", handlers.GetAddons(db))

	admin := r.Group("/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.DELETE("/orders/:id", handlers.DeleteOrder(db))

		admin.POST("/products", handlers.CreateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))

		admin.POST("/addons", handlers.CreateAddon(db))
		admin.DELETE("/addons/:id", handlers.DeleteAddon(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
