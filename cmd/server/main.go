package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"promomarket_back_end/internal/cart"
	"promomarket_back_end/internal/catalog"
	"promomarket_back_end/internal/checkout"
	"promomarket_back_end/internal/config"
	"promomarket_back_end/internal/database"
	"promomarket_back_end/internal/handlers"
	"promomarket_back_end/internal/middleware"
	"promomarket_back_end/internal/routes"
	"promomarket_back_end/internal/utils"
)

func main() {
	config.Load()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}
	middleware.InitSessionStore(sessionSecret)

	database.ConnectDatabases()

	// Assemblage du cœur panier/commande
	carts := cart.NewRedisStore(database.Redis)
	products := catalog.NewScyllaCatalog()
	mailer := utils.NewMailerFromEnv()
	orchestrator := checkout.NewOrchestrator(carts, products, mailer)

	cartHandler := handlers.NewCartHandler(carts, products, orchestrator)
	productHandler := handlers.NewProductHandler(products)
	sessionHandler := handlers.NewSessionHandler(carts)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.Getenv("FRONT_URL", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, cartHandler, productHandler, sessionHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur PromoMarket lancé sur le port", port)
	r.Run(":" + port)
}
