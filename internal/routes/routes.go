package routes

import (
	"github.com/gin-gonic/gin"

	"promomarket_back_end/internal/handlers"
	"promomarket_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, carts *handlers.CartHandler, products *handlers.ProductHandler, session *handlers.SessionHandler) {
	api := r.Group("/api", middleware.Session())

	// Panier
	cartGroup := api.Group("/cart")
	cartGroup.POST("/add/:productId", middleware.AuthRequired(), carts.Add)
	cartGroup.GET("/list", carts.List)
	cartGroup.GET("/confirm", middleware.AuthRequiredRedirect("/login"), carts.Confirm)
	cartGroup.POST("/finalize", middleware.AuthRequired(), carts.Finalize)

	// Catalogue
	productGroup := api.Group("/products")
	productGroup.GET("", products.List)
	productGroup.POST("", middleware.AuthRequired(), products.Create)
	productGroup.PUT("/:id", middleware.AuthRequired(), products.Update)
	productGroup.DELETE("/:id", middleware.AuthRequired(), products.Delete)

	// Session
	api.POST("/session/logout", middleware.Identify(), session.Logout)
}
