package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"promomarket_back_end/internal/authz"
	"promomarket_back_end/internal/catalog"
	"promomarket_back_end/internal/middleware"
	"promomarket_back_end/internal/models"
)

// ProductStore est la surface catalogue dont les handlers ont besoin.
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id gocql.UUID) (models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id gocql.UUID, changes catalog.ProductChanges) error
	Delete(ctx context.Context, id gocql.UUID) error
}

type ProductHandler struct {
	products ProductStore
}

func NewProductHandler(products ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

//
// 📋 GET /api/products
//
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du catalogue"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

//
// 🟢 POST /api/products
//
func (h *ProductHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !authz.Allow(actorOf(user), authz.ActionCreateProduct, "") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission refusée"})
		return
	}

	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		Price       int64  `json:"price"`
		Stock       int    `json:"stock"`
		ImageURL    string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Price < 0 || input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prix et stock doivent être positifs"})
		return
	}

	p := models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
	}
	if err := h.products.Insert(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": p})
}

//
// ✏️ PUT /api/products/:id
//
func (h *ProductHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !authz.Allow(actorOf(user), authz.ActionUpdateProduct, c.Param("id")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission refusée"})
		return
	}

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var changes catalog.ProductChanges
	if err := c.ShouldBindJSON(&changes); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	err = h.products.Update(c.Request.Context(), gocql.UUID(productUUID), changes)
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit non trouvé"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// ❌ DELETE /api/products/:id — réservé au staff
//
func (h *ProductHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !authz.Allow(actorOf(user), authz.ActionDeleteProduct, c.Param("id")) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Permission refusée"})
		return
	}

	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	err = h.products.Delete(c.Request.Context(), gocql.UUID(productUUID))
	if errors.Is(err, catalog.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit non trouvé"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
