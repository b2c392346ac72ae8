package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"promomarket_back_end/internal/authz"
	"promomarket_back_end/internal/cart"
	"promomarket_back_end/internal/catalog"
	"promomarket_back_end/internal/checkout"
	"promomarket_back_end/internal/middleware"
	"promomarket_back_end/internal/models"
	"promomarket_back_end/internal/pricing"
)

// CartHandler expose le panier de session et la fin de commande.
type CartHandler struct {
	carts    cart.Store
	catalog  catalog.Resolver
	checkout *checkout.Orchestrator
}

func NewCartHandler(carts cart.Store, resolver catalog.Resolver, orchestrator *checkout.Orchestrator) *CartHandler {
	return &CartHandler{carts: carts, catalog: resolver, checkout: orchestrator}
}

//
// 🟢 POST /api/cart/add/:productId
//
func (h *CartHandler) Add(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if !authz.Allow(actorOf(user), authz.ActionAddToCart, "") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}

	productID := c.Param("productId")
	if _, err := uuid.Parse(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	sid := middleware.SessionID(c)
	if err := h.carts.Add(c.Request.Context(), sid, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de l'ajout au panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit ajouté au panier !"})
}

//
// 📋 GET /api/cart/list
//
func (h *CartHandler) List(c *gin.Context) {
	sid := middleware.SessionID(c)

	ids, err := h.carts.List(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du panier"})
		return
	}

	// Les ids de produits supprimés du catalogue sont filtrés ici,
	// jamais remontés en erreur.
	products, err := h.catalog.ResolveMany(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du catalogue"})
		return
	}

	items := make([]models.CartItem, 0, len(products))
	for _, p := range products {
		items = append(items, models.CartItem{Name: p.Name, Price: p.Price})
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

//
// 👀 GET /api/cart/confirm — récapitulatif avant finalisation
//
func (h *CartHandler) Confirm(c *gin.Context) {
	sid := middleware.SessionID(c)

	ids, err := h.carts.List(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du panier"})
		return
	}

	products, err := h.catalog.ResolveMany(c.Request.Context(), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture du catalogue"})
		return
	}

	total, _ := pricing.Summarize(products)

	items := make([]models.CartItem, 0, len(products))
	for _, p := range products {
		items = append(items, models.CartItem{Name: p.Name, Price: p.Price})
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

//
// ✅ POST /api/cart/finalize
//
func (h *CartHandler) Finalize(c *gin.Context) {
	user := middleware.CurrentUser(c)
	sid := middleware.SessionID(c)

	outcome := h.checkout.Finalize(c.Request.Context(), sid, user)

	switch outcome.Status {
	case checkout.StatusFinalized:
		// La session de panier est terminée, on repart sur un sid neuf.
		middleware.RotateSession(c)
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Achat finalisé, e-mail de confirmation envoyé !",
		})

	case checkout.StatusRejected:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"reason":  string(outcome.Reason),
			"message": rejectionMessage(outcome.Reason),
		})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": outcome.Err.Error(),
		})
	}
}

func rejectionMessage(reason checkout.Reason) string {
	switch reason {
	case checkout.ReasonEmptyCart:
		return "Panier vide."
	case checkout.ReasonNoEmail:
		return "Utilisateur sans e-mail enregistré."
	}
	return "Demande refusée."
}

func actorOf(user models.User) authz.Actor {
	return authz.Actor{ID: user.ID, Role: user.Role, Authenticated: user.Authenticated}
}
