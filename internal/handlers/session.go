package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"promomarket_back_end/internal/cart"
	"promomarket_back_end/internal/middleware"
)

// SessionHandler gère la fin de vie de la session de panier.
type SessionHandler struct {
	carts cart.Store
}

func NewSessionHandler(carts cart.Store) *SessionHandler {
	return &SessionHandler{carts: carts}
}

//
// 🚪 POST /api/session/logout — détruit la session et son panier
//
func (h *SessionHandler) Logout(c *gin.Context) {
	old := middleware.RotateSession(c)

	if old != "" {
		if err := h.carts.Clear(c.Request.Context(), old); err != nil {
			log.Printf("⚠️ Panier %s non vidé au logout: %v", old, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session terminée"})
}
