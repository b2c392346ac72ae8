package middleware

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"promomarket_back_end/internal/models"
)

const userKey = "current_user"

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// Identify extrait l'identité du token Bearer si présent, sans jamais bloquer.
// Les routes publiques l'utilisent pour connaître l'utilisateur courant.
func Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userFromRequest(c)
		if err == nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// AuthRequired exige un token valide, sinon 401 JSON.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userFromRequest(c)
		if err != nil {
			log.Printf("❌ Authentification refusée: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// AuthRequiredRedirect renvoie vers la page de login au lieu d'un 401.
// Utilisé par la vue de confirmation du panier.
func AuthRequiredRedirect(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userFromRequest(c)
		if err != nil {
			c.Redirect(http.StatusFound, loginURL+"?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser retourne l'identité posée par Identify/AuthRequired.
// Zéro (Authenticated=false) si aucun token valide n'a été vu.
func CurrentUser(c *gin.Context) models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(models.User); ok {
			return user
		}
	}
	return models.User{}
}

func userFromRequest(c *gin.Context) (models.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return models.User{}, fmt.Errorf("header Authorization manquant")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.User{}, fmt.Errorf("format Authorization invalide")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return models.User{}, fmt.Errorf("token invalide: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return models.User{}, fmt.Errorf("claims invalides")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return models.User{}, fmt.Errorf("user_id manquant dans les claims")
	}

	user := models.User{ID: userID, Authenticated: true}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if username, ok := claims["username"].(string); ok {
		user.Username = username
	}
	if role, ok := claims["role"].(string); ok {
		user.Role = role
	}

	return user, nil
}
