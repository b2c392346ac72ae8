package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "promomarket_session"
	sidKey      = "sid"
)

var sessionStore *sessions.CookieStore

// InitSessionStore configure le store de cookies de session.
func InitSessionStore(secret string) {
	sessionStore = sessions.NewCookieStore([]byte(secret))
	sessionStore.MaxAge(86400 * 30)
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

// Session garantit qu'un identifiant de session (sid) existe pour la requête.
// Le panier est indexé sur ce sid, pas sur l'utilisateur.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := sessionStore.Get(c.Request, sessionName)

		sid, ok := session.Values[sidKey].(string)
		if !ok || sid == "" {
			sid = uuid.NewString()
			session.Values[sidKey] = sid
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Impossible de sauvegarder la session: %v", err)
			}
		}

		c.Set(sidKey, sid)
		c.Next()
	}
}

// SessionID retourne le sid de la requête courante.
func SessionID(c *gin.Context) string {
	return c.GetString(sidKey)
}

// RotateSession remplace le sid (logout, fin de commande) et retourne l'ancien.
func RotateSession(c *gin.Context) string {
	session, _ := sessionStore.Get(c.Request, sessionName)
	old, _ := session.Values[sidKey].(string)

	fresh := uuid.NewString()
	session.Values[sidKey] = fresh
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("⚠️ Impossible de renouveler la session: %v", err)
	}

	c.Set(sidKey, fresh)
	return old
}
