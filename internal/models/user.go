package models

// User est l'identité extraite du token — le backend ne gère ni mot de passe
// ni inscription, tout vient du service d'authentification.
type User struct {
	ID            string `json:"user_id"`
	Username      string `json:"username,omitempty"`
	Email         string `json:"email"`
	Role          string `json:"role,omitempty"`
	Authenticated bool   `json:"-"`
}
