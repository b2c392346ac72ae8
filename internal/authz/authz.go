package authz

// Actor est l'identité qui tente une action.
type Actor struct {
	ID            string
	Role          string
	Authenticated bool
}

type Action string

const (
	ActionCreateProduct Action = "product:create"
	ActionUpdateProduct Action = "product:update"
	ActionDeleteProduct Action = "product:delete"
	ActionAddToCart     Action = "cart:add"
	ActionFinalizeCart  Action = "cart:finalize"
)

// Allow décide si l'acteur peut exécuter l'action sur la ressource.
// La suppression de produit est réservée au staff; le reste demande
// seulement d'être authentifié. La ressource n'entre pas encore en jeu:
// il n'existe pas de règle "propriétaire du produit".
func Allow(actor Actor, action Action, resource string) bool {
	if !actor.Authenticated {
		return false
	}

	switch action {
	case ActionDeleteProduct:
		return actor.Role == "staff"
	case ActionCreateProduct, ActionUpdateProduct, ActionAddToCart, ActionFinalizeCart:
		return true
	}

	return false
}
