package checkout

import (
	"context"
	"fmt"
	"log"

	"promomarket_back_end/internal/cart"
	"promomarket_back_end/internal/catalog"
	"promomarket_back_end/internal/models"
	"promomarket_back_end/internal/pricing"
)

// Notifier envoie la confirmation de commande. Un seul envoi, pas de
// relance: un échec remonte tel quel à l'appelant.
type Notifier interface {
	Notify(ctx context.Context, to, username string, lines []string, total int64) error
}

type Status string

const (
	StatusFinalized Status = "FINALIZED"
	StatusRejected  Status = "REJECTED"
	StatusFailed    Status = "FAILED"
)

// Reason qualifie un rejet utilisateur (jamais un échec technique).
type Reason string

const (
	ReasonEmptyCart Reason = "EMPTY_CART"
	ReasonNoEmail   Reason = "NO_EMAIL"
)

// Outcome est le résultat typé de Finalize. Pas d'exception générique:
// chaque issue porte son statut, sa raison de rejet ou sa cause d'échec.
type Outcome struct {
	Status Status
	Reason Reason
	Total  int64
	Lines  []string
	Err    error
}

// Orchestrator enchaîne validation → résolution catalogue → total →
// notification → vidage du panier. Le panier n'est vidé qu'une fois la
// confirmation partie: le vider avant perdrait la commande sur un échec
// SMTP passager.
type Orchestrator struct {
	carts    cart.Store
	catalog  catalog.Resolver
	notifier Notifier
}

func NewOrchestrator(carts cart.Store, resolver catalog.Resolver, notifier Notifier) *Orchestrator {
	return &Orchestrator{carts: carts, catalog: resolver, notifier: notifier}
}

func rejected(reason Reason) Outcome {
	return Outcome{Status: StatusRejected, Reason: reason}
}

func failed(err error) Outcome {
	return Outcome{Status: StatusFailed, Err: err}
}

// Finalize traite la demande de fin de commande pour une session donnée.
// Sur rejet comme sur échec, le panier reste intact pour permettre un
// nouvel essai.
func (o *Orchestrator) Finalize(ctx context.Context, sid string, user models.User) Outcome {
	ids, err := o.carts.List(ctx, sid)
	if err != nil {
		return failed(fmt.Errorf("lecture du panier: %w", err))
	}
	if len(ids) == 0 {
		return rejected(ReasonEmptyCart)
	}
	if user.Email == "" {
		return rejected(ReasonNoEmail)
	}

	products, err := o.catalog.ResolveMany(ctx, ids)
	if err != nil {
		return failed(fmt.Errorf("résolution des produits: %w", err))
	}
	// Des produits supprimés du catalogue peuvent vider le panier effectif.
	if len(products) == 0 {
		return rejected(ReasonEmptyCart)
	}

	total, lines := pricing.Summarize(products)

	if err := o.notifier.Notify(ctx, user.Email, user.Username, lines, total); err != nil {
		return Outcome{Status: StatusFailed, Err: fmt.Errorf("envoi de la confirmation: %w", err)}
	}

	if err := o.carts.Clear(ctx, sid); err != nil {
		// La confirmation est partie: on ne rejoue pas l'envoi pour un
		// panier mal vidé, on le signale seulement.
		log.Printf("⚠️ Panier %s non vidé après finalisation: %v", sid, err)
	}

	return Outcome{Status: StatusFinalized, Total: total, Lines: lines}
}
