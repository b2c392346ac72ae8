package catalog

import (
	"context"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"promomarket_back_end/internal/database"
	"promomarket_back_end/internal/models"
)

// Resolver résout un lot d'identifiants de produits vers les fiches
// encore présentes au catalogue. Les ids inconnus sont omis sans erreur.
type Resolver interface {
	ResolveMany(ctx context.Context, ids []string) ([]models.Product, error)
}

// ScyllaCatalog lit la table products du keyspace produits.
type ScyllaCatalog struct {
	session func() (*gocql.Session, error)
}

func NewScyllaCatalog() *ScyllaCatalog {
	return &ScyllaCatalog{session: database.GetProductsSession}
}

// ResolveMany fait un seul SELECT ... IN pour tout le lot: jamais une
// requête par id. Les ids non parsables comptent comme inexistants.
func (sc *ScyllaCatalog) ResolveMany(ctx context.Context, ids []string) ([]models.Product, error) {
	uuids := make([]gocql.UUID, 0, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		uuids = append(uuids, gocql.UUID(parsed))
	}

	products := []models.Product{}
	if len(uuids) == 0 {
		return products, nil
	}

	session, err := sc.session()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, description, price, stock, image_url
	                       FROM products WHERE product_id IN ?`, uuids).
		WithContext(ctx).Iter()

	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	return products, nil
}
