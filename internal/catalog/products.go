package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gocql/gocql"

	"promomarket_back_end/internal/models"
)

var ErrNotFound = errors.New("produit introuvable")

// ProductChanges porte une mise à jour partielle; un champ nil est
// laissé tel quel.
type ProductChanges struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	Stock       *int    `json:"stock"`
	ImageURL    *string `json:"image_url"`
}

// List retourne tout le catalogue.
func (sc *ScyllaCatalog) List(ctx context.Context) ([]models.Product, error) {
	session, err := sc.session()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT product_id, name, description, price, stock, image_url
	                       FROM products`).WithContext(ctx).Iter()

	products := []models.Product{}
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

// Get retourne la fiche d'un produit, ErrNotFound s'il n'existe plus.
func (sc *ScyllaCatalog) Get(ctx context.Context, id gocql.UUID) (models.Product, error) {
	session, err := sc.session()
	if err != nil {
		return models.Product{}, err
	}

	var p models.Product
	err = session.Query(`SELECT product_id, name, description, price, stock, image_url
	                     FROM products WHERE product_id = ?`, id).
		WithContext(ctx).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL)
	if errors.Is(err, gocql.ErrNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Insert enregistre un nouveau produit, id et horodatage posés ici.
func (sc *ScyllaCatalog) Insert(ctx context.Context, p *models.Product) error {
	session, err := sc.session()
	if err != nil {
		return err
	}

	p.ID = gocql.TimeUUID()
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	return session.Query(`INSERT INTO products (product_id, name, description, price, stock, image_url, created_at, updated_at)
	                      VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Stock, p.ImageURL, p.CreatedAt, p.UpdatedAt).
		WithContext(ctx).Exec()
}

// Update applique les champs non nil de changes. Retourne ErrNotFound
// si le produit a disparu entre-temps.
func (sc *ScyllaCatalog) Update(ctx context.Context, id gocql.UUID, changes ProductChanges) error {
	if _, err := sc.Get(ctx, id); err != nil {
		return err
	}

	session, err := sc.session()
	if err != nil {
		return err
	}

	updates := []string{}
	values := []interface{}{}

	if changes.Name != nil {
		updates = append(updates, "name = ?")
		values = append(values, *changes.Name)
	}
	if changes.Description != nil {
		updates = append(updates, "description = ?")
		values = append(values, *changes.Description)
	}
	if changes.Price != nil {
		updates = append(updates, "price = ?")
		values = append(values, *changes.Price)
	}
	if changes.Stock != nil {
		updates = append(updates, "stock = ?")
		values = append(values, *changes.Stock)
	}
	if changes.ImageURL != nil {
		updates = append(updates, "image_url = ?")
		values = append(values, *changes.ImageURL)
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, "updated_at = ?")
	values = append(values, time.Now())
	values = append(values, id)

	query := "UPDATE products SET " + strings.Join(updates, ", ") + " WHERE product_id = ?"
	return session.Query(query, values...).WithContext(ctx).Exec()
}

// Delete supprime le produit, ErrNotFound s'il n'existait pas.
func (sc *ScyllaCatalog) Delete(ctx context.Context, id gocql.UUID) error {
	if _, err := sc.Get(ctx, id); err != nil {
		return err
	}

	session, err := sc.session()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM products WHERE product_id = ?`, id).
		WithContext(ctx).Exec()
}
