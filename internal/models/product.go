package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Produit du catalogue. Le prix est un entier (pas de centimes dans PromoMarket).
type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Price       int64      `json:"price" db:"price"`
	Stock       int        `json:"stock" db:"stock"`
	ImageURL    string     `json:"image_url" db:"image_url"`
	CreatedAt   *time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
