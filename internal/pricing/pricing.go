package pricing

import (
	"fmt"

	"promomarket_back_end/internal/models"
)

// Summarize calcule le total et les lignes "nom - prix" de la commande.
// L'ordre des lignes suit l'ordre des produits reçus.
func Summarize(products []models.Product) (int64, []string) {
	var total int64
	lines := make([]string, 0, len(products))

	for _, p := range products {
		total += p.Price
		lines = append(lines, fmt.Sprintf("%s - %d", p.Name, p.Price))
	}

	return total, lines
}
