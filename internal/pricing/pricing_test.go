package pricing

import (
	"testing"

	"promomarket_back_end/internal/models"
)

func TestSummarize(t *testing.T) {
	t.Run("panier vide -> total 0, aucune ligne", func(t *testing.T) {
		total, lines := Summarize(nil)
		if total != 0 {
			t.Fatalf("total attendu 0, reçu %d", total)
		}
		if len(lines) != 0 {
			t.Fatalf("aucune ligne attendue, reçu %v", lines)
		}
	})

	t.Run("deux produits -> somme exacte et lignes ordonnées", func(t *testing.T) {
		total, lines := Summarize([]models.Product{
			{Name: "A", Price: 10},
			{Name: "B", Price: 5},
		})
		if total != 15 {
			t.Fatalf("total attendu 15, reçu %d", total)
		}
		if len(lines) != 2 || lines[0] != "A - 10" || lines[1] != "B - 5" {
			t.Fatalf("lignes inattendues: %v", lines)
		}
	})

	t.Run("produit gratuit", func(t *testing.T) {
		total, lines := Summarize([]models.Product{{Name: "Échantillon", Price: 0}})
		if total != 0 || lines[0] != "Échantillon - 0" {
			t.Fatalf("résultat inattendu: total=%d lines=%v", total, lines)
		}
	})
}
