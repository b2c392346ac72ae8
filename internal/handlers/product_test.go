package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"promomarket_back_end/internal/models"
)

func testProduct() models.Product {
	id, _ := uuid.Parse(productA)
	return models.Product{
		ID:    gocql.UUID(id),
		Name:  "Produto Teste",
		Price: 10,
		Stock: 5,
	}
}

func TestProductDeleteStaff(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore(testProduct()))

	w, _ := e.do(t, http.MethodDelete, "/api/products/"+productA, staffToken(t), nil)

	if w.Code != http.StatusOK {
		t.Fatalf("200 attendu, reçu %d: %s", w.Code, w.Body.String())
	}
	if len(e.products.byID) != 0 {
		t.Fatal("le produit doit être supprimé")
	}
}

func TestProductDeleteNonStaff(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore(testProduct()))

	w, _ := e.do(t, http.MethodDelete, "/api/products/"+productA, clientToken(t), nil)

	if w.Code != http.StatusForbidden {
		t.Fatalf("403 attendu, reçu %d", w.Code)
	}
	if len(e.products.byID) != 1 {
		t.Fatal("le produit ne doit pas être supprimé")
	}
}

func TestProductDeleteSansAuth(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore(testProduct()))

	w, _ := e.do(t, http.MethodDelete, "/api/products/"+productA, "", nil)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("401 attendu, reçu %d", w.Code)
	}
}

func TestProductDeleteIntrouvable(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore())

	w, _ := e.do(t, http.MethodDelete, "/api/products/"+productA, staffToken(t), nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("404 attendu, reçu %d", w.Code)
	}
}

func TestProductList(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore(testProduct()))

	w, _ := e.do(t, http.MethodGet, "/api/products", "", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("200 attendu, reçu %d", w.Code)
	}

	var body struct {
		Products []models.Product `json:"products"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("décodage réponse: %v", err)
	}
	if len(body.Products) != 1 || body.Products[0].Name != "Produto Teste" {
		t.Fatalf("catalogue inattendu: %+v", body.Products)
	}
}

func TestProductCreate(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore())

	payload := `{"name":"Produto Novo","description":"Desc","price":5,"stock":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", clientToken(t))

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("201 attendu, reçu %d: %s", w.Code, w.Body.String())
	}
	if len(e.products.byID) != 1 {
		t.Fatal("le produit doit être enregistré")
	}
}

func TestProductCreatePrixNegatif(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore())

	payload := `{"name":"Produto","price":-1}`
	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", clientToken(t))

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("400 attendu, reçu %d", w.Code)
	}
}

func TestProductUpdateIntrouvable(t *testing.T) {
	e := newEnv(t, nil, newFakeProductStore())

	payload := `{"price":7}`
	req := httptest.NewRequest(http.MethodPut, "/api/products/"+productA, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", clientToken(t))

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("404 attendu, reçu %d", w.Code)
	}
}
