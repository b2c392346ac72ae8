package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/golang-jwt/jwt/v5"

	"promomarket_back_end/internal/cart"
	"promomarket_back_end/internal/catalog"
	"promomarket_back_end/internal/checkout"
	"promomarket_back_end/internal/handlers"
	"promomarket_back_end/internal/middleware"
	"promomarket_back_end/internal/models"
	"promomarket_back_end/internal/routes"
)

const testJWTSecret = "secret-de-test"

var errSMTP = errors.New("smtp injoignable")

type memStore struct {
	items map[string][]string
}

func newMemStore() *memStore {
	return &memStore{items: make(map[string][]string)}
}

func (m *memStore) Add(ctx context.Context, sid, productID string) error {
	for _, id := range m.items[sid] {
		if id == productID {
			return nil
		}
	}
	m.items[sid] = append(m.items[sid], productID)
	return nil
}

func (m *memStore) List(ctx context.Context, sid string) ([]string, error) {
	return append([]string{}, m.items[sid]...), nil
}

func (m *memStore) Clear(ctx context.Context, sid string) error {
	delete(m.items, sid)
	return nil
}

func (m *memStore) all() []string {
	out := []string{}
	for _, ids := range m.items {
		out = append(out, ids...)
	}
	return out
}

type fakeResolver struct {
	products map[string]models.Product
}

func (f *fakeResolver) ResolveMany(ctx context.Context, ids []string) ([]models.Product, error) {
	out := []models.Product{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (f *fakeNotifier) Notify(ctx context.Context, to, username string, lines []string, total int64) error {
	f.calls++
	return f.err
}

type fakeProductStore struct {
	byID map[gocql.UUID]models.Product
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	f := &fakeProductStore{byID: make(map[gocql.UUID]models.Product)}
	for _, p := range products {
		f.byID[p.ID] = p
	}
	return f
}

func (f *fakeProductStore) List(ctx context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductStore) Get(ctx context.Context, id gocql.UUID) (models.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return models.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (f *fakeProductStore) Insert(ctx context.Context, p *models.Product) error {
	p.ID = gocql.TimeUUID()
	f.byID[p.ID] = *p
	return nil
}

func (f *fakeProductStore) Update(ctx context.Context, id gocql.UUID, changes catalog.ProductChanges) error {
	p, ok := f.byID[id]
	if !ok {
		return catalog.ErrNotFound
	}
	if changes.Name != nil {
		p.Name = *changes.Name
	}
	if changes.Price != nil {
		p.Price = *changes.Price
	}
	f.byID[id] = p
	return nil
}

func (f *fakeProductStore) Delete(ctx context.Context, id gocql.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type env struct {
	router   *gin.Engine
	carts    *memStore
	notifier *fakeNotifier
	products *fakeProductStore
}

func newEnv(t *testing.T, resolver *fakeResolver, products *fakeProductStore) *env {
	t.Helper()
	t.Setenv("JWT_SECRET", testJWTSecret)
	gin.SetMode(gin.TestMode)
	middleware.InitSessionStore("secret-session-de-test")

	carts := newMemStore()
	notifier := &fakeNotifier{}
	if resolver == nil {
		resolver = &fakeResolver{}
	}
	if products == nil {
		products = newFakeProductStore()
	}

	var store cart.Store = carts
	orchestrator := checkout.NewOrchestrator(store, resolver, notifier)

	r := gin.New()
	routes.RegisterRoutes(r,
		handlers.NewCartHandler(store, resolver, orchestrator),
		handlers.NewProductHandler(products),
		handlers.NewSessionHandler(store),
	)

	return &env{router: r, carts: carts, notifier: notifier, products: products}
}

func bearer(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("signature du token de test: %v", err)
	}
	return "Bearer " + token
}

func clientToken(t *testing.T) string {
	return bearer(t, jwt.MapClaims{
		"user_id":  "u1",
		"username": "cliente",
		"email":    "cliente@email.com",
	})
}

func staffToken(t *testing.T) string {
	return bearer(t, jwt.MapClaims{
		"user_id":  "u2",
		"username": "admin",
		"email":    "admin@email.com",
		"role":     "staff",
	})
}

// do exécute une requête en rejouant les cookies de session reçus.
func (e *env) do(t *testing.T, method, path, auth string, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	next := w.Result().Cookies()
	if len(next) == 0 {
		next = cookies
	}
	return w, next
}
