package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/usecase"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
	apphttp "github.com/jhoicas/menu-api/internal/interfaces/http"
	"github.com/jhoicas/menu-api/pkg/jwt"
	"github.com/jhoicas/menu-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "menu-api-test"
	testExpMin    = 60
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria (mismos contratos que los adaptadores postgres)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type fakeCategoryRepo struct {
	byID map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: map[string]*entity.Category{}}
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error {
	for _, existing := range f.byID {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range f.byID {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(f.byID))
	for _, c := range f.byID {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeCategoryRepo) ListByIDs(ids []string) ([]*entity.Category, error) {
	var list []*entity.Category
	for _, id := range ids {
		if c, ok := f.byID[id]; ok {
			cp := *c
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p
	cp.CategoryIDs = append([]string(nil), p.CategoryIDs...)
	return &cp
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range f.byID {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	f.byID[p.ID] = copyProduct(p)
	return nil
}

func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return copyProduct(p), nil
}

func (f *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range f.byID {
		if p.Name == name {
			return copyProduct(p), nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) List() ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		list = append(list, copyProduct(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error {
	f.byID[p.ID] = copyProduct(p)
	return nil
}

func (f *fakeProductRepo) Delete(id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

// fakeTxRunner ejecuta el callback directamente contra el repo fake.
type fakeTxRunner struct {
	products repository.ProductRepository
}

func (f fakeTxRunner) Run(_ context.Context, fn func(products repository.ProductRepository) error) error {
	return fn(f.products)
}

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test: app Fiber con use cases reales sobre repos fake
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app        *fiber.App
	users      *fakeUserRepo
	categories *fakeCategoryRepo
	products   *fakeProductRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := newFakeUserRepo()
	categories := newFakeCategoryRepo()
	products := newFakeProductRepo()

	log := logger.New(logger.Config{Env: "test", Level: "error"})
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	})
	categoryUC := usecase.NewCategoryUseCase(categories)
	productUC := usecase.NewProductUseCase(products, categories, fakeTxRunner{products: products})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		ProductUC:  productUC,
		JWTSecret:  testJWTSecret,
		Log:        log,
	})
	return &testEnv{app: app, users: users, categories: categories, products: products}
}

// authHeader genera un Bearer Token válido para las rutas protegidas.
func (e *testEnv) authHeader(t *testing.T) string {
	t.Helper()
	tok, err := jwt.Generate(testJWTSecret, "00000000-0000-0000-0000-000000000001", testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// request lanza una petición con body JSON opcional y devuelve la respuesta.
func (e *testEnv) request(t *testing.T, method, path string, body any, authHeader string) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
