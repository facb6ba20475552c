package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petlife/petshop-api/internal/application/usecase"
	"github.com/petlife/petshop-api/internal/domain/entity"
	apphttp "github.com/petlife/petshop-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória (apenas o que os handlers exercitam)
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) DecrementStock(id string, qty int) (bool, error) {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (r *memProductRepo) IncrementStock(id string, qty int) error {
	if p, ok := r.products[id]; ok {
		p.Stock += qty
	}
	return nil
}

// buildProductApp monta as rotas de produto sem middleware de auth.
func buildProductApp(repo *memProductRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewProductHandler(usecase.NewProductUseCase(repo))
	app.Get("/api/products/:id", h.GetByID)
	app.Put("/api/products/:id", h.Update)
	app.Patch("/api/products/:id/stock", h.AdjustStock)
	return app
}

func do(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Produto inexistente → HTTP 404 NOT_FOUND em todas as rotas de escrita/leitura
// ──────────────────────────────────────────────────────────────────────────────

func TestProductHandler_GetInexistente_Retorna404(t *testing.T) {
	app := buildProductApp(newMemProductRepo())
	resp := do(t, app, http.MethodGet, "/api/products/nao-existe", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
	assert.Contains(t, string(body), "nao-existe",
		"a mensagem deve nomear o recurso ausente")
}

func TestProductHandler_UpdateInexistente_Retorna404(t *testing.T) {
	app := buildProductApp(newMemProductRepo())
	resp := do(t, app, http.MethodPut, "/api/products/nao-existe", `{"name":"Novo Nome"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestProductHandler_AdjustStockInexistente_Retorna404(t *testing.T) {
	app := buildProductApp(newMemProductRepo())
	resp := do(t, app, http.MethodPatch, "/api/products/nao-existe/stock", `{"delta":5}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

// Rota existente continua respondendo 200 com o corpo do produto.
func TestProductHandler_GetExistente_Retorna200(t *testing.T) {
	repo := newMemProductRepo()
	repo.products["p1"] = &entity.Product{ID: "p1", Name: "Coleira M", Active: true}
	app := buildProductApp(repo)

	resp := do(t, app, http.MethodGet, "/api/products/p1", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Coleira M")
}
