package http_test

import (
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-api/internal/application/dto"
)

func createProduct(t *testing.T, env *testEnv, name string, price string, qty int, categoryIDs ...string) dto.ProductResponse {
	t.Helper()
	refs := make([]dto.CategoryRef, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		refs = append(refs, dto.CategoryRef{ID: id})
	}
	resp := env.request(t, http.MethodPost, "/product", dto.CreateProductRequest{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Qty:        qty,
		Categories: refs,
	}, env.authHeader(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeJSON[dto.ProductResponse](t, resp)
}

// Crear y consultar: round-trip con categorías resueltas a registros completos.
func TestProductCreate_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	sucos := createCategory(t, env, "Sucos", &dto.CategoryRef{ID: bebidas.ID})

	created := createProduct(t, env, "Suco de Laranja (Jarra)", "14.99", 1, sucos.ID, bebidas.ID)
	require.Len(t, created.Categories, 2)

	resp := env.request(t, http.MethodGet, "/product/"+created.ID, nil, env.authHeader(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON[dto.ProductResponse](t, resp)
	assert.Equal(t, "Suco de Laranja (Jarra)", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("14.99")))
	assert.Equal(t, 1, out.Qty)
	require.Len(t, out.Categories, 2)
	names := []string{out.Categories[0].Name, out.Categories[1].Name}
	assert.Contains(t, names, "Sucos")
	assert.Contains(t, names, "Bebidas")
}

// Ids de categoría repetidos en el payload: se guarda exactamente una referencia.
func TestProductCreate_DeduplicaCategorias(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)

	out := createProduct(t, env, "Água 350ML", "1.49", 1, bebidas.ID, bebidas.ID)
	assert.Len(t, out.Categories, 1)

	// También en lo persistido, no solo en la respuesta
	stored, err := env.products.GetByName("Água 350ML")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{bebidas.ID}, stored.CategoryIDs)
}

// Nombre repetido → 409.
func TestProductCreate_NombreDuplicado_Retorna409(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	createProduct(t, env, "Sushi", "49.99", 12, bebidas.ID)

	resp := env.request(t, http.MethodPost, "/product", dto.CreateProductRequest{
		Name:       "Sushi",
		Price:      decimal.RequireFromString("10.00"),
		Qty:        1,
		Categories: []dto.CategoryRef{{ID: bebidas.ID}},
	}, env.authHeader(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Product Already Exists")
}

// Ids de categoría malformados → 400 con un único error agrupado.
func TestProductCreate_CategoriasInvalidas_Retorna400Agrupado(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodPost, "/product", dto.CreateProductRequest{
		Name:  "Temaki",
		Price: decimal.RequireFromString("44.99"),
		Qty:   8,
		Categories: []dto.CategoryRef{
			{ID: "no-uuid-a"}, {ID: "no-uuid-b"}, {ID: "no-uuid-a"},
		},
	}, env.authHeader(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	// Un solo mensaje con ambos ids (deduplicados), no un error por id
	assert.Contains(t, string(body), "Invalid Category IDs: no-uuid-a, no-uuid-b")
}

// Ids bien formados pero inexistentes → 404 agrupado.
func TestProductCreate_CategoriasInexistentes_Retorna404Agrupado(t *testing.T) {
	env := newTestEnv(t)
	missingA := uuid.New().String()
	missingB := uuid.New().String()

	resp := env.request(t, http.MethodPost, "/product", dto.CreateProductRequest{
		Name:       "Temaki",
		Price:      decimal.RequireFromString("44.99"),
		Qty:        8,
		Categories: []dto.CategoryRef{{ID: missingA}, {ID: missingB}},
	}, env.authHeader(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Categories Not Found: "+missingA+", "+missingB)
}

// Sin categorías o con campos fuera de rango → 400 con errores por campo.
func TestProductCreate_PayloadInvalido_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodPost, "/product", dto.CreateProductRequest{
		Name:  "Temaki",
		Price: decimal.RequireFromString("-1"),
		Qty:   -3,
	}, env.authHeader(t))
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeJSON[dto.ErrorResponse](t, resp)
	fields := map[string]bool{}
	for _, fe := range out.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["qty"], "qty negativo debe reportarse")
	assert.True(t, fields["price"], "price negativo debe reportarse")
	assert.True(t, fields["categories"], "categories vacío debe reportarse")
}

// GET por id: malformado → 400; ausente → 404.
func TestProductGetByID_IDInvalidoYAusente(t *testing.T) {
	env := newTestEnv(t)

	malformed := env.request(t, http.MethodGet, "/product/zapatos", nil, env.authHeader(t))
	defer malformed.Body.Close()
	assert.Equal(t, http.StatusBadRequest, malformed.StatusCode)
	body, _ := io.ReadAll(malformed.Body)
	assert.Contains(t, string(body), "Invalid ID")

	absent := env.request(t, http.MethodGet, "/product/"+uuid.New().String(), nil, env.authHeader(t))
	defer absent.Body.Close()
	assert.Equal(t, http.StatusNotFound, absent.StatusCode)
}

// Listado con categorías resueltas.
func TestProductList_ResuelveCategorias(t *testing.T) {
	env := newTestEnv(t)
	japonesa := createCategory(t, env, "Comida Japonesa", nil)
	createProduct(t, env, "Temaki", "44.99", 8, japonesa.ID)
	createProduct(t, env, "Sushi", "49.99", 12, japonesa.ID)

	resp := env.request(t, http.MethodGet, "/product", nil, env.authHeader(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON[[]dto.ProductResponse](t, resp)
	require.Len(t, out, 2)
	for _, p := range out {
		require.Len(t, p.Categories, 1)
		assert.Equal(t, "Comida Japonesa", p.Categories[0].Name)
	}
}

// PATCH con body vacío → 400 con el mensaje de "al menos un campo".
func TestProductUpdate_PayloadVacio_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	created := createProduct(t, env, "Água 350ML", "1.49", 1, bebidas.ID)

	resp := env.request(t, http.MethodPatch, "/product/"+created.ID,
		map[string]any{}, env.authHeader(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "at least one field (name, qty, price, categories) should be sent")
}

// PATCH parcial: solo cambian los campos enviados (merge).
func TestProductUpdate_MergeParcial(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	created := createProduct(t, env, "Água 350ML", "1.49", 1, bebidas.ID)

	resp := env.request(t, http.MethodPatch, "/product/"+created.ID,
		map[string]any{"qty": 10}, env.authHeader(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON[dto.ProductResponse](t, resp)
	assert.Equal(t, 10, out.Qty)
	assert.Equal(t, "Água 350ML", out.Name)
	assert.True(t, out.Price.Equal(decimal.RequireFromString("1.49")))
	require.Len(t, out.Categories, 1)
}

// Renombrar un producto a su propio nombre actual no es conflicto.
func TestProductUpdate_RenombrarAlMismoNombre_NoConflicto(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	created := createProduct(t, env, "Água 350ML", "1.49", 1, bebidas.ID)

	resp := env.request(t, http.MethodPatch, "/product/"+created.ID,
		map[string]any{"name": "Água 350ML"}, env.authHeader(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Renombrar al nombre de otro producto → 409.
func TestProductUpdate_NombreDeOtro_Retorna409(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	createProduct(t, env, "Sushi", "49.99", 12, bebidas.ID)
	created := createProduct(t, env, "Temaki", "44.99", 8, bebidas.ID)

	resp := env.request(t, http.MethodPatch, "/product/"+created.ID,
		map[string]any{"name": "Sushi"}, env.authHeader(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// PATCH sobre id malformado → 400; sobre id ausente → 404.
func TestProductUpdate_IDInvalidoYAusente(t *testing.T) {
	env := newTestEnv(t)

	malformed := env.request(t, http.MethodPatch, "/product/zapatos",
		map[string]any{"qty": 1}, env.authHeader(t))
	defer malformed.Body.Close()
	assert.Equal(t, http.StatusBadRequest, malformed.StatusCode)

	absent := env.request(t, http.MethodPatch, "/product/"+uuid.New().String(),
		map[string]any{"qty": 1}, env.authHeader(t))
	defer absent.Body.Close()
	assert.Equal(t, http.StatusNotFound, absent.StatusCode)
}

// PATCH reemplaza el conjunto de categorías, con deduplicación.
func TestProductUpdate_ReemplazaCategorias(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	sucos := createCategory(t, env, "Sucos", &dto.CategoryRef{ID: bebidas.ID})
	created := createProduct(t, env, "Suco de Laranja (Jarra)", "14.99", 1, bebidas.ID)

	resp := env.request(t, http.MethodPatch, "/product/"+created.ID, map[string]any{
		"categories": []map[string]string{{"id": sucos.ID}, {"id": sucos.ID}},
	}, env.authHeader(t))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeJSON[dto.ProductResponse](t, resp)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, sucos.ID, out.Categories[0].ID)
}

// DELETE dos veces: 200 la primera, 204 la segunda, nunca 500.
func TestProductDelete_Idempotente(t *testing.T) {
	env := newTestEnv(t)
	bebidas := createCategory(t, env, "Bebidas", nil)
	created := createProduct(t, env, "Fanta Laranja Lata 350ML", "3.99", 1, bebidas.ID)

	first := env.request(t, http.MethodDelete, "/product/"+created.ID, nil, env.authHeader(t))
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)
	body, _ := io.ReadAll(first.Body)
	assert.Contains(t, string(body), "Product Deleted Successfully")

	second := env.request(t, http.MethodDelete, "/product/"+created.ID, nil, env.authHeader(t))
	defer second.Body.Close()
	assert.Equal(t, http.StatusNoContent, second.StatusCode)
}

// DELETE con id malformado → 400 "Invalid ID".
func TestProductDelete_IDInvalido_Retorna400(t *testing.T) {
	env := newTestEnv(t)
	resp := env.request(t, http.MethodDelete, "/product/zapatos", nil, env.authHeader(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Invalid ID")
}
