package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx). Las referencias a categoría viven en la tabla
// product_categories; Create y Update las escriben junto con la fila del
// producto, por lo que deben ejecutarse vía TxRunner para ser atómicas.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con sus referencias a categoría.
// El índice único de nombre convierte la escritura en un write condicional:
// 23505 -> ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, price, qty, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Qty, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertCategoryRefs(product.ID, product.CategoryIDs)
}

// GetByID obtiene un producto por ID con sus referencias a categoría cargadas.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, price, qty, created_at, updated_at
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.Qty, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	refs, err := r.categoryRefs(p.ID)
	if err != nil {
		return nil, err
	}
	p.CategoryIDs = refs
	return &p, nil
}

// GetByName obtiene un producto por nombre, sin cargar referencias: se usa solo
// para el chequeo de unicidad.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `
		SELECT id, name, price, qty, created_at, updated_at
		FROM products WHERE name = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&p.ID, &p.Name, &p.Price, &p.Qty, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	return &p, nil
}

// List devuelve todos los productos con sus referencias a categoría cargadas.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, price, qty, created_at, updated_at
		FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	byID := make(map[string]*entity.Product)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Qty, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
		byID[p.ID] = &p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Una sola consulta para las referencias de todos los productos.
	refRows, err := r.q.Query(context.Background(),
		`SELECT product_id, category_id FROM product_categories ORDER BY product_id, category_id`)
	if err != nil {
		return nil, fmt.Errorf("list product categories: %w", err)
	}
	defer refRows.Close()
	for refRows.Next() {
		var productID, categoryID string
		if err := refRows.Scan(&productID, &categoryID); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		if p, ok := byID[productID]; ok {
			p.CategoryIDs = append(p.CategoryIDs, categoryID)
		}
	}
	return list, refRows.Err()
}

// Update actualiza un producto existente y reemplaza sus referencias a categoría.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, price = $3, qty = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Qty, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM product_categories WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("clear product categories: %w", err)
	}
	return r.insertCategoryRefs(product.ID, product.CategoryIDs)
}

// Delete elimina un producto por ID; las referencias caen por ON DELETE CASCADE.
// Devuelve false si el producto no existía.
func (r *ProductRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *ProductRepo) insertCategoryRefs(productID string, categoryIDs []string) error {
	for _, categoryID := range categoryIDs {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO product_categories (product_id, category_id) VALUES ($1, $2)`,
			productID, categoryID,
		)
		if err != nil {
			return fmt.Errorf("insert product category: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) categoryRefs(productID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT category_id FROM product_categories WHERE product_id = $1 ORDER BY category_id`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("get product categories: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product category: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
