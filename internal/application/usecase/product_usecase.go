package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// ProductTxRunner ejecuta fn con un ProductRepository atado a una transacción:
// el insert/update del producto y de sus referencias a categoría es atómico.
type ProductTxRunner interface {
	Run(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	tx           ProductTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, tx ProductTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, tx: tx}
}

// List devuelve todos los productos con las categorías resueltas a registros completos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	// Una sola consulta para todas las categorías referenciadas.
	idSet := make(map[string]struct{})
	var ids []string
	for _, p := range list {
		for _, id := range p.CategoryIDs {
			if _, ok := idSet[id]; !ok {
				idSet[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	categories, err := uc.categoryRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p, byID))
	}
	return items, nil
}

// GetByID devuelve un producto con categorías resueltas. Devuelve ErrInvalidID si
// el id no es un UUID y nil si no existe (el handler decide el código HTTP).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return uc.resolve(product)
}

// Create crea un producto. Las referencias a categoría se deduplican antes de
// cualquier verificación; los ids mal formados y los inexistentes se reportan
// cada grupo como un único error agrupado. El nombre es único global.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	categoryIDs, err := uc.checkCategoryRefs(in.Categories)
	if err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Price:       in.Price,
		Qty:         in.Qty,
		CategoryIDs: categoryIDs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.tx.Run(context.Background(), func(products repository.ProductRepository) error {
		return products.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return uc.resolve(product)
}

// Update aplica una actualización parcial: solo cambian los campos enviados.
// El payload vacío se rechaza con ErrEmptyUpdate. El chequeo de unicidad de
// nombre excluye al propio registro, así renombrar al nombre actual no falla.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Empty() {
		return nil, domain.ErrEmptyUpdate
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil && *in.Name != product.Name {
		other, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.Qty != nil {
		product.Qty = *in.Qty
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if len(in.Categories) > 0 {
		categoryIDs, err := uc.checkCategoryRefs(in.Categories)
		if err != nil {
			return nil, err
		}
		product.CategoryIDs = categoryIDs
	}
	product.UpdatedAt = time.Now()

	err = uc.tx.Run(context.Background(), func(products repository.ProductRepository) error {
		return products.Update(product)
	})
	if err != nil {
		return nil, err
	}
	return uc.resolve(product)
}

// Delete elimina un producto por id. Devuelve ErrInvalidID si el id no es un
// UUID; la ausencia del registro no es un error (deleted = false).
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, domain.ErrInvalidID
	}
	return uc.repo.Delete(id)
}

// checkCategoryRefs deduplica los ids referenciados preservando orden, valida su
// sintaxis (agrupando los inválidos) y su existencia (agrupando los ausentes).
func (uc *ProductUseCase) checkCategoryRefs(refs []dto.CategoryRef) ([]string, error) {
	seen := make(map[string]struct{}, len(refs))
	ids := make([]string, 0, len(refs))
	var invalid []string
	for _, ref := range refs {
		if _, ok := seen[ref.ID]; ok {
			continue
		}
		seen[ref.ID] = struct{}{}
		ids = append(ids, ref.ID)
		if _, err := uuid.Parse(ref.ID); err != nil {
			invalid = append(invalid, ref.ID)
		}
	}
	if len(invalid) > 0 {
		return nil, &domain.InvalidCategoryIDsError{IDs: invalid}
	}

	existing, err := uc.categoryRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	found := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		found[c.ID] = struct{}{}
	}
	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, &domain.CategoriesNotFoundError{IDs: missing}
	}
	return ids, nil
}

// resolve carga las categorías referenciadas y arma la respuesta.
func (uc *ProductUseCase) resolve(p *entity.Product) (*dto.ProductResponse, error) {
	categories, err := uc.categoryRepo.ListByIDs(p.CategoryIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	return toProductResponse(p, byID), nil
}

// toProductResponse arma la respuesta resolviendo cada referencia contra el índice.
// Una referencia colgante (categoría borrada después del write) se omite en vez
// de romper la respuesta.
func toProductResponse(p *entity.Product, categories map[string]*entity.Category) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resolved := make([]dto.CategoryResponse, 0, len(p.CategoryIDs))
	for _, id := range p.CategoryIDs {
		c, ok := categories[id]
		if !ok {
			continue
		}
		resolved = append(resolved, dto.CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Qty:        p.Qty,
		Categories: resolved,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
