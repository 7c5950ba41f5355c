package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/domain/repository"
)

// CategoryUseCase casos de uso para categorías: listado, consulta y creación.
// No hay update ni delete de categorías en el alcance actual.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías con el padre resuelto un nivel.
// La resolución usa el propio listado como índice: no hay consultas adicionales.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Category, len(list))
	for _, c := range list {
		byID[c.ID] = c
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c, byID[c.ParentID]))
	}
	return items, nil
}

// GetByID devuelve una categoría con el padre resuelto. Devuelve ErrInvalidID si el
// id no es un UUID y nil si no existe.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return uc.resolve(category)
}

// Create crea una categoría. El nombre es único global (409 vía ErrDuplicate);
// si viene padre, su id debe ser un UUID (ErrInvalidID) y resolver a una
// categoría existente (ErrNotFound). El índice único de nombre respalda la
// verificación previa ante escrituras concurrentes.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	parentID := ""
	if in.Parent != nil {
		if _, err := uuid.Parse(in.Parent.ID); err != nil {
			return nil, domain.ErrInvalidID
		}
		parent, err := uc.repo.GetByID(in.Parent.ID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
		parentID = parent.ID
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return uc.resolve(category)
}

// resolve carga el padre (si existe) y arma la respuesta.
func (uc *CategoryUseCase) resolve(c *entity.Category) (*dto.CategoryResponse, error) {
	var parent *entity.Category
	if c.ParentID != "" {
		p, err := uc.repo.GetByID(c.ParentID)
		if err != nil {
			return nil, err
		}
		parent = p
	}
	return toCategoryResponse(c, parent), nil
}

// toCategoryResponse arma la respuesta con el padre resuelto un solo nivel.
func toCategoryResponse(c *entity.Category, parent *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	resp := &dto.CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if parent != nil {
		resp.Parent = &dto.CategoryResponse{
			ID:        parent.ID,
			Name:      parent.Name,
			CreatedAt: parent.CreatedAt,
			UpdatedAt: parent.UpdatedAt,
		}
	}
	return resp
}
