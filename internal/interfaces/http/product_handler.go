package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/usecase"
	"github.com/jhoicas/menu-api/internal/domain"
	"github.com/jhoicas/menu-api/pkg/logger"
	"github.com/jhoicas/menu-api/pkg/validation"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /product [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		h.log.Error().Err(err).Msg("list products")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal Server Error"))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /product/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid ID"))
		}
		h.log.Error().Err(err).Msg("get product")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal Server Error"))
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("Product Not Found"))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /product [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid Request Body"))
	}
	errs := validation.Check(in)
	if in.Price.IsNegative() {
		errs = append(errs, validation.FieldError{Field: "price", Message: "must be greater than or equal to 0"})
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError(errs))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return h.mapWriteError(c, err, "create product")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /product/{id} [patch]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid Request Body"))
	}
	errs := validation.Check(in)
	if in.Price != nil && in.Price.IsNegative() {
		errs = append(errs, validation.FieldError{Field: "price", Message: "must be greater than or equal to 0"})
	}
	if len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationError(errs))
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyUpdate) {
			return c.Status(fiber.StatusBadRequest).JSON(
				dto.Error("at least one field (name, qty, price, categories) should be sent"))
		}
		return h.mapWriteError(c, err, "update product")
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("Product Not Found"))
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.StatusResponse
// @Success      204  "el producto no existía"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /product/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid ID"))
		}
		h.log.Error().Err(err).Msg("delete product")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal Server Error"))
	}
	if !deleted {
		// Borrado repetido: no-op idempotente, nunca 500.
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(dto.StatusResponse{Status: "success", Message: "Product Deleted Successfully"})
}

// mapWriteError traduce los errores de dominio de los writes de producto.
// Los ids de categoría inválidos o ausentes llegan como errores agrupados y se
// reportan en una sola respuesta, no por id.
func (h *ProductHandler) mapWriteError(c *fiber.Ctx, err error, op string) error {
	var invalidIDs *domain.InvalidCategoryIDsError
	var notFound *domain.CategoriesNotFoundError
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Error("Product Already Exists"))
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Invalid ID"))
	case errors.As(err, &invalidIDs):
		return c.Status(fiber.StatusBadRequest).JSON(
			dto.Error("Invalid Category IDs: " + strings.Join(invalidIDs.IDs, ", ")))
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(
			dto.Error("Categories Not Found: " + strings.Join(notFound.IDs, ", ")))
	}
	h.log.Error().Err(err).Msg(op)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal Server Error"))
}
