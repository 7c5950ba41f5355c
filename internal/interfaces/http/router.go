package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-api/internal/application/auth"
	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/internal/application/usecase"
	"github.com/jhoicas/menu-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(dto.StatusResponse{Status: "success", Message: "pong"})
	})

	protect := AuthMiddleware(deps.JWTSecret)

	// Auth: login público; register requiere Bearer Token (solo un usuario
	// existente puede dar de alta otros).
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", protect, authHandler.Register)

	// Categories (protegido)
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories := app.Group("/category", protect)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)

	// Products (protegido)
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products := app.Group("/product", protect)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
