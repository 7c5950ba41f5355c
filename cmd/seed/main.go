// seed aplica el esquema y carga datos de ejemplo: el usuario admin, el árbol
// de categorías y los productos de la carta.
//
// Uso: go run ./cmd/seed
// Vacía las tablas antes de insertar; pensado para entornos de desarrollo.
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/menu-api/internal/domain/entity"
	"github.com/jhoicas/menu-api/internal/infrastructure/postgres"
	"github.com/jhoicas/menu-api/pkg/config"
	"github.com/jhoicas/menu-api/pkg/logger"
)

const migrationPath = "internal/infrastructure/postgres/migrations/001_init.sql"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	schema, err := os.ReadFile(migrationPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", migrationPath).Msg("leer esquema")
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		log.Fatal().Err(err).Msg("aplicar esquema")
	}

	// Limpiar antes de sembrar
	if _, err := pool.Exec(ctx, `TRUNCATE product_categories, products, categories, users`); err != nil {
		log.Fatal().Err(err).Msg("vaciar tablas")
	}

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	// Usuario admin
	hash, err := bcrypt.GenerateFromPassword([]byte("root"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password")
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        "admin@mail.com",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}

	// Categorías: raíces primero, luego hijas
	categories := map[string]string{} // name -> id
	roots := []string{"Bebidas", "Comida Japonesa", "Pizzas"}
	children := map[string]string{ // name -> parent name
		"Sucos":          "Bebidas",
		"Refrigerantes":  "Bebidas",
		"Pizzas Doces":   "Pizzas",
		"Pizzas Salgadas": "Pizzas",
	}
	for _, name := range roots {
		c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		if err := categoryRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		categories[name] = c.ID
	}
	for name, parent := range children {
		c := &entity.Category{
			ID: uuid.New().String(), Name: name, ParentID: categories[parent],
			CreatedAt: now, UpdatedAt: now,
		}
		if err := categoryRepo.Create(c); err != nil {
			log.Fatal().Err(err).Str("category", name).Msg("crear categoría")
		}
		categories[name] = c.ID
	}

	// Productos de la carta
	products := []struct {
		name       string
		qty        int
		price      string
		categories []string
	}{
		{"Água 350ML", 1, "1.49", []string{"Bebidas"}},
		{"Suco de Laranja (Jarra)", 1, "14.99", []string{"Sucos", "Bebidas"}},
		{"Coca-Cola Lata 350ML", 1, "5.49", []string{"Refrigerantes", "Bebidas"}},
		{"Fanta Laranja Lata 350ML", 1, "3.99", []string{"Refrigerantes", "Bebidas"}},
		{"Temaki", 8, "44.99", []string{"Comida Japonesa"}},
		{"Sushi", 12, "49.99", []string{"Comida Japonesa"}},
		{"Pizza de Calabresa", 1, "59.99", []string{"Pizzas Salgadas", "Pizzas"}},
		{"Pizza de Brigadeiro", 1, "69.99", []string{"Pizzas Doces", "Pizzas"}},
	}
	for _, p := range products {
		ids := make([]string, 0, len(p.categories))
		for _, name := range p.categories {
			ids = append(ids, categories[name])
		}
		product := &entity.Product{
			ID:          uuid.New().String(),
			Name:        p.name,
			Price:       decimal.RequireFromString(p.price),
			Qty:         p.qty,
			CategoryIDs: ids,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := productRepo.Create(product); err != nil {
			log.Fatal().Err(err).Str("product", p.name).Msg("crear producto")
		}
	}

	log.Info().
		Int("categories", len(categories)).
		Int("products", len(products)).
		Msg("seed completado")
}
