package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CategoryUC    *usecase.CategoryUseCase
	SubcategoryUC *usecase.SubcategoryUseCase
	ProductUC     *usecase.ProductUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Lectura: cualquier rol autenticado.
// Escritura de catálogo: admin y coordinador (el hard delete se restringe a
// admin dentro del handler). Gestión de usuarios: la política por actor vive
// en el use case.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token de acceso)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	writer := RequireRole(entity.RoleAdmin, entity.RoleCoordinador)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/subcategories", subcategoryHandler.ListByCategory)
	categories.Post("/", writer, categoryHandler.Create)
	categories.Put("/:id", writer, categoryHandler.Update)
	categories.Delete("/:id", writer, categoryHandler.Delete)

	// Subcategories (protegido)
	subcategories := protected.Group("/subcategories")
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Get("/:id", subcategoryHandler.GetByID)
	subcategories.Post("/", writer, subcategoryHandler.Create)
	subcategories.Put("/:id", writer, subcategoryHandler.Update)
	subcategories.Delete("/:id", writer, subcategoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", writer, productHandler.Create)
	products.Put("/:id", writer, productHandler.Update)
	products.Delete("/:id", writer, productHandler.Delete)

	// Users (protegido; política por actor en el use case)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequireRole(entity.RoleAdmin), userHandler.Delete)
}
