package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/petlife/petshop-api/internal/application/auth"
	"github.com/petlife/petshop-api/internal/application/sales"
	"github.com/petlife/petshop-api/internal/application/usecase"
	"github.com/petlife/petshop-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClientUC      *usecase.ClientUseCase
	PetUC         *usecase.PetUseCase
	ProductUC     *usecase.ProductUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	AppointmentUC *usecase.AppointmentUseCase
	SaleUC        *sales.SaleUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login é público, registro exige admin autenticado
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clients (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Delete("/:id", clientHandler.Delete)

	// Pets (protegido)
	pets := protected.Group("/pets")
	petHandler := NewPetHandler(deps.PetUC)
	pets.Post("/", petHandler.Create)
	pets.Get("/", petHandler.List)
	pets.Get("/:id", petHandler.GetByID)
	pets.Put("/:id", petHandler.Update)
	pets.Delete("/:id", petHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/stock", productHandler.AdjustStock)
	products.Delete("/:id", productHandler.Delete)

	// Employees (somente admin)
	employees := protected.Group("/employees", RequireRole(entity.RoleAdmin))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Deactivate)

	// Appointments (protegido)
	appointments := protected.Group("/appointments")
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appointments.Post("/", appointmentHandler.Create)
	appointments.Get("/", appointmentHandler.List)
	appointments.Get("/:id", appointmentHandler.GetByID)
	appointments.Put("/:id", appointmentHandler.Update)
	appointments.Delete("/:id", appointmentHandler.Delete)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Put("/:id", saleHandler.UpdateStatus)
	salesGroup.Delete("/:id", saleHandler.Delete)
}
