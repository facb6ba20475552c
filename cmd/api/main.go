package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/petlife/petshop-api/internal/application/auth"
	"github.com/petlife/petshop-api/internal/application/sales"
	"github.com/petlife/petshop-api/internal/application/usecase"
	infrapdf "github.com/petlife/petshop-api/internal/infrastructure/pdf"
	"github.com/petlife/petshop-api/internal/infrastructure/postgres"
	httpRouter "github.com/petlife/petshop-api/internal/interfaces/http"
	"github.com/petlife/petshop-api/pkg/config"
	"github.com/petlife/petshop-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	petRepo := postgres.NewPetRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	appointmentRepo := postgres.NewAppointmentRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clientUC := usecase.NewClientUseCase(clientRepo)
	petUC := usecase.NewPetUseCase(petRepo, clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	appointmentUC := usecase.NewAppointmentUseCase(appointmentRepo, petRepo, employeeRepo)

	// PDF: comprovante da venda para o cliente
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, clientRepo, productRepo, receiptGen)

	authUC := auth.NewAuthUseCase(employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PetLife API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:      clientUC,
		PetUC:         petUC,
		ProductUC:     productUC,
		EmployeeUC:    employeeUC,
		AppointmentUC: appointmentUC,
		SaleUC:        saleUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
