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
	"github.com/tu-usuario/portaria-pro/internal/application/auth"
	appdelivery "github.com/tu-usuario/portaria-pro/internal/application/delivery"
	"github.com/tu-usuario/portaria-pro/internal/application/importer"
	"github.com/tu-usuario/portaria-pro/internal/application/usecase"
	"github.com/tu-usuario/portaria-pro/internal/domain/plan"
	csvcodec "github.com/tu-usuario/portaria-pro/internal/infrastructure/csv"
	"github.com/tu-usuario/portaria-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/portaria-pro/internal/infrastructure/whatsapp"
	httpRouter "github.com/tu-usuario/portaria-pro/internal/interfaces/http"
	"github.com/tu-usuario/portaria-pro/pkg/config"
	"github.com/tu-usuario/portaria-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	buildingRepo := postgres.NewBuildingRepository(pool)
	apartmentRepo := postgres.NewApartmentRepository(pool)
	phoneRepo := postgres.NewPhoneRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	plans := plan.NewRegistry()
	codec := csvcodec.NewCodec()
	sender := whatsapp.NewSender(cfg.WhatsApp, log)

	planUC := usecase.NewPlanUseCase(plans)
	buildingUC := usecase.NewBuildingUseCase(buildingRepo, apartmentRepo, userRepo, plans, txRunner)
	apartmentUC := usecase.NewApartmentUseCase(buildingRepo, apartmentRepo, phoneRepo, plans)
	notifyUC := appdelivery.NewNotifyUseCase(buildingRepo, apartmentRepo, phoneRepo, deliveryRepo, plans, sender, log)
	reportUC := appdelivery.NewReportUseCase(deliveryRepo, codec)
	importUC := importer.NewImportUseCase(apartmentRepo, phoneRepo, codec)
	authUC := auth.NewAuthUseCase(userRepo, buildingRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Portaria Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		PlanUC:      planUC,
		BuildingUC:  buildingUC,
		ApartmentUC: apartmentUC,
		NotifyUC:    notifyUC,
		ReportUC:    reportUC,
		ImportUC:    importUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
