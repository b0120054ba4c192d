package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/auth"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/review"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/usecase"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/ZakaryaOukil/Dawalink-sub000/internal/interfaces/http"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/config"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	identityRepo := postgres.NewIdentityRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	pharmacyRepo := postgres.NewPharmacyRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	agentRepo := postgres.NewAgentRepository(pool)
	adminRepo := postgres.NewAdminRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := session.NewResolver(supplierRepo, pharmacyRepo, adminRepo)

	authUC := auth.NewUseCase(identityRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	reviewUC := review.NewUseCase(documentRepo, supplierRepo, pharmacyRepo, resolver)
	documentUC := usecase.NewDocumentUseCase(documentRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo)
	ratingUC := usecase.NewReviewUseCase(reviewRepo, supplierRepo)
	agentUC := usecase.NewAgentUseCase(agentRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Resolver:   resolver,
		Suppliers:  supplierRepo,
		Pharmacies: pharmacyRepo,
		Documents:  txRunner,
		DocumentUC: documentUC,
		ReviewUC:   reviewUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		RatingUC:   ratingUC,
		AgentUC:    agentUC,
		Log:        log,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
