package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/auth"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/registration"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/review"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/session"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/application/usecase"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/entity"
	"github.com/ZakaryaOukil/Dawalink-sub000/internal/domain/repository"
	"github.com/ZakaryaOukil/Dawalink-sub000/pkg/logger"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	Resolver   *session.Resolver
	Suppliers  repository.SupplierRepository
	Pharmacies repository.PharmacyRepository
	Documents  registration.DocumentStore

	DocumentUC *usecase.DocumentUseCase
	ReviewUC   *review.UseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	RatingUC   *usecase.ReviewUseCase
	AgentUC    *usecase.AgentUseCase

	Log       *logger.Logger
	JWTSecret string
}

// Router enregistre les routes de l'API. La vérification (is_verified) ne
// conditionne aucune route: un compte en attente de revue accède déjà à son
// tableau de bord.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	supplier := string(entity.KindSupplier)
	pharmacy := string(entity.KindPharmacy)
	admin := string(entity.KindAdmin)

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Resolver, deps.Suppliers, deps.Pharmacies, deps.Documents, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/session", authHandler.Session)

	// Pièces justificatives du compte appelant
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	protected.Get("/documents", documentHandler.ListMine)

	// Catalogue produits
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireKind(supplier), productHandler.Create)
	products.Get("/mine", RequireKind(supplier), productHandler.ListMine)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireKind(supplier), productHandler.Update)
	products.Delete("/:id", RequireKind(supplier), productHandler.Delete)

	// Commandes
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", RequireKind(pharmacy), orderHandler.Create)
	orders.Get("/received", RequireKind(supplier), orderHandler.ListReceived)
	orders.Get("/", RequireKind(pharmacy), orderHandler.ListMine)
	orders.Put("/:id/status", RequireKind(supplier), orderHandler.UpdateStatus)

	// Avis
	ratingHandler := NewRatingHandler(deps.RatingUC)
	protected.Post("/reviews", RequireKind(pharmacy), ratingHandler.Create)
	protected.Get("/suppliers/:id/reviews", ratingHandler.ListBySupplier)

	// Délégués commerciaux
	agents := protected.Group("/agents", RequireKind(supplier))
	agentHandler := NewAgentHandler(deps.AgentUC)
	agents.Post("/", agentHandler.Create)
	agents.Get("/", agentHandler.ListMine)
	agents.Put("/:id", agentHandler.Update)
	agents.Delete("/:id", agentHandler.Delete)

	// Console d'administration
	adminGroup := protected.Group("/admin", RequireKind(admin))
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	adminGroup.Get("/documents/export", reviewHandler.ExportQueue)
	adminGroup.Get("/documents", reviewHandler.ListPending)
	adminGroup.Post("/documents/:id/approve", reviewHandler.Approve)
	adminGroup.Post("/documents/:id/reject", reviewHandler.Reject)
	adminGroup.Put("/profiles/:id/verify", reviewHandler.VerifyProfile)
}
