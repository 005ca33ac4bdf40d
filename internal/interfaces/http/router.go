package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/portaria-pro/internal/application/auth"
	appdelivery "github.com/tu-usuario/portaria-pro/internal/application/delivery"
	"github.com/tu-usuario/portaria-pro/internal/application/importer"
	"github.com/tu-usuario/portaria-pro/internal/application/usecase"
	"github.com/tu-usuario/portaria-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	PlanUC      *usecase.PlanUseCase
	BuildingUC  *usecase.BuildingUseCase
	ApartmentUC *usecase.ApartmentUseCase
	NotifyUC    *appdelivery.NotifyUseCase
	ReportUC    *appdelivery.ReportUseCase
	ImportUC    *importer.ImportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Público: lookup por código de registro y auto-registro de residentes.
	// Solo expone id+nombre del edificio.
	buildingHandler := NewBuildingHandler(deps.BuildingUC)
	apartmentHandler := NewApartmentHandler(deps.ApartmentUC)
	public := api.Group("/public")
	public.Get("/buildings/:code", buildingHandler.PublicLookup)
	public.Post("/buildings/:code/phones", apartmentHandler.PublicAddPhone)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Planes: lectura autenticada, edición solo superadmin
	planHandler := NewPlanHandler(deps.PlanUC)
	protected.Get("/plans", planHandler.List)
	protected.Put("/plans/:key", RequireRole(entity.RoleSuperAdmin), planHandler.Replace)

	// Edificios (superadmin) y edificio propio (admin)
	protected.Post("/buildings", RequireRole(entity.RoleSuperAdmin), buildingHandler.Create)
	protected.Get("/buildings", RequireRole(entity.RoleSuperAdmin), buildingHandler.List)
	protected.Get("/buildings/me", RequireRole(entity.RoleAdmin), buildingHandler.GetMine)
	protected.Patch("/buildings/me", RequireRole(entity.RoleAdmin), buildingHandler.UpdateMine)
	protected.Get("/buildings/:id", RequireRole(entity.RoleSuperAdmin), buildingHandler.GetByID)
	protected.Patch("/buildings/:id", RequireRole(entity.RoleSuperAdmin), buildingHandler.Update)
	protected.Delete("/buildings/:id", RequireRole(entity.RoleSuperAdmin), buildingHandler.Delete)

	// Usuarios adicionales de edificio (superadmin)
	protected.Post("/users", RequireRole(entity.RoleSuperAdmin), authHandler.RegisterUser)

	// Apartamentos y teléfonos (el porteiro solo ve la grilla para disparar)
	protected.Get("/apartments", RequireRole(entity.RoleAdmin, entity.RolePorteiro), apartmentHandler.List)
	protected.Post("/apartments", RequireRole(entity.RoleAdmin), apartmentHandler.Create)
	protected.Patch("/apartments/:id", RequireRole(entity.RoleAdmin), apartmentHandler.Rename)
	protected.Post("/apartments/:id/phones", RequireRole(entity.RoleAdmin), apartmentHandler.AddPhone)
	protected.Delete("/phones/:id", RequireRole(entity.RoleAdmin), apartmentHandler.DeletePhone)
	protected.Get("/phones", RequireRole(entity.RoleAdmin), apartmentHandler.ListPhones)

	// Entregas: disparo (porteiro/admin) y reportes (admin)
	deliveryHandler := NewDeliveryHandler(deps.NotifyUC, deps.ReportUC)
	protected.Post("/deliveries", RequireRole(entity.RolePorteiro, entity.RoleAdmin), deliveryHandler.Notify)
	protected.Get("/deliveries", RequireRole(entity.RoleAdmin), deliveryHandler.Query)
	protected.Get("/deliveries/stats", RequireRole(entity.RoleAdmin), deliveryHandler.Stats)
	protected.Get("/deliveries/export", RequireRole(entity.RoleAdmin), deliveryHandler.Export)

	// Importación masiva (admin)
	importHandler := NewImportHandler(deps.ImportUC)
	protected.Post("/import/phones", RequireRole(entity.RoleAdmin), importHandler.Import)
	protected.Get("/import/template", RequireRole(entity.RoleAdmin), importHandler.Template)
}
