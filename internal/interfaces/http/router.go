package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dgm-logistikk/frakt-api/internal/application/auth"
	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
	"github.com/dgm-logistikk/frakt-api/internal/domain/entity"
	"github.com/dgm-logistikk/frakt-api/internal/domain/repository"
	"github.com/dgm-logistikk/frakt-api/pkg/event"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
	RequestUC *usecase.RequestUseCase
	StatsUC   *usecase.StatsUseCase
	UserRepo  repository.UserRepository
	Bus       *event.Bus
	JWTSecret string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes: Bearer token plus a fresh read of the user record so
	// role and company binding never lag behind the token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), UserLoader(deps.UserRepo))

	// Own profile
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
	users.Post("/me/2fa", userHandler.EnableTwoFactor)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Register)
	companies.Get("/mine", companyHandler.Mine)
	companies.Put("/mine", companyHandler.UpdateMine)
	companies.Get("/:id", companyHandler.GetByID)

	// Freight requests. Browsing is open to every signed-in user; publishing
	// and the owner list are buyer features.
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC, deps.Bus)
	requests.Get("/", requestHandler.Browse)
	requests.Get("/watch", requestHandler.Watch)
	requests.Post("/", RequireRole(entity.RoleBuyer), requestHandler.Create)
	requests.Get("/mine", RequireRole(entity.RoleBuyer), requestHandler.Mine)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Get("/:id/pdf", requestHandler.PDF)
	requests.Put("/:id", requestHandler.Update)
	requests.Post("/:id/status", requestHandler.ChangeStatus)
	requests.Delete("/:id", requestHandler.Delete)

	// Superadmin
	admin := protected.Group("/admin", RequireRole(entity.RoleSuperadmin))
	adminHandler := NewAdminHandler(deps.CompanyUC, deps.StatsUC)
	admin.Get("/companies/pending", adminHandler.PendingCompanies)
	admin.Post("/companies/:id/approve", adminHandler.ApproveCompany)
	admin.Delete("/companies/:id", adminHandler.RejectCompany)
	admin.Get("/stats", adminHandler.Stats)
}
