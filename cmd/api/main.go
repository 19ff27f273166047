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

	"github.com/dgm-logistikk/frakt-api/internal/application/auth"
	"github.com/dgm-logistikk/frakt-api/internal/application/notify"
	"github.com/dgm-logistikk/frakt-api/internal/application/usecase"
	"github.com/dgm-logistikk/frakt-api/internal/infrastructure/mail"
	infrapdf "github.com/dgm-logistikk/frakt-api/internal/infrastructure/pdf"
	"github.com/dgm-logistikk/frakt-api/internal/infrastructure/postgres"
	httpRouter "github.com/dgm-logistikk/frakt-api/internal/interfaces/http"
	"github.com/dgm-logistikk/frakt-api/pkg/config"
	"github.com/dgm-logistikk/frakt-api/pkg/event"
	"github.com/dgm-logistikk/frakt-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	requestRepo := postgres.NewRequestRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bus := event.NewBus()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, userRepo, txRunner, bus)
	requestUC := usecase.NewRequestUseCase(requestRepo, companyRepo, userRepo, bus, pdfGenerator)
	statsUC := usecase.NewStatsUseCase(statsRepo)

	// Reactive email: request broadcasts to sellers, approval notices to
	// company owners, plus the weekly stats digest for admins.
	mailer := mail.NewSMTPSender(cfg.SMTP, log)
	notifier := notify.NewNotifier(bus, userRepo, mailer, log, cfg.Notify.BaseURL)
	notifier.Start()
	defer notifier.Stop()

	digest := notify.NewWeeklyDigest(statsRepo, userRepo, mailer, log,
		cfg.Notify.BaseURL, cfg.Notify.WeeklyCron, cfg.Notify.WeeklyTimezone)
	if err := digest.Start(); err != nil {
		log.Fatal().Err(err).Msg("weekly digest scheduler")
	}
	defer digest.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	mountSwagger(app, log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    userUC,
		CompanyUC: companyUC,
		RequestUC: requestUC,
		StatsUC:   statsUC,
		UserRepo:  userRepo,
		Bus:       bus,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// mountSwagger serves the Swagger UI at /docs when the generated spec file is
// present. A checkout without the file still boots, docs are just disabled.
func mountSwagger(app *fiber.App, log *logger.Logger) {
	const specFile = "./docs/swagger.json"
	if _, err := os.Stat(specFile); err != nil {
		log.Warn().Str("file", specFile).Msg("swagger spec not found, docs disabled")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: specFile,
		Path:     "docs",
		Title:    "DGM Logistikk API",
	}))
}
