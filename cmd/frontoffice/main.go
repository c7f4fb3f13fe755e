package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carefront/carefront/internal/catalog"
	"github.com/carefront/carefront/internal/config"
	"github.com/carefront/carefront/internal/domain/billing"
	"github.com/carefront/carefront/internal/domain/pharmacy"
	"github.com/carefront/carefront/internal/domain/registration"
	"github.com/carefront/carefront/internal/domain/scheduling"
	"github.com/carefront/carefront/internal/platform/audit"
	"github.com/carefront/carefront/internal/platform/middleware"
	"github.com/carefront/carefront/internal/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "frontoffice",
		Short: "Hospital front-office API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the front-office API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the doctor roster and medication formulary",
	}

	doctorsCmd := &cobra.Command{
		Use:   "doctors",
		Short: "List the doctor roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := loadCatalog()
			if err != nil {
				return err
			}
			fmt.Printf("%-6s %-24s %-16s %s\n", "ID", "NAME", "SPECIALTY", "AVAILABILITY")
			fmt.Println("------ ------------------------ ---------------- --------------------")
			for _, d := range roster.Doctors() {
				fmt.Printf("%-6s %-24s %-16s %s\n", d.ID, d.Name, d.Specialty, strings.Join(d.Availability, " "))
			}
			return nil
		},
	}
	cmd.AddCommand(doctorsCmd)

	medicationsCmd := &cobra.Command{
		Use:   "medications",
		Short: "List the medication formulary",
		RunE: func(cmd *cobra.Command, args []string) error {
			formulary, err := loadCatalog()
			if err != nil {
				return err
			}
			fmt.Printf("%-6s %-16s %8s %7s %s\n", "ID", "NAME", "PRICE", "STOCK", "CATEGORY")
			fmt.Println("------ ---------------- -------- ------- ----------------")
			for _, m := range formulary.Medications() {
				fmt.Printf("%-6s %-16s %8.2f %7d %s\n", m.ID, m.Name, m.Price, m.Stock, m.Category)
			}
			return nil
		},
	}
	cmd.AddCommand(medicationsCmd)

	return cmd
}

// loadCatalog resolves the catalog from CATALOG_FILE or the built-in fixture.
func loadCatalog() (*catalog.Provider, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogFile != "" {
		return catalog.LoadFile(cfg.CatalogFile)
	}
	return catalog.Default(), nil
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Catalog
	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		cat, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("failed to load catalog")
		}
		logger.Info().Str("file", cfg.CatalogFile).Msg("loaded catalog")
	}

	// Store plumbing shared by every domain
	notifier := store.NewNotifier()
	ids := store.NewIDGenerator(cfg.IDMode)

	trail := audit.NewTrail(logger, audit.DefaultCapacity)
	trail.Subscribe(notifier)

	// Domain services
	registrationSvc := registration.NewService(registration.NewMemoryRepository(notifier), ids, cfg.StrictTransitions)
	schedulingSvc := scheduling.NewService(scheduling.NewMemoryRepository(notifier), cat, ids, cfg.StrictTransitions)
	pharmacySvc := pharmacy.NewService(pharmacy.NewMemoryRepository(notifier), cat, ids, cfg.StrictTransitions)
	billingSvc := billing.NewService(billing.NewMemoryRepository(notifier), ids, cfg.StrictTransitions)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestTimeout(30 * time.Second))
	e.Use(middleware.BodyLimit("1M"))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")

	// Rate limiting middleware
	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Domain routes
	registration.NewHandler(registrationSvc).RegisterRoutes(apiV1)
	scheduling.NewHandler(schedulingSvc).RegisterRoutes(apiV1)
	pharmacy.NewHandler(pharmacySvc).RegisterRoutes(apiV1)
	billing.NewHandler(billingSvc).RegisterRoutes(apiV1)
	audit.NewHandler(trail).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("id_mode", cfg.IDMode).Bool("strict_transitions", cfg.StrictTransitions).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
