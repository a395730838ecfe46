package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/imagems/console/internal/config"
	"github.com/imagems/console/internal/domain/auth"
	"github.com/imagems/console/internal/domain/dashboard"
	"github.com/imagems/console/internal/domain/diagnosis"
	"github.com/imagems/console/internal/domain/image"
	"github.com/imagems/console/internal/domain/patient"
	"github.com/imagems/console/internal/domain/reference"
	"github.com/imagems/console/internal/domain/user"
	"github.com/imagems/console/internal/gateway"
	"github.com/imagems/console/internal/platform/guard"
	"github.com/imagems/console/internal/platform/middleware"
	"github.com/imagems/console/internal/session"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "console-server",
		Short: "Image Management System console",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the console server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the console version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
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

	// Session store
	store := session.NewStore([]byte(cfg.SessionSecret))

	// Backend gateway. The token comes out of the request's session on
	// every call, so a re-login mid-flight is picked up immediately.
	gw := gateway.NewClient(cfg.APIBaseURL,
		func(ctx context.Context) string {
			return session.FromContext(ctx).AccessToken
		},
		gateway.WithTimeout(cfg.ClientTimeoutDuration()),
		gateway.WithUnauthorizedHook(func(ctx context.Context) {
			logger.Warn().Msg("backend rejected access token, session will be cleared")
		}),
	)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.ErrorHandler(store, logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(session.Middleware(store))
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": version})
	})

	// Public routes: welcome, login, logout.
	auth.NewHandler(auth.NewHTTPRepository(gw), store, logger).RegisterRoutes(e)

	// Everything else requires a session.
	app := e.Group("", guard.RequireAuthenticated())
	dashboard.NewHandler().RegisterRoutes(app)
	reference.NewHandler(reference.NewHTTPRepository(gw)).RegisterRoutes(app)
	patient.NewHandler(patient.NewHTTPRepository(gw), cfg.PageSize).RegisterRoutes(app)
	user.NewHandler(user.NewHTTPRepository(gw), cfg.PageSize).RegisterRoutes(app)
	image.NewHandler(image.NewHTTPRepository(gw), cfg.PageSize).RegisterRoutes(app)
	diagnosis.NewHandler(diagnosis.NewHTTPRepository(gw), cfg.PageSize).RegisterRoutes(app)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("backend", cfg.APIBaseURL).Msg("starting console")
		var err error
		if cfg.TLSEnabled {
			err = e.StartTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = e.Start(addr)
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down console")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("console stopped")
	return nil
}
