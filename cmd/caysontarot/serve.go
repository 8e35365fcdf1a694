package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpadapter "github.com/Cayson-Choi/caysontarot/internal/adapters/http"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, svc, err := setup()
			if err != nil {
				slog.Error("startup failed", "error", err)
				return err
			}

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true

			e.Use(httpadapter.RequestIDMiddleware())
			e.Use(httpadapter.LoggingMiddleware(logger))

			handler := httpadapter.NewHandler(svc)
			handler.Register(e)

			// Graceful shutdown.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			go func() {
				logger.Info("starting server", "addr", cfg.HTTPAddr)
				if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
					logger.Error("server error", "error", err)
					os.Exit(1)
				}
			}()

			<-ctx.Done()
			logger.Info("shutting down")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}
