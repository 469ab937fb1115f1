package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpapi "github.com/artem13815/hagrid/api/http"
	"github.com/artem13815/hagrid/api/http/handlers"
	"github.com/artem13815/hagrid/pkg/health"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve stored history over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, checker, closeStore, err := openStore(ctx, cfg.Store, logger)
		if err != nil {
			return err
		}
		defer closeStore()

		app := fiber.New(fiber.Config{DisableStartupMessage: true})
		httpapi.Register(app,
			handlers.NewHealthHandler(health.NewService(checker)),
			handlers.NewHistoryHandler(store),
		)

		go func() {
			<-ctx.Done()
			_ = app.Shutdown()
		}()

		logger.Info("HTTP server listening", zap.String("port", cfg.Port))
		cmd.Printf("listening on :%s\n", cfg.Port)
		return app.Listen(":" + cfg.Port)
	},
}
