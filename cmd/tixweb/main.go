// tixweb is the web front-end for the event booking API: it renders the
// event catalog, the booking flow and the bookings ledger as server-side
// HTML, consuming the remote REST API on every request.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/kirinyoku/tix-web/internal/app"
	"github.com/kirinyoku/tix-web/internal/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.New()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	application := app.New(cfg, logger)

	if err := application.Run(context.Background()); err != nil {
		logger.Error("application finished with error", "error", err)
		os.Exit(1)
	}
}
