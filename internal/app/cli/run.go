package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	inventorymemory "github.com/invtrack/invtrack/internal/domains/inventory/adapters/memory"
	inventoryobs "github.com/invtrack/invtrack/internal/domains/inventory/adapters/observability"
	"github.com/invtrack/invtrack/internal/domains/inventory/adapters/persistence/flatfile"
	"github.com/invtrack/invtrack/internal/domains/inventory/adapters/terminal"
	inventoryapp "github.com/invtrack/invtrack/internal/domains/inventory/application"
	inventoryports "github.com/invtrack/invtrack/internal/domains/inventory/ports"
	platformobservability "github.com/invtrack/invtrack/internal/platform/observability"
)

const serviceName = "invtrack"

// Run boots the interactive inventory tracker with observability and the
// flat-file repository wired.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName,
		platformobservability.Config{LogLevel: cfg.LogLevel, TraceFile: cfg.TraceFile})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repo := buildRepository(cfg, logger)
	core, err := inventoryapp.NewService(ctx, repo)
	if err != nil {
		return fmt.Errorf("failed to load inventory data: %w", err)
	}
	service := inventoryobs.New(
		core,
		inventoryobs.WithLogger(logger),
		inventoryobs.WithTracer(instruments.Tracer("internal.domains.inventory.application")),
		inventoryobs.WithMeter(instruments.Meter("internal.domains.inventory.application")),
	)

	logger.Info("inventory tracker started", slog.String("data_dir", cfg.DataDir))
	ui := terminal.New(service, os.Stdin, os.Stdout)
	return ui.Run(ctx)
}

func buildRepository(cfg Config, logger *slog.Logger) inventoryports.Repository {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Warn("cannot prepare data directory, falling back to in-memory repository; changes will not persist",
			slog.String("data_dir", cfg.DataDir), slog.String("error", err.Error()))
		return inventorymemory.NewRepository()
	}
	return flatfile.NewRepository(cfg.DataDir, flatfile.WithLogger(logger))
}
