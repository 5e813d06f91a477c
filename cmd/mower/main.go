// Command mower validates and simulates lawn mower programs.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/custodia-labs/mower-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/mower-cli/internal/adapters/driven/input"
	"github.com/custodia-labs/mower-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/mower-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/mower-cli/internal/core/ports/driven"
	"github.com/custodia-labs/mower-cli/internal/core/services"
	"github.com/custodia-labs/mower-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(newServices)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newServices wires adapters into services.
func newServices(configDir string) (*cli.Services, error) {
	configStore, err := openConfig(configDir)
	if err != nil {
		return nil, err
	}

	settings := services.NewSettingsService(configStore)
	validator := services.NewValidatorService()
	runner := services.NewRunnerService(
		validator,
		services.NewSimulatorService(),
		settings,
		memory.NewRunStore(memory.DefaultRunCapacity),
	)
	runner.SetIDGenerator(uuid.NewString)

	return &cli.Services{
		Validator: validator,
		Runner:    runner,
		Settings:  settings,
		Watcher:   input.NewWatcher(input.DefaultSettle),
	}, nil
}

// openConfig opens the TOML config store. An unreadable home directory
// falls back to in-memory settings; a corrupt config file is an error.
func openConfig(configDir string) (driven.ConfigStore, error) {
	store, err := file.NewConfigStore(configDir)
	if err == nil {
		return store, nil
	}
	if configDir == "" && (errors.Is(err, os.ErrPermission) || os.Getenv("HOME") == "") {
		logger.Warn("config unavailable, using defaults: %v", err)
		return memory.NewConfigStore(), nil
	}
	return nil, err
}
