// OmniIntelligence plugin server. Walks the plugin through its host
// lifecycle, starts the bus consumers, and serves the read-only
// operational HTTP surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/onex-platform/omniintelligence/pkg/api"
	"github.com/onex-platform/omniintelligence/pkg/plugin"
	"github.com/onex-platform/omniintelligence/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting OmniIntelligence",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()
	p := plugin.New(podID)

	// 1. Activation check
	active, err := p.ShouldActivate(ctx)
	if err != nil {
		slog.Error("Activation check failed", "error", err)
		os.Exit(1)
	}
	if !active {
		slog.Info("Plugin not activated, exiting")
		return
	}

	// 2. Lifecycle stages in protocol order
	if err := p.Initialize(ctx, *configDir); err != nil {
		slog.Error("Failed to initialize plugin", "error", err)
		os.Exit(1)
	}
	if err := p.WireHandlers(ctx); err != nil {
		slog.Error("Failed to wire handlers", "error", err)
		os.Exit(1)
	}
	if err := p.WireDispatchers(ctx); err != nil {
		slog.Error("Failed to wire dispatchers", "error", err)
		os.Exit(1)
	}
	if err := p.StartConsumers(ctx); err != nil {
		slog.Error("Failed to start consumers", "error", err)
		os.Exit(1)
	}

	// 3. Start HTTP server (non-blocking)
	httpServer := api.NewServer(p.DB(), p.Engine(), p.PatternStore())
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", p.Config().HTTP.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("OmniIntelligence started successfully", "pod_id", podID)

	// 4. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 5. Graceful shutdown: HTTP first so health stops answering, then
	// the plugin drains its workers.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	if err := p.Shutdown(ctx); err != nil {
		slog.Error("Plugin shutdown error", "error", err)
		os.Exit(1)
	}

	slog.Info("Shutdown complete")
}
