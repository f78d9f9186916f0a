package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/marmos91/dittodrive/internal/logger"
	"github.com/marmos91/dittodrive/internal/seed"
	"github.com/marmos91/dittodrive/pkg/adapter/rest"
	"github.com/marmos91/dittodrive/pkg/config"
	"github.com/marmos91/dittodrive/pkg/drive"
	"github.com/marmos91/dittodrive/pkg/server"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (default: "+config.GetDefaultConfigPath()+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output); err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	fmt.Println("DittoDrive - hierarchical file sharing service")
	logger.Info("log level set to: %s", cfg.Logging.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	entityStore, err := config.CreateEntityStore(ctx, &cfg.Entity)
	if err != nil {
		log.Fatalf("Failed to create entity store: %v", err)
	}
	defer func() {
		if err := entityStore.Close(); err != nil {
			logger.Error("failed to close entity store: %v", err)
		}
	}()
	logger.Info("entity store: %s", cfg.Entity.Type)

	contentStore, err := config.CreateContentStore(ctx, &cfg.Content)
	if err != nil {
		log.Fatalf("Failed to create content store: %v", err)
	}
	defer func() {
		if err := contentStore.Close(); err != nil {
			logger.Error("failed to close content store: %v", err)
		}
	}()
	logger.Info("content store: %s", cfg.Content.Type)

	service := drive.NewService(entityStore, contentStore)

	if cfg.Seed.Path != "" {
		spec, err := seed.Load(cfg.Seed.Path)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		if _, err := seed.Apply(ctx, service, spec); err != nil {
			log.Fatalf("Failed to apply seed: %v", err)
		}
		logger.Info("seed applied from %s", cfg.Seed.Path)
	}

	srv := server.New(service)
	if cfg.Adapters.REST.Enabled {
		if err := srv.AddAdapter(rest.NewRESTAdapter(cfg.Adapters.REST, service)); err != nil {
			log.Fatalf("Failed to register REST adapter: %v", err)
		}
	}

	logger.Info("server is running. Press Ctrl+C to stop.")
	if err := srv.Serve(ctx); err != nil {
		logger.Error("server error: %v", err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}
