package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/emzola/sdmagic/clients"
	"github.com/emzola/sdmagic/config"
	"github.com/emzola/sdmagic/data"
	"github.com/emzola/sdmagic/handler"
	"github.com/emzola/sdmagic/internal/spa"
	"github.com/emzola/sdmagic/repository"
	"github.com/emzola/sdmagic/repository/postgres"
	"github.com/emzola/sdmagic/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/spf13/cobra"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func serveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load()
			if err != nil {
				return err
			}
			viewTTL, err := time.ParseDuration(cfg.Static.ViewCacheTTL)
			if err != nil {
				return fmt.Errorf("static.view_cache_ttl: %w", err)
			}
			categoryTTL, err := time.ParseDuration(cfg.Cache.CategoryTTL)
			if err != nil {
				return fmt.Errorf("cache.category_ttl: %w", err)
			}

			if cfg.Database.MigrateOnStart {
				if err := migrateUp(cfg.Database.DSN); err != nil {
					return err
				}
				logger.PrintInfo("database migrations applied", nil)
			}

			db, err := postgres.OpenDBConn(cfg)
			if err != nil {
				return err
			}
			defer db.Close()
			logger.PrintInfo("database connection pool established", nil)

			// Snapshot exports stay disabled until a bucket is configured.
			var store clients.ObjectStore
			if cfg.S3.Bucket != "" {
				s3Store, err := clients.NewS3Store(cfg)
				if err != nil {
					return err
				}
				store = s3Store
			}

			var wg sync.WaitGroup
			cache := ttlcache.New(ttlcache.WithTTL[string, []*data.Category](categoryTTL))
			go cache.Start()
			defer cache.Stop()

			repo := repository.New(db)
			svc := service.New(cfg, &wg, logger, repo, store, cache)
			views := spa.NewLoader(cfg.Static.Dir, viewTTL)
			a := &app{
				config:  cfg,
				repo:    repo,
				service: svc,
				handler: handler.New(cfg, logger, views, svc),
			}
			return a.serve(&wg, logger)
		},
	}
}

func migrateUp(dsn string) error {
	mg, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer mg.Close()
	return mg.Up()
}
