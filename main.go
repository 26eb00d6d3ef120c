package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/afnankhn654-alt/ShopNest/catalog"
	"github.com/afnankhn654-alt/ShopNest/config"
	"github.com/afnankhn654-alt/ShopNest/logging"
	"github.com/afnankhn654-alt/ShopNest/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "shopnest",
		Short:         "ShopNest storefront API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before the environment")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	})
	root.AddCommand(newExportCmd(&envFile))
	return root
}

func runServe(parent context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("✅ Starting application...")
	srv, err := newServer(ctx, cfg, logger)
	if err != nil {
		logger.Error("❌ Startup failed", zap.Error(err))
		return err
	}
	return srv.Run(ctx)
}

func newExportCmd(envFile *string) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-catalog",
		Short: "Write the catalog to an .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*envFile)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ds, err := loadDataset(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := catalog.WriteWorkbook(f, ds.Products); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			logger.Info("catalog exported", zap.String("file", out), zap.Int("products", len(ds.Products)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "products.xlsx", "output file")
	return cmd
}

// loadDataset seeds the catalog and, when a database is configured, replaces
// it with the persisted state.
func loadDataset(ctx context.Context, cfg config.Config, logger *zap.Logger) (catalog.Dataset, error) {
	ds := catalog.Seed(cfg.CatalogSeed, catalog.DefaultGenerated)
	dsn := cfg.DatabaseDSN()
	if dsn == "" {
		return ds, nil
	}
	db, err := repository.OpenPostgres(dsn)
	if err != nil {
		return catalog.Dataset{}, err
	}
	repo := repository.New(db, logger)
	if err := repo.Migrate(ctx); err != nil {
		return catalog.Dataset{}, err
	}
	return repo.LoadOrSeed(ctx, ds)
}
