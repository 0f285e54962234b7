// @title           Disaster Relief Coordination API
// @version         1.0
// @description     Emergency reports, rescue tasks, shelters, relief resources and public notifications.

// @contact.name   API Support
// @contact.email  support@relief.example.org

// @license.name  MIT

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the Bearer prefix
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/A-Basit02/Disaster-Management-App/internal/app/routes"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/cache"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/config"
	"github.com/A-Basit02/Disaster-Management-App/internal/infrastructure/database"
	"github.com/A-Basit02/Disaster-Management-App/pkg/logger"
)

// shutdownTimeout bounds the drain of in-flight requests
const shutdownTimeout = 15 * time.Second

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:          "relief-server",
		Short:        "Disaster relief coordination API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML config file (defaults to $CONFIG_FILE)")

	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate, seed roles and serve HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func migrateCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and seed roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, err := bootstrap()
			if err != nil {
				return err
			}
			defer pool.Close()

			if mode == "" {
				mode = cfg.DBMigrationMode
			}
			if err := database.Migrate(pool.DB, mode); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := database.SeedRoles(cmd.Context(), pool.DB); err != nil {
				return fmt.Errorf("seed roles: %w", err)
			}
			logger.Info("migration finished in %s mode", mode)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "auto or drop (defaults to DB_MIGRATION_MODE)")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default roles if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, pool, err := bootstrap()
			if err != nil {
				return err
			}
			defer pool.Close()

			return database.SeedRoles(cmd.Context(), pool.DB)
		},
	}
}

// bootstrap loads the environment and config, sets up logging and opens the database
func bootstrap() (*config.Config, *database.ConnectionPool, error) {
	envErr := godotenv.Load()

	path := configFile
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err := logger.SetupLogger(cfg.EnvType, cfg.LogDir); err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}
	if envErr != nil {
		logger.Warning("no .env file loaded: %v", envErr)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, pool, nil
}

func runServe(ctx context.Context) error {
	cfg, pool, err := bootstrap()
	if err != nil {
		return err
	}
	defer pool.Close()
	defer logger.Sync()

	if err := database.Migrate(pool.DB, cfg.DBMigrationMode); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedRoles(ctx, pool.DB); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}

	var store cache.Store
	if cfg.RedisEnabled {
		redisStore, err := cache.NewRedisStore(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisStore.Close()
		store = redisStore
	}

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.ServerPort,
		Handler:           routes.SetupRouter(pool.DB, cfg, store),
		ReadHeaderTimeout: 10 * time.Second,
	}

	printSystemInfo(pool)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening on http://%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// printSystemInfo logs pool and runtime figures at start-up
func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		logger.L().Info("database pool", zap.Any("stats", stats))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logger.L().Info("runtime",
		zap.Int("cpus", runtime.NumCPU()),
		zap.Int("goroutines", runtime.NumGoroutine()),
		zap.Uint64("alloc_mib", m.Alloc/1024/1024),
		zap.Uint64("sys_mib", m.Sys/1024/1024),
	)
}
