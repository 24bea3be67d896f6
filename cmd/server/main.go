package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"property-ledger/internal/config"
	"property-ledger/internal/database"
	"property-ledger/internal/handlers"
	appmw "property-ledger/internal/middleware"
	"property-ledger/internal/repositories"
	"property-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	verbose bool

	tokenEmail string
	tokenName  string

	pruneOlderThan time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "property-ledger",
	Short: "Landlord utility bill ledger API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return runServer(cmd.Context(), cfg)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations and, if SEED_DATABASE is set, seed data",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			if err := m.WaitReady(cmd.Context()); err != nil {
				return err
			}
			if err := m.Up(); err != nil {
				return err
			}
			seeded, err := m.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if seeded > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %d seed files\n", seeded)
			}
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			return m.Down()
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current migration version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			st, err := m.Status()
			if err != nil {
				return err
			}
			if !st.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", st.Version, st.Dirty)
			return nil
		})
	},
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Maintain the ledger audit trail",
}

var auditPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete audit entries older than the retention period",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		retention := cfg.Audit.Retention
		if pruneOlderThan > 0 {
			retention = pruneOlderThan
		}

		db, err := database.New(&cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		audit := services.NewAuditService(repositories.NewAuditLogRepository(db.DB), slog.Default())
		deleted, err := audit.Prune(cmd.Context(), retention)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d audit entries older than %s\n", deleted, retention)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token <landlord-id>",
	Short: "Mint a bearer token with the local development key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.IsProduction() {
			return errors.New("development tokens are disabled in production")
		}

		token, expiresAt, err := services.NewTokenVerifier(&cfg.Auth).MintDevToken(args[0], tokenEmail, tokenName)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format(time.RFC3339))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email claim")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "name claim")

	auditPruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 0, "override AUDIT_RETENTION")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	auditCmd.AddCommand(auditPruneCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd, auditCmd, tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func withMigrator(fn func(m *database.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sqlDB, err := database.OpenSQL(&cfg.Database)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	return fn(database.NewMigrator(sqlDB, &cfg.Database))
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)

	propertyRepo := repositories.NewPropertyRepository(db.DB)
	leaseRepo := repositories.NewLeaseRepository(db.DB)
	billRepo := repositories.NewUtilityBillRepository(db.DB)
	settingRepo := repositories.NewUtilitySettingRepository(db.DB)
	paymentRepo := repositories.NewUtilityPaymentRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)

	calculator := services.NewChargeCalculator(settingRepo, paymentRepo)
	audit := services.NewAuditService(auditRepo, logger)
	billService := services.NewUtilityBillService(
		propertyRepo, leaseRepo, billRepo, settingRepo, paymentRepo,
		calculator, audit, metrics, logger,
	)
	filterSessions := services.NewFilterSessionService(
		billService, metrics, services.NewFilterLogger(logger), logger, cfg.Filters,
	)
	verifier := services.NewTokenVerifier(&cfg.Auth)
	rateLimiter := appmw.NewRateLimiter(cfg.RateLimit)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appmw.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(appmw.RequestID())
	e.Use(appmw.PanicRecovery())
	e.Use(appmw.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, appmw.TraceIDHeader},
	}))
	e.Use(rateLimiter.Middleware())

	handlers.RegisterRoutes(e, handlers.Handlers{
		Health:        handlers.NewHealthCheckHandler(db, filterSessions),
		UtilityBills:  handlers.NewUtilityBillHandler(billService),
		FilterSession: handlers.NewFilterSessionHandler(filterSessions),
		Audit:         handlers.NewAuditHandler(audit),
	}, appmw.RequireAuth(verifier))
	// the default gatherer carries the runtime collectors and api_errors_total
	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer, registry}
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherers, promhttp.HandlerOpts{})))

	go filterSessions.StartJanitor(ctx)
	go rateLimiter.StartCleanup(ctx)
	go audit.StartPruner(ctx, cfg.Audit.Retention, cfg.Audit.PruneInterval)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
