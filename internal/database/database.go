package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"property-ledger/internal/config"
	"property-ledger/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the gorm handle shared by the repositories
type DB struct {
	*gorm.DB
}

// ledgerModels are the tables AutoMigrate manages when the SQL migrations
// cannot run
var ledgerModels = []any{
	&models.Property{},
	&models.Lease{},
	&models.UtilityBill{},
	&models.LeaseUtilitySetting{},
	&models.UtilityPayment{},
	&models.AuditLog{},
}

// fallbackIndexes mirror the indexes the SQL migrations create
var fallbackIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_leases_property_status ON leases(property_id, status)",
	"CREATE INDEX IF NOT EXISTS idx_leases_landlord_status ON leases(landlord_id, status)",
	"CREATE INDEX IF NOT EXISTS idx_utility_bills_landlord_month ON utility_bills(landlord_id, bill_month DESC, utility_type)",
	"CREATE INDEX IF NOT EXISTS idx_lease_utility_settings_lease_type ON lease_utility_settings(lease_id, utility_type)",
	"CREATE INDEX IF NOT EXISTS idx_utility_payments_bill ON utility_payments(utility_bill_id)",
	"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource, resource_id)",
	"CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs(created_at)",
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// New connects gorm to postgres and applies the pool settings
func New(cfg *config.DatabaseConfig) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &DB{DB: gdb}, nil
}

// OpenSQL opens a plain lib/pq connection for the migrate commands, which
// do not need gorm
func OpenSQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(2)
	return db, nil
}

// Initialize connects and brings the schema up to date. If the SQL
// migrations fail it falls back to gorm AutoMigrate.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(&cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, err
	}

	if err := Prepare(ctx, sqlDB, &cfg.Database); err != nil {
		slog.Warn("migrations failed, falling back to AutoMigrate", "error", err)
		if err := db.AutoMigrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
		db.ensureIndexes()
	}

	return db, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(ledgerModels...)
}

func (db *DB) ensureIndexes() {
	for _, stmt := range fallbackIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			slog.Warn("create index failed", "statement", stmt, "error", err)
		}
	}
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the pool
func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
