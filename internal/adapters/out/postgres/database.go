package postgres

import (
	"database/sql"
	"fmt"

	"shipment/internal/adapters/out/postgres/loadingrepo"
	"shipment/internal/adapters/out/postgres/orderrepo"
	"shipment/internal/adapters/out/postgres/skurepo"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to PostgreSQL through lib/pq and wraps the pool in GORM.
func Open(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("install tracing plugin: %w", err)
	}

	return db, nil
}

// Migrate creates or updates every table owned by the service.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&skurepo.SkuDTO{},
		&loadingrepo.LoadingRecordDTO{},
		&loadingrepo.LoadedItemDTO{},
	)
}

// DSN builds a key/value connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}
