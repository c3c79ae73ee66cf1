package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/clinicfinder/backend/internal/infrastructure/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// connectTimeout bounds pool creation and the initial ping
const connectTimeout = 10 * time.Second

// Database holds the database connection and provides methods for database operations.
// Connections are owned by a pgx pool; GORM talks to it through a database/sql adapter.
type Database struct {
	DB   *gorm.DB
	pool *pgxpool.Pool
}

// NewDatabaseWithCustomLogger creates a new database connection using the given GORM logger
func NewDatabaseWithCustomLogger(cfg *config.DatabaseConfig, gormLogger logger.Interface) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = time.Duration(cfg.ConnMaxLifetime) * time.Minute
	poolCfg.MaxConnIdleTime = time.Duration(cfg.ConnMaxIdleTime) * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db, err := OpenGorm(stdlib.OpenDBFromPool(pool), gormLogger)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Database{DB: db, pool: pool}, nil
}

// OpenGorm opens GORM on top of an existing *sql.DB speaking the postgres protocol
func OpenGorm(sqlDB *sql.DB, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Close closes the database connection and its pool
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	err = sqlDB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	return err
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	return d.PingContext(context.Background())
}

// PingContext checks if the database connection is alive within ctx
func (d *Database) PingContext(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Stats returns connection pool statistics.
// Pool figures come from pgx when the pool is present, otherwise from database/sql.
func (d *Database) Stats() (ConnectionStats, error) {
	if d.pool != nil {
		s := d.pool.Stat()
		return ConnectionStats{
			MaxOpenConnections: int(s.MaxConns()),
			OpenConnections:    int(s.TotalConns()),
			InUse:              int(s.AcquiredConns()),
			Idle:               int(s.IdleConns()),
			WaitCount:          s.EmptyAcquireCount(),
			WaitDuration:       s.AcquireDuration(),
		}, nil
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return ConnectionStats{}, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	stats := sqlDB.Stats()
	return ConnectionStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration,
	}, nil
}

// ConnectionStats holds database connection pool statistics
type ConnectionStats struct {
	MaxOpenConnections int
	OpenConnections    int
	InUse              int
	Idle               int
	WaitCount          int64
	WaitDuration       time.Duration
}

// Connector opens the database on first use and hands the same handle to every caller.
// Concurrent first calls share a single connection attempt.
type Connector struct {
	cfg        *config.DatabaseConfig
	gormLogger logger.Interface
	open       func(*config.DatabaseConfig, logger.Interface) (*Database, error)

	once sync.Once
	db   *Database
	err  error
}

// NewConnector creates a lazily connecting Connector
func NewConnector(cfg *config.DatabaseConfig, gormLogger logger.Interface) *Connector {
	return &Connector{
		cfg:        cfg,
		gormLogger: gormLogger,
		open:       NewDatabaseWithCustomLogger,
	}
}

// Get returns the shared database, connecting on the first call
func (c *Connector) Get() (*Database, error) {
	c.once.Do(func() {
		c.db, c.err = c.open(c.cfg, c.gormLogger)
	})
	return c.db, c.err
}

// Close closes the database if it was ever opened
func (c *Connector) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
