// Package db provides the store connection factory and the SQL dialects the
// ingestion and dashboard layers share.
//
// Postgres is reached through pgx's database/sql driver; SQLite (local runs
// and tests) through modernc.org/sqlite. Both speak INSERT ... ON CONFLICT.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"             // registers "sqlite"

	"github.com/albapepper/hoopstats-data/internal/config"
)

// Dialect captures the differences between supported stores.
type Dialect struct {
	Name string
	// MaxParams is the bind-parameter ceiling for a single statement.
	MaxParams int
	numbered  bool
}

var (
	Postgres = Dialect{Name: config.DriverPostgres, MaxParams: 65535, numbered: true}
	SQLite   = Dialect{Name: config.DriverSQLite, MaxParams: 32766}
)

// Placeholder returns the n-th (1-based) bind marker.
func (d Dialect) Placeholder(n int) string {
	if d.numbered {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// DialectFor maps a configured driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverPostgres:
		return Postgres, nil
	case config.DriverSQLite:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported driver %q", driver)
	}
}

// Conn is a single-use store handle: one connection, closed by the caller.
type Conn struct {
	*sql.DB
	Dialect Dialect
}

// ConnectFunc opens a fresh store connection.
type ConnectFunc func(ctx context.Context) (*Conn, error)

// Connector returns a ConnectFunc bound to cfg. Every call opens and pings a
// new single-connection handle; nothing is pooled across calls.
func Connector(cfg *config.Config) ConnectFunc {
	return func(ctx context.Context) (*Conn, error) {
		conn, err := open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		return conn, nil
	}
}

// NewPool opens a pooled handle for long-running readers (the dashboard API).
func NewPool(ctx context.Context, cfg *config.Config) (*Conn, error) {
	conn, err := open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	maxConns := cfg.DBPoolMaxConns
	if conn.Dialect == SQLite {
		// modernc serializes writers; one handle keeps :memory: databases coherent.
		maxConns = 1
	}
	conn.SetMaxOpenConns(maxConns)
	conn.SetConnMaxLifetime(cfg.DBPoolMaxLife)
	conn.SetConnMaxIdleTime(5 * time.Minute)
	return conn, nil
}

func open(ctx context.Context, cfg *config.Config) (*Conn, error) {
	dialect, err := DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DatabaseURL
	if dialect == SQLite {
		dsn = sqliteDSN(cfg.SQLitePath())
	}

	handle, err := sql.Open(dialect.Name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect.Name, err)
	}

	// Verify connectivity
	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Conn{DB: handle, Dialect: dialect}, nil
}

// sqliteDSN makes modernc write time.Time values in a format SQLite's own
// date functions understand.
func sqliteDSN(path string) string {
	if strings.Contains(path, "_time_format=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_time_format=sqlite"
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (c *Conn) HealthCheck(ctx context.Context) error {
	var n int
	return c.QueryRowContext(ctx, "SELECT 1").Scan(&n)
}
