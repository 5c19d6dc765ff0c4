package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Querier runs statements written with '?' placeholders against a
// connection or a transaction. Placeholders are rebound for the driver.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row
}

// Client holds the database connection pool
type Client struct {
	DB     *sql.DB
	driver string
	log    logger.Logger
}

// PoolConfig holds connection pool configuration
type PoolConfig struct {
	MaxOpenConns    int           // Maximum number of open connections
	MaxIdleConns    int           // Maximum number of idle connections
	ConnMaxLifetime time.Duration // Maximum amount of time a connection may be reused
	ConnMaxIdleTime time.Duration // Maximum amount of time a connection may be idle
}

// SSLConfig holds SSL/TLS configuration for postgres connections
type SSLConfig struct {
	Mode         string // disable, require, verify-ca, verify-full
	CertPath     string // Path to client certificate
	KeyPath      string // Path to client key
	RootCertPath string // Path to root CA certificate
}

// Options configure NewClient
type Options struct {
	Pool PoolConfig
	SSL  *SSLConfig
	// ConnectTimeout bounds the retries of the initial ping. Zero pings once.
	ConnectTimeout time.Duration
	// Bootstrap creates missing tables and indexes after connecting.
	Bootstrap bool
	Logger    logger.Logger
}

// DefaultPoolConfig returns sensible defaults for connection pooling
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}
}

// ParseURL maps a DATABASE_URL onto a driver name and its DSN.
// postgres:// and postgresql:// select lib/pq; sqlite://<path> and
// file:<path> select sqlite3.
func ParseURL(databaseURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return DriverSQLite, strings.TrimPrefix(databaseURL, "sqlite://"), nil
	case strings.HasPrefix(databaseURL, "file:"):
		return DriverSQLite, databaseURL, nil
	case databaseURL == "":
		return "", "", errors.New("database URL is empty")
	}
	return "", "", fmt.Errorf("unsupported database URL scheme: %q", databaseURL)
}

// BuildConnectionString adds SSL parameters to a postgres connection string
func BuildConnectionString(baseURL string, sslCfg *SSLConfig) (string, error) {
	if sslCfg == nil {
		return baseURL, nil
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}

	query := parsedURL.Query()
	if sslCfg.Mode != "" {
		query.Set("sslmode", sslCfg.Mode)
	}
	if sslCfg.CertPath != "" {
		query.Set("sslcert", sslCfg.CertPath)
	}
	if sslCfg.KeyPath != "" {
		query.Set("sslkey", sslCfg.KeyPath)
	}
	if sslCfg.RootCertPath != "" {
		query.Set("sslrootcert", sslCfg.RootCertPath)
	}
	parsedURL.RawQuery = query.Encode()

	return parsedURL.String(), nil
}

// Open creates a client without contacting the database
func Open(databaseURL string, opts Options) (*Client, error) {
	driver, dsn, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}
	if driver == DriverPostgres {
		if dsn, err = BuildConnectionString(dsn, opts.SSL); err != nil {
			return nil, fmt.Errorf("failed building connection string: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to %s: %w", driver, err)
	}

	pool := opts.Pool
	if pool.MaxOpenConns == 0 {
		pool = DefaultPoolConfig()
	}
	if driver == DriverSQLite {
		// sqlite allows a single writer; one connection avoids "database is locked".
		pool.MaxOpenConns = 1
		pool.MaxIdleConns = 1
		pool.ConnMaxLifetime = 0
		pool.ConnMaxIdleTime = 0
	}
	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	log := opts.Logger
	if log == nil {
		log = logger.Default()
	}

	return &Client{DB: db, driver: driver, log: log.With("component", "database", "driver", driver)}, nil
}

// NewClient opens the database, waits for it to answer and optionally
// bootstraps the schema. The initial ping is retried with exponential
// backoff for up to opts.ConnectTimeout so the API can start alongside its
// database container.
func NewClient(ctx context.Context, databaseURL string, opts Options) (*Client, error) {
	c, err := Open(databaseURL, opts)
	if err != nil {
		return nil, err
	}

	if err := c.waitForConnection(ctx, opts.ConnectTimeout); err != nil {
		_ = c.Close()
		return nil, err
	}

	if opts.Bootstrap {
		if err := c.Bootstrap(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
	}

	c.log.Info("database connected", "bootstrap", opts.Bootstrap)
	return c, nil
}

func (c *Client) waitForConnection(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		return c.Ping(ctx)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = timeout

	attempt := 0
	op := func() error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := c.Ping(pingCtx); err != nil {
			c.log.Warn("database not ready", "attempt", attempt, "error", err)
			return err
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
	}
	return nil
}

// Driver returns the driver name
func (c *Client) Driver() string {
	return c.driver
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.DB.Close()
}

// Ping checks if the database is reachable
func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// Stats returns database connection pool statistics
func (c *Client) Stats() sql.DBStats {
	return c.DB.Stats()
}

// Rebind converts '?' placeholders to the driver's bind syntax
func (c *Client) Rebind(query string) string {
	return rebind(c.driver, query)
}

func rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// Exec executes a statement
func (c *Client) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.DB.ExecContext(ctx, c.Rebind(query), args...)
}

// Query runs a query returning rows
func (c *Client) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return c.DB.QueryContext(ctx, c.Rebind(query), args...)
}

// QueryRow runs a query returning at most one row
func (c *Client) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return c.DB.QueryRowContext(ctx, c.Rebind(query), args...)
}

// Tx is a transaction that rebinds placeholders like Client
type Tx struct {
	tx     *sql.Tx
	driver string
}

// Exec executes a statement inside the transaction
func (t *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, rebind(t.driver, query), args...)
}

// Query runs a query inside the transaction
func (t *Tx) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return t.tx.QueryContext(ctx, rebind(t.driver, query), args...)
}

// QueryRow runs a single-row query inside the transaction
func (t *Tx) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, rebind(t.driver, query), args...)
}

// WithTx runs fn in a transaction, committing when fn returns nil
func (c *Client) WithTx(ctx context.Context, fn func(q Querier) error) error {
	sqlTx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(&Tx{tx: sqlTx, driver: c.driver}); err != nil {
		if rbErr := sqlTx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
