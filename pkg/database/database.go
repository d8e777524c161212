package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/benedict-erwin/soc-dashboard/config"
	"github.com/benedict-erwin/soc-dashboard/pkg/logger"
)

// ErrNotConnected is returned when a query is attempted on a missing or closed session
var ErrNotConnected = errors.New("database session is not open")

// Config holds the static connection parameters of the telemetry database
type Config struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	Params   map[string]string
}

// GetConfig returns connection parameters from the loaded application config
func GetConfig() Config {
	cfg := config.Get().Database
	return Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Name:     cfg.Name,
		User:     cfg.User,
		Password: cfg.Password,
		Params:   cfg.Params,
	}
}

// Address returns host:port
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DSN builds the go-sql-driver/mysql data source name
func (c Config) DSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.User
	dsn.Passwd = c.Password
	dsn.Net = "tcp"
	dsn.Addr = c.Address()
	dsn.DBName = c.Name
	dsn.ParseTime = true
	if len(c.Params) > 0 {
		dsn.Params = make(map[string]string, len(c.Params))
		for k, v := range c.Params {
			dsn.Params[k] = v
		}
	}
	return dsn.FormatDSN()
}

// Session is the single database session shared by every analytical query of a run
type Session struct {
	db        *sqlx.DB
	name      string
	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// ServerInfo describes the connected database server
type ServerInfo struct {
	Database     string
	Version      string
	Tables       []string
	ResponseTime time.Duration
}

// Connect opens a MySQL session and verifies it with a ping
func Connect(ctx context.Context, cfg Config) (*Session, error) {
	log := logger.WithScope("DatabaseConnect")

	db, err := sqlx.Open("mysql", cfg.DSN())
	if err != nil {
		log.Error().Err(err).Str("host", cfg.Address()).Msg("Error connecting to database")
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One run, one session
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Error().Err(err).Str("host", cfg.Address()).Str("database", cfg.Name).Msg("Error connecting to database")
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Address(), err)
	}

	log.Info().Str("host", cfg.Address()).Str("database", cfg.Name).Msg("Successfully connected to database")
	return &Session{db: db, name: cfg.Name}, nil
}

// NewSession wraps an already opened handle; driverName selects the bind style
func NewSession(db *sql.DB, driverName string) *Session {
	return &Session{db: sqlx.NewDb(db, driverName)}
}

// RunQuery executes query and scans every row into dest, a pointer to a slice.
// Failures are logged here and returned so the caller can skip its step.
func (s *Session) RunQuery(ctx context.Context, name, query string, dest interface{}) error {
	log := logger.WithScope("RunQuery")

	if s == nil || s.db == nil || s.closed {
		log.Error().Str("query", name).Msg("Error executing query: session not open")
		return ErrNotConnected
	}

	if name != "" {
		log.Info().Str("query", name).Msg("Executing")
	}

	start := time.Now()
	if err := s.db.SelectContext(ctx, dest, query); err != nil {
		log.Error().Err(err).Str("query", name).Msg("Error executing query")
		return fmt.Errorf("query %q: %w", name, err)
	}

	log.Debug().Str("query", name).Dur("duration", time.Since(start)).Msg("Query completed")
	return nil
}

// Info reports database name, server version and the table list
func (s *Session) Info(ctx context.Context) (*ServerInfo, error) {
	if s == nil || s.db == nil || s.closed {
		return nil, ErrNotConnected
	}

	start := time.Now()
	var dbName, version sql.NullString
	if err := s.db.QueryRowxContext(ctx, "SELECT DATABASE(), VERSION()").Scan(&dbName, &version); err != nil {
		return nil, fmt.Errorf("failed to read server info: %w", err)
	}

	var tables []string
	if err := s.db.SelectContext(ctx, &tables, "SHOW TABLES"); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	return &ServerInfo{
		Database:     dbName.String,
		Version:      version.String,
		Tables:       tables,
		ResponseTime: time.Since(start),
	}, nil
}

// Close releases the session. Only the first call reaches the driver.
func (s *Session) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closed = true
		s.closeErr = s.db.Close()
		if s.closeErr != nil {
			logger.WithScope("DatabaseClose").Error().Err(s.closeErr).Msg("Error closing database connection")
			return
		}
		logger.WithScope("DatabaseClose").Info().Str("database", s.name).Msg("Database connection closed")
	})
	return s.closeErr
}
