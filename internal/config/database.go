package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DatabaseConfig is one PostgreSQL endpoint. The API writes through the writer and
// serves plain reads from the reader; both may point at the same server.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ConnectionPoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getLogLevel maps DB_LOG_LEVEL (silent, error, warn, info) to a gorm log level
func getLogLevel() logger.LogLevel {
	switch getEnvWithDefault("DB_LOG_LEVEL", "warn") {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// endpointConfig reads POSTGRES_<ROLE>_* variables, taking unset values from fallback
func endpointConfig(role string, fallback DatabaseConfig) DatabaseConfig {
	prefix := "POSTGRES_" + role + "_"
	return DatabaseConfig{
		Host:     getEnvWithDefault(prefix+"HOST", fallback.Host),
		Port:     getEnvWithDefault(prefix+"PORT", fallback.Port),
		User:     getEnvWithDefault(prefix+"USER", fallback.User),
		Password: getEnvWithDefault(prefix+"PASSWORD", fallback.Password),
		DBName:   getEnvWithDefault(prefix+"DB_NAME", fallback.DBName),
		SSLMode:  getEnvWithDefault(prefix+"SSL_MODE", fallback.SSLMode),
	}
}

// WriterConfig is the primary endpoint
func WriterConfig() DatabaseConfig {
	return endpointConfig("WRITER", DatabaseConfig{
		Host:    "localhost",
		Port:    "5432",
		User:    "postgres",
		DBName:  "dealer",
		SSLMode: "disable",
	})
}

// ReaderConfig defaults every unset field to the writer's, so a single-node setup
// only configures the writer.
func ReaderConfig() DatabaseConfig {
	return endpointConfig("READER", WriterConfig())
}

func poolConfig() ConnectionPoolConfig {
	return ConnectionPoolConfig{
		MaxOpenConns:    getEnvIntWithDefault("DB_MAX_OPEN_CONNS", 50),
		MaxIdleConns:    getEnvIntWithDefault("DB_MAX_IDLE_CONNS", 10),
		ConnMaxLifetime: getEnvDurationWithDefault("DB_CONN_MAX_LIFETIME", time.Hour),
	}
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Open connects with the gorm settings every repository relies on
func Open(dsn string, pool ConnectionPoolConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(getLogLevel()),
		// unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return db, nil
}

type DatabaseConnections struct {
	Writer *gorm.DB
	Reader *gorm.DB
}

func NewDatabaseConnections() (*DatabaseConnections, error) {
	pool := poolConfig()

	writer, err := Open(WriterConfig().DSN(), pool)
	if err != nil {
		return nil, fmt.Errorf("writer: %w", err)
	}

	reader, err := Open(ReaderConfig().DSN(), pool)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}

	return &DatabaseConnections{Writer: writer, Reader: reader}, nil
}

// Ping checks both endpoints
func (dc *DatabaseConnections) Ping(ctx context.Context) error {
	for name, db := range map[string]*gorm.DB{"writer": dc.Writer, "reader": dc.Reader} {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (dc *DatabaseConnections) Close() error {
	var errs []error
	for name, db := range map[string]*gorm.DB{"writer": dc.Writer, "reader": dc.Reader} {
		if db == nil {
			continue
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close %s database connection: %w", name, err))
			}
		}
	}
	return errors.Join(errs...)
}
