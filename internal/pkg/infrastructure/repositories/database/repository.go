package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   string = "sqlite"
	DriverPostgres string = "postgres"
)

type ConnectorConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     string
	Username string
	DbName   string
	Password string
	SslMode  string
}

func LoadConfigFromEnv(ctx context.Context) ConnectorConfig {
	log := logging.GetFromContext(ctx)

	return ConnectorConfig{
		Driver:   env.GetVariableOrDefault(log, "DB_DRIVER", DriverSQLite),
		Path:     env.GetVariableOrDefault(log, "SQLITE_PATH", "bins.db"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     env.GetVariableOrDefault(log, "POSTGRES_PORT", "5432"),
		Username: os.Getenv("POSTGRES_USER"),
		DbName:   os.Getenv("POSTGRES_DBNAME"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		SslMode:  env.GetVariableOrDefault(log, "POSTGRES_SSLMODE", "disable"),
	}
}

type ConnectorFunc func() (*gorm.DB, error)

func NewConnector(ctx context.Context, cfg ConnectorConfig) (ConnectorFunc, error) {
	switch cfg.Driver {
	case DriverSQLite, "":
		return NewSQLiteConnector(ctx, cfg.Path), nil
	case DriverPostgres:
		return NewPostgreSQLConnector(ctx, cfg), nil
	default:
		return nil, fmt.Errorf("%w: unsupported database driver %q", ErrStorageUnavailable, cfg.Driver)
	}
}

// NewSQLiteConnector opens the database file at path. The pool is limited to a single
// connection so that every statement, and every transaction, is serialized by the store.
func NewSQLiteConnector(ctx context.Context, path string) ConnectorFunc {
	log := logging.GetFromContext(ctx).With().Str("database", path).Logger()

	return func() (*gorm.DB, error) {
		log.Debug().Msg("opening sqlite database")

		db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
			Logger: newGormLogger(log),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err.Error())
		}

		sqldb, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err.Error())
		}
		sqldb.SetMaxOpenConns(1)

		return db, nil
	}
}

func NewPostgreSQLConnector(ctx context.Context, cfg ConnectorConfig) ConnectorFunc {
	dbURI := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s password=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.DbName, cfg.SslMode, cfg.Password,
	)

	log := logging.GetFromContext(ctx).With().
		Str("host", cfg.Host).
		Str("database", cfg.DbName).
		Logger()

	return func() (*gorm.DB, error) {
		log.Info().Msg("connecting to database host")

		db, err := gorm.Open(postgres.Open(dbURI), &gorm.Config{
			Logger: newGormLogger(log),
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to connect to database")
			return nil, fmt.Errorf("%w: %s", ErrStorageUnavailable, err.Error())
		}

		return db, nil
	}
}

func newGormLogger(log zerolog.Logger) logger.Interface {
	return logger.New(
		&logadapter{logger: log},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// logadapter provides a Printf interface to the gorm logger
// so that we can forward the log data to zerolog
type logadapter struct {
	logger zerolog.Logger
}

func (adapter *logadapter) Printf(format string, args ...interface{}) {
	adapter.logger.Info().Msgf(format, args...)
}
