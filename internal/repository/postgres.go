package repository

import (
	"context"
	"fmt"
	"time"

	"houseprice/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const insertPredictionLog = `
	INSERT INTO prediction_logs (
		id, payload, features, predicted_price, model_version, response_time_us, created_at
	) VALUES (
		:id, :payload, :features, :predicted_price, :model_version, :response_time_us, :created_at
	)
`

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Ping checks the database is reachable
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// LogPrediction stores a served prediction in prediction_logs
func (r *PostgresRepository) LogPrediction(ctx context.Context, entry *model.PredictionLog) error {
	if _, err := r.db.NamedExecContext(ctx, insertPredictionLog, entry); err != nil {
		return fmt.Errorf("failed to log prediction: %w", err)
	}
	return nil
}
