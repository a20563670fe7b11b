package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/location-loader/internal/domain"
	"github.com/location-loader/internal/domain/repository"
	"github.com/location-loader/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	insertLocationQuery = `
		INSERT INTO locations (
			created_at, updated_at, deleted_at,
			location_id, name, description,
			latitude, longitude, location_type,
			status, contributed_by, average_rating, review_count
		) VALUES (
			:created_at, :updated_at, :deleted_at,
			:location_id, :name, :description,
			:latitude, :longitude, :location_type,
			:status, :contributed_by, :average_rating, :review_count
		)
	`

	getLocationQuery = `
		SELECT
			created_at, updated_at, deleted_at,
			location_id, name, description,
			latitude, longitude, location_type,
			status, contributed_by, average_rating, review_count
		FROM locations
		WHERE location_id = $1 AND deleted_at IS NULL
	`

	savepointName = "location_insert"
)

type locationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewLocationRepository(db *DB) repository.LocationRepository {
	return &locationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *locationRepository) Begin(ctx context.Context) (repository.LocationBatch, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin location batch", zap.Error(err))
		return nil, persistenceError("begin", err)
	}
	return &locationBatch{tx: tx, logger: r.logger}, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.LocationRecord, error) {
	var rec domain.LocationRecord
	err := r.db.GetContext(ctx, &rec, getLocationQuery, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get location by ID", zap.String("location_id", id.String()), zap.Error(err))
		return nil, persistenceError("get location", err)
	}
	return &rec, nil
}

// locationBatch wraps one transaction. Every insert runs under a savepoint
// so a rejected row leaves the transaction usable for the next one.
type locationBatch struct {
	tx     *sqlx.Tx
	logger *zap.Logger
	done   bool
}

func (b *locationBatch) Insert(ctx context.Context, record *domain.LocationRecord) error {
	if b.done {
		return persistenceError("insert location", sql.ErrTxDone)
	}

	if _, err := b.tx.ExecContext(ctx, "SAVEPOINT "+savepointName); err != nil {
		return persistenceError("savepoint", err)
	}

	if _, err := b.tx.NamedExecContext(ctx, insertLocationQuery, record); err != nil {
		if _, rbErr := b.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepointName); rbErr != nil {
			b.logger.Error("Failed to roll back to savepoint", zap.Error(rbErr))
		}
		return persistenceError("insert location", err)
	}

	if _, err := b.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepointName); err != nil {
		return persistenceError("release savepoint", err)
	}
	return nil
}

func (b *locationBatch) Finalize() error {
	if b.done {
		return persistenceError("commit", sql.ErrTxDone)
	}
	b.done = true
	if err := b.tx.Commit(); err != nil {
		return persistenceError("commit", err)
	}
	return nil
}

func (b *locationBatch) Close() error {
	if b.done {
		return nil
	}
	b.done = true
	if err := b.tx.Rollback(); err != nil && !stderrors.Is(err, sql.ErrTxDone) {
		return persistenceError("rollback", err)
	}
	return nil
}

// persistenceError keeps the SQLSTATE from either driver: pgx serves the
// binaries, lib/pq the integration tests.
func persistenceError(op string, err error) error {
	pe := &errors.PersistenceError{Op: op, Err: err}
	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case stderrors.As(err, &pgErr):
		pe.Code = pgErr.Code
	case stderrors.As(err, &pqErr):
		pe.Code = string(pqErr.Code)
	}
	return pe
}
