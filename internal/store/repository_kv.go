package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-portal-client/internal/logger"
)

// kvRepository reads and writes single string values of one name/value
// table. It knows nothing about encryption; [secretStorage] seals values
// before they reach it.
type kvRepository struct {
	db    *DB
	table string
	now   func() time.Time
}

func newKVRepository(db *DB, table string) *kvRepository {
	return &kvRepository{
		db:    db,
		table: table,
		now:   time.Now,
	}
}

func (r *kvRepository) get(ctx context.Context, name string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectValue(r.table, name)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "kvRepository.get").
			Str("table", r.table).
			Str("name", name).
			Msg("failed to read value")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (r *kvRepository) put(ctx context.Context, name, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertValue(r.table, name, value, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.put").
			Str("table", r.table).
			Str("name", name).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *kvRepository) remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValue(r.table, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "kvRepository.remove").
			Str("table", r.table).
			Str("name", name).
			Msg("failed to delete value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
