package kv

import (
	"context"
	"fmt"
	"time"

	"conectacausa/internal/utils"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const collectionTableName = "conectacausa.collections"

var migrations = []string{
	`CREATE SCHEMA IF NOT EXISTS conectacausa`,
	`CREATE TABLE IF NOT EXISTS conectacausa.collections (
	key        text PRIMARY KEY,
	value      jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`,
}

type collectionRow struct {
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

var collectionColumns = utils.StructTagValues(collectionRow{})

// PostgresStore keeps one jsonb row per key.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Migrate creates the collections table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create collections table: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	query, args, err := selectCollectionQuery(key)
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate collection query: %w", err)
	}

	var row collectionRow
	err = pgxscan.Get(ctx, s.pool, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to fetch collection: %w", err)
	}

	return row.Value, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := upsertCollectionQuery(&collectionRow{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to generate collection upsert query: %w", err)
	}

	_, err = s.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert collection: %w", err)
	}

	return nil
}

func selectCollectionQuery(key string) (string, []any, error) {
	return psql().
		Select(collectionColumns...).
		From(collectionTableName).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func upsertCollectionQuery(row *collectionRow) (string, []any, error) {
	return psql().
		Insert(collectionTableName).
		SetMap(utils.StructToMap(row)).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
}
