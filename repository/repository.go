package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const queryTimeout = 5 * time.Second

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

//go:embed schema.sql
var schema string

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, connStr string) (*Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return &Repository{
		pool: pool,
	}, nil
}

func (repo *Repository) Close() {
	repo.pool.Close()
}

// Migrate applies the embedded schema. Every statement is idempotent.
func (repo *Repository) Migrate(ctx context.Context) error {
	if _, err := repo.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("could not apply schema: %w", err)
	}
	return nil
}

func (repo *Repository) Ping(ctx context.Context) error {
	return repo.pool.Ping(ctx)
}

func (repo *Repository) exec(query sq.Sqlizer) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	q, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("could not build query: %w", err)
	}

	tag, err := repo.pool.Exec(ctx, q, args...)
	if err != nil {
		return 0, translate(err)
	}

	return tag.RowsAffected(), nil
}

func (repo *Repository) queryRow(ctx context.Context, query sq.Sqlizer) (pgx.Row, error) {
	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("could not build query: %w", err)
	}
	return repo.pool.QueryRow(ctx, q, args...), nil
}

func (repo *Repository) query(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	q, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("could not build query: %w", err)
	}
	rows, err := repo.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// translate maps driver errors onto the package sentinels.
func translate(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			// a referenced row is missing, e.g. a message for an unknown doctor
			return fmt.Errorf("%w: %s", ErrNotFound, pgErr.ConstraintName)
		}
	}

	return err
}
