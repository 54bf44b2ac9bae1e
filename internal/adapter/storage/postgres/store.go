package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

const productColumns = `id, name, description, price, owner_id, image, images, created_at, updated_at`

// querier is the subset of pgxpool.Pool the store needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	db   querier
	pool *pgxpool.Pool
}

// Open connects to dsn, verifies the connection and applies migrations.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := migrate(pool); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{db: pool, pool: pool}, nil
}

func migrate(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close() //nolint:errcheck

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *Store) Create(ctx context.Context, f domain.ProductFields) (*domain.ProductRecord, error) {
	row := s.db.QueryRow(ctx, `
INSERT INTO products (name, description, price, owner_id, image, images)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+productColumns,
		f.Name, f.Description, f.Price, f.OwnerID, f.Image, f.Images,
	)
	rec, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return rec, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (*domain.ProductRecord, error) {
	row := s.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	rec, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return rec, nil
}

func (s *Store) Update(ctx context.Context, id int64, f domain.ProductFields) (*domain.ProductRecord, error) {
	row := s.db.QueryRow(ctx, `
UPDATE products
SET name = $2, description = $3, price = $4, owner_id = $5, image = $6, images = $7, updated_at = now()
WHERE id = $1
RETURNING `+productColumns,
		id, f.Name, f.Description, f.Price, f.OwnerID, f.Image, f.Images,
	)
	rec, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Store) FindManyByOwner(ctx context.Context, ownerID int64) ([]*domain.ProductRecord, error) {
	return s.list(ctx, `SELECT `+productColumns+` FROM products WHERE owner_id = $1 ORDER BY created_at DESC, id DESC`, ownerID)
}

func (s *Store) FindAll(ctx context.Context) ([]*domain.ProductRecord, error) {
	return s.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*domain.ProductRecord, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*domain.ProductRecord
	for rows.Next() {
		rec, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanProduct(row pgx.Row) (*domain.ProductRecord, error) {
	var (
		rec    domain.ProductRecord
		images *string
	)
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rec.OwnerID,
		&rec.Image, &images, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	if images != nil {
		rec.Images = *images
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return &rec, nil
}

var _ port.ProductStore = (*Store)(nil)
