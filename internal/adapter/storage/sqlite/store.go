package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
	"modernc.org/sqlite"

	"github.com/bnema/vitrine/internal/domain"
	"github.com/bnema/vitrine/internal/port"
)

//go:embed migrations/*.sql
var migrations embed.FS

const productColumns = `id, name, description, price, owner_id, image, images, created_at, updated_at`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

var hookOnce sync.Once

func registerHook() {
	hookOnce.Do(func() {
		sqlite.RegisterConnectionHook(func(conn sqlite.ExecQuerierContext, dsn string) error {
			pragmas := []string{
				"PRAGMA journal_mode = WAL",
				"PRAGMA busy_timeout = 5000",
				"PRAGMA synchronous = NORMAL",
				"PRAGMA foreign_keys = ON",
				"PRAGMA cache_size = -8000",    // 8MB
				"PRAGMA mmap_size = 268435456", // 256MB
			}
			for _, p := range pragmas {
				if _, err := conn.ExecContext(context.Background(), p, nil); err != nil {
					return fmt.Errorf("execute %s: %w", p, err)
				}
			}
			return nil
		})
	})
}

func NewStore(dataDir string) (*Store, error) {
	registerHook()

	dbPath := filepath.Join(dataDir, "vitrine.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single connection for SQLite (WAL allows concurrent reads but only one writer)
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Create(ctx context.Context, f domain.ProductFields) (*domain.ProductRecord, error) {
	now := s.now().UnixMilli()
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO products (name, description, price, owner_id, image, images, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		f.Name, f.Description, f.Price, f.OwnerID, f.Image, f.Images, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return s.FindByID(ctx, id)
}

func (s *Store) FindByID(ctx context.Context, id int64) (*domain.ProductRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	rec, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return rec, nil
}

func (s *Store) Update(ctx context.Context, id int64, f domain.ProductFields) (*domain.ProductRecord, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE products
		 SET name = ?, description = ?, price = ?, owner_id = ?, image = ?, images = ?, updated_at = ?
		 WHERE id = ?`,
		f.Name, f.Description, f.Price, f.OwnerID, f.Image, f.Images, s.now().UnixMilli(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}
	if err := requireAffected(res); err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return requireAffected(res)
}

func (s *Store) FindManyByOwner(ctx context.Context, ownerID int64) ([]*domain.ProductRecord, error) {
	return s.list(ctx, `SELECT `+productColumns+` FROM products WHERE owner_id = ? ORDER BY created_at DESC, id DESC`, ownerID)
}

func (s *Store) FindAll(ctx context.Context) ([]*domain.ProductRecord, error) {
	return s.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*domain.ProductRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer func() { _ = rows.Close() }()

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

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*domain.ProductRecord, error) {
	var (
		rec                  domain.ProductRecord
		images               sql.NullString
		createdAt, updatedAt int64
	)
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Description, &rec.Price, &rec.OwnerID,
		&rec.Image, &images, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	rec.Images = images.String
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	rec.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &rec, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ port.ProductStore = (*Store)(nil)
