package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"assetgrid/internal/model"

	_ "modernc.org/sqlite"
)

func (s Store) openSQLite(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.sqlitePath())
	if err != nil {
		return nil, err
	}
	// WAL lets the TUI read while a CLI command in another terminal writes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateSQLite(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrateSQLite(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS assets (
			id TEXT PRIMARY KEY,
			tag TEXT NOT NULL,
			serial TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			department TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			customer TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			cost REAL NOT NULL DEFAULT 0,
			purchased_at_unixms INTEGER,
			warranty_end_unixms INTEGER,
			created_at_unixms INTEGER NOT NULL,
			updated_at_unixms INTEGER NOT NULL
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_assets_tag ON assets(tag);`,
		`CREATE INDEX IF NOT EXISTS idx_assets_department ON assets(department);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return err
		}
	}
	return nil
}

// Init creates the store directory and database.
func (s Store) Init(ctx context.Context) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	return db.Close()
}

const assetColumns = `id, tag, serial, name, category, department, location, customer, status, cost,
	purchased_at_unixms, warranty_end_unixms, created_at_unixms, updated_at_unixms`

// ListAssets returns every asset ordered by tag.
func (s Store) ListAssets(ctx context.Context) ([]model.Asset, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT `+assetColumns+` FROM assets ORDER BY tag`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetAsset returns one asset, or ErrNotFound.
func (s Store) GetAsset(ctx context.Context, id string) (model.Asset, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return model.Asset{}, err
	}
	defer db.Close()

	row := db.QueryRowContext(ctx, `SELECT `+assetColumns+` FROM assets WHERE id = ?`, strings.TrimSpace(id))
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Asset{}, fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}
	return a, err
}

// AddAssets validates and inserts assets in one transaction, assigning ids,
// serials and timestamps where missing. It returns the stored assets.
func (s Store) AddAssets(ctx context.Context, assets []model.Asset, now time.Time) ([]model.Asset, error) {
	for i := range assets {
		if err := ValidateAsset(assets[i]); err != nil {
			return nil, fmt.Errorf("asset %d (%s): %w", i, assets[i].Tag, err)
		}
	}

	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]model.Asset, 0, len(assets))
	for _, a := range assets {
		if strings.TrimSpace(a.ID) == "" {
			id, err := newRandomID("asset")
			if err != nil {
				return nil, err
			}
			a.ID = id
		}
		if strings.TrimSpace(a.Serial) == "" {
			a.Serial = newSerial()
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now.UTC()
		}
		a.UpdatedAt = now.UTC()

		_, err := tx.ExecContext(ctx, `INSERT INTO assets(`+assetColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.Tag, a.Serial, a.Name, a.Category, a.Department, a.Location, a.Customer, string(a.Status), a.Cost,
			unixMsOrNil(a.PurchasedAt), unixMsOrNil(a.WarrantyEnd), a.CreatedAt.UnixMilli(), a.UpdatedAt.UnixMilli(),
		)
		if err != nil {
			return nil, fmt.Errorf("insert asset %s: %w", a.Tag, err)
		}
		out = append(out, a)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAssets removes the given ids and returns how many existed.
func (s Store) DeleteAssets(ctx context.Context, ids []string) (int, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	n := 0
	for _, id := range ids {
		res, err := db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, strings.TrimSpace(id))
		if err != nil {
			return n, err
		}
		k, err := res.RowsAffected()
		if err != nil {
			return n, err
		}
		n += int(k)
	}
	return n, nil
}

// SetAssetStatus writes status and bumps updated_at, or returns ErrNotFound.
func (s Store) SetAssetStatus(ctx context.Context, id string, status model.AssetStatus, now time.Time) error {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	id = strings.TrimSpace(id)
	res, err := db.ExecContext(ctx, `UPDATE assets SET status = ?, updated_at_unixms = ? WHERE id = ?`,
		string(status), now.UnixMilli(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("asset %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountAssets returns the number of stored assets.
func (s Store) CountAssets(ctx context.Context) (int, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return 0, err
	}
	defer db.Close()
	var n int
	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(r rowScanner) (model.Asset, error) {
	var (
		a                    model.Asset
		status               string
		purchased, warranty  sql.NullInt64
		createdMs, updatedMs int64
	)
	err := r.Scan(&a.ID, &a.Tag, &a.Serial, &a.Name, &a.Category, &a.Department, &a.Location, &a.Customer,
		&status, &a.Cost, &purchased, &warranty, &createdMs, &updatedMs)
	if err != nil {
		return model.Asset{}, err
	}
	a.Status = model.AssetStatus(status)
	a.PurchasedAt = timeOrNil(purchased)
	a.WarrantyEnd = timeOrNil(warranty)
	a.CreatedAt = time.UnixMilli(createdMs).UTC()
	a.UpdatedAt = time.UnixMilli(updatedMs).UTC()
	return a, nil
}

func unixMsOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

func timeOrNil(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).UTC()
	return &t
}
