package repository

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"warehouse-console/internal/warehouse/models"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// ============================================================
// SQLite Repository
// ============================================================

var ErrNotFound = errors.New("not found")

//go:embed migrations/001_init_stock.sql
var initMigration string

// Repository хранит сырые строки остатков по складам.
// Порядок строк сохраняется: от него зависит порядок товаров в ячейке.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Init применяет миграции.
func (r *Repository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, initMigration); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

// ReplaceStock целиком заменяет остатки склада.
func (r *Repository) ReplaceStock(ctx context.Context, warehouseID string, records []models.StockRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO warehouses (id) VALUES (?)
        ON CONFLICT(id) DO UPDATE SET updated_at = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')
    `, warehouseID)
	if err != nil {
		return fmt.Errorf("upsert warehouse: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM stock_records WHERE warehouse_id = ?`, warehouseID); err != nil {
		return fmt.Errorf("clear stock: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO stock_records (warehouse_id, seq, location_code, item_code, item_name, quantity)
        VALUES (?, ?, ?, ?, ?, ?)
    `)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx, warehouseID, i, rec.LocationCode, rec.ItemCode, rec.ItemName, rec.Quantity); err != nil {
			return fmt.Errorf("insert stock row %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// ListStock возвращает строки склада в исходном порядке.
func (r *Repository) ListStock(ctx context.Context, warehouseID string) ([]models.StockRecord, error) {
	if err := r.ensureWarehouse(ctx, warehouseID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT location_code, item_code, item_name, quantity
        FROM stock_records
        WHERE warehouse_id = ?
        ORDER BY seq
    `, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.StockRecord{}
	for rows.Next() {
		var rec models.StockRecord
		if err := rows.Scan(&rec.LocationCode, &rec.ItemCode, &rec.ItemName, &rec.Quantity); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListWarehouses возвращает идентификаторы складов с загруженными остатками.
func (r *Repository) ListWarehouses(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM warehouses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// DeleteWarehouse удаляет склад вместе с остатками.
func (r *Repository) DeleteWarehouse(ctx context.Context, warehouseID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM stock_records WHERE warehouse_id = ?`, warehouseID); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM warehouses WHERE id = ?`, warehouseID)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return tx.Commit()
}

func (r *Repository) ensureWarehouse(ctx context.Context, warehouseID string) error {
	var id string
	err := r.db.QueryRowContext(ctx, `SELECT id FROM warehouses WHERE id = ?`, warehouseID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// OpenSQLite открывает sqlite по указанному пути.
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
