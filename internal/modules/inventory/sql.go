package inventory

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/instock-backend/internal/platform/database"
)

const selectItem = `
	SELECT i.id AS id, i.warehouse_id AS warehouse_id, w.warehouse_name AS warehouse_name,
	       i.item_name AS item_name, i.description AS description, i.category AS category,
	       i.status AS status, i.quantity AS quantity
	FROM inventories i
	JOIN warehouses w ON w.id = i.warehouse_id`

const selectSummary = `
	SELECT i.id AS id, i.item_name AS item_name, i.description AS description,
	       i.category AS category, i.status AS status, i.quantity AS quantity,
	       w.warehouse_name AS warehouse_name
	FROM inventories i
	JOIN warehouses w ON w.id = i.warehouse_id`

type sqlRepo struct{ db *database.DB }

// NewSQLRepository returns a Repository backed by the relational store.
func NewSQLRepository(db *database.DB) Repository { return &sqlRepo{db: db} }

func (r *sqlRepo) List(ctx context.Context) ([]*Summary, error) {
	items := []*Summary{}
	if err := r.db.Select(ctx, &items, selectSummary+` ORDER BY i.id`); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *sqlRepo) GetByID(ctx context.Context, id int64) (*Item, error) {
	it := &Item{}
	err := r.db.Get(ctx, it, selectItem+` WHERE i.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *sqlRepo) Create(ctx context.Context, it *Item) error {
	return r.db.Get(ctx, &it.ID, `
		INSERT INTO inventories (warehouse_id, item_name, description, category, status, quantity)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`,
		it.WarehouseID, it.ItemName, it.Description, it.Category, it.Status, it.Quantity)
}

func (r *sqlRepo) Update(ctx context.Context, it *Item) (bool, error) {
	n, err := r.db.Exec(ctx, `
		UPDATE inventories
		SET warehouse_id = ?, item_name = ?, description = ?, category = ?, status = ?, quantity = ?
		WHERE id = ?`,
		it.WarehouseID, it.ItemName, it.Description, it.Category, it.Status, it.Quantity, it.ID)
	return n > 0, err
}

func (r *sqlRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM inventories WHERE id = ?`, id)
	return n > 0, err
}

func (r *sqlRepo) DeleteByWarehouse(ctx context.Context, warehouseID int64) (int64, error) {
	return r.db.Exec(ctx, `DELETE FROM inventories WHERE warehouse_id = ?`, warehouseID)
}
