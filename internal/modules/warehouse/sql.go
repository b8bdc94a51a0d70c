package warehouse

import (
	"context"
	"database/sql"
	"errors"

	"github.com/georgemunganga/instock-backend/internal/platform/database"
)

const selectColumns = `
	SELECT id, warehouse_name, address, city, country,
	       contact_name, contact_position, contact_phone, contact_email
	FROM warehouses`

type sqlRepo struct{ db *database.DB }

// NewSQLRepository returns a Repository backed by the relational store.
func NewSQLRepository(db *database.DB) Repository { return &sqlRepo{db: db} }

func (r *sqlRepo) List(ctx context.Context) ([]*Warehouse, error) {
	warehouses := []*Warehouse{}
	if err := r.db.Select(ctx, &warehouses, selectColumns+` ORDER BY id`); err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *sqlRepo) GetByID(ctx context.Context, id int64) (*Warehouse, error) {
	w := &Warehouse{}
	err := r.db.Get(ctx, w, selectColumns+` WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *sqlRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var n int
	if err := r.db.Get(ctx, &n, `SELECT COUNT(*) FROM warehouses WHERE id = ?`, id); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *sqlRepo) Create(ctx context.Context, w *Warehouse) error {
	return r.db.Get(ctx, &w.ID, `
		INSERT INTO warehouses
		  (warehouse_name, address, city, country, contact_name, contact_position, contact_phone, contact_email)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		w.WarehouseName, w.Address, w.City, w.Country,
		w.ContactName, w.ContactPosition, w.ContactPhone, w.ContactEmail)
}

func (r *sqlRepo) Update(ctx context.Context, w *Warehouse) (bool, error) {
	n, err := r.db.Exec(ctx, `
		UPDATE warehouses
		SET warehouse_name = ?, address = ?, city = ?, country = ?,
		    contact_name = ?, contact_position = ?, contact_phone = ?, contact_email = ?
		WHERE id = ?`,
		w.WarehouseName, w.Address, w.City, w.Country,
		w.ContactName, w.ContactPosition, w.ContactPhone, w.ContactEmail, w.ID)
	return n > 0, err
}

func (r *sqlRepo) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM warehouses WHERE id = ?`, id)
	return n > 0, err
}
