package warehouse

import "context"

// Repository defines warehouse data storage. Lookups of a missing id
// return (nil, nil); writes report whether a row was affected.
type Repository interface {
	List(ctx context.Context) ([]*Warehouse, error)
	GetByID(ctx context.Context, id int64) (*Warehouse, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, w *Warehouse) error
	Update(ctx context.Context, w *Warehouse) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
