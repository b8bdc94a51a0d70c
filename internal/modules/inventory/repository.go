package inventory

import "context"

// Repository defines inventory item data storage. GetByID returns
// (nil, nil) for a missing id.
type Repository interface {
	List(ctx context.Context) ([]*Summary, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// DeleteByWarehouse removes every item stored in the warehouse and
	// returns how many were removed.
	DeleteByWarehouse(ctx context.Context, warehouseID int64) (int64, error)
}
