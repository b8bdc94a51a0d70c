package inventory

import "encoding/json"

// StatusInStock is the status that requires a non-zero quantity.
const StatusInStock = "In Stock"

// Item is an inventory item together with the name of its warehouse.
type Item struct {
	ID            int64    `json:"id" db:"id"`
	WarehouseID   int64    `json:"warehouse_id" db:"warehouse_id"`
	WarehouseName string   `json:"warehouse_name" db:"warehouse_name"`
	ItemName      string   `json:"item_name" db:"item_name"`
	Description   string   `json:"description" db:"description"`
	Category      string   `json:"category" db:"category"`
	Status        string   `json:"status" db:"status"`
	Quantity      Quantity `json:"quantity" db:"quantity"`
}

// Summary is the fixed projection returned by the inventory list.
type Summary struct {
	ID            int64    `json:"id" db:"id"`
	ItemName      string   `json:"item_name" db:"item_name"`
	Description   string   `json:"description" db:"description"`
	Category      string   `json:"category" db:"category"`
	Status        string   `json:"status" db:"status"`
	Quantity      Quantity `json:"quantity" db:"quantity"`
	WarehouseName string   `json:"warehouse_name" db:"warehouse_name"`
}

// Request is the body of POST and PUT /api/inventories. Quantity is kept
// raw so that a non-numeric value is reported as such.
type Request struct {
	WarehouseID int64           `json:"warehouse_id" validate:"required"`
	ItemName    string          `json:"item_name" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Status      string          `json:"status" validate:"required"`
	Quantity    json.RawMessage `json:"quantity"`
}

// UpdateResponse is the body of a successful PUT /api/inventories/{id}.
type UpdateResponse struct {
	Message     string `json:"message"`
	UpdatedItem *Item  `json:"updatedItem"`
}
