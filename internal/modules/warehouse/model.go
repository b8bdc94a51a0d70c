package warehouse

// Warehouse is a storage location with its contact details.
type Warehouse struct {
	ID              int64  `json:"id" db:"id"`
	WarehouseName   string `json:"warehouse_name" db:"warehouse_name"`
	Address         string `json:"address" db:"address"`
	City            string `json:"city" db:"city"`
	Country         string `json:"country" db:"country"`
	ContactName     string `json:"contact_name" db:"contact_name"`
	ContactPosition string `json:"contact_position" db:"contact_position"`
	ContactPhone    Phone  `json:"contact_phone" db:"contact_phone"`
	ContactEmail    Email  `json:"contact_email" db:"contact_email"`
}

// Request is the body of POST and PUT /api/warehouses. Every field is
// required; PUT replaces the whole record.
type Request struct {
	WarehouseName   string `json:"warehouse_name" validate:"required"`
	Address         string `json:"address" validate:"required"`
	City            string `json:"city" validate:"required"`
	Country         string `json:"country" validate:"required"`
	ContactName     string `json:"contact_name" validate:"required"`
	ContactPosition string `json:"contact_position" validate:"required"`
	ContactPhone    string `json:"contact_phone" validate:"required"`
	ContactEmail    string `json:"contact_email" validate:"required"`
}
