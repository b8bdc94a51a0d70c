package warehouse

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/georgemunganga/instock-backend/internal/apperr"
	"github.com/georgemunganga/instock-backend/internal/platform/observability"
	"github.com/georgemunganga/instock-backend/internal/validation"
)

// MsgNotFound is returned for any id that has no warehouse.
const MsgNotFound = "Warehouse not found"

var tracer = otel.Tracer("github.com/georgemunganga/instock-backend/internal/modules/warehouse")

// Service defines warehouse business logic.
type Service interface {
	ListWarehouses(ctx context.Context) ([]*Warehouse, error)
	GetWarehouse(ctx context.Context, id int64) (*Warehouse, error)
	CreateWarehouse(ctx context.Context, req Request) (*Warehouse, error)
	// UpdateWarehouse replaces every mutable field of the warehouse.
	UpdateWarehouse(ctx context.Context, id int64, req Request) (*Warehouse, error)
	// DeleteWarehouse removes the warehouse and all inventory stored in it
	// in one transaction.
	DeleteWarehouse(ctx context.Context, id int64) error
}

// InventoryRemover deletes the inventory items that belong to a warehouse.
type InventoryRemover interface {
	DeleteByWarehouse(ctx context.Context, warehouseID int64) (int64, error)
}

// Transactor runs fn inside a single store transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type service struct {
	repo      Repository
	inventory InventoryRemover
	tx        Transactor
	logger    *zap.Logger
}

// NewService creates a new warehouse service.
func NewService(repo Repository, inventory InventoryRemover, tx Transactor, logger *zap.Logger) Service {
	return &service{
		repo:      repo,
		inventory: inventory,
		tx:        tx,
		logger:    logger,
	}
}

// parseRequest checks presence first, then the phone and email formats.
func parseRequest(req Request) (*Warehouse, error) {
	validation.TrimSpace(
		&req.WarehouseName, &req.Address, &req.City, &req.Country,
		&req.ContactName, &req.ContactPosition, &req.ContactPhone, &req.ContactEmail,
	)
	if err := validation.Required(&req); err != nil {
		return nil, err
	}
	phone, err := ParsePhone(req.ContactPhone)
	if err != nil {
		return nil, err
	}
	email, err := ParseEmail(req.ContactEmail)
	if err != nil {
		return nil, err
	}
	return &Warehouse{
		WarehouseName:   req.WarehouseName,
		Address:         req.Address,
		City:            req.City,
		Country:         req.Country,
		ContactName:     req.ContactName,
		ContactPosition: req.ContactPosition,
		ContactPhone:    phone,
		ContactEmail:    email,
	}, nil
}

func (s *service) ListWarehouses(ctx context.Context) (warehouses []*Warehouse, err error) {
	ctx, span := tracer.Start(ctx, "warehouse.List")
	defer func() { observability.EndSpan(span, err) }()

	warehouses, err = s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store("list warehouses", err)
	}
	return warehouses, nil
}

func (s *service) GetWarehouse(ctx context.Context, id int64) (w *Warehouse, err error) {
	ctx, span := tracer.Start(ctx, "warehouse.Get")
	span.SetAttributes(attribute.Int64("warehouse.id", id))
	defer func() { observability.EndSpan(span, err) }()

	w, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("get warehouse", err)
	}
	if w == nil {
		return nil, apperr.NotFound(MsgNotFound)
	}
	return w, nil
}

func (s *service) CreateWarehouse(ctx context.Context, req Request) (w *Warehouse, err error) {
	ctx, span := tracer.Start(ctx, "warehouse.Create")
	defer func() { observability.EndSpan(span, err) }()

	w, err = parseRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, w); err != nil {
		return nil, apperr.Store("insert warehouse", err)
	}
	span.SetAttributes(attribute.Int64("warehouse.id", w.ID))
	s.logger.Info("warehouse created", zap.Int64("warehouse_id", w.ID))
	return w, nil
}

func (s *service) UpdateWarehouse(ctx context.Context, id int64, req Request) (w *Warehouse, err error) {
	ctx, span := tracer.Start(ctx, "warehouse.Update")
	span.SetAttributes(attribute.Int64("warehouse.id", id))
	defer func() { observability.EndSpan(span, err) }()

	w, err = parseRequest(req)
	if err != nil {
		return nil, err
	}
	w.ID = id

	updated, err := s.repo.Update(ctx, w)
	if err != nil {
		return nil, apperr.Store("update warehouse", err)
	}
	if !updated {
		return nil, apperr.NotFound(MsgNotFound)
	}
	return w, nil
}

func (s *service) DeleteWarehouse(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "warehouse.Delete")
	span.SetAttributes(attribute.Int64("warehouse.id", id))
	defer func() { observability.EndSpan(span, err) }()

	var removed int64
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return apperr.Store("check warehouse", err)
		}
		if !exists {
			return apperr.NotFound(MsgNotFound)
		}

		removed, err = s.inventory.DeleteByWarehouse(ctx, id)
		if err != nil {
			return apperr.Store("delete warehouse inventory", err)
		}

		deleted, err := s.repo.Delete(ctx, id)
		if err != nil {
			return apperr.Store("delete warehouse", err)
		}
		if !deleted {
			return apperr.NotFound(MsgNotFound)
		}
		return nil
	})
	if err != nil {
		return apperr.Wrap("delete warehouse", err)
	}

	span.SetAttributes(attribute.Int64("inventory.removed", removed))
	s.logger.Info("warehouse deleted",
		zap.Int64("warehouse_id", id),
		zap.Int64("inventory_removed", removed),
	)
	return nil
}

// DeletedMessage is the confirmation returned after DeleteWarehouse.
func DeletedMessage(id int64) string {
	return fmt.Sprintf("Warehouse with ID %d and its inventory were deleted.", id)
}
