package inventory

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/georgemunganga/instock-backend/internal/apperr"
	"github.com/georgemunganga/instock-backend/internal/platform/database"
	"github.com/georgemunganga/instock-backend/internal/platform/observability"
	"github.com/georgemunganga/instock-backend/internal/validation"
)

const (
	MsgNotFound          = "Item not found"
	MsgUnknownWarehouse  = "no warehouse with that id"
	MsgInStockNeedsCount = "quantity is required for in-stock items"
	MsgUpdated           = "Inventory item updated successfully."
)

var tracer = otel.Tracer("github.com/georgemunganga/instock-backend/internal/modules/inventory")

// Service defines inventory business logic.
type Service interface {
	ListItems(ctx context.Context) ([]*Summary, error)
	GetItem(ctx context.Context, id int64) (*Item, error)
	CreateItem(ctx context.Context, req Request) (*Item, error)
	UpdateItem(ctx context.Context, id int64, req Request) (*Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// WarehouseChecker reports whether a warehouse exists.
type WarehouseChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Transactor runs fn inside a single store transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type service struct {
	repo       Repository
	warehouses WarehouseChecker
	tx         Transactor
	logger     *zap.Logger
}

// NewService creates a new inventory service.
func NewService(repo Repository, warehouses WarehouseChecker, tx Transactor, logger *zap.Logger) Service {
	return &service{
		repo:       repo,
		warehouses: warehouses,
		tx:         tx,
		logger:     logger,
	}
}

// parseRequest runs the checks in order: presence, warehouse reference,
// numeric quantity, then the in-stock rule.
func (s *service) parseRequest(ctx context.Context, req Request) (*Item, error) {
	validation.TrimSpace(&req.ItemName, &req.Description, &req.Category, &req.Status)
	if err := validation.Required(&req); err != nil {
		return nil, err
	}

	exists, err := s.warehouses.Exists(ctx, req.WarehouseID)
	if err != nil {
		return nil, apperr.Store("check warehouse", err)
	}
	if !exists {
		return nil, apperr.Validation(MsgUnknownWarehouse)
	}

	qty, err := ParseQuantity(req.Quantity)
	if err != nil {
		return nil, err
	}
	if req.Status == StatusInStock && qty.IsZero() {
		return nil, apperr.Validation(MsgInStockNeedsCount)
	}

	return &Item{
		WarehouseID: req.WarehouseID,
		ItemName:    req.ItemName,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Quantity:    qty,
	}, nil
}

// storeErr maps a foreign key failure to the unknown warehouse message. It
// covers a warehouse deleted between the check and the write.
func storeErr(op string, err error) error {
	if database.IsForeignKeyViolation(err) {
		return apperr.Validation(MsgUnknownWarehouse)
	}
	return apperr.Store(op, err)
}

func (s *service) ListItems(ctx context.Context) (items []*Summary, err error) {
	ctx, span := tracer.Start(ctx, "inventory.List")
	defer func() { observability.EndSpan(span, err) }()

	items, err = s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store("list inventory", err)
	}
	return items, nil
}

func (s *service) GetItem(ctx context.Context, id int64) (it *Item, err error) {
	ctx, span := tracer.Start(ctx, "inventory.Get")
	span.SetAttributes(attribute.Int64("inventory.id", id))
	defer func() { observability.EndSpan(span, err) }()

	it, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Store("get inventory item", err)
	}
	if it == nil {
		return nil, apperr.NotFound(MsgNotFound)
	}
	return it, nil
}

func (s *service) CreateItem(ctx context.Context, req Request) (it *Item, err error) {
	ctx, span := tracer.Start(ctx, "inventory.Create")
	defer func() { observability.EndSpan(span, err) }()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		item, err := s.parseRequest(ctx, req)
		if err != nil {
			return err
		}
		if err := s.repo.Create(ctx, item); err != nil {
			return storeErr("insert inventory item", err)
		}
		it, err = s.repo.GetByID(ctx, item.ID)
		if err != nil {
			return apperr.Store("reload inventory item", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap("create inventory item", err)
	}

	span.SetAttributes(attribute.Int64("inventory.id", it.ID))
	s.logger.Info("inventory item created",
		zap.Int64("inventory_id", it.ID),
		zap.Int64("warehouse_id", it.WarehouseID),
	)
	return it, nil
}

func (s *service) UpdateItem(ctx context.Context, id int64, req Request) (it *Item, err error) {
	ctx, span := tracer.Start(ctx, "inventory.Update")
	span.SetAttributes(attribute.Int64("inventory.id", id))
	defer func() { observability.EndSpan(span, err) }()

	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		item, err := s.parseRequest(ctx, req)
		if err != nil {
			return err
		}
		item.ID = id

		updated, err := s.repo.Update(ctx, item)
		if err != nil {
			return storeErr("update inventory item", err)
		}
		if !updated {
			return apperr.NotFound(MsgNotFound)
		}
		it, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return apperr.Store("reload inventory item", err)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Wrap("update inventory item", err)
	}
	return it, nil
}

func (s *service) DeleteItem(ctx context.Context, id int64) (err error) {
	ctx, span := tracer.Start(ctx, "inventory.Delete")
	span.SetAttributes(attribute.Int64("inventory.id", id))
	defer func() { observability.EndSpan(span, err) }()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperr.Store("delete inventory item", err)
	}
	if !deleted {
		return apperr.NotFound(MsgNotFound)
	}
	s.logger.Info("inventory item deleted", zap.Int64("inventory_id", id))
	return nil
}

// DeletedMessage is the confirmation returned after DeleteItem.
func DeletedMessage(id int64) string {
	return fmt.Sprintf("Inventory item with ID %d was deleted.", id)
}
