package main

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/georgemunganga/instock-backend/internal/modules/inventory"
	"github.com/georgemunganga/instock-backend/internal/modules/warehouse"
	"github.com/georgemunganga/instock-backend/internal/platform/database"
	"github.com/georgemunganga/instock-backend/internal/platform/httpx"
)

func newRouter(db *database.DB, logger *zap.Logger, requestTimeout time.Duration) chi.Router {
	router := chi.NewRouter()
	router.Use(httpx.RequestID)
	router.Use(httpx.AccessLog(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	router.Get("/healthz", httpx.Health(db))

	warehouseRepo := warehouse.NewSQLRepository(db)
	inventoryRepo := inventory.NewSQLRepository(db)

	warehouseService := warehouse.NewService(warehouseRepo, inventoryRepo, db, logger.Named("warehouse"))
	warehouse.NewHandler(warehouseService, logger).RegisterRoutes(router)

	inventoryService := inventory.NewService(inventoryRepo, warehouseRepo, db, logger.Named("inventory"))
	inventory.NewHandler(inventoryService, logger).RegisterRoutes(router)

	return router
}
