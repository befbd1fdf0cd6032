package service

import (
	"context"
	"errors"

	"pvzadmin/internal/store"
	apperrors "pvzadmin/pkg/errors"
	"pvzadmin/pkg/logger"
	"pvzadmin/pkg/model"
)

type WarehouseService interface {
	List(ctx context.Context) []model.Warehouse
	First(ctx context.Context) (model.Warehouse, error)
	PickupPoints(ctx context.Context) []model.PickupPoint
	PickupPointByID(ctx context.Context, id string) (model.PickupPoint, error)
	BusinessPoints(ctx context.Context, warehouseID string) ([]model.BusinessPickupPoint, error)
	Attach(ctx context.Context, warehouseID, pointID string) error
	Detach(ctx context.Context, warehouseID, pointID string) error
}

type warehouseService struct {
	store *store.Store
	log   *logger.Logger
}

func New(st *store.Store, log *logger.Logger) WarehouseService {
	return &warehouseService{store: st, log: log}
}

func (s *warehouseService) List(_ context.Context) []model.Warehouse {
	return s.store.Warehouses()
}

func (s *warehouseService) First(_ context.Context) (model.Warehouse, error) {
	warehouse, ok := s.store.FirstWarehouse()
	if !ok {
		return model.Warehouse{}, apperrors.NotFound("Warehouse")
	}
	return warehouse, nil
}

func (s *warehouseService) PickupPoints(_ context.Context) []model.PickupPoint {
	return s.store.PickupPoints()
}

func (s *warehouseService) PickupPointByID(_ context.Context, id string) (model.PickupPoint, error) {
	point, ok := s.store.PickupPointByID(id)
	if !ok {
		return model.PickupPoint{}, apperrors.NotFoundWithID("Pickup point", id)
	}
	return point, nil
}

func (s *warehouseService) BusinessPoints(_ context.Context, warehouseID string) ([]model.BusinessPickupPoint, error) {
	if !s.store.WarehouseExists(warehouseID) {
		return nil, apperrors.NotFound("Warehouse")
	}
	return s.store.BusinessPointsForWarehouse(warehouseID), nil
}

func (s *warehouseService) Attach(_ context.Context, warehouseID, pointID string) error {
	if err := s.store.AttachLink(warehouseID, pointID); err != nil {
		switch {
		case errors.Is(err, store.ErrWarehouseNotFound):
			return apperrors.NotFound("Warehouse")
		case errors.Is(err, store.ErrPointNotFound):
			return apperrors.NotFound("Business pickup point")
		default:
			return apperrors.Internal("Failed to attach business pickup point", err)
		}
	}
	s.log.Info("Business pickup point attached",
		"warehouse_id", warehouseID,
		"point_id", pointID,
	)
	return nil
}

func (s *warehouseService) Detach(_ context.Context, warehouseID, pointID string) error {
	if err := s.store.DetachLink(warehouseID, pointID); err != nil {
		if errors.Is(err, store.ErrLinkNotFound) {
			return apperrors.NotFound("Link")
		}
		return apperrors.Internal("Failed to detach business pickup point", err)
	}
	s.log.Info("Business pickup point detached",
		"warehouse_id", warehouseID,
		"point_id", pointID,
	)
	return nil
}
