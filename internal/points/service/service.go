package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"pvzadmin/internal/points/validator"
	"pvzadmin/internal/store"
	apperrors "pvzadmin/pkg/errors"
	"pvzadmin/pkg/logger"
	"pvzadmin/pkg/model"
	"pvzadmin/pkg/sanitizer"
)

const (
	EventPointCreated = "business-pickup-point.created"
	EventPointUpdated = "business-pickup-point.updated"
	EventPointDeleted = "business-pickup-point.deleted"
)

// PointEvent is the change notification published after a successful
// mutation.
type PointEvent struct {
	PointID    string    `json:"point_id"`
	Name       string    `json:"name"`
	LinkCount  int       `json:"link_count"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher is satisfied by the kafka producer; a nil publisher
// disables eventing entirely.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, event any) error
}

type PointService interface {
	List(ctx context.Context) []model.BusinessPickupPoint
	GetByID(ctx context.Context, id string) (model.BusinessPickupPoint, error)
	Create(ctx context.Context, draft *model.PickupPointDraft) (string, error)
	Update(ctx context.Context, id string, draft *model.PickupPointDraft) (model.BusinessPickupPoint, error)
	Delete(ctx context.Context, id string) error
	Links(ctx context.Context) []model.WarehouseBusinessLink
}

type pointService struct {
	store     *store.Store
	validator *validator.DraftValidator
	events    EventPublisher
	log       *logger.Logger
}

func New(st *store.Store, dv *validator.DraftValidator, events EventPublisher, log *logger.Logger) PointService {
	return &pointService{
		store:     st,
		validator: dv,
		events:    events,
		log:       log,
	}
}

func (s *pointService) List(_ context.Context) []model.BusinessPickupPoint {
	return s.store.BusinessPickupPoints()
}

func (s *pointService) GetByID(_ context.Context, id string) (model.BusinessPickupPoint, error) {
	point, ok := s.store.BusinessPickupPointByID(id)
	if !ok {
		return model.BusinessPickupPoint{}, apperrors.NotFoundWithID("Business pickup point", id)
	}
	return point, nil
}

func (s *pointService) Create(ctx context.Context, draft *model.PickupPointDraft) (string, error) {
	s.sanitize(draft)

	if fieldErrs := s.validate(draft, ""); len(fieldErrs) > 0 {
		s.log.Warn("Business pickup point validation failed",
			"name", draft.Name,
			"error_count", len(fieldErrs),
		)
		return "", apperrors.Validation(fieldErrs)
	}

	id := "bpp-" + uuid.NewString()
	point := pointFromDraft(id, draft)
	links := linksFromDraft(id, draft.Connections)

	s.store.InsertBusinessPickupPoint(point, links)

	s.log.Info("Business pickup point created",
		"id", id,
		"name", point.Name,
		"links", len(links),
	)
	s.publish(ctx, EventPointCreated, point, len(links))
	return id, nil
}

func (s *pointService) Update(ctx context.Context, id string, draft *model.PickupPointDraft) (model.BusinessPickupPoint, error) {
	if _, ok := s.store.BusinessPickupPointByID(id); !ok {
		return model.BusinessPickupPoint{}, apperrors.NotFoundWithID("Business pickup point", id)
	}

	s.sanitize(draft)

	if fieldErrs := s.validate(draft, id); len(fieldErrs) > 0 {
		s.log.Warn("Business pickup point validation failed",
			"id", id,
			"name", draft.Name,
			"error_count", len(fieldErrs),
		)
		return model.BusinessPickupPoint{}, apperrors.Validation(fieldErrs)
	}

	point := pointFromDraft(id, draft)
	links := linksFromDraft(id, draft.Connections)

	if err := s.store.ReplaceBusinessPickupPoint(point, links); err != nil {
		if errors.Is(err, store.ErrPointNotFound) {
			return model.BusinessPickupPoint{}, apperrors.NotFound("Business pickup point")
		}
		return model.BusinessPickupPoint{}, apperrors.Internal("Failed to update business pickup point", err)
	}

	s.log.Info("Business pickup point updated",
		"id", id,
		"name", point.Name,
		"links", len(links),
	)
	s.publish(ctx, EventPointUpdated, point, len(links))
	return point, nil
}

func (s *pointService) Delete(ctx context.Context, id string) error {
	point, ok := s.store.BusinessPickupPointByID(id)
	if !ok {
		return apperrors.NotFoundWithID("Business pickup point", id)
	}

	if err := s.store.DeleteBusinessPickupPoint(id); err != nil {
		if errors.Is(err, store.ErrPointNotFound) {
			return apperrors.NotFound("Business pickup point")
		}
		return apperrors.Internal("Failed to delete business pickup point", err)
	}

	s.log.Info("Business pickup point deleted", "id", id, "name", point.Name)
	s.publish(ctx, EventPointDeleted, point, 0)
	return nil
}

func (s *pointService) Links(_ context.Context) []model.WarehouseBusinessLink {
	return s.store.Links()
}

func (s *pointService) sanitize(draft *model.PickupPointDraft) {
	draft.Address = sanitizer.TrimAndNormalize(draft.Address)
	draft.Name = sanitizer.NormalizeName(draft.Name)
	draft.Identifier = sanitizer.NormalizeIdentifier(draft.Identifier)
	draft.Phone = sanitizer.TrimAndNormalize(draft.Phone)
	// Free-typed digits that parse as a possible RU number are stored in
	// the canonical display form; anything else is kept as typed.
	if sanitizer.IsPlausibleRuPhone(draft.Phone) {
		draft.Phone = sanitizer.FormatRuPhone(draft.Phone)
	}
	draft.DirectionsComment = sanitizer.TrimAndNormalize(draft.DirectionsComment)
}

func (s *pointService) validate(draft *model.PickupPointDraft, excludeID string) []apperrors.FieldError {
	warehouseIDs := make(map[string]struct{})
	for _, w := range s.store.Warehouses() {
		warehouseIDs[w.ID] = struct{}{}
	}
	return s.validator.Validate(draft, warehouseIDs, s.store.BusinessPickupPoints(), excludeID)
}

// publish is best-effort: event failures are logged, never returned.
func (s *pointService) publish(ctx context.Context, eventType string, point model.BusinessPickupPoint, linkCount int) {
	if s.events == nil {
		return
	}
	event := PointEvent{
		PointID:    point.ID,
		Name:       point.Name,
		LinkCount:  linkCount,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.events.Publish(ctx, eventType, point.ID, event); err != nil {
		s.log.Error("Failed to publish point event",
			"event_type", eventType,
			"point_id", point.ID,
			"error", err,
		)
	}
}

func pointFromDraft(id string, draft *model.PickupPointDraft) model.BusinessPickupPoint {
	point := model.BusinessPickupPoint{
		ID:                id,
		Name:              draft.Name,
		Address:           draft.Address,
		Identifier:        draft.Identifier,
		Phone:             draft.Phone,
		Extension:         draft.Extension,
		DirectionsComment: draft.DirectionsComment,
		Schedule:          draft.Schedule,
	}
	if draft.MaxWeight != nil {
		point.MaxWeight = *draft.MaxWeight
	}
	if draft.MaxLength != nil {
		point.MaxLength = *draft.MaxLength
	}
	if draft.StoragePeriod != nil {
		point.StoragePeriod = int(*draft.StoragePeriod)
	}
	return point
}

// linksFromDraft materializes link rows for enabled connections only;
// disabled rows are simply dropped.
func linksFromDraft(pointID string, connections []model.ConnectionDraft) []model.WarehouseBusinessLink {
	var links []model.WarehouseBusinessLink
	for _, conn := range connections {
		if !conn.Enabled {
			continue
		}
		links = append(links, model.WarehouseBusinessLink{
			WarehouseID:           conn.WarehouseID,
			BusinessPickupPointID: pointID,
			Enabled:               true,
			DeliveryTime:          conn.DeliveryTime,
			DeliveryCostMGT:       conn.DeliveryCostMGT,
			DeliveryCostKGT:       conn.DeliveryCostKGT,
		})
	}
	return links
}
