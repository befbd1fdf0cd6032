package store

import (
	"errors"
	"sync"

	"pvzadmin/pkg/model"
)

var (
	ErrPointNotFound     = errors.New("business pickup point not found")
	ErrWarehouseNotFound = errors.New("warehouse not found")
	ErrLinkNotFound      = errors.New("link not found")
)

// Store owns the four entity collections. Every mutation goes through a
// single mutex, which makes the request-at-a-time serialization of the
// service explicit: a request either applies its whole mutation or
// nothing. Nothing is persisted; the store resets on restart.
type Store struct {
	mu sync.Mutex

	warehouses   []model.Warehouse
	pickupPoints []model.PickupPoint
	points       []model.BusinessPickupPoint
	links        []model.WarehouseBusinessLink
}

func New(warehouses []model.Warehouse, pickupPoints []model.PickupPoint) *Store {
	return &Store{
		warehouses:   warehouses,
		pickupPoints: pickupPoints,
	}
}

func (s *Store) Warehouses() []model.Warehouse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Warehouse, len(s.warehouses))
	copy(out, s.warehouses)
	return out
}

// FirstWarehouse backs the legacy single-warehouse accessor.
func (s *Store) FirstWarehouse() (model.Warehouse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.warehouses) == 0 {
		return model.Warehouse{}, false
	}
	return s.warehouses[0], true
}

func (s *Store) WarehouseExists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warehouseExistsLocked(id)
}

func (s *Store) warehouseExistsLocked(id string) bool {
	for _, w := range s.warehouses {
		if w.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) PickupPoints() []model.PickupPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PickupPoint, len(s.pickupPoints))
	copy(out, s.pickupPoints)
	return out
}

func (s *Store) PickupPointByID(id string) (model.PickupPoint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.pickupPoints {
		if p.ID == id {
			return p, true
		}
	}
	return model.PickupPoint{}, false
}

func (s *Store) BusinessPickupPoints() []model.BusinessPickupPoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.BusinessPickupPoint, len(s.points))
	copy(out, s.points)
	return out
}

func (s *Store) BusinessPickupPointByID(id string) (model.BusinessPickupPoint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.points {
		if p.ID == id {
			return p, true
		}
	}
	return model.BusinessPickupPoint{}, false
}

// InsertBusinessPickupPoint appends the point and its link rows in one
// critical section.
func (s *Store) InsertBusinessPickupPoint(point model.BusinessPickupPoint, links []model.WarehouseBusinessLink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.points = append(s.points, point)
	s.links = append(s.links, links...)
}

// ReplaceBusinessPickupPoint overwrites the stored record and replaces
// its entire link set with the given rows (delete-all-then-insert, not
// diffed).
func (s *Store) ReplaceBusinessPickupPoint(point model.BusinessPickupPoint, links []model.WarehouseBusinessLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.points {
		if p.ID == point.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrPointNotFound
	}

	s.points[idx] = point
	s.removeLinksLocked(point.ID)
	s.links = append(s.links, links...)
	return nil
}

// DeleteBusinessPickupPoint removes the point's links first, then the
// point, so no link ever references a nonexistent point.
func (s *Store) DeleteBusinessPickupPoint(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.points {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrPointNotFound
	}

	s.removeLinksLocked(id)
	s.points = append(s.points[:idx], s.points[idx+1:]...)
	return nil
}

func (s *Store) removeLinksLocked(pointID string) {
	kept := s.links[:0]
	for _, l := range s.links {
		if l.BusinessPickupPointID != pointID {
			kept = append(kept, l)
		}
	}
	s.links = kept
}

func (s *Store) Links() []model.WarehouseBusinessLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.WarehouseBusinessLink, len(s.links))
	copy(out, s.links)
	return out
}

func (s *Store) LinksForPoint(pointID string) []model.WarehouseBusinessLink {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.WarehouseBusinessLink
	for _, l := range s.links {
		if l.BusinessPickupPointID == pointID {
			out = append(out, l)
		}
	}
	return out
}

// BusinessPointsForWarehouse lists points with an enabled link to the
// warehouse.
func (s *Store) BusinessPointsForWarehouse(warehouseID string) []model.BusinessPickupPoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled := make(map[string]struct{})
	for _, l := range s.links {
		if l.WarehouseID == warehouseID && l.Enabled {
			enabled[l.BusinessPickupPointID] = struct{}{}
		}
	}

	out := make([]model.BusinessPickupPoint, 0, len(enabled))
	for _, p := range s.points {
		if _, ok := enabled[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// AttachLink creates an enabled link, or no-ops when one already exists.
func (s *Store) AttachLink(warehouseID, pointID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.warehouseExistsLocked(warehouseID) {
		return ErrWarehouseNotFound
	}
	pointExists := false
	for _, p := range s.points {
		if p.ID == pointID {
			pointExists = true
			break
		}
	}
	if !pointExists {
		return ErrPointNotFound
	}

	for _, l := range s.links {
		if l.WarehouseID == warehouseID && l.BusinessPickupPointID == pointID {
			return nil
		}
	}
	s.links = append(s.links, model.WarehouseBusinessLink{
		WarehouseID:           warehouseID,
		BusinessPickupPointID: pointID,
		Enabled:               true,
	})
	return nil
}

func (s *Store) DetachLink(warehouseID, pointID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.links {
		if l.WarehouseID == warehouseID && l.BusinessPickupPointID == pointID {
			s.links = append(s.links[:i], s.links[i+1:]...)
			return nil
		}
	}
	return ErrLinkNotFound
}
