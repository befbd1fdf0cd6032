package store

import (
	"testing"

	"pvzadmin/pkg/model"
)

func newTestStore() *Store {
	return New(SeedWarehouses(), SeedPickupPoints())
}

func testPoint(id, name string) model.BusinessPickupPoint {
	return model.BusinessPickupPoint{
		ID:         id,
		Name:       name,
		Address:    "Москва, ул. Тестовая, д. 1",
		Identifier: id + "-ident",
		Schedule: []model.ScheduleInterval{
			{SelectedDays: []string{"mon"}, WorkFrom: "09:00", WorkTo: "18:00"},
		},
	}
}

func testLink(warehouseID, pointID string) model.WarehouseBusinessLink {
	return model.WarehouseBusinessLink{
		WarehouseID:           warehouseID,
		BusinessPickupPointID: pointID,
		Enabled:               true,
	}
}

func TestSeedData(t *testing.T) {
	s := newTestStore()
	if got := len(s.Warehouses()); got != 2 {
		t.Errorf("expected 2 seeded warehouses, got %d", got)
	}
	if got := len(s.PickupPoints()); got != 10 {
		t.Errorf("expected 10 seeded pickup points, got %d", got)
	}
	if got := len(s.BusinessPickupPoints()); got != 0 {
		t.Errorf("expected no seeded business points, got %d", got)
	}
}

func TestInsertAndGet(t *testing.T) {
	s := newTestStore()
	s.InsertBusinessPickupPoint(testPoint("bpp-1", "Первая"), []model.WarehouseBusinessLink{testLink("wh-1", "bpp-1")})

	point, ok := s.BusinessPickupPointByID("bpp-1")
	if !ok || point.Name != "Первая" {
		t.Fatalf("expected to find bpp-1, got ok=%v point=%+v", ok, point)
	}
	if got := len(s.LinksForPoint("bpp-1")); got != 1 {
		t.Errorf("expected 1 link, got %d", got)
	}
}

func TestReplaceSwapsEntireLinkSet(t *testing.T) {
	s := newTestStore()
	s.InsertBusinessPickupPoint(testPoint("bpp-1", "Первая"), []model.WarehouseBusinessLink{testLink("wh-1", "bpp-1")})

	updated := testPoint("bpp-1", "Переименованная")
	if err := s.ReplaceBusinessPickupPoint(updated, []model.WarehouseBusinessLink{testLink("wh-2", "bpp-1")}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	point, _ := s.BusinessPickupPointByID("bpp-1")
	if point.Name != "Переименованная" {
		t.Errorf("expected renamed point, got %q", point.Name)
	}

	links := s.LinksForPoint("bpp-1")
	if len(links) != 1 || links[0].WarehouseID != "wh-2" {
		t.Errorf("expected link set fully replaced with wh-2, got %+v", links)
	}
}

func TestReplaceUnknownPoint(t *testing.T) {
	s := newTestStore()
	if err := s.ReplaceBusinessPickupPoint(testPoint("bpp-missing", "x"), nil); err != ErrPointNotFound {
		t.Errorf("expected ErrPointNotFound, got %v", err)
	}
}

func TestDeleteCascadesLinks(t *testing.T) {
	s := newTestStore()
	s.InsertBusinessPickupPoint(testPoint("bpp-1", "Первая"), []model.WarehouseBusinessLink{
		testLink("wh-1", "bpp-1"),
		testLink("wh-2", "bpp-1"),
	})
	s.InsertBusinessPickupPoint(testPoint("bpp-2", "Вторая"), []model.WarehouseBusinessLink{
		testLink("wh-1", "bpp-2"),
	})

	if err := s.DeleteBusinessPickupPoint("bpp-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := s.BusinessPickupPointByID("bpp-1"); ok {
		t.Error("bpp-1 still present after delete")
	}
	if got := len(s.LinksForPoint("bpp-1")); got != 0 {
		t.Errorf("links for deleted point must be removed, got %d", got)
	}
	if got := len(s.LinksForPoint("bpp-2")); got != 1 {
		t.Errorf("unrelated links must survive, got %d", got)
	}

	if err := s.DeleteBusinessPickupPoint("bpp-1"); err != ErrPointNotFound {
		t.Errorf("second delete: expected ErrPointNotFound, got %v", err)
	}
}

func TestBusinessPointsForWarehouseEnabledOnly(t *testing.T) {
	s := newTestStore()
	s.InsertBusinessPickupPoint(testPoint("bpp-1", "Первая"), []model.WarehouseBusinessLink{testLink("wh-1", "bpp-1")})

	disabled := testLink("wh-1", "bpp-2")
	disabled.Enabled = false
	s.InsertBusinessPickupPoint(testPoint("bpp-2", "Вторая"), []model.WarehouseBusinessLink{disabled})

	points := s.BusinessPointsForWarehouse("wh-1")
	if len(points) != 1 || points[0].ID != "bpp-1" {
		t.Errorf("expected only the enabled point, got %+v", points)
	}
}

func TestAttachLink(t *testing.T) {
	s := newTestStore()
	s.InsertBusinessPickupPoint(testPoint("bpp-1", "Первая"), nil)

	if err := s.AttachLink("wh-1", "bpp-1"); err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	// Attaching twice is a no-op, not a duplicate row.
	if err := s.AttachLink("wh-1", "bpp-1"); err != nil {
		t.Fatalf("second attach failed: %v", err)
	}
	if got := len(s.LinksForPoint("bpp-1")); got != 1 {
		t.Errorf("expected 1 link after repeated attach, got %d", got)
	}

	if err := s.AttachLink("wh-missing", "bpp-1"); err != ErrWarehouseNotFound {
		t.Errorf("expected ErrWarehouseNotFound, got %v", err)
	}
	if err := s.AttachLink("wh-1", "bpp-missing"); err != ErrPointNotFound {
		t.Errorf("expected ErrPointNotFound, got %v", err)
	}
}

func TestDetachLink(t *testing.T) {
	s := newTestStore()
	s.InsertBusinessPickupPoint(testPoint("bpp-1", "Первая"), []model.WarehouseBusinessLink{testLink("wh-1", "bpp-1")})

	if err := s.DetachLink("wh-1", "bpp-1"); err != nil {
		t.Fatalf("detach failed: %v", err)
	}
	if err := s.DetachLink("wh-1", "bpp-1"); err != ErrLinkNotFound {
		t.Errorf("expected ErrLinkNotFound, got %v", err)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore()
	warehouses := s.Warehouses()
	warehouses[0].Name = "mutated"
	if s.Warehouses()[0].Name == "mutated" {
		t.Error("Warehouses() must return a copy")
	}
}
