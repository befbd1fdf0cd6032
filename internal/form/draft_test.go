package form

import (
	"testing"

	"pvzadmin/pkg/model"
)

func validFields() Fields {
	return Fields{
		Address:           "Москва, ул. Ленина, д. 1",
		Name:              "Точка на Ленина",
		Identifier:        "LEN-001",
		Phone:             "+7 (999) 123-45-67",
		DirectionsComment: "Вход со двора",
		MaxWeight:         "25",
		MaxLength:         "120",
		StoragePeriod:     "7",
	}
}

func validEditor() *ScheduleEditor {
	e := NewScheduleEditor()
	id := e.Intervals()[0].ID
	e.UpdateInterval(id, "work_from", "09:00")
	e.UpdateInterval(id, "work_to", "18:00")
	return e
}

func TestValidateDraftAccepts(t *testing.T) {
	errs := ValidateDraft(validFields(), validEditor(), NewConnectionTable(testWarehouses), nil, "")
	if !errs.Empty() {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestValidateDraftRequiredFields(t *testing.T) {
	errs := ValidateDraft(Fields{}, validEditor(), NewConnectionTable(testWarehouses), nil, "")

	for _, field := range []string{
		"address", "name", "identifier", "phone",
		"directions_comment", "max_weight", "max_length", "storage_period",
	} {
		if errs.Fields[field] != MsgRequired {
			t.Errorf("field %q: expected %q, got %q", field, MsgRequired, errs.Fields[field])
		}
	}
}

func TestValidateDraftStoragePeriodFloor(t *testing.T) {
	fields := validFields()

	fields.StoragePeriod = "4"
	errs := ValidateDraft(fields, validEditor(), NewConnectionTable(testWarehouses), nil, "")
	if errs.Fields["storage_period"] != MsgStoragePeriodMin {
		t.Errorf("storage period 4: expected %q, got %q", MsgStoragePeriodMin, errs.Fields["storage_period"])
	}

	fields.StoragePeriod = "5"
	errs = ValidateDraft(fields, validEditor(), NewConnectionTable(testWarehouses), nil, "")
	if _, bad := errs.Fields["storage_period"]; bad {
		t.Errorf("storage period 5 should pass, got %q", errs.Fields["storage_period"])
	}
}

func TestValidateDraftIntervalErrors(t *testing.T) {
	e := NewScheduleEditor()
	id := e.Intervals()[0].ID

	errs := ValidateDraft(validFields(), e, NewConnectionTable(testWarehouses), nil, "")
	if errs.Intervals[id]["work_from"] != MsgRequired || errs.Intervals[id]["work_to"] != MsgRequired {
		t.Errorf("empty times should both be required, got %+v", errs.Intervals[id])
	}

	e.UpdateInterval(id, "work_from", "18:00")
	e.UpdateInterval(id, "work_to", "09:00")
	errs = ValidateDraft(validFields(), e, NewConnectionTable(testWarehouses), nil, "")
	if errs.Intervals[id]["work_from"] != MsgWorkFromAfterWorkTo {
		t.Errorf("18:00-09:00 should be rejected as start-after-end, got %+v", errs.Intervals[id])
	}
}

func TestValidateDraftEnabledConnectionFields(t *testing.T) {
	table := NewConnectionTable(testWarehouses)
	table.ToggleWarehouse("wh-1")
	table.UpdateConnection("wh-1", "delivery_time", "24")

	errs := ValidateDraft(validFields(), validEditor(), table, nil, "")
	if _, bad := errs.Connections["wh-1"]["delivery_time"]; bad {
		t.Error("filled delivery_time should not error")
	}
	if errs.Connections["wh-1"]["delivery_cost_mgt"] != MsgRequired {
		t.Errorf("empty delivery_cost_mgt on enabled row should be required, got %+v", errs.Connections["wh-1"])
	}
	if errs.Connections["wh-1"]["delivery_cost_kgt"] != MsgRequired {
		t.Errorf("empty delivery_cost_kgt on enabled row should be required, got %+v", errs.Connections["wh-1"])
	}
	if _, present := errs.Connections["wh-2"]; present {
		t.Error("disabled row must not be validated")
	}
}

func TestValidateDraftUniquenessSnapshot(t *testing.T) {
	snapshot := []model.BusinessPickupPoint{
		{ID: "bpp-1", Name: "Точка на Ленина", Identifier: "len-001"},
	}

	errs := ValidateDraft(validFields(), validEditor(), NewConnectionTable(testWarehouses), snapshot, "")
	if errs.Fields["name"] != MsgNameTaken {
		t.Errorf("duplicate name: expected %q, got %q", MsgNameTaken, errs.Fields["name"])
	}
	if errs.Fields["identifier"] != MsgIdentifierTaken {
		t.Errorf("duplicate identifier (case-insensitive): expected %q, got %q", MsgIdentifierTaken, errs.Fields["identifier"])
	}

	// Editing the colliding record itself is not a collision.
	errs = ValidateDraft(validFields(), validEditor(), NewConnectionTable(testWarehouses), snapshot, "bpp-1")
	if !errs.Empty() {
		t.Errorf("self-collision while editing should pass, got %+v", errs)
	}
}

func TestBuildPayload(t *testing.T) {
	fields := validFields()
	fields.MaxWeight = ""

	table := NewConnectionTable(testWarehouses)
	table.ToggleWarehouse("wh-1")
	table.UpdateConnection("wh-1", "delivery_time", "24")
	table.UpdateConnection("wh-1", "delivery_cost_mgt", "100")
	table.UpdateConnection("wh-1", "delivery_cost_kgt", "250")

	draft := BuildPayload(fields, validEditor(), table)

	if draft.MaxWeight != nil {
		t.Errorf("empty max_weight must serialize as absent, got %v", *draft.MaxWeight)
	}
	if draft.StoragePeriod == nil || *draft.StoragePeriod != 7 {
		t.Errorf("expected storage_period 7, got %v", draft.StoragePeriod)
	}
	if len(draft.Schedule) != 1 || draft.Schedule[0].WorkFrom != "09:00" {
		t.Errorf("unexpected schedule payload: %+v", draft.Schedule)
	}

	// Disabled rows are dropped entirely.
	if len(draft.Connections) != 1 {
		t.Fatalf("expected 1 enabled connection, got %d", len(draft.Connections))
	}
	conn := draft.Connections[0]
	if conn.WarehouseID != "wh-1" || !conn.Enabled {
		t.Errorf("unexpected connection: %+v", conn)
	}
	if conn.DeliveryTime == nil || *conn.DeliveryTime != 24 {
		t.Errorf("expected delivery_time 24, got %v", conn.DeliveryTime)
	}
}
