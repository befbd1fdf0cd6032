package form

import (
	"strings"

	"pvzadmin/pkg/model"
)

// User-facing validation messages.
const (
	MsgRequired            = "Обязательное поле"
	MsgStoragePeriodMin    = "Минимальный срок хранения - 5 дней"
	MsgWorkFromAfterWorkTo = "Начало работы превышает время окончания"
	MsgNameTaken           = "Точка самовывоза с таким названием уже существует"
	MsgIdentifierTaken     = "Точка самовывоза с таким идентификатором уже существует"
)

const minStoragePeriodDays = 5

// Fields holds the free-typed top-level inputs. The numeric fields stay
// strings until the payload is built; an empty string means absent.
type Fields struct {
	Address           string
	Name              string
	Identifier        string
	Phone             string
	Extension         string
	DirectionsComment string
	MaxWeight         string
	MaxLength         string
	StoragePeriod     string
}

// Errors is the nested validation result: top-level messages keyed by
// field name, interval messages keyed by interval id, connection
// messages keyed by warehouse id.
type Errors struct {
	Fields      map[string]string
	Intervals   map[string]map[string]string
	Connections map[string]map[string]string
}

func (e Errors) Empty() bool {
	return len(e.Fields) == 0 && len(e.Intervals) == 0 && len(e.Connections) == 0
}

func (e *Errors) setField(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, taken := e.Fields[field]; !taken {
		e.Fields[field] = message
	}
}

func (e *Errors) setInterval(intervalID, field, message string) {
	if e.Intervals == nil {
		e.Intervals = make(map[string]map[string]string)
	}
	if e.Intervals[intervalID] == nil {
		e.Intervals[intervalID] = make(map[string]string)
	}
	e.Intervals[intervalID][field] = message
}

func (e *Errors) setConnection(warehouseID, field, message string) {
	if e.Connections == nil {
		e.Connections = make(map[string]map[string]string)
	}
	if e.Connections[warehouseID] == nil {
		e.Connections[warehouseID] = make(map[string]string)
	}
	e.Connections[warehouseID][field] = message
}

// ValidateDraft mirrors the server-side checks for immediate feedback:
// required fields, the storage period floor, interval time ordering,
// per-enabled-connection delivery fields, and a name/identifier
// uniqueness check against a fetched snapshot. The snapshot check is
// advisory; the server remains the ground truth.
func ValidateDraft(fields Fields, editor *ScheduleEditor, table *ConnectionTable, snapshot []model.BusinessPickupPoint, excludeID string) Errors {
	var errs Errors

	if strings.TrimSpace(fields.Address) == "" {
		errs.setField("address", MsgRequired)
	}
	if strings.TrimSpace(fields.Name) == "" {
		errs.setField("name", MsgRequired)
	}
	if strings.TrimSpace(fields.Identifier) == "" {
		errs.setField("identifier", MsgRequired)
	}
	if strings.TrimSpace(fields.Phone) == "" {
		errs.setField("phone", MsgRequired)
	}
	if strings.TrimSpace(fields.DirectionsComment) == "" {
		errs.setField("directions_comment", MsgRequired)
	}
	if fields.MaxWeight == "" {
		errs.setField("max_weight", MsgRequired)
	}
	if fields.MaxLength == "" {
		errs.setField("max_length", MsgRequired)
	}
	if fields.StoragePeriod == "" {
		errs.setField("storage_period", MsgRequired)
	} else if v, ok := parseNumber(fields.StoragePeriod); ok && v < minStoragePeriodDays {
		errs.setField("storage_period", MsgStoragePeriodMin)
	}

	for _, it := range editor.Intervals() {
		if it.WorkFrom == "" {
			errs.setInterval(it.ID, "work_from", MsgRequired)
		}
		if it.WorkTo == "" {
			errs.setInterval(it.ID, "work_to", MsgRequired)
		}
		from, fromOK := model.ParseHHMM(it.WorkFrom)
		to, toOK := model.ParseHHMM(it.WorkTo)
		if fromOK && toOK && from > to {
			errs.setInterval(it.ID, "work_from", MsgWorkFromAfterWorkTo)
		}
	}

	for _, row := range table.Rows() {
		if !row.Enabled {
			continue
		}
		if row.DeliveryTime == "" {
			errs.setConnection(row.WarehouseID, "delivery_time", MsgRequired)
		}
		if row.DeliveryCostMGT == "" {
			errs.setConnection(row.WarehouseID, "delivery_cost_mgt", MsgRequired)
		}
		if row.DeliveryCostKGT == "" {
			errs.setConnection(row.WarehouseID, "delivery_cost_kgt", MsgRequired)
		}
	}

	name := foldKey(fields.Name)
	identifier := foldKey(fields.Identifier)
	for _, p := range snapshot {
		if p.ID == excludeID {
			continue
		}
		if name != "" && foldKey(p.Name) == name {
			errs.setField("name", MsgNameTaken)
		}
		if identifier != "" && foldKey(p.Identifier) == identifier {
			errs.setField("identifier", MsgIdentifierTaken)
		}
	}

	return errs
}

func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
