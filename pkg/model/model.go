package model

// Warehouse is static seed data; there is no warehouse CRUD.
type Warehouse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PickupPoint is a read-only, warehouse-scoped display entity.
type PickupPoint struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	WarehouseID  string `json:"warehouseId"`
	Phone        string `json:"phone,omitempty"`
	WorkingHours string `json:"workingHours,omitempty"`
}

// ScheduleInterval pairs a subset of weekdays with an open/close range.
// A weekday code appears in at most one interval of a schedule.
type ScheduleInterval struct {
	SelectedDays []string `json:"selected_days"`
	WorkFrom     string   `json:"work_from"`
	WorkTo       string   `json:"work_to"`
}

// BusinessPickupPoint is an account-level self-service drop-off location.
// It is owned by the account, not by a single warehouse, and connects to
// warehouses through WarehouseBusinessLink rows.
type BusinessPickupPoint struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Address           string             `json:"address"`
	Identifier        string             `json:"identifier"`
	Phone             string             `json:"phone"`
	Extension         string             `json:"extension"`
	DirectionsComment string             `json:"directions_comment"`
	Schedule          []ScheduleInterval `json:"schedule"`
	MaxWeight         float64            `json:"max_weight"`
	MaxLength         float64            `json:"max_length"`
	StoragePeriod     int                `json:"storage_period"`
}

// WarehouseBusinessLink is an edge in the warehouse <-> business pickup
// point many-to-many relation, carrying delivery metadata. MGT and KGT
// are the small-format and large-format goods tariffs.
type WarehouseBusinessLink struct {
	WarehouseID           string   `json:"warehouseId"`
	BusinessPickupPointID string   `json:"businessPickupPointId"`
	Enabled               bool     `json:"enabled"`
	DeliveryTime          *float64 `json:"delivery_time,omitempty"`
	DeliveryCostMGT       *float64 `json:"delivery_cost_mgt,omitempty"`
	DeliveryCostKGT       *float64 `json:"delivery_cost_kgt,omitempty"`
}
