package model

// ConnectionDraft is one row of the submitted connection set. A nil
// delivery field means the value was absent from the form; empty strings
// are never sent on the wire.
type ConnectionDraft struct {
	WarehouseID     string   `json:"warehouseId"`
	Enabled         bool     `json:"enabled"`
	DeliveryTime    *float64 `json:"delivery_time,omitempty"`
	DeliveryCostMGT *float64 `json:"delivery_cost_mgt,omitempty"`
	DeliveryCostKGT *float64 `json:"delivery_cost_kgt,omitempty"`
}

// PickupPointDraft is the full create/update payload for a business
// pickup point. Update is a destructive overwrite: the stored record and
// its entire link set are replaced from the draft.
type PickupPointDraft struct {
	Address           string             `json:"address"`
	Name              string             `json:"name"`
	Identifier        string             `json:"identifier"`
	Phone             string             `json:"phone"`
	Extension         string             `json:"extension,omitempty"`
	DirectionsComment string             `json:"directions_comment"`
	Schedule          []ScheduleInterval `json:"schedule"`
	MaxWeight         *float64           `json:"max_weight,omitempty"`
	MaxLength         *float64           `json:"max_length,omitempty"`
	StoragePeriod     *float64           `json:"storage_period,omitempty"`
	Connections       []ConnectionDraft  `json:"connections,omitempty"`
}
