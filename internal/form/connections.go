package form

import "pvzadmin/pkg/model"

// ConnectionRow is one warehouse line of the connection table. The
// delivery fields are free text while editing and only coerced to
// numbers when the payload is built.
type ConnectionRow struct {
	WarehouseID      string
	WarehouseName    string
	WarehouseAddress string
	Enabled          bool
	DeliveryTime     string
	DeliveryCostMGT  string
	DeliveryCostKGT  string
}

// ConnectionTable tracks per-warehouse enablement and delivery metadata
// for the point being edited.
type ConnectionTable struct {
	rows []ConnectionRow
}

// NewConnectionTable builds one disabled row per warehouse.
func NewConnectionTable(warehouses []model.Warehouse) *ConnectionTable {
	rows := make([]ConnectionRow, len(warehouses))
	for i, w := range warehouses {
		rows[i] = ConnectionRow{
			WarehouseID:      w.ID,
			WarehouseName:    w.Name,
			WarehouseAddress: w.Address,
		}
	}
	return &ConnectionTable{rows: rows}
}

// ToggleWarehouse flips enablement for one row.
func (t *ConnectionTable) ToggleWarehouse(warehouseID string) {
	for i := range t.rows {
		if t.rows[i].WarehouseID == warehouseID {
			t.rows[i].Enabled = !t.rows[i].Enabled
			return
		}
	}
}

// ToggleAllWarehouses sets enablement uniformly across all rows.
func (t *ConnectionTable) ToggleAllWarehouses(checked bool) {
	for i := range t.rows {
		t.rows[i].Enabled = checked
	}
}

// UpdateConnection sets one delivery field as free text. Unknown fields
// and ids are ignored.
func (t *ConnectionTable) UpdateConnection(warehouseID, field, value string) {
	for i := range t.rows {
		if t.rows[i].WarehouseID != warehouseID {
			continue
		}
		switch field {
		case "delivery_time":
			t.rows[i].DeliveryTime = value
		case "delivery_cost_mgt":
			t.rows[i].DeliveryCostMGT = value
		case "delivery_cost_kgt":
			t.rows[i].DeliveryCostKGT = value
		}
		return
	}
}

// Rehydrate recomputes the rows from a refreshed link fetch, keeping
// previous in-memory values for warehouses the fetch has no link for.
func (t *ConnectionTable) Rehydrate(warehouses []model.Warehouse, links []model.WarehouseBusinessLink) {
	t.rows = ReconcileConnections(warehouses, links, t.rows)
}

// AllEnabled reports whether every row is enabled; used to drive the
// select-all checkbox state.
func (t *ConnectionTable) AllEnabled() bool {
	for _, r := range t.rows {
		if !r.Enabled {
			return false
		}
	}
	return len(t.rows) > 0
}

// Rows returns a copy of the current rows in warehouse order.
func (t *ConnectionTable) Rows() []ConnectionRow {
	out := make([]ConnectionRow, len(t.rows))
	copy(out, t.rows)
	return out
}

// ReconcileConnections merges freshly fetched links into the previous
// row state. A warehouse with a fetched link takes the link's values; a
// warehouse without one keeps its previous row, so an in-progress edit
// is not clobbered by a slow background refresh.
func ReconcileConnections(warehouses []model.Warehouse, links []model.WarehouseBusinessLink, prev []ConnectionRow) []ConnectionRow {
	byWarehouse := make(map[string]model.WarehouseBusinessLink, len(links))
	for _, l := range links {
		byWarehouse[l.WarehouseID] = l
	}
	prevByWarehouse := make(map[string]ConnectionRow, len(prev))
	for _, r := range prev {
		prevByWarehouse[r.WarehouseID] = r
	}

	out := make([]ConnectionRow, len(warehouses))
	for i, w := range warehouses {
		row := ConnectionRow{
			WarehouseID:      w.ID,
			WarehouseName:    w.Name,
			WarehouseAddress: w.Address,
		}
		prevRow, hadPrev := prevByWarehouse[w.ID]
		link, hasLink := byWarehouse[w.ID]

		if hasLink {
			row.Enabled = link.Enabled
			row.DeliveryTime = numberOrPrev(link.DeliveryTime, prevRow.DeliveryTime)
			row.DeliveryCostMGT = numberOrPrev(link.DeliveryCostMGT, prevRow.DeliveryCostMGT)
			row.DeliveryCostKGT = numberOrPrev(link.DeliveryCostKGT, prevRow.DeliveryCostKGT)
		} else if hadPrev {
			row.Enabled = prevRow.Enabled
			row.DeliveryTime = prevRow.DeliveryTime
			row.DeliveryCostMGT = prevRow.DeliveryCostMGT
			row.DeliveryCostKGT = prevRow.DeliveryCostKGT
		}
		out[i] = row
	}
	return out
}

func numberOrPrev(v *float64, prev string) string {
	if v == nil {
		return prev
	}
	return formatNumber(*v)
}
