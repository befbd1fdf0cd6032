package form

import (
	"strconv"

	"pvzadmin/pkg/model"
)

// BuildPayload serializes the form state into the wire shape. Empty
// numeric inputs become omitted fields, never zero values, and only
// enabled connection rows are sent.
func BuildPayload(fields Fields, editor *ScheduleEditor, table *ConnectionTable) model.PickupPointDraft {
	draft := model.PickupPointDraft{
		Address:           fields.Address,
		Name:              fields.Name,
		Identifier:        fields.Identifier,
		Phone:             fields.Phone,
		Extension:         fields.Extension,
		DirectionsComment: fields.DirectionsComment,
		Schedule:          editor.Schedule(),
		MaxWeight:         numberOrNil(fields.MaxWeight),
		MaxLength:         numberOrNil(fields.MaxLength),
		StoragePeriod:     numberOrNil(fields.StoragePeriod),
	}

	for _, row := range table.Rows() {
		if !row.Enabled {
			continue
		}
		draft.Connections = append(draft.Connections, model.ConnectionDraft{
			WarehouseID:     row.WarehouseID,
			Enabled:         true,
			DeliveryTime:    numberOrNil(row.DeliveryTime),
			DeliveryCostMGT: numberOrNil(row.DeliveryCostMGT),
			DeliveryCostKGT: numberOrNil(row.DeliveryCostKGT),
		})
	}

	return draft
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func numberOrNil(s string) *float64 {
	if s == "" {
		return nil
	}
	v, ok := parseNumber(s)
	if !ok {
		return nil
	}
	return &v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
