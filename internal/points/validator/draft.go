package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "pvzadmin/pkg/errors"
	"pvzadmin/pkg/logger"
	"pvzadmin/pkg/model"
	"pvzadmin/pkg/sanitizer"
)

// MinStoragePeriodDays is the floor on how long orders are held.
const MinStoragePeriodDays = 5

// DraftValidator checks a business-pickup-point payload and returns
// field-level errors; it never mutates state. The same rules run on the
// form side (internal/form), which is why messages stay field-scoped.
type DraftValidator struct {
	validate *validator.Validate
	log      *logger.Logger
}

func New(log *logger.Logger) *DraftValidator {
	v := validator.New()

	if err := v.RegisterValidation("hhmm", validateHHMM); err != nil {
		log.Fatal("Failed to register 'hhmm' validator", "error", err)
	}
	if err := v.RegisterValidation("weekday", validateWeekday); err != nil {
		log.Fatal("Failed to register 'weekday' validator", "error", err)
	}

	return &DraftValidator{validate: v, log: log}
}

func validateHHMM(fl validator.FieldLevel) bool {
	return model.IsValidHHMM(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	return model.IsWeekday(fl.Field().String())
}

// Validate applies the full rule set in order: required strings,
// required numerics, storage-period floor, schedule shape, connection
// requirements, then uniqueness against the existing registry.
// excludeID names the record being edited so it never collides with
// itself.
func (dv *DraftValidator) Validate(
	draft *model.PickupPointDraft,
	warehouseIDs map[string]struct{},
	existing []model.BusinessPickupPoint,
	excludeID string,
) []apperrors.FieldError {
	var errs []apperrors.FieldError

	push := func(field, message string) {
		errs = append(errs, apperrors.FieldError{Field: field, Message: message})
	}

	requiredStrings := []struct {
		field string
		value string
	}{
		{"address", draft.Address},
		{"name", draft.Name},
		{"identifier", draft.Identifier},
		{"phone", draft.Phone},
		{"directions_comment", draft.DirectionsComment},
	}
	for _, f := range requiredStrings {
		if err := dv.validate.Var(strings.TrimSpace(f.value), "required"); err != nil {
			push(f.field, "required")
		}
	}

	if draft.MaxWeight == nil {
		push("max_weight", "required")
	}
	if draft.MaxLength == nil {
		push("max_length", "required")
	}
	if draft.StoragePeriod == nil {
		push("storage_period", "required")
	} else if *draft.StoragePeriod < MinStoragePeriodDays {
		push("storage_period", fmt.Sprintf("must be >= %d", MinStoragePeriodDays))
	}

	dv.validateSchedule(draft.Schedule, push)
	dv.validateConnections(draft.Connections, warehouseIDs, push)
	dv.validateUniqueness(draft, existing, excludeID, push)

	return errs
}

func (dv *DraftValidator) validateSchedule(schedule []model.ScheduleInterval, push func(field, message string)) {
	if len(schedule) == 0 {
		push("schedule", "at least one interval required")
		return
	}
	if len(schedule) > len(model.Weekdays) {
		push("schedule", "maximum 7 intervals")
		return
	}

	for i, interval := range schedule {
		if len(interval.SelectedDays) == 0 {
			push(fmt.Sprintf("schedule[%d].selected_days", i), "required")
		} else {
			for _, day := range interval.SelectedDays {
				if err := dv.validate.Var(day, "weekday"); err != nil {
					push(fmt.Sprintf("schedule[%d].selected_days", i), "invalid day")
					break
				}
			}
		}

		fromOK := dv.validate.Var(interval.WorkFrom, "required,hhmm") == nil
		toOK := dv.validate.Var(interval.WorkTo, "required,hhmm") == nil
		if !fromOK {
			push(fmt.Sprintf("schedule[%d].work_from", i), "invalid time")
		}
		if !toOK {
			push(fmt.Sprintf("schedule[%d].work_to", i), "invalid time")
		}
		if fromOK && toOK {
			from, _ := model.ParseHHMM(interval.WorkFrom)
			to, _ := model.ParseHHMM(interval.WorkTo)
			if from > to {
				push(fmt.Sprintf("schedule[%d].work_from", i), "work_from exceeds work_to")
			}
		}
	}
}

func (dv *DraftValidator) validateConnections(
	connections []model.ConnectionDraft,
	warehouseIDs map[string]struct{},
	push func(field, message string),
) {
	for i, conn := range connections {
		if _, ok := warehouseIDs[conn.WarehouseID]; !ok {
			push(fmt.Sprintf("connections[%d].warehouseId", i), "unknown warehouse")
		}
		if !conn.Enabled {
			continue
		}
		if conn.DeliveryTime == nil {
			push(fmt.Sprintf("connections[%d].delivery_time", i), "required")
		}
		if conn.DeliveryCostMGT == nil {
			push(fmt.Sprintf("connections[%d].delivery_cost_mgt", i), "required")
		}
		if conn.DeliveryCostKGT == nil {
			push(fmt.Sprintf("connections[%d].delivery_cost_kgt", i), "required")
		}
	}
}

// validateUniqueness is the authoritative duplicate check; any form-side
// pre-check is only a hint.
func (dv *DraftValidator) validateUniqueness(
	draft *model.PickupPointDraft,
	existing []model.BusinessPickupPoint,
	excludeID string,
	push func(field, message string),
) {
	name := sanitizer.FoldKey(draft.Name)
	identifier := sanitizer.FoldKey(draft.Identifier)

	for _, p := range existing {
		if p.ID == excludeID {
			continue
		}
		if name != "" && sanitizer.FoldKey(p.Name) == name {
			push("name", "already exists")
			name = ""
		}
		if identifier != "" && sanitizer.FoldKey(p.Identifier) == identifier {
			push("identifier", "already exists")
			identifier = ""
		}
	}
}
