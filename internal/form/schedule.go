package form

import (
	"strconv"

	"pvzadmin/pkg/model"
)

// Interval is one editable schedule row. The ID is editor-local and
// never leaves the form; it keys validation errors back to the row.
type Interval struct {
	ID           string
	SelectedDays []string
	WorkFrom     string
	WorkTo       string
}

// ScheduleEditor maintains the ordered interval list and enforces that
// every weekday is assigned to at most one interval.
type ScheduleEditor struct {
	intervals []Interval
	nextID    int
}

const maxIntervals = 7

// NewScheduleEditor starts with a single interval covering all seven
// weekdays and empty times.
func NewScheduleEditor() *ScheduleEditor {
	days := make([]string, len(model.Weekdays))
	copy(days, model.Weekdays)
	return &ScheduleEditor{
		intervals: []Interval{{ID: "1", SelectedDays: days}},
		nextID:    2,
	}
}

// EditScheduleEditor hydrates the editor from a stored schedule. An
// empty schedule falls back to the create-mode default.
func EditScheduleEditor(schedule []model.ScheduleInterval) *ScheduleEditor {
	if len(schedule) == 0 {
		return NewScheduleEditor()
	}
	intervals := make([]Interval, len(schedule))
	for i, s := range schedule {
		days := make([]string, len(s.SelectedDays))
		copy(days, s.SelectedDays)
		intervals[i] = Interval{
			ID:           strconv.Itoa(i + 1),
			SelectedDays: days,
			WorkFrom:     s.WorkFrom,
			WorkTo:       s.WorkTo,
		}
	}
	return &ScheduleEditor{intervals: intervals, nextID: len(schedule) + 1}
}

// ToggleDay removes day from the named interval when already selected
// there; otherwise it adds the day to that interval and strips it from
// every other interval, so a day is moved between rows rather than
// duplicated.
func (e *ScheduleEditor) ToggleDay(intervalID, day string) {
	target := e.find(intervalID)
	if target == nil {
		return
	}

	if containsDay(target.SelectedDays, day) {
		target.SelectedDays = removeDay(target.SelectedDays, day)
		return
	}

	for i := range e.intervals {
		if e.intervals[i].ID == intervalID {
			e.intervals[i].SelectedDays = append(e.intervals[i].SelectedDays, day)
		} else {
			e.intervals[i].SelectedDays = removeDay(e.intervals[i].SelectedDays, day)
		}
	}
}

// AddInterval appends an empty interval. No-op at seven intervals.
func (e *ScheduleEditor) AddInterval() {
	if len(e.intervals) >= maxIntervals {
		return
	}
	e.intervals = append(e.intervals, Interval{ID: strconv.Itoa(e.nextID)})
	e.nextID++
}

// RemoveInterval drops the named interval. No-op when it would leave
// the schedule empty.
func (e *ScheduleEditor) RemoveInterval(intervalID string) {
	if len(e.intervals) <= 1 {
		return
	}
	for i := range e.intervals {
		if e.intervals[i].ID == intervalID {
			e.intervals = append(e.intervals[:i], e.intervals[i+1:]...)
			return
		}
	}
}

// UpdateInterval sets one of the time fields on the named interval.
// Unknown fields and ids are ignored.
func (e *ScheduleEditor) UpdateInterval(intervalID, field, value string) {
	target := e.find(intervalID)
	if target == nil {
		return
	}
	switch field {
	case "work_from":
		target.WorkFrom = value
	case "work_to":
		target.WorkTo = value
	}
}

// Intervals returns a copy of the current rows in order.
func (e *ScheduleEditor) Intervals() []Interval {
	out := make([]Interval, len(e.intervals))
	for i, it := range e.intervals {
		days := make([]string, len(it.SelectedDays))
		copy(days, it.SelectedDays)
		out[i] = Interval{ID: it.ID, SelectedDays: days, WorkFrom: it.WorkFrom, WorkTo: it.WorkTo}
	}
	return out
}

// Schedule serializes the rows into the wire shape.
func (e *ScheduleEditor) Schedule() []model.ScheduleInterval {
	out := make([]model.ScheduleInterval, len(e.intervals))
	for i, it := range e.intervals {
		days := make([]string, len(it.SelectedDays))
		copy(days, it.SelectedDays)
		out[i] = model.ScheduleInterval{
			SelectedDays: days,
			WorkFrom:     it.WorkFrom,
			WorkTo:       it.WorkTo,
		}
	}
	return out
}

func (e *ScheduleEditor) find(intervalID string) *Interval {
	for i := range e.intervals {
		if e.intervals[i].ID == intervalID {
			return &e.intervals[i]
		}
	}
	return nil
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func removeDay(days []string, day string) []string {
	out := days[:0]
	for _, d := range days {
		if d != day {
			out = append(out, d)
		}
	}
	return out
}
