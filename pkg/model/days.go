package model

// Weekdays lists the recognized day codes in week order.
var Weekdays = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

var weekdaySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Weekdays))
	for _, d := range Weekdays {
		set[d] = struct{}{}
	}
	return set
}()

func IsWeekday(code string) bool {
	_, ok := weekdaySet[code]
	return ok
}
