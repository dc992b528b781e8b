package models

//nolint:gochecknoglobals //fixed ordering
var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DayOrdinal maps a day label to its position in the week using its first
// three characters. Unknown or missing labels come after Sunday.
func DayOrdinal(label string) int {
	prefix := label
	if len(prefix) > 3 { //nolint:mnd //weekday abbreviation length
		prefix = prefix[:3]
	}

	for i, day := range weekdays {
		if day == prefix {
			return i
		}
	}

	return len(weekdays)
}
