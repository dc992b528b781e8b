package helper

import (
	"cmp"
	"slices"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
)

// FilterBySelection keeps the entries whose course section key is selected.
func FilterBySelection(
	entries []models.ScheduleEntry,
	selection models.SelectionSet,
) []models.ScheduleEntry {
	result := []models.ScheduleEntry{}

	for _, entry := range entries {
		if selection.Contains(entry.Key()) {
			result = append(result, entry)
		}
	}

	return result
}

// SortByDay returns a copy ordered Monday to Sunday. Entries of the same day
// keep their order.
func SortByDay(entries []models.ScheduleEntry) []models.ScheduleEntry {
	sorted := make([]models.ScheduleEntry, len(entries))
	copy(sorted, entries)

	slices.SortStableFunc(sorted, func(a, b models.ScheduleEntry) int {
		return cmp.Compare(models.DayOrdinal(a.Day), models.DayOrdinal(b.Day))
	})

	return sorted
}
