package models

import "fmt"

type ScheduleEntry struct {
	Course  string
	Section string
	Session int
	Faculty string
	Venue   string
	Day     string
	Time    string
}

// Key identifies the course section the entry belongs to, e.g. "MFS - A".
func (entry ScheduleEntry) Key() string {
	return CourseKey(entry.Course, entry.Section)
}

func CourseKey(abbreviation string, section string) string {
	return fmt.Sprintf("%s - %s", abbreviation, section)
}

type ScheduleRow struct {
	Entry      ScheduleEntry
	CourseName string
}

type Schedule struct {
	Rows    []ScheduleRow
	Tables  int
	Entries int
}
