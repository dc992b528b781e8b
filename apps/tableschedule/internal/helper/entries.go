package helper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/o-mit/imt-timetable-app/pkg/pdfextract"
)

const missingTimeSlot = "N/A"

// COURSE-SECTION(SESSION)- FACULTY {VENUE}, the venue may also be in parentheses
var entryPattern = regexp.MustCompile(
	`([A-Za-z0-9-]+)-([A-Za-z]+)\((\d+)\)-\s*([A-Za-z /]*?)\s*[{(]([^{}()\[\]]+)[})]`,
)

var (
	blockSeparator = regexp.MustCompile(`\n\s*\n`)
	whitespace     = regexp.MustCompile(`\s+`)
)

// ParseTable parses every body cell of a timetable grid. The header holds
// the time slots and the first column the day labels.
func ParseTable(table pdfextract.Table) []models.ScheduleEntry {
	entries := []models.ScheduleEntry{}

	header := table.Header()
	day := ""
	for _, row := range table.Body() {
		var rowEntries []models.ScheduleEntry
		day, rowEntries = parseRow(day, header, row)
		entries = append(entries, rowEntries...)
	}

	return entries
}

// parseRow returns the day label following rows inherit together with the
// entries of this row. The label only changes when the first column is set.
func parseRow(
	day string,
	header []string,
	row []string,
) (string, []models.ScheduleEntry) {
	entries := []models.ScheduleEntry{}
	if len(row) == 0 {
		return day, entries
	}

	if label := normalize(row[0]); label != "" {
		day = label
	}

	for col := 1; col < len(row); col++ {
		entries = append(entries, ParseCell(row[col], day, timeSlot(header, col))...)
	}

	return day, entries
}

// ParseCell returns the entries of one cell. Entries are separated by blank
// lines, text that does not look like an entry is dropped.
func ParseCell(cell string, day string, slot string) []models.ScheduleEntry {
	entries := []models.ScheduleEntry{}

	for _, block := range blockSeparator.Split(cell, -1) {
		block = normalize(block)
		if block == "" {
			continue
		}

		for _, match := range entryPattern.FindAllStringSubmatch(block, -1) {
			session, err := strconv.Atoi(match[3])
			if err != nil {
				continue
			}

			entries = append(entries, models.ScheduleEntry{
				Course:  match[1],
				Section: match[2],
				Session: session,
				Faculty: strings.TrimSpace(match[4]),
				Venue:   strings.TrimSpace(match[5]),
				Day:     day,
				Time:    slot,
			})
		}
	}

	return entries
}

func timeSlot(header []string, col int) string {
	if col < 0 || col >= len(header) {
		return missingTimeSlot
	}
	return normalize(header[col])
}

func normalize(text string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
