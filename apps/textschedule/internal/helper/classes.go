package helper

import (
	"regexp"
	"strings"

	"github.com/o-mit/imt-timetable-app/apps/textschedule/internal/models"
)

// matches entries like MFS-A(6)- AB {C - 402}
var classPattern = regexp.MustCompile(
	`([A-Z]+(?:-[A-Z])?-[A-Z]\([0-9]+\)-\s*[A-Z]{1,4})\s*\{([^}]+)\}`,
)

var whitespace = regexp.MustCompile(`\s+`)

func ExtractClasses(text string) []models.ClassEntry {
	text = whitespace.ReplaceAllString(text, " ")

	classes := []models.ClassEntry{}
	for _, match := range classPattern.FindAllStringSubmatch(text, -1) {
		classes = append(classes, models.ClassEntry{
			Label: strings.TrimSpace(match[1]),
			Venue: strings.TrimSpace(match[2]),
		})
	}

	return classes
}

// FilterBySelection keeps every class whose label contains one of the
// selected sections. Containment is loose, "MFS-A" also keeps "MFS-A-B"
// classes.
func FilterBySelection(
	classes []models.ClassEntry,
	selection []string,
) []models.ClassEntry {
	filtered := []models.ClassEntry{}

	for _, class := range classes {
		for _, section := range selection {
			if section == "" {
				continue
			}

			if strings.Contains(class.Label, section) {
				filtered = append(filtered, class)
				break
			}
		}
	}

	return filtered
}
