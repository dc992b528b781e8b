package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
)

const csvColumns = 3

// CSVCatalogRepository reads a file with a header row followed by
// abbreviation, full name and a comma separated list of sections.
type CSVCatalogRepository struct {
	path string
}

func NewCSVCatalogRepository(path string) *CSVCatalogRepository {
	return &CSVCatalogRepository{path: path}
}

func (repo *CSVCatalogRepository) GetAll(_ context.Context) ([]models.Course, error) {
	file, err := os.Open(repo.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, repo.path)
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = csvColumns
	reader.TrimLeadingSpace = true

	// header
	if _, err = reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Course{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", repo.path, err)
	}

	courses := []models.Course{}
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("reading %s: %w", repo.path, readErr)
		}

		abbreviation := strings.TrimSpace(record[0])
		if abbreviation == "" {
			continue
		}

		courses = append(courses, models.Course{
			Abbreviation: abbreviation,
			Name:         strings.TrimSpace(record[1]),
			Sections:     splitSections(record[2]),
		})
	}

	return courses, nil
}

func splitSections(value string) []string {
	sections := []string{}
	for _, section := range strings.Split(value, ",") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		sections = append(sections, section)
	}
	return sections
}
