package repositories

import (
	"context"

	"github.com/o-mit/imt-timetable-app/apps/tableschedule/internal/models"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type PostgresCatalogRepository struct {
	db postgres.DB
}

func (repo *PostgresCatalogRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	query := `
		SELECT abbreviation, name, sections
		FROM tableschedule.courses
		ORDER BY abbreviation ASC
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		//nolint:exhaustruct //fields are scanned below
		course := models.Course{}

		err = rows.Scan(
			&course.Abbreviation,
			&course.Name,
			&course.Sections,
		)
		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return courses, nil
}
